package lexer

import (
	"strings"
	"testing"
)

// ============================================================================
// Lexer 基准测试
// ============================================================================
//
//   go test -bench=. -benchmem ./internal/lexer/...
//
// ============================================================================

var benchSource = `<?php
namespace App\Controllers;

use App\Models\User;
use App\Services\AuthService;

/*. pragma 'error_throws_exception' 'ErrorException'; .*/

/**
 * Handles user requests.
 */
class UserController extends BaseController implements Authenticatable {
    private /*. AuthService .*/ $authService;
    private int $maxRetries = 3;
    const PAGE = 20;

    public function __construct(AuthService $authService) {
        $this->authService = $authService;
    }

    public function show(int $id): /*. User .*/ ?object /*. throws NotFoundException .*/ {
        $user = User::find($id);
        if ($user === null) {
            throw new NotFoundException("user $id not found");
        }
        return $user;
    }
}
?>
<footer>rendered</footer>
`

func BenchmarkLexer(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		New(benchSource, "bench.php").ScanTokens()
	}
}

func BenchmarkLexerLarge(b *testing.B) {
	src := benchSource + strings.Repeat(strings.TrimPrefix(benchSource, "<?php"), 50)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(src, "bench.php").ScanTokens()
	}
}
