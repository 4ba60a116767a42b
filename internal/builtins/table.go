package builtins

import "github.com/rvtraveller/phplint/internal/types"

type constSpec struct {
	name  string
	typ   types.Type
	value interface{}
}

type methodSpec struct {
	name   string
	static bool
	proto  string
}

type classSpec struct {
	name       string
	iface      bool
	final      bool
	unchecked  bool
	extends    string
	implements []string
	constants  []constSpec
	methods    []methodSpec
}

var throwableMethods = []methodSpec{
	{name: "getMessage", proto: "string()"},
	{name: "getCode", proto: "int()"},
	{name: "getPrevious", proto: "Throwable()"},
	{name: "getFile", proto: "string()"},
	{name: "getLine", proto: "int()"},
	{name: "getTraceAsString", proto: "string()"},
	{name: "__toString", proto: "string()"},
}

var exceptionMethods = append([]methodSpec{
	{name: "__construct", proto: "void(string $message =, int $code =, Throwable $previous =)"},
}, throwableMethods...)

// classTable 内建类；父类必须先于子类出现
var classTable = []classSpec{
	{name: "Traversable", iface: true},
	{name: "Iterator", iface: true, extends: "Traversable", methods: []methodSpec{
		{name: "current", proto: "mixed()"},
		{name: "key", proto: "mixed()"},
		{name: "next", proto: "void()"},
		{name: "rewind", proto: "void()"},
		{name: "valid", proto: "boolean()"},
	}},
	{name: "IteratorAggregate", iface: true, extends: "Traversable", methods: []methodSpec{
		{name: "getIterator", proto: "Traversable()"},
	}},
	{name: "Countable", iface: true, methods: []methodSpec{
		{name: "count", proto: "int()"},
	}},
	{name: "ArrayAccess", iface: true, methods: []methodSpec{
		{name: "offsetExists", proto: "boolean(mixed $offset)"},
		{name: "offsetGet", proto: "mixed(mixed $offset)"},
		{name: "offsetSet", proto: "void(mixed $offset, mixed $value)"},
		{name: "offsetUnset", proto: "void(mixed $offset)"},
	}},
	{name: "Stringable", iface: true, methods: []methodSpec{
		{name: "__toString", proto: "string()"},
	}},
	{name: "Throwable", iface: true, methods: throwableMethods},

	{name: "Exception", implements: []string{"Throwable"}, methods: exceptionMethods},
	{name: "ErrorException", extends: "Exception", methods: []methodSpec{
		{name: "__construct", proto: "void(string $message =, int $code =, int $severity =, string $filename =, int $line =, Throwable $previous =)"},
		{name: "getSeverity", proto: "int()"},
	}},
	{name: "LogicException", extends: "Exception"},
	{name: "BadFunctionCallException", extends: "LogicException"},
	{name: "BadMethodCallException", extends: "BadFunctionCallException"},
	{name: "DomainException", extends: "LogicException"},
	{name: "InvalidArgumentException", extends: "LogicException"},
	{name: "LengthException", extends: "LogicException"},
	{name: "OutOfRangeException", extends: "LogicException"},
	{name: "RuntimeException", extends: "Exception"},
	{name: "OutOfBoundsException", extends: "RuntimeException"},
	{name: "OverflowException", extends: "RuntimeException"},
	{name: "RangeException", extends: "RuntimeException"},
	{name: "UnderflowException", extends: "RuntimeException"},
	{name: "UnexpectedValueException", extends: "RuntimeException"},
	{name: "JsonException", extends: "Exception"},

	{name: "Error", unchecked: true, implements: []string{"Throwable"}, methods: exceptionMethods},
	{name: "TypeError", extends: "Error"},
	{name: "ArgumentCountError", extends: "TypeError"},
	{name: "ArithmeticError", extends: "Error"},
	{name: "DivisionByZeroError", extends: "ArithmeticError"},
	{name: "AssertionError", extends: "Error"},

	{name: "stdClass"},
	{name: "Closure", final: true},
	{name: "ArrayIterator", implements: []string{"Iterator", "ArrayAccess", "Countable"}, methods: []methodSpec{
		{name: "__construct", proto: "void(mixed[] $array =)"},
		{name: "current", proto: "mixed()"},
		{name: "key", proto: "mixed()"},
		{name: "next", proto: "void()"},
		{name: "rewind", proto: "void()"},
		{name: "valid", proto: "boolean()"},
		{name: "offsetExists", proto: "boolean(mixed $offset)"},
		{name: "offsetGet", proto: "mixed(mixed $offset)"},
		{name: "offsetSet", proto: "void(mixed $offset, mixed $value)"},
		{name: "offsetUnset", proto: "void(mixed $offset)"},
		{name: "count", proto: "int()"},
	}},
	{name: "DateTime", methods: []methodSpec{
		{name: "__construct", proto: "void(string $datetime =) triggers E_WARNING"},
		{name: "format", proto: "string(string $format)"},
		{name: "getTimestamp", proto: "int()"},
	}, constants: []constSpec{
		{"ATOM", types.String, "Y-m-d\\TH:i:sP"},
		{"RFC2822", types.String, "D, d M Y H:i:s O"},
	}},
}

// functionTable 内建函数
var functionTable = []struct {
	name  string
	proto string
}{
	{"cast", "mixed(string $type, mixed $value)"},
	{"count", "int(mixed $value)"},
	{"strlen", "int(string $s)"},
	{"strtolower", "string(string $s)"},
	{"strtoupper", "string(string $s)"},
	{"substr", "string(string $s, int $start, int $length =)"},
	{"strpos", "int(string $haystack, string $needle, int $offset =)"},
	{"str_replace", "mixed(mixed $search, mixed $replace, mixed $subject, int &$count =)"},
	{"trim", "string(string $s, string $chars =)"},
	{"sprintf", "string(string $format, mixed ...$values)"},
	{"printf", "int(string $format, mixed ...$values)"},
	{"implode", "string(string $separator, string[] $pieces)"},
	{"explode", "string[int](string $separator, string $s, int $limit =)"},
	{"in_array", "boolean(mixed $needle, mixed[] $haystack, boolean $strict =)"},
	{"array_keys", "mixed[int](mixed[] $array)"},
	{"array_values", "mixed[int](mixed[] $array)"},
	{"array_merge", "mixed[](mixed[] ...$arrays)"},
	{"is_int", "boolean(mixed $value)"},
	{"is_float", "boolean(mixed $value)"},
	{"is_string", "boolean(mixed $value)"},
	{"is_bool", "boolean(mixed $value)"},
	{"is_array", "boolean(mixed $value)"},
	{"is_object", "boolean(mixed $value)"},
	{"is_null", "boolean(mixed $value)"},
	{"intval", "int(mixed $value)"},
	{"floatval", "float(mixed $value)"},
	{"strval", "string(mixed $value)"},
	{"var_dump", "void(mixed $value, mixed ...$values)"},
	{"dirname", "string(string $path, int $levels =)"},
	{"basename", "string(string $path, string $suffix =)"},
	{"file_exists", "boolean(string $filename)"},
	{"file_get_contents", "string(string $filename) triggers E_WARNING"},
	{"file_put_contents", "int(string $filename, mixed $data, int $flags =) triggers E_WARNING"},
	{"fopen", "resource(string $filename, string $mode) triggers E_WARNING"},
	{"fclose", "boolean(resource $handle)"},
	{"fwrite", "int(resource $handle, string $data) triggers E_WARNING"},
	{"json_encode", "string(mixed $value, int $flags =)"},
	{"json_decode", "mixed(string $json, boolean $assoc =)"},
	{"define", "boolean(string $name, mixed $value)"},
	{"defined", "boolean(string $name)"},
	{"class_exists", "boolean(string $class, boolean $autoload =)"},
	{"spl_autoload_register", "boolean(mixed $callback =)"},
	{"trigger_error", "boolean(string $message, int $level =) triggers E_USER_ERROR|E_USER_WARNING|E_USER_NOTICE|E_USER_DEPRECATED"},
	{"error_log", "boolean(string $message)"},
	{"set_error_handler", "mixed(mixed $handler, int $levels =)"},
	{"microtime", "mixed(boolean $as_float =)"},
	{"time", "int()"},
	{"func_get_args", "mixed[int]()"},
	{"max", "mixed(mixed $value, args)"},
	{"min", "mixed(mixed $value, args)"},
}

// constantTable 内建常量（错误级别常量另行生成）
var constantTable = []constSpec{
	{"PHP_EOL", types.String, "\n"},
	{"PHP_INT_MAX", types.Int, int64(9223372036854775807)},
	{"PHP_INT_SIZE", types.Int, int64(8)},
	{"PHP_VERSION", types.String, "7.4.0"},
	{"PHP_OS", types.String, "Linux"},
	{"DIRECTORY_SEPARATOR", types.String, "/"},
	{"M_PI", types.Float, 3.141592653589793},
	{"JSON_PRETTY_PRINT", types.Int, int64(128)},
	{"FILE_APPEND", types.Int, int64(8)},
	{"STDIN", types.Resource, nil},
	{"STDOUT", types.Resource, nil},
	{"STDERR", types.Resource, nil},
}
