package i18n

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言
func SetLanguageFromString(lang string) {
	SetLanguage(Parse(lang))
}

// Parse 解析语言名称，无法识别时返回英文
func Parse(lang string) Language {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "._"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		return LangChinese
	default:
		return LangEnglish
	}
}

// FromEnv 根据 PHPLINT_LANG 或 LANG 环境变量推断语言
func FromEnv() (Language, bool) {
	for _, key := range []string{"PHPLINT_LANG", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return Parse(v), true
		}
	}
	return LangEnglish, false
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
func T(msgID string, args ...interface{}) string {
	mu.RLock()
	lang := currentLang
	mu.RUnlock()

	messages := messagesEN
	if lang == LangChinese {
		messages = messagesZH
	}

	msg, ok := messages[msgID]
	if !ok {
		// 回退到英文
		if msg, ok = messagesEN[msgID]; !ok {
			return msgID
		}
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has 判断消息 ID 是否存在于英文目录中
func Has(msgID string) bool {
	_, ok := messagesEN[msgID]
	return ok
}
