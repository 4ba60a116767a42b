package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/rvtraveller/phplint/internal/i18n"
)

// 当前消息
var msg = messagesEN

// InitLanguage 初始化语言设置
// 优先级: 命令行参数 > 环境变量 PHPLINT_LANG/LANG > 配置文件 > 操作系统语言 > 默认英文
func InitLanguage(langOverride, configLang string) {
	switch {
	case langOverride != "":
		setLanguage(i18n.Parse(langOverride))
	case os.Getenv("PHPLINT_LANG") != "":
		lang, _ := i18n.FromEnv()
		setLanguage(lang)
	case configLang != "":
		setLanguage(i18n.Parse(configLang))
	case detectChineseOS():
		setLanguage(i18n.LangChinese)
	default:
		setLanguage(i18n.LangEnglish)
	}
}

// setLanguage 同步设置命令行与诊断消息的语言
func setLanguage(lang i18n.Language) {
	i18n.SetLanguage(lang)
	if lang == i18n.LangChinese {
		msg = messagesZH
	} else {
		msg = messagesEN
	}
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	if runtime.GOOS == "windows" {
		if detectWindowsChinese() {
			return true
		}
		if strings.HasPrefix(strings.ToLower(getWindowsLocale()), "zh") {
			return true
		}
	}

	for _, v := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := strings.ToLower(os.Getenv(v)); val != "" {
			if strings.Contains(val, "zh") || strings.Contains(val, "chinese") {
				return true
			}
		}
	}
	return false
}

// Msg 获取当前消息对象
func Msg() *Messages {
	return &msg
}
