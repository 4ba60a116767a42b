package main

// Messages 命令行界面的消息
type Messages struct {
	// 版本信息
	VersionTitle string
	VersionDesc  string

	// 帮助信息
	HelpUsage    string
	HelpCommands string
	HelpOptions  string
	HelpExamples string

	// 命令描述
	CmdCheck   string
	CmdTypes   string
	CmdVersion string
	CmdHelp    string

	// 选项
	OptConfig  string
	OptFormat  string
	OptColor   string
	OptNotices string
	OptUnused  string
	OptLog     string
	OptLang    string

	// 错误信息
	ErrNoInput    string
	ErrUnknownCmd string
	ErrConfig     string
	ErrLogger     string
	ErrAnalysis   string
	ErrOutput     string
	ErrBadType    string
}

// 英文消息
var messagesEN = Messages{
	VersionTitle: "PHPLint v%s",
	VersionDesc:  "A static analyzer for PHP with a strict type model, generics and checked exceptions",

	HelpUsage:    "Usage:",
	HelpCommands: "Commands:",
	HelpOptions:  "Options:",
	HelpExamples: "Examples:",

	CmdCheck:   "Analyze source files and directories",
	CmdTypes:   "Parse and print a type expression",
	CmdVersion: "Show version information",
	CmdHelp:    "Show this help message",

	OptConfig:  "Configuration file (default: nearest phplint.toml)",
	OptFormat:  "Output format: text or json",
	OptColor:   "Colored output: auto, always or never",
	OptNotices: "Report notices",
	OptUnused:  "Report unused private symbols and source units",
	OptLog:     "Log level: debug, info, warn or error",
	OptLang:    "Set language (en/zh)",

	ErrNoInput:    "Error: no input files specified",
	ErrUnknownCmd: "Unknown command: %s",
	ErrConfig:     "Error loading configuration: %v",
	ErrLogger:     "Error creating logger: %v",
	ErrAnalysis:   "Error: %v",
	ErrOutput:     "Error writing output: %v",
	ErrBadType:    "Invalid type: %v",
}

// 中文消息
var messagesZH = Messages{
	VersionTitle: "PHPLint v%s",
	VersionDesc:  "PHP 静态分析器：严格的类型模型、泛型与受检异常",

	HelpUsage:    "用法:",
	HelpCommands: "命令:",
	HelpOptions:  "选项:",
	HelpExamples: "示例:",

	CmdCheck:   "分析源文件与目录",
	CmdTypes:   "解析并打印类型表达式",
	CmdVersion: "显示版本信息",
	CmdHelp:    "显示帮助信息",

	OptConfig:  "配置文件（默认：最近的 phplint.toml）",
	OptFormat:  "输出格式：text 或 json",
	OptColor:   "彩色输出：auto、always 或 never",
	OptNotices: "报告提示",
	OptUnused:  "报告未使用的私有符号与源单元",
	OptLog:     "日志级别：debug、info、warn 或 error",
	OptLang:    "设置语言 (en/zh)",

	ErrNoInput:    "错误: 未指定输入文件",
	ErrUnknownCmd: "未知命令: %s",
	ErrConfig:     "加载配置错误: %v",
	ErrLogger:     "创建日志记录器错误: %v",
	ErrAnalysis:   "错误: %v",
	ErrOutput:     "输出错误: %v",
	ErrBadType:    "无效的类型: %v",
}
