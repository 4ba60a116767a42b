package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rvtraveller/phplint/internal/config"
	"github.com/rvtraveller/phplint/internal/diag"
	"github.com/rvtraveller/phplint/internal/globals"
	"github.com/rvtraveller/phplint/internal/log"
	"github.com/rvtraveller/phplint/internal/parser"
	"github.com/rvtraveller/phplint/internal/report"
	"github.com/rvtraveller/phplint/internal/token"
	"github.com/rvtraveller/phplint/internal/typedesc"
	"github.com/rvtraveller/phplint/internal/types"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	Version = "0.1.0"
)

// 全局语言参数
var globalLang string

func main() {
	// 预扫描全局参数 --lang 或 -lang
	args := preprocessArgs(os.Args[1:])
	InitLanguage(globalLang, "")

	if len(args) < 1 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]

	switch command {
	case "check":
		os.Exit(cmdCheck(args[1:]))
	case "types":
		os.Exit(cmdTypes(args[1:]))
	case "version", "-v", "--version":
		cmdVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		// 直接给出文件时等同于 check
		if !isFlag(args[0]) {
			os.Exit(cmdCheck(args))
		}
		fmt.Fprintf(os.Stderr, Msg().ErrUnknownCmd+"\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// preprocessArgs 预处理参数，提取全局 --lang 参数
func preprocessArgs(args []string) []string {
	var result []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--lang" || arg == "-lang" {
			if i+1 < len(args) {
				globalLang = args[i+1]
				i++
				continue
			}
		} else if strings.HasPrefix(arg, "--lang=") {
			globalLang = strings.TrimPrefix(arg, "--lang=")
			continue
		} else if strings.HasPrefix(arg, "-lang=") {
			globalLang = strings.TrimPrefix(arg, "-lang=")
			continue
		}
		result = append(result, arg)
	}
	return result
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

func printUsage() {
	m := Msg()
	fmt.Printf(m.VersionTitle+"\n\n", Version)
	fmt.Println(m.HelpUsage)
	fmt.Println("  phplint [--lang en|zh] <command> [options] [arguments]")
	fmt.Println()
	fmt.Println(m.HelpCommands)
	fmt.Printf("  check <path>...  %s\n", m.CmdCheck)
	fmt.Printf("  types <type>...  %s\n", m.CmdTypes)
	fmt.Printf("  version          %s\n", m.CmdVersion)
	fmt.Printf("  help             %s\n", m.CmdHelp)
	fmt.Println()
	fmt.Println(m.HelpOptions)
	fmt.Printf("  -config <file>   %s\n", m.OptConfig)
	fmt.Printf("  -format <fmt>    %s\n", m.OptFormat)
	fmt.Printf("  -color <mode>    %s\n", m.OptColor)
	fmt.Printf("  -notices         %s\n", m.OptNotices)
	fmt.Printf("  -unused          %s\n", m.OptUnused)
	fmt.Printf("  -log <level>     %s\n", m.OptLog)
	fmt.Printf("  --lang <en|zh>   %s\n", m.OptLang)
	fmt.Println()
	fmt.Println(m.HelpExamples)
	fmt.Println("  phplint check src/")
	fmt.Println("  phplint check -format json -unused=false index.php")
	fmt.Println("  phplint types 'array[string]int'")
	fmt.Println("  phplint --lang zh help")
}

// cmdCheck 分析源文件，返回退出码：有错误或致命错误时为 1
func cmdCheck(args []string) int {
	m := Msg()
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	configPath := fs.String("config", "", m.OptConfig)
	format := fs.String("format", "", m.OptFormat)
	colorMode := fs.String("color", "", m.OptColor)
	notices := fs.Bool("notices", true, m.OptNotices)
	unused := fs.Bool("unused", true, m.OptUnused)
	logLevel := fs.String("log", "", m.OptLog)

	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " phplint check [options] <path>...")
		fmt.Println()
		fmt.Println(m.HelpOptions)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 1 {
		fs.Usage()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, m.ErrNoInput)
		return 1
	}

	cfg, err := loadConfig(*configPath, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, m.ErrConfig+"\n", err)
		return 1
	}

	// 命令行参数覆盖配置文件
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Report.Format = *format
		case "color":
			cfg.Report.Color = *colorMode
		case "notices":
			cfg.Analysis.Notices = *notices
		case "unused":
			cfg.Report.Unused = *unused
		case "log":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, m.ErrConfig+"\n", err)
		return 1
	}
	if globalLang == "" {
		InitLanguage("", cfg.I18n.Lang)
	}

	logger, err := log.New(log.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, Msg().ErrLogger+"\n", err)
		return 1
	}
	defer logger.Sync()

	r := diag.NewReporter()
	r.Notices = cfg.Analysis.Notices
	g := globals.New(cfg, r, logger)

	if err := parser.NewPackageParser(g).ParseFiles(fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, Msg().ErrAnalysis+"\n", err)
		return 1
	}
	if cfg.Report.Unused {
		report.Unused(g)
	}

	if err := writeReport(cfg, g, r); err != nil {
		fmt.Fprintf(os.Stderr, Msg().ErrOutput+"\n", err)
		return 1
	}
	logger.Info("check finished",
		zap.Int("errors", r.Count(diag.LevelError)),
		zap.Int("fatal", r.Count(diag.LevelFatal)),
	)
	if r.HasErrors() {
		return 1
	}
	return 0
}

// loadConfig 加载显式指定的配置文件，否则从第一个输入路径向上查找
func loadConfig(path, firstInput string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, _, err := config.LoadFor(firstInput)
	return cfg, err
}

// jsonReport --format json 的输出
type jsonReport struct {
	Run     string                              `json:"run"`
	Summary string                              `json:"summary"`
	Files   []protocol.PublishDiagnosticsParams `json:"files"`
}

// writeReport 按配置的格式输出诊断与摘要
func writeReport(cfg *config.Config, g *globals.Globals, r *diag.Reporter) error {
	if cfg.Report.Format == "json" {
		out := jsonReport{
			Run:     g.RunID,
			Summary: report.Summary(g, r),
			Files:   diag.ToLSP(r.Diagnostics()),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	f := diag.NewFormatter(diag.ColorEnabled(cfg.Report.Color, os.Stdout))
	if err := f.WriteAll(os.Stdout, r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, report.Summary(g, r))
	return err
}

// cmdTypes 解析类型表达式并打印规范形式，类名按内建环境解析
func cmdTypes(args []string) int {
	m := Msg()
	fs := flag.NewFlagSet("types", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Println(m.HelpUsage + " phplint types <type>...")
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	r := diag.NewReporter()
	g := globals.New(nil, r, nil)
	td := typedesc.New(g.U, typedesc.ResolverFunc(func(name string, pos token.Position) *types.ClassType {
		return g.ResolveClass(name, pos, nil)
	}), r)

	status := 0
	for _, text := range fs.Args() {
		r.Clear()
		t, err := td.ParseType(text)
		for _, d := range r.Diagnostics() {
			fmt.Fprintf(os.Stderr, "%s[%s]: %s\n", d.Level, d.Code, d.Message)
		}
		if err != nil || r.HasErrors() {
			if err != nil {
				fmt.Fprintf(os.Stderr, m.ErrBadType+"\n", err)
			}
			status = 1
			continue
		}
		fmt.Printf("%s: %s\n", text, t)
	}
	return status
}

// cmdVersion 显示版本信息
func cmdVersion() {
	m := Msg()
	fmt.Printf(m.VersionTitle+"\n", Version)
	fmt.Println(m.VersionDesc)
}
