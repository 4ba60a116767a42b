// Package loader 负责源文件的发现与路径解析：目录展开、require 路径、自动加载映射
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultExtension 默认源文件后缀
const DefaultExtension = ".php"

// Loader 源文件加载器
type Loader struct {
	extensions  []string        // 目录展开时接受的后缀
	loadedFiles map[string]bool // 规范化路径 -> 是否已读取
}

// New 创建加载器；extensions 为空时使用默认后缀
func New(extensions []string) *Loader {
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	return &Loader{
		extensions:  extensions,
		loadedFiles: make(map[string]bool),
	}
}

// HasSourceExt 判断文件后缀是否为源文件后缀（大小写不敏感）
func (l *Loader) HasSourceExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range l.extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Expand 展开命令行给出的路径：文件原样保留，目录递归收集源文件
//
// 结果按给出的顺序排列，同一目录下的文件按字典序；重复的路径只保留第一次。
func (l *Loader) Expand(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		key := Normalize(p)
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				// 跳过隐藏目录
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if l.HasSourceExt(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", p, err)
		}
	}
	return out, nil
}

// LoadFile 加载源文件内容
func (l *Loader) LoadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	l.loadedFiles[Normalize(path)] = true
	return string(content), nil
}

// IsLoaded 检查文件是否已读取
func (l *Loader) IsLoaded(path string) bool {
	return l.loadedFiles[Normalize(path)]
}

// Loaded 已读取的文件数
func (l *Loader) Loaded() int {
	return len(l.loadedFiles)
}

// ResolveRequire 解析 require/include 的目标路径
//
// 相对路径相对于发起引入的源文件所在目录。
func ResolveRequire(fromFile, target string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("empty path")
	}
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(fromFile), path)
	}
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	return path, nil
}

// AutoloadPath 将类名映射为自动加载的文件路径：A\B\C -> baseDir/A/B/C.ext
func AutoloadPath(baseDir, className, ext string) string {
	className = strings.TrimPrefix(className, `\`)
	parts := strings.Split(className, `\`)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(baseDir, filepath.Join(parts...)+ext)
}

// Normalize 规范化路径，作为源单元的唯一键
func Normalize(path string) string {
	// 获取绝对路径
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	cleanPath := filepath.Clean(absPath)
	// Windows 不区分大小写
	if runtime.GOOS == "windows" {
		return strings.ToLower(cleanPath)
	}
	return cleanPath
}
