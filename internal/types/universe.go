package types

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// arrayCacheSize 数组类型驻留表容量
const arrayCacheSize = 4096

// ============================================================================
// Universe - 一次分析运行的类型空间
// ============================================================================
//
// 持有根类 object、内建根类的引用、泛型实例缓存、通配符缓存以及数组类型
// 驻留表。不同的分析运行使用各自的 Universe，或在运行之间调用 Reset。
//
// ============================================================================

// Universe 类型空间
type Universe struct {
	Object *ClassType // 根类

	// 内建根类，由内建环境填充
	Throwable         *ClassType
	Exception         *ClassType
	Error             *ClassType
	ErrorException    *ClassType
	Traversable       *ClassType
	Iterator          *ClassType
	IteratorAggregate *ClassType
	Countable         *ClassType
	ArrayAccess       *ClassType

	cache     map[string]*ClassType // 规范名 -> 泛型实例
	wildcards map[string]*ClassType
	arrays    *lru.Cache[string, *ArrayType]
	logger    *zap.Logger
}

// NewUniverse 创建类型空间
func NewUniverse(logger *zap.Logger) *Universe {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &Universe{logger: logger}
	u.Reset()
	return u
}

// Reset 清空缓存与内建引用，重新创建根类
func (u *Universe) Reset() {
	arrays, err := lru.New[string, *ArrayType](arrayCacheSize)
	if err != nil {
		panic(fmt.Sprintf("types: array cache: %v", err))
	}
	root := NewClass("object", noPos)
	root.root = true
	root.Builtin = true
	root.Complete = true

	*u = Universe{
		Object:    root,
		cache:     make(map[string]*ClassType),
		wildcards: make(map[string]*ClassType),
		arrays:    arrays,
		logger:    u.logger,
	}
}

// Logger 返回日志记录器
func (u *Universe) Logger() *zap.Logger { return u.logger }

// Array 数组类型工厂：结构相同的数组共享同一个实例
//
// 索引类型不是 Int、String、Unknown 时按 Mixed 处理。
func (u *Universe) Array(index, elem Type) *ArrayType {
	switch index {
	case Int, String, Mixed, Unknown:
	default:
		index = Mixed
	}
	if elem == nil {
		elem = Mixed
	}
	key := typeKey(index) + "|" + typeKey(elem)
	if a, ok := u.arrays.Get(key); ok {
		return a
	}
	a := &ArrayType{index: index, elem: elem}
	u.arrays.Add(key, a)
	return a
}

// Wildcard 返回通配符 ?、? extends bound 或 ? parent bound
func (u *Universe) Wildcard(bound *ClassType, lower bool) *ClassType {
	w := &ClassType{Name: "?", IsWildcard: true, Complete: true}
	if bound != nil {
		w.Bounds = []*ClassType{bound}
		w.LowerBound = lower
		if !lower {
			w.SetBounds(w.Bounds)
		}
	}
	key := mangle(w)
	if old, ok := u.wildcards[key]; ok {
		return old
	}
	u.wildcards[key] = w
	return w
}

// Instances 返回当前缓存的实例个数
func (u *Universe) Instances() int {
	return len(u.cache)
}
