package types

import "strings"

// ExceptionSet 签名可能抛出的异常集合
//
// 集合保持最小：已被某个成员（或其父类）覆盖的异常不会重复加入。
type ExceptionSet struct {
	list []*ClassType
}

// Add 加入异常类
func (s *ExceptionSet) Add(c *ClassType) {
	for _, e := range s.list {
		if c.IsSubclassOf(e) {
			return
		}
	}
	kept := s.list[:0]
	for _, e := range s.list {
		if !e.IsSubclassOf(c) {
			kept = append(kept, e)
		}
	}
	s.list = append(kept, c)
}

// Len 元素个数
func (s *ExceptionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.list)
}

// List 按加入顺序返回元素
func (s *ExceptionSet) List() []*ClassType {
	if s == nil {
		return nil
	}
	return s.list
}

// Covers 集合中是否有 c 自身或其父类
func (s *ExceptionSet) Covers(c *ClassType) bool {
	for _, e := range s.List() {
		if c.IsSubclassOf(e) {
			return true
		}
	}
	return false
}

// NotCoveredBy 返回本集合中未被 other 覆盖的受检异常
func (s *ExceptionSet) NotCoveredBy(other *ExceptionSet) []*ClassType {
	var out []*ClassType
	for _, e := range s.List() {
		if e.IsChecked() && !other.Covers(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExceptionSet) String() string {
	return joinClasses(s.List())
}

func joinClasses(list []*ClassType) string {
	names := make([]string, len(list))
	for i, c := range list {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
