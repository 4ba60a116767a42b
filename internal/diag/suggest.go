package diag

import "strings"

// FindSimilar 在候选名称中查找编辑距离不超过 maxDistance 的最相近者
func FindSimilar(name string, candidates []string, maxDistance int) string {
	best := ""
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if d := levenshtein(name, c); d < bestDistance {
			bestDistance = d
			best = c
		}
	}
	if bestDistance <= maxDistance {
		return best
	}
	return ""
}

// levenshtein 计算忽略大小写的编辑距离
func levenshtein(s1, s2 string) int {
	a := []rune(strings.ToLower(s1))
	b := []rune(strings.ToLower(s2))
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
