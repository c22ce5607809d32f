package match

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Trigrams возвращает множество триграмм строки с пробелами по краям.
func Trigrams(s string) map[string]struct{} {
	m := make(map[string]struct{})
	if s == "" {
		return m
	}
	p := " " + s + " "
	r := []rune(p)
	if len(r) < 3 {
		m[p] = struct{}{}
		return m
	}
	for i := 0; i <= len(r)-3; i++ {
		m[string(r[i:i+3])] = struct{}{}
	}
	return m
}

// Phonetic: коды Double Metaphone всех токенов (для голосового ввода:
// "gobee" и "gobi" дают один код).
func Phonetic(folded string) map[string]struct{} {
	codes := make(map[string]struct{})
	for _, t := range strings.Fields(folded) {
		p, s := matchr.DoubleMetaphone(t)
		if p != "" {
			codes[p] = struct{}{}
		}
		if s != "" {
			codes[s] = struct{}{}
		}
	}
	return codes
}

// SoundsAlike проверяет, есть ли общий фонетический код.
func SoundsAlike(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for c := range a {
		if _, ok := b[c]; ok {
			return true
		}
	}
	return false
}
