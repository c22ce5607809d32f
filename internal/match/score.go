package match

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Score: взвешенная схожесть двух строк (0..100) по сложенной форме.
// Берётся максимум из полного ratio, token-sort/token-set (×0.95) и,
// если одна строка заметно длиннее, partial ratio (×0.9).
func Score(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)
	if fa == fb {
		return 100
	}
	if fa == "" || fb == "" {
		return 0
	}

	best := Ratio(fa, fb)
	la, lb := len([]rune(fa)), len([]rune(fb))
	if la > lb {
		la, lb = lb, la
	}
	lenRatio := float64(lb) / float64(la)

	if lenRatio < 1.5 {
		best = max(best, TokenSortRatio(fa, fb)*0.95, TokenSetRatio(fa, fb)*0.95)
		return round1(best)
	}

	scale := 0.9
	if lenRatio >= 8 {
		scale = 0.6
	}
	best = max(best,
		PartialRatio(fa, fb)*scale,
		TokenSortRatio(fa, fb)*0.95*scale,
		TokenSetRatio(fa, fb)*0.95*scale,
	)
	return round1(best)
}

// Ratio: нормированная схожесть Дамерау-Левенштейна в [0..100].
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	d := matchr.DamerauLevenshtein(a, b)
	m := len([]rune(a))
	if mb := len([]rune(b)); mb > m {
		m = mb
	}
	return 100 * (1 - float64(d)/float64(m))
}

// PartialRatio: лучшее совпадение короткой строки с окном той же длины в длинной.
func PartialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return 0
	}
	short := string(ra)
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		if s := Ratio(short, string(rb[i:i+len(ra)])); s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio устойчив к порядку слов: "manchurian gobi" == "gobi manchurian".
func TokenSortRatio(a, b string) float64 {
	return Ratio(tokenSort(a), tokenSort(b))
}

// TokenSetRatio сравнивает пересечение токенов с остатками каждой строки.
func TokenSetRatio(a, b string) float64 {
	sa, sb := tokenSet(a), tokenSet(b)
	var inter, onlyA, onlyB []string
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter = append(inter, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range sb {
		if _, ok := sa[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	t0 := strings.Join(inter, " ")
	t1 := strings.TrimSpace(t0 + " " + strings.Join(onlyA, " "))
	t2 := strings.TrimSpace(t0 + " " + strings.Join(onlyB, " "))

	best := Ratio(t1, t2)
	if t0 != "" {
		best = max(best, Ratio(t0, t1), Ratio(t0, t2))
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		m[t] = struct{}{}
	}
	return m
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
