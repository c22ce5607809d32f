// Package match scores how close two item names are on a 0..100 scale.
package match

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var punct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// Fold приводит строку к форме для сравнения:
// нижний регистр, без диакритики ("Crème brûlée" → "creme brulee"),
// пунктуация → пробел, пробелы схлопнуты.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = punct.ReplaceAllString(s, " ")
	return collapseSpaces(s)
}

// Лексикографическая сортировка токенов
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
