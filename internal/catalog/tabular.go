package catalog

import (
	"regexp"
	"strings"

	"voiceorder-service/internal/fileio"
)

// Колонки табличного меню; альтернативы через "|".
const (
	colSection = "section|category|раздел"
	colName    = "name|item|dish|наименование"
	colVoice   = "voice variations|voice_variations|aliases|variants"
	colPrice   = "price|цена"
	colOptions = "price options|price_options|options"
	colTypes   = "variations|types"
)

const defaultSection = "menu"

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// FromSheet строит Document из таблицы: одна строка, одна позиция.
// Порядок строк сохраняется, раздел без имени → "menu".
func FromSheet(sh fileio.Sheet) Document {
	cols := resolveKeys(sh.Header, colSection, colName, colVoice, colPrice, colOptions, colTypes)
	keys := struct{ section, name, voice, price, options, types string }{
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
	}

	var doc Document
	pos := map[string]int{}
	for _, rec := range sh.Rows {
		sec := defaultSection
		if keys.section != "" && rec[keys.section] != "" {
			sec = rec[keys.section]
		}
		i, ok := pos[sec]
		if !ok {
			i = len(doc.Sections)
			pos[sec] = i
			doc.Sections = append(doc.Sections, Section{Name: sec})
		}

		e := Entry{
			Name:            field(rec, keys.name),
			VoiceVariations: splitList(field(rec, keys.voice)),
			Price:           PriceText(field(rec, keys.price)),
		}
		for _, kv := range splitPairs(field(rec, keys.options)) {
			if e.PriceOptions == nil {
				e.PriceOptions = map[string]PriceText{}
			}
			e.PriceOptions[kv[0]] = PriceText(kv[1])
		}
		for _, kv := range splitPairs(field(rec, keys.types)) {
			e.Variations = append(e.Variations, Variation{Type: kv[0], Price: PriceText(kv[1])})
		}
		doc.Sections[i].Entries = append(doc.Sections[i].Entries, e)
	}
	return doc
}

func field(rec map[string]string, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimSpace(rec[key])
}

// "gobi 65 | gobi sixty five" → [gobi 65, gobi sixty five]
func splitList(s string) []string {
	var out []string
	for _, p := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ';' }) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// "gravy=$7.99; dry=$6.99" → [[gravy $7.99] [dry $6.99]]
// Пары делим по ';' или '|', а если их нет, по ','. Запятая внутри цены
// ("large=$1,299.00") допустима: кусок без '=' и ':' приклеивается к предыдущему.
func splitPairs(s string) [][2]string {
	if s == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' })
	if !strings.ContainsAny(s, ";|") {
		parts = nil
		for _, p := range strings.Split(s, ",") {
			if len(parts) > 0 && !strings.ContainsAny(p, "=:") {
				parts[len(parts)-1] += "," + p
				continue
			}
			parts = append(parts, p)
		}
	}

	var out [][2]string
	for _, p := range parts {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			k, v, ok = strings.Cut(p, ":")
		}
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		out = append(out, [2]string{k, strings.TrimSpace(v)})
	}
	return out
}

// нормализуем имя колонки: нижний регистр, служебные символы → пробел
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ищем реальные колонки по желаемым именам (альтернативы через "|").
// Первый проход: точное совпадение после нормализации, второй, вхождение
// ("item name" содержит "name") среди ещё не занятых колонок.
// Пустая строка: колонки нет.
func resolveKeys(header []string, wants ...string) []string {
	out := make([]string, len(wants))
	taken := map[string]bool{}
	alts := make([][]string, len(wants))
	for i, want := range wants {
		for _, a := range strings.Split(want, "|") {
			if a = normHeaderKey(a); a != "" {
				alts[i] = append(alts[i], a)
			}
		}
	}

	for i := range wants {
	exact:
		for _, a := range alts[i] {
			for _, h := range header {
				if !taken[h] && normHeaderKey(h) == a {
					out[i], taken[h] = h, true
					break exact
				}
			}
		}
	}

	for i := range wants {
		if out[i] != "" {
			continue
		}
		bestKey, bestScore := "", 0
		for _, h := range header {
			if taken[h] {
				continue
			}
			nh := normHeaderKey(h)
			for _, a := range alts[i] {
				if strings.Contains(nh, a) && len(a) > bestScore {
					bestKey, bestScore = h, len(a)
				}
			}
		}
		if bestKey != "" {
			out[i], taken[bestKey] = bestKey, true
		}
	}
	return out
}
