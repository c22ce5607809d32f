package catalog

import (
	"sort"
	"strings"

	"voiceorder-service/internal/match"
)

// Index неизменяем после Build. alias (lower) → позиция.
// После Build не меняется, читать можно из любого числа горутин.
type Index struct {
	entries []*Entry
	aliases []string                       // порядок регистрации, без дублей
	owners  map[string]*Entry              // первый зарегистрировавший владелец
	inv     map[string]map[string]struct{} // trigram → set(alias)
	sounds  map[string]map[string]struct{} // alias → коды Double Metaphone
	stats   Stats
}

// Stats описывает, что вошло в индекс.
type Stats struct {
	Sections        int `json:"sections"`
	Entries         int `json:"entries"`
	Aliases         int `json:"aliases"`
	Duplicates      int `json:"duplicates"`       // alias уже занят другой позицией
	Unnamed         int `json:"unnamed"`          // позиции без name
	SkippedRecords  int `json:"skipped_records"`  // записи, не похожие на позицию
	SkippedSections int `json:"skipped_sections"` // разделы не-списки
}

// Build строит индекс. Ошибок нет: кривые записи просто не индексируются.
func Build(doc Document) *Index {
	idx := &Index{
		owners: make(map[string]*Entry),
		inv:    make(map[string]map[string]struct{}),
		sounds: make(map[string]map[string]struct{}),
	}
	idx.stats.Sections = len(doc.Sections)
	idx.stats.SkippedSections = doc.SkippedSections

	for _, sec := range doc.Sections {
		idx.stats.SkippedRecords += sec.Skipped
		for i := range sec.Entries {
			e := cloneEntry(sec.Entries[i], sec.Name)
			idx.entries = append(idx.entries, e)

			if name := strings.ToLower(strings.TrimSpace(e.Name)); name != "" {
				idx.register(name, e)
			} else {
				idx.stats.Unnamed++
			}
			for _, v := range e.VoiceVariations {
				if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
					idx.register(v, e)
				}
			}
		}
	}
	idx.stats.Entries = len(idx.entries)
	idx.stats.Aliases = len(idx.aliases)
	return idx
}

func (idx *Index) register(alias string, e *Entry) {
	if owner, ok := idx.owners[alias]; ok {
		if owner != e {
			idx.stats.Duplicates++
		}
		return
	}
	idx.owners[alias] = e
	idx.aliases = append(idx.aliases, alias)

	folded := match.Fold(alias)
	for g := range match.Trigrams(folded) {
		bucket, ok := idx.inv[g]
		if !ok {
			bucket = make(map[string]struct{})
			idx.inv[g] = bucket
		}
		bucket[alias] = struct{}{}
	}
	idx.sounds[alias] = match.Phonetic(folded)
}

// копия с нормализованными ключами price_options
func cloneEntry(src Entry, section string) *Entry {
	e := src
	if e.Section == "" {
		e.Section = section
	}
	e.VoiceVariations = append([]string(nil), src.VoiceVariations...)
	e.Variations = append([]Variation(nil), src.Variations...)
	if len(src.PriceOptions) > 0 {
		e.PriceOptions = make(map[string]PriceText, len(src.PriceOptions))
		for k, v := range src.PriceOptions {
			k = strings.ToLower(strings.TrimSpace(k))
			if cur, dup := e.PriceOptions[k]; dup && !cur.Empty() {
				continue
			}
			e.PriceOptions[k] = v
		}
	}
	return &e
}

// позиции в порядке документа
func (idx *Index) Entries() []*Entry { return idx.entries }

// Aliases отдаёт плоский список alias для fuzzy-резолвера.
func (idx *Index) Aliases() []string { return idx.aliases }

func (idx *Index) Len() int { return len(idx.entries) }

func (idx *Index) Stats() Stats { return idx.stats }

// Owner: позиция, которой принадлежит alias (точно, в нижнем регистре).
func (idx *Index) Owner(alias string) (*Entry, bool) {
	e, ok := idx.owners[alias]
	return e, ok
}

// Lookup: точный поиск без учёта регистра по name и voice_variations.
// Эквивалентно линейному проходу по меню: первая позиция в порядке документа.
func (idx *Index) Lookup(name string) (*Entry, bool) {
	return idx.Owner(strings.ToLower(strings.TrimSpace(name)))
}

// Suggest ищет "возможно, вы имели в виду" среди кандидатов по общим триграммам,
// ранжированные по схожести, при равенстве выше те, что звучат похоже.
func (idx *Index) Suggest(query string, limit int) []string {
	const floor = 50.0

	folded := match.Fold(query)
	if folded == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	for g := range match.Trigrams(folded) {
		for a := range idx.inv[g] {
			seen[a] = struct{}{}
		}
	}

	type cand struct {
		alias string
		score float64
		sound bool
		order int
	}
	order := make(map[string]int, len(idx.aliases))
	for i, a := range idx.aliases {
		order[a] = i
	}
	qs := match.Phonetic(folded)

	cands := make([]cand, 0, len(seen))
	for a := range seen {
		s := match.Score(folded, a)
		if s < floor {
			continue
		}
		cands = append(cands, cand{alias: a, score: s, sound: match.SoundsAlike(qs, idx.sounds[a]), order: order[a]})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		if cands[i].sound != cands[j].sound {
			return cands[i].sound
		}
		return cands[i].order < cands[j].order
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.alias
	}
	return out
}
