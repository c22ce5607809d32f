package catalog

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Variation: подвариант блюда со своей ценой ("garlic" naan).
type Variation struct {
	Type  string    `json:"type" yaml:"type"`
	Price PriceText `json:"price" yaml:"price"`
}

// Entry: позиция меню. Источник цены по приоритету:
// Price → PriceOptions[style] → Variations[type ⊇ style].
type Entry struct {
	Section         string               `json:"section,omitempty" yaml:"section,omitempty"`
	Name            string               `json:"name" yaml:"name"`
	VoiceVariations []string             `json:"voice_variations,omitempty" yaml:"voice_variations,omitempty"`
	Price           PriceText            `json:"price,omitempty" yaml:"price,omitempty"`
	PriceOptions    map[string]PriceText `json:"price_options,omitempty" yaml:"price_options,omitempty"`
	Variations      []Variation          `json:"variations,omitempty" yaml:"variations,omitempty"`
}

// Section: раздел меню в порядке документа.
type Section struct {
	Name    string
	Entries []Entry
	Skipped int // записи, которые не удалось разобрать как Entry
}

// Document хранит сырой каталог, разделы в исходном порядке.
// Разделы, значение которых не список, сюда не попадают.
type Document struct {
	Sections        []Section
	SkippedSections int
}

// PriceText: цена как текст ("$5.99", "$12.99 (for 2)").
// Числа в JSON/YAML тоже принимаются.
type PriceText string

func (p *PriceText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PriceText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = PriceText(n.String())
	return nil
}

func (p *PriceText) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"price: expected scalar"}}
	}
	if n.Tag == "!!null" {
		*p = ""
		return nil
	}
	*p = PriceText(n.Value)
	return nil
}

func (p PriceText) String() string { return strings.TrimSpace(string(p)) }

func (p PriceText) Empty() bool { return p.String() == "" }
