package model

import "github.com/shopspring/decimal"

// Outcome: почему строка получила именно такую цену.
// Всё, кроме OutcomeFound, даёт нулевую цену.
type Outcome string

const (
	OutcomeFound           Outcome = "found"
	OutcomeNotFound        Outcome = "not_found"        // позиции нет в меню
	OutcomeUnpriced        Outcome = "unpriced"         // позиция есть, цены для стиля нет / цена битая
	OutcomeInvalidQuantity Outcome = "invalid_quantity" // quantity <= 0
)

// Source: из какого поля позиции взята цена.
type Source string

const (
	SourceNone       Source = ""
	SourcePrice      Source = "price"
	SourceOptions    Source = "price_options"
	SourceVariations Source = "variations"
)

// LineItemRequest: строка заказа как её прислал вызывающий.
type LineItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Style    string `json:"style"`
	Notes    string `json:"notes,omitempty"`
}

type Match struct {
	Input   string  `json:"input"`           // trim+lower от исходного
	Name    string  `json:"name"`            // alias при уверенном совпадении, иначе Input
	Alias   string  `json:"alias,omitempty"` // лучший кандидат (даже ниже порога)
	Score   float64 `json:"score"`
	Matched bool    `json:"matched"`
}

// Quote: цена одной строки.
type Quote struct {
	Name     string          `json:"name"`
	Entry    string          `json:"entry,omitempty"` // каноническое имя позиции
	Unit     decimal.Decimal `json:"unit_price"`
	Line     decimal.Decimal `json:"line_total"`
	Outcome  Outcome         `json:"status"`
	Source   Source          `json:"source,omitempty"`
	Style    string          `json:"style,omitempty"`
	Quantity int             `json:"quantity"`
}

// LineItemResult: строка в разбивке заказа.
type LineItemResult struct {
	Item        string          `json:"item"`     // как прислали
	Resolved    string          `json:"resolved"` // после fuzzy
	Entry       string          `json:"entry,omitempty"`
	Quantity    int             `json:"quantity"`
	Style       string          `json:"style"`
	Notes       string          `json:"notes"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Status      Outcome         `json:"status"`
	Score       float64         `json:"score"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// OrderResult: итог заказа; Breakdown в порядке входных строк.
type OrderResult struct {
	TotalPrice decimal.Decimal  `json:"total_price"`
	Breakdown  []LineItemResult `json:"breakdown"`
}

// Priced считает, сколько строк получили ненулевую цену.
func (r OrderResult) Priced() int {
	n := 0
	for _, l := range r.Breakdown {
		if l.Status == OutcomeFound {
			n++
		}
	}
	return n
}
