package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/ordering/model"
	"voiceorder-service/internal/utils"
)

// Quote считает цену строки по точному имени (после fuzzy).
// Порядок источников цены:
//  1. price (стиль игнорируется)
//  2. price_options[style]
//  3. первая variations, чей type содержит style
//
// Ничего не подошло или цена битая → ноль с Outcome.
func Quote(idx *catalog.Index, name string, quantity int, style string) model.Quote {
	q := model.Quote{
		Name:     strings.ToLower(strings.TrimSpace(name)),
		Style:    strings.ToLower(strings.TrimSpace(style)),
		Quantity: quantity,
		Unit:     decimal.Zero,
		Line:     decimal.Zero,
	}

	e, ok := idx.Lookup(q.Name)
	if !ok {
		q.Outcome = model.OutcomeNotFound
		return q
	}
	q.Entry = e.Name

	raw, src := priceSource(e, q.Style)
	unit, ok := utils.ParsePrice(raw)
	if src == model.SourceNone || !ok {
		q.Outcome = model.OutcomeUnpriced
		return q
	}
	q.Source = src

	if quantity <= 0 {
		q.Outcome = model.OutcomeInvalidQuantity
		return q
	}

	q.Unit = unit
	q.Line = unit.Mul(decimal.NewFromInt(int64(quantity)))
	q.Outcome = model.OutcomeFound
	return q
}

// PriceFor: итог по строке (цена × количество), как ждут вызывающие.
func PriceFor(idx *catalog.Index, name string, quantity int, style string) decimal.Decimal {
	return Quote(idx, name, quantity, style).Line
}

func priceSource(e *catalog.Entry, style string) (string, model.Source) {
	// (1) плоская цена
	if !e.Price.Empty() {
		return e.Price.String(), model.SourcePrice
	}
	// (2) таблица цен по стилю
	if len(e.PriceOptions) > 0 {
		if p, ok := e.PriceOptions[style]; ok {
			return p.String(), model.SourceOptions
		}
	}
	// (3) подварианты: "garlic" ⊂ "Garlic Naan"
	if style != "" {
		for _, v := range e.Variations {
			if strings.Contains(strings.ToLower(v.Type), style) {
				return v.Price.String(), model.SourceVariations
			}
		}
	}
	return "", model.SourceNone
}
