package service

import (
	"github.com/shopspring/decimal"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/ordering/model"
)

// Options: параметры расчёта заказа.
type Options struct {
	Threshold float64 // порог fuzzy, 0..100
	Suggest   int     // сколько подсказок давать для не найденных строк
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Suggest: 3}
}

// Aggregate сворачивает заказ: fuzzy → цена → разбивка и общий итог.
// Ничего не прерывает заказ: проблемная строка просто даёт ноль.
func Aggregate(idx *catalog.Index, reqs []model.LineItemRequest, opt Options) model.OrderResult {
	res := model.OrderResult{
		TotalPrice: decimal.Zero,
		Breakdown:  make([]model.LineItemResult, 0, len(reqs)),
	}
	aliases := idx.Aliases()

	for _, r := range reqs {
		m := Resolve(r.Name, aliases, opt.Threshold)
		q := Quote(idx, m.Name, r.Quantity, r.Style)

		line := model.LineItemResult{
			Item:      r.Name,
			Resolved:  m.Name,
			Entry:     q.Entry,
			Quantity:  r.Quantity,
			Style:     r.Style,
			Notes:     r.Notes,
			UnitPrice: q.Unit,
			LineTotal: q.Line,
			Status:    q.Outcome,
			Score:     m.Score,
		}
		if q.Outcome == model.OutcomeNotFound && opt.Suggest > 0 {
			line.Suggestions = idx.Suggest(r.Name, opt.Suggest)
		}

		res.TotalPrice = res.TotalPrice.Add(q.Line)
		res.Breakdown = append(res.Breakdown, line)
	}
	return res
}
