package service

import (
	"github.com/rs/zerolog"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/ordering/model"
)

// Snapshotter отдаёт текущий снимок каталога (catalog.Store).
type Snapshotter interface {
	Snapshot() *catalog.Index
}

// Engine связывает каталог, настройки и логирование.
// Каждый вызов берёт один снимок, весь заказ считается по одному меню.
type Engine struct {
	src Snapshotter
	opt Options
	log zerolog.Logger
}

func NewEngine(src Snapshotter, opt Options, logger zerolog.Logger) *Engine {
	return &Engine{
		src: src,
		opt: opt,
		log: logger.With().Str("component", "pricing").Logger(),
	}
}

func (e *Engine) Options() Options { return e.opt }

// Resolve резолвит одно имя с логом выбранного совпадения.
func (e *Engine) Resolve(name string) model.Match {
	m := Resolve(name, e.src.Snapshot().Aliases(), e.opt.Threshold)
	e.logMatch(m)
	return m
}

// Price: fuzzy + цена одной строки.
func (e *Engine) Price(name string, quantity int, style string) model.Quote {
	idx := e.src.Snapshot()
	m := Resolve(name, idx.Aliases(), e.opt.Threshold)
	e.logMatch(m)

	q := Quote(idx, m.Name, quantity, style)
	if q.Outcome != model.OutcomeFound {
		e.log.Warn().
			Str("item", name).
			Str("resolved", m.Name).
			Str("style", q.Style).
			Int("qty", quantity).
			Str("status", string(q.Outcome)).
			Msg("zero price")
	}
	return q
}

func (e *Engine) Suggest(query string, limit int) []string {
	return e.src.Snapshot().Suggest(query, limit)
}

// Order считает заказ целиком.
func (e *Engine) Order(reqs []model.LineItemRequest) model.OrderResult {
	res := Aggregate(e.src.Snapshot(), reqs, e.opt)

	for _, l := range res.Breakdown {
		ev := e.log.Debug()
		if l.Status != model.OutcomeFound {
			ev = e.log.Warn()
		}
		ev.Str("item", l.Item).
			Str("resolved", l.Resolved).
			Float64("score", l.Score).
			Int("qty", l.Quantity).
			Str("style", l.Style).
			Str("line_total", l.LineTotal.StringFixed(2)).
			Str("status", string(l.Status)).
			Msg("order line")
	}
	e.log.Info().
		Int("lines", len(res.Breakdown)).
		Int("priced", res.Priced()).
		Str("total", res.TotalPrice.StringFixed(2)).
		Msg("order priced")
	return res
}

func (e *Engine) logMatch(m model.Match) {
	if m.Matched {
		e.log.Debug().Str("input", m.Input).Str("alias", m.Alias).Float64("score", m.Score).Msg("match")
		return
	}
	e.log.Info().Str("input", m.Input).Str("best", m.Alias).Float64("score", m.Score).Msg("no confident match")
}
