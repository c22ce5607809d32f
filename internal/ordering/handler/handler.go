package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/middleware"
	"voiceorder-service/internal/ordering/model"
	"voiceorder-service/internal/ordering/service"
	"voiceorder-service/internal/orders"
)

// Pricer: то, что нужно хендлерам от service.Engine.
type Pricer interface {
	Price(name string, quantity int, style string) model.Quote
	Order(reqs []model.LineItemRequest) model.OrderResult
	Suggest(query string, limit int) []string
	Options() service.Options
}

// Placer: оформление и чтение заказов (orders.Service).
type Placer interface {
	Place(ctx context.Context, c orders.Customer, items []model.LineItemRequest) (orders.Confirmation, error)
	Get(ctx context.Context, id string) (orders.Order, error)
}

// Reloader реализует catalog.Store.
type Reloader interface {
	Reload() (catalog.Stats, error)
}

type priceRequest struct {
	ItemName string   `json:"item_name"`
	Quantity Quantity `json:"quantity"`
	DishType string   `json:"dish_type"`
}

type priceResponse struct {
	Price       json.Number `json:"price"`
	UnitPrice   json.Number `json:"unit_price"`
	Item        string      `json:"item"`
	Resolved    string      `json:"resolved"`
	Entry       string      `json:"entry,omitempty"`
	Status      string      `json:"status"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

type quoteRequest struct {
	CartItems Cart `json:"cart_items"`
}

type placeRequest struct {
	orders.Customer
	CartItems Cart `json:"cart_items"`
}

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("rid", rid).Logger()
	}
	return logger
}

// Price обрабатывает POST /price: цена одной позиции (fuzzy + цена).
func Price(p Pricer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req priceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		status, body := priceItem(p, req)
		if err := writeJSON(w, status, body); err != nil {
			l := requestLogger(logger, r)
			l.Error().Err(err).Msg("write json")
		}
	}
}

func priceItem(p Pricer, req priceRequest) (int, any) {
	if strings.TrimSpace(req.ItemName) == "" {
		return http.StatusBadRequest, errorBody{Error: "item_name is required"}
	}
	if req.Quantity <= 0 {
		return http.StatusBadRequest, errorBody{Error: errBadQuantity.Error()}
	}
	if req.DishType == "" {
		req.DishType = "standard"
	}

	q := p.Price(req.ItemName, int(req.Quantity), req.DishType)
	resp := priceResponse{
		Price:     json.Number(q.Line.StringFixed(2)),
		UnitPrice: json.Number(q.Unit.StringFixed(2)),
		Item:      req.ItemName,
		Resolved:  q.Name,
		Entry:     q.Entry,
		Status:    string(q.Outcome),
	}
	if q.Outcome == model.OutcomeNotFound {
		resp.Suggestions = p.Suggest(req.ItemName, p.Options().Suggest)
	}
	return http.StatusOK, resp
}

// QuoteOrder обрабатывает POST /orders/quote: расчёт корзины без оформления.
func QuoteOrder(p Pricer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		status, body := quoteCart(p, req.CartItems)
		if err := writeJSON(w, status, body); err != nil {
			l := requestLogger(logger, r)
			l.Error().Err(err).Msg("write json")
		}
	}
}

func quoteCart(p Pricer, cart Cart) (int, any) {
	if err := validateCart(cart); err != nil {
		return http.StatusBadRequest, errorBody{Error: err.Error()}
	}
	return http.StatusOK, p.Order(cart)
}

// PlaceOrder обрабатывает POST /orders: контакты + корзина → сохранённый заказ.
func PlaceOrder(o Placer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req placeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		status, body := placeOrder(r.Context(), o, req, requestLogger(logger, r))
		_ = writeJSON(w, status, body)
	}
}

type placeFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func placeOrder(ctx context.Context, o Placer, req placeRequest, log zerolog.Logger) (int, any) {
	if err := validateCart(req.CartItems); err != nil {
		return http.StatusBadRequest, placeFailure{Message: err.Error()}
	}
	conf, err := o.Place(ctx, req.Customer, req.CartItems)
	switch {
	case errors.Is(err, orders.ErrInvalidPhone):
		return http.StatusBadRequest, placeFailure{Message: "The phone number is invalid. Please repeat your phone number"}
	case errors.Is(err, orders.ErrEmptyCart):
		return http.StatusBadRequest, placeFailure{Message: "The cart is empty"}
	case err != nil:
		log.Error().Err(err).Msg("place order")
		return http.StatusInternalServerError, placeFailure{Message: "ERROR, please try again"}
	}
	return http.StatusCreated, conf
}

// GetOrder обрабатывает GET /orders/{id}.
func GetOrder(o Placer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		ord, err := o.Get(r.Context(), id)
		switch {
		case errors.Is(err, orders.ErrNotFound):
			writeError(w, http.StatusNotFound, "order not found")
		case err != nil:
			l := requestLogger(logger, r)
			l.Error().Err(err).Str("order_id", id).Msg("get order")
			writeError(w, http.StatusInternalServerError, "internal")
		default:
			_ = writeJSON(w, http.StatusOK, ord)
		}
	}
}

// Suggest обрабатывает GET /catalog/suggest?q=...&limit=...
func Suggest(p Pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			writeError(w, http.StatusBadRequest, "q is required")
			return
		}
		limit := atoi(r.URL.Query().Get("limit"), p.Options().Suggest)
		if limit <= 0 || limit > 20 {
			limit = p.Options().Suggest
		}
		out := p.Suggest(q, limit)
		if out == nil {
			out = []string{}
		}
		_ = writeJSON(w, http.StatusOK, map[string]any{"query": q, "suggestions": out})
	}
}

// ReloadCatalog обрабатывает POST /catalog/reload. При ошибке остаётся старый каталог.
func ReloadCatalog(c Reloader, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)
		start := time.Now()
		st, err := c.Reload()
		if err != nil {
			log.Error().Err(err).Msg("catalog reload")
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Info().
			Int("entries", st.Entries).
			Int("aliases", st.Aliases).
			Int("duplicates", st.Duplicates).
			Dur("elapsed", time.Since(start)).
			Msg("catalog reloaded")
		_ = writeJSON(w, http.StatusOK, st)
	}
}
