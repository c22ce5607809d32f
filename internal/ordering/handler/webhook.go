package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Webhook обрабатывает POST /webhook: голосовой агент присылает аргументы вызова
// инструмента, инструмент определяем по набору ключей:
//
//	cart_items без first_name  → расчёт корзины
//	address_txt                → проверка адреса (не поддерживается)
//	first_name + cart_items    → оформление заказа
//	item_name + quantity       → цена позиции
func Webhook(p Pricer, o Placer, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(logger, r)

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body: "+err.Error())
			return
		}
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(raw, &keys); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		_, hasCart := keys["cart_items"]
		_, hasFirst := keys["first_name"]
		_, hasAddr := keys["address_txt"]
		_, hasItem := keys["item_name"]
		_, hasQty := keys["quantity"]

		var (
			tool   string
			status int
			body   any
		)
		switch {
		case hasCart && !hasFirst:
			tool = "calculate_order"
			var req quoteRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				status, body = http.StatusBadRequest, errorBody{Error: err.Error()}
				break
			}
			status, body = quoteCart(p, req.CartItems)
		case hasAddr:
			tool = "validate_delivery_address"
			status, body = http.StatusNotImplemented, errorBody{Error: "address validation is not available"}
		case hasFirst && hasCart:
			tool = "customer_details"
			var req placeRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				status, body = http.StatusBadRequest, placeFailure{Message: err.Error()}
				break
			}
			status, body = placeOrder(r.Context(), o, req, log)
		case hasItem && hasQty:
			tool = "get_price"
			var req priceRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				status, body = http.StatusBadRequest, errorBody{Error: err.Error()}
				break
			}
			status, body = priceItem(p, req)
		default:
			log.Warn().Interface("keys", keyNames(keys)).Msg("unknown tool signature")
			writeError(w, http.StatusBadRequest, "Could not identify tool from arguments")
			return
		}

		log.Info().Str("tool", tool).Int("status", status).Msg("webhook")
		if err := writeJSON(w, status, body); err != nil {
			log.Error().Err(err).Msg("write json")
		}
	}
}

func keyNames(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
