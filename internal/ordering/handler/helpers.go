package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"voiceorder-service/internal/ordering/model"
	"voiceorder-service/internal/utils"
)

var errBadQuantity = errors.New("quantity must be a positive integer")

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, errorBody{Error: msg})
}

// Quantity принимает 3, 3.0 и "3", голосовой агент шлёт что угодно.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f != float64(int(f)) {
		return fmt.Errorf("quantity %q: %w", s, errBadQuantity)
	}
	*q = Quantity(int(f))
	return nil
}

// Cart: cart_items в одном из двух видов:
//
//	{"Naan": [3, "garlic", "extra crispy"], ...}   (порядок ключей сохраняется)
//	[{"name": "Naan", "quantity": 3, "style": "garlic", "notes": "..."}]
type Cart []model.LineItemRequest

type cartLine struct {
	Name     string   `json:"name"`
	Item     string   `json:"item_name"`
	Quantity Quantity `json:"quantity"`
	Style    string   `json:"style"`
	DishType string   `json:"dish_type"`
	Notes    string   `json:"notes"`
}

func (c *Cart) UnmarshalJSON(b []byte) error {
	*c = Cart{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	if utils.IsArray(b) {
		var lines []cartLine
		if err := json.Unmarshal(b, &lines); err != nil {
			return fmt.Errorf("cart_items: %w", err)
		}
		for _, l := range lines {
			*c = append(*c, model.LineItemRequest{
				Name:     firstNonEmpty(l.Name, l.Item),
				Quantity: int(l.Quantity),
				Style:    firstNonEmpty(l.Style, l.DishType),
				Notes:    l.Notes,
			})
		}
		return nil
	}
	return utils.EachField(b, func(name string, v json.RawMessage) error {
		var details []json.RawMessage
		if err := json.Unmarshal(v, &details); err != nil || len(details) == 0 {
			return fmt.Errorf("cart_items[%q]: expected [quantity, style, notes]", name)
		}
		r := model.LineItemRequest{Name: name}
		var q Quantity
		if err := json.Unmarshal(details[0], &q); err != nil {
			return fmt.Errorf("cart_items[%q]: %w", name, err)
		}
		r.Quantity = int(q)
		if len(details) > 1 {
			_ = json.Unmarshal(details[1], &r.Style)
		}
		if len(details) > 2 {
			_ = json.Unmarshal(details[2], &r.Notes)
		}
		*c = append(*c, r)
		return nil
	})
}

// проверка на границе: quantity <= 0 не принимаем
func validateCart(c Cart) error {
	for _, r := range c {
		if strings.TrimSpace(r.Name) == "" {
			return errors.New("item name is required")
		}
		if r.Quantity <= 0 {
			return fmt.Errorf("%s: %w", r.Name, errBadQuantity)
		}
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
