package orders

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"voiceorder-service/internal/ordering/model"
)

var (
	ErrInvalidPhone = errors.New("orders: phone number must have 10 digits")
	ErrEmptyCart    = errors.New("orders: cart is empty")
	ErrNotFound     = errors.New("orders: not found")
)

// Customer: контактные данные из звонка. Адрес хранится как есть.
type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (c Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Order: сохранённый заказ.
type Order struct {
	ID        string            `json:"order_id"`
	Customer  Customer          `json:"customer"`
	Total     decimal.Decimal   `json:"total_price"`
	Result    model.OrderResult `json:"order_details"`
	CreatedAt time.Time         `json:"created_at"`
}

// Confirmation: ответ вызывающему после оформления.
type Confirmation struct {
	Success bool            `json:"success"`
	OrderID string          `json:"order_id"`
	Message string          `json:"message"`
	Total   decimal.Decimal `json:"total_price"`
}
