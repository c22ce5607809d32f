package orders

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"voiceorder-service/internal/ordering/model"
)

// Pricer считает заказ (ordering/service.Engine).
type Pricer interface {
	Order(reqs []model.LineItemRequest) model.OrderResult
}

// Service оформляет заказы: проверка контактов → расчёт → сохранение.
type Service struct {
	pricer Pricer
	repo   Repository
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(p Pricer, repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		pricer: p,
		repo:   repo,
		log:    logger.With().Str("component", "orders").Logger(),
		now:    time.Now,
	}
}

var rxNonDigit = regexp.MustCompile(`\D`)

// NormalizePhone оставляет только цифры; валиден ровно 10-значный номер.
func NormalizePhone(s string) (string, error) {
	p := rxNonDigit.ReplaceAllString(s, "")
	if len(p) != 10 {
		return "", ErrInvalidPhone
	}
	return p, nil
}

// Place оформляет заказ.
func (s *Service) Place(ctx context.Context, c Customer, items []model.LineItemRequest) (Confirmation, error) {
	phone, err := NormalizePhone(c.Phone)
	if err != nil {
		return Confirmation{}, err
	}
	if len(items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}
	c = Customer{
		FirstName: capitalize(c.FirstName),
		LastName:  capitalize(c.LastName),
		Phone:     phone,
		Address:   strings.TrimSpace(c.Address),
	}

	res := s.pricer.Order(items)
	o := Order{
		ID:        uuid.NewString(),
		Customer:  c,
		Total:     res.TotalPrice,
		Result:    res,
		CreatedAt: s.now(),
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return Confirmation{}, err
	}

	s.log.Info().
		Str("order_id", o.ID).
		Str("customer", c.FullName()).
		Int("lines", len(res.Breakdown)).
		Str("total", res.TotalPrice.StringFixed(2)).
		Msg("order placed")

	return Confirmation{
		Success: true,
		OrderID: o.ID,
		Message: fmt.Sprintf("Thank you, %s your order has been placed", c.FirstName),
		Total:   o.Total,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.repo.Get(ctx, id)
}

// "  jOHN " → "John"
func capitalize(s string) string {
	r := []rune(strings.ToLower(strings.TrimSpace(s)))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
