package orders

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceorder-service/internal/ordering/model"
)

type fixedPricer struct {
	calls int
}

func (p *fixedPricer) Order(reqs []model.LineItemRequest) model.OrderResult {
	p.calls++
	res := model.OrderResult{TotalPrice: decimal.Zero}
	for _, r := range reqs {
		line := decimal.NewFromFloat(2.5).Mul(decimal.NewFromInt(int64(r.Quantity)))
		res.Breakdown = append(res.Breakdown, model.LineItemResult{
			Item: r.Name, Resolved: r.Name, Quantity: r.Quantity, Style: r.Style, Notes: r.Notes,
			UnitPrice: decimal.NewFromFloat(2.5), LineTotal: line, Status: model.OutcomeFound,
		})
		res.TotalPrice = res.TotalPrice.Add(line)
	}
	return res
}

func newTestService(t *testing.T) (*Service, *fixedPricer) {
	t.Helper()
	repo, err := Open(context.Background(), "sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	p := &fixedPricer{}
	s := NewService(p, repo, zerolog.Nop())
	s.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	return s, p
}

func TestNormalizePhone(t *testing.T) {
	p, err := NormalizePhone("(214) 555-0199")
	require.NoError(t, err)
	assert.Equal(t, "2145550199", p)

	for _, bad := range []string{"", "555-0199", "+1 214 555 0199"} {
		_, err := NormalizePhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPhone, bad)
	}
}

func TestPlaceAndGet(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()

	conf, err := s.Place(ctx, Customer{FirstName: "  aRJUN ", LastName: "rao", Phone: "214.555.0199", Address: " 12 Main St, Frisco "},
		[]model.LineItemRequest{{Name: "Naan", Quantity: 3, Style: "garlic", Notes: "crispy"}})
	require.NoError(t, err)
	assert.True(t, conf.Success)
	assert.Equal(t, "Thank you, Arjun your order has been placed", conf.Message)
	assert.True(t, decimal.RequireFromString("7.5").Equal(conf.Total))
	assert.Equal(t, 1, p.calls)

	o, err := s.Get(ctx, conf.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Arjun Rao", o.Customer.FullName())
	assert.Equal(t, "2145550199", o.Customer.Phone)
	assert.Equal(t, "12 Main St, Frisco", o.Customer.Address)
	assert.True(t, o.Total.Equal(conf.Total))
	require.Len(t, o.Result.Breakdown, 1)
	assert.Equal(t, "crispy", o.Result.Breakdown[0].Notes)
	assert.Equal(t, 2026, o.CreatedAt.Year())
}

func TestPlaceValidation(t *testing.T) {
	s, p := newTestService(t)
	ctx := context.Background()

	_, err := s.Place(ctx, Customer{FirstName: "a", Phone: "123"}, []model.LineItemRequest{{Name: "naan", Quantity: 1}})
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = s.Place(ctx, Customer{FirstName: "a", Phone: "2145550199"}, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, p.calls)
}

func TestGetMissing(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRebind(t *testing.T) {
	pg := &SQLRepository{driver: "postgres"}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := &SQLRepository{driver: "sqlite3"}
	assert.Equal(t, "x = ?", lite.rebind("x = ?"))

	_, err := Open(context.Background(), "mysql", "")
	assert.Error(t, err)
}
