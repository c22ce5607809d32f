package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$5.99", "5.99", true},
		{"$12.99 (for 2)", "12.99", true},
		{"$ 7.50", "7.5", true},
		{"3", "3", true},
		{"₹250", "250", true},
		{"1,299.00", "1299", true},
		{"12,50", "12.5", true},
		{"12,5", "12.5", true},
		{"$1,5", "1.5", true},
		{"€9,9", "9.9", true},
		{"1,299", "1299", true},
		{"12,345,678.5", "12345678.5", true},
		{".99", "0.99", true},
		{"5.", "5", true},
		{"1,2345", "0", false},
		{"12,34,5", "0", false},
		{"1,29.00", "0", false},
		{",5", "0", false},
		{".", "0", false},
		{"", "0", false},
		{"   ", "0", false},
		{"market price", "0", false},
		{"$", "0", false},
		{"-4.00", "0", false},
		{"$abc", "0", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := ParsePrice(c.in)
			assert.Equal(t, c.ok, ok)
			assert.True(t, decimal.RequireFromString(c.want).Equal(got), "got %s", got)
		})
	}
}

func TestParsePriceIdempotent(t *testing.T) {
	for _, s := range []string{"$5.99", "$12.99 (for 2)", "10", "0.5", "junk", ""} {
		first, _ := ParsePrice(s)
		second, _ := ParsePrice(first.String())
		assert.True(t, first.Equal(second), "%q: %s != %s", s, first, second)
	}
}
