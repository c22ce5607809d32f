package utils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currency = strings.NewReplacer("$", "", "€", "", "£", "", "₹", "", "¥", "")

var (
	rxPrice     = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
	rxThousands = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d*)?$`)
	rxDecComma  = regexp.MustCompile(`^\d+,\d{1,2}$`)
)

// ParsePrice парсит "$5.99", "$12.99 (for 2)", "1,299.00", "12,50", "12,5", ".99".
// Пустая/битая/отрицательная строка → 0, false.
// Запятая допустима только как разделитель тысяч (1,299) или
// десятичная с 1-2 знаками (12,5); иначе цена битая.
func ParsePrice(s string) (decimal.Decimal, bool) {
	// сначала убираем валюту: "$ 5.99" → " 5.99"
	f := strings.Fields(currency.Replace(s))
	if len(f) == 0 {
		return decimal.Zero, false
	}
	tok := f[0]

	if strings.Contains(tok, ",") {
		switch {
		case rxDecComma.MatchString(tok):
			tok = strings.Replace(tok, ",", ".", 1)
		case rxThousands.MatchString(tok):
			tok = strings.ReplaceAll(tok, ",", "")
		default:
			return decimal.Zero, false
		}
	}

	if !rxPrice.MatchString(tok) {
		return decimal.Zero, false
	}
	tok = strings.TrimSuffix(tok, ".") // "5." → "5"
	if strings.HasPrefix(tok, ".") {
		tok = "0" + tok
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
