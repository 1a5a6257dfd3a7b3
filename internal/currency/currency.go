package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRate is the USD to UZS rate used whenever the stored value is
// missing or unparseable.
var DefaultRate = decimal.NewFromInt(13000)

// ConvertToUZS converts a USD cent amount to whole UZS at the given rate.
func ConvertToUZS(cents int, rate decimal.Decimal) decimal.Decimal {
	usd := decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
	return usd.Mul(rate).Round(0)
}

// FormatUZS renders a USD cent amount as a comma-grouped UZS string,
// e.g. 100 USD at rate 13000 becomes "1,300,000".
func FormatUZS(cents int, rate decimal.Decimal) string {
	return groupDigits(ConvertToUZS(cents, rate).String())
}

func groupDigits(value string) string {
	negative := strings.HasPrefix(value, "-")
	digits := strings.TrimPrefix(value, "-")

	var b strings.Builder
	n := len(digits)
	for i, r := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
