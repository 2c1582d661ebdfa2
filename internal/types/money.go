// README: Common money value object used for hotel stay prices.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor-less whole units (stay prices are quoted without cents).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// String renders the amount with thousands separators, e.g. "₹12,500" or "12,500 CHF".
func (m Money) String() string {
	amount := groupThousands(m.Amount)
	code := strings.ToUpper(m.Currency)
	if sym, ok := currencySymbols[code]; ok {
		return sym + amount
	}
	if code == "" {
		return amount
	}
	return fmt.Sprintf("%s %s", amount, code)
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int) string {
	return groupThousands(int64(n))
}
