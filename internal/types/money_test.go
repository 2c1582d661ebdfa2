package types

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name string
		in   Money
		want string
	}{
		{"rupees", Money{Amount: 12500, Currency: "INR"}, "₹12,500"},
		{"lowercase code", Money{Amount: 980, Currency: "usd"}, "$980"},
		{"unknown code", Money{Amount: 1234567, Currency: "CHF"}, "1,234,567 CHF"},
		{"no currency", Money{Amount: 100}, "100"},
		{"negative", Money{Amount: -4200, Currency: "EUR"}, "€-4,200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1520); got != "1,520" {
		t.Errorf("FormatCount(1520) = %q", got)
	}
	if got := FormatCount(7); got != "7" {
		t.Errorf("FormatCount(7) = %q", got)
	}
}
