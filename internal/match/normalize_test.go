package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"Order Item", "orderitem"},
		{"pkg.Type", "pkgtype"},
		{"Счет-Фактура", "счетфактура"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeIdent(tt.input); got != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
