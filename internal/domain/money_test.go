package domain

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Cents
		wantErr bool
	}{
		{"1000", 100000, false},
		{"1000.00", 100000, false},
		{"0.01", 1, false},
		{"0", 0, false},
		{"1500.25", 150025, false},
		{"-10.50", -1050, false},
		{"10.005", 0, true}, // three fractional digits
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		in   Cents
		want string
	}{
		{100000, "1000.00"},
		{150025, "1500.25"},
		{1, "0.01"},
		{0, "0.00"},
		{-1050, "-10.50"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Cents(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCentsMulVolume(t *testing.T) {
	// 50.00 * 10 shares = 500.00
	if got := Cents(5000).MulVolume(10); got != 50000 {
		t.Errorf("MulVolume = %d, want 50000", got)
	}
}

func TestBalanceEffect(t *testing.T) {
	buy := &Transaction{Type: TypeBuy, TotalPrice: 50000}
	if got := buy.BalanceEffect(); got != -50000 {
		t.Errorf("buy effect = %d, want -50000", got)
	}

	sell := &Transaction{Type: TypeSell, TotalPrice: 50000}
	if got := sell.BalanceEffect(); got != 50000 {
		t.Errorf("sell effect = %d, want 50000", got)
	}
}
