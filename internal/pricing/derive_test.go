package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDerivePriceExactness(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		purity   string
		expected string
	}{
		{"gold 22k", "6000", "91.7", "5502"},
		{"silver 925", "85", "92.5", "79"}, // 78.625 → 79（四舍五入）
		{"gold 24k", "6000", "100", "6000"},
		{"zero purity", "6000", "0", "0"},
		{"zero base", "0", "91.7", "0"},
		{"half exactly", "1000", "50.05", "501"}, // 500.5 → 501
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DerivePrice(decimal.RequireFromString(tc.base), decimal.RequireFromString(tc.purity))
			if err != nil {
				t.Fatalf("derive price failed: %v", err)
			}
			if got.String() != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got.String())
			}
		})
	}
}

func TestDerivePriceRejectsNegativeBase(t *testing.T) {
	_, err := DerivePrice(decimal.NewFromInt(-1), decimal.NewFromInt(50))
	if !errors.Is(err, ErrBasePriceNegative) {
		t.Fatalf("expected ErrBasePriceNegative, got %v", err)
	}
}

func TestDerivePriceRejectsPurityOutOfRange(t *testing.T) {
	if _, err := DerivePrice(decimal.NewFromInt(100), decimal.RequireFromString("100.01")); !errors.Is(err, ErrPurityOutOfRange) {
		t.Fatalf("expected ErrPurityOutOfRange for purity > 100, got %v", err)
	}
	if _, err := DerivePrice(decimal.NewFromInt(100), decimal.RequireFromString("-0.01")); !errors.Is(err, ErrPurityOutOfRange) {
		t.Fatalf("expected ErrPurityOutOfRange for negative purity, got %v", err)
	}
}
