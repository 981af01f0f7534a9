package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerrors "tokentab/contexts/finance-core/token-conversion-engine/domain/errors"
)

func TestConvertBoundaryVectors(t *testing.T) {
	cases := []struct {
		price          string
		tokenCount     int64
		changeDue      string
		realAmountPaid string
	}{
		{"0", 0, "0.00", "0.00"},
		{"5.4", 1, "0.00", "2.70"},
		{"5.5", 2, "5.30", "0.10"},
		{"10.8", 2, "0.00", "5.40"},
		{"0.01", 1, "5.39", "-2.69"},
		{"27", 5, "0.00", "13.50"},
	}

	for _, tc := range cases {
		calculation, err := Convert(decimal.RequireFromString(tc.price))
		if err != nil {
			t.Fatalf("convert %s failed: %v", tc.price, err)
		}
		if calculation.TokenCount != tc.tokenCount {
			t.Fatalf("price %s: expected %d tokens, got %d", tc.price, tc.tokenCount, calculation.TokenCount)
		}
		if got := calculation.ChangeDue.StringFixed(2); got != tc.changeDue {
			t.Fatalf("price %s: expected change %s, got %s", tc.price, tc.changeDue, got)
		}
		if got := calculation.RealAmountPaid.StringFixed(2); got != tc.realAmountPaid {
			t.Fatalf("price %s: expected real paid %s, got %s", tc.price, tc.realAmountPaid, got)
		}
	}
}

func TestConvertTokenCountIsMinimal(t *testing.T) {
	for cents := int64(0); cents <= 3000; cents += 7 {
		price := decimal.New(cents, -2)
		calculation, err := Convert(price)
		if err != nil {
			t.Fatalf("convert %s failed: %v", price, err)
		}

		count := decimal.NewFromInt(calculation.TokenCount)
		covered := count.Mul(TokenRedemptionValue)
		if covered.LessThan(price) {
			t.Fatalf("price %s: %d tokens do not cover the bill", price, calculation.TokenCount)
		}
		if calculation.TokenCount > 0 {
			previous := count.Sub(decimal.NewFromInt(1)).Mul(TokenRedemptionValue)
			if !previous.LessThan(price) {
				t.Fatalf("price %s: %d tokens is not minimal", price, calculation.TokenCount)
			}
		}

		if calculation.ChangeDue.IsNegative() {
			t.Fatalf("price %s: negative change %s", price, calculation.ChangeDue)
		}
		if !calculation.ChangeDue.LessThan(TokenRedemptionValue) {
			t.Fatalf("price %s: change %s not below one token value", price, calculation.ChangeDue)
		}
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	price := decimal.RequireFromString("17.33")
	first, err := Convert(price)
	if err != nil {
		t.Fatalf("first convert failed: %v", err)
	}
	second, err := Convert(price)
	if err != nil {
		t.Fatalf("second convert failed: %v", err)
	}
	if first.TokenCount != second.TokenCount ||
		!first.ChangeDue.Equal(second.ChangeDue) ||
		!first.RealAmountPaid.Equal(second.RealAmountPaid) {
		t.Fatalf("conversion not deterministic: %+v vs %+v", first, second)
	}
}

func TestConvertRejectsNegativePrice(t *testing.T) {
	_, err := Convert(decimal.RequireFromString("-1"))
	if !errors.Is(err, domainerrors.ErrInvalidPrice) {
		t.Fatalf("expected invalid price error, got %v", err)
	}
}

func TestConstantsKeepTwoToOneRatio(t *testing.T) {
	if !TokenRedemptionValue.Equal(TokenAcquisitionCost.Mul(decimal.NewFromInt(2))) {
		t.Fatalf("redemption value %s must be twice acquisition cost %s",
			TokenRedemptionValue, TokenAcquisitionCost)
	}
}
