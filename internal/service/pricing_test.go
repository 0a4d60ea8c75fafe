package service

import (
	"errors"
	"testing"

	"github.com/octobees/futsal-booking/api/internal/dto"
)

func TestDeriveBasePriceReturnsMinimum(t *testing.T) {
	fields := []dto.FieldDetail{
		{Name: "Field A", Price: "1000"},
		{Name: "Field B", Price: "1500"},
		{Name: "Field C", Price: "1200"},
	}

	base, prices, err := DeriveBasePrice(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base != 1000 {
		t.Fatalf("expected base price 1000, got %v", base)
	}
	if len(prices) != 3 {
		t.Fatalf("expected 3 parsed prices, got %d", len(prices))
	}
	want := []float64{1000, 1500, 1200}
	for i, price := range prices {
		if price != want[i] {
			t.Errorf("price %d: expected %v, got %v", i, want[i], price)
		}
	}
}

func TestDeriveBasePriceSingleField(t *testing.T) {
	base, prices, err := DeriveBasePrice([]dto.FieldDetail{{Name: "Only", Price: "750.50"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base != 750.50 {
		t.Fatalf("expected base price 750.50, got %v", base)
	}
	if len(prices) != 1 {
		t.Fatalf("expected 1 parsed price, got %d", len(prices))
	}
}

func TestDeriveBasePriceEmpty(t *testing.T) {
	_, _, err := DeriveBasePrice(nil)

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Message != "no field details provided" {
		t.Fatalf("unexpected message: %q", validationErr.Message)
	}
}

func TestDeriveBasePriceInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		price string
	}{
		{name: "not a number", price: "abc"},
		{name: "empty", price: ""},
		{name: "NaN", price: "NaN"},
		{name: "infinity", price: "Inf"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DeriveBasePrice([]dto.FieldDetail{{Name: "Field", Price: tc.price}})

			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestDeriveBasePriceTrimsWhitespace(t *testing.T) {
	base, _, err := DeriveBasePrice([]dto.FieldDetail{{Name: "Field", Price: "  1200  "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base != 1200 {
		t.Fatalf("expected 1200, got %v", base)
	}
}
