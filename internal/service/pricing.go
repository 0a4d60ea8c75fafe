package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/octobees/futsal-booking/api/internal/dto"
)

// DeriveBasePrice parses every field price and returns the minimum along with
// the parsed values in input order. The minimum is the resource's "starting
// from" price, so it is never averaged or taken from the first entry.
func DeriveBasePrice(fields []dto.FieldDetail) (float64, []float64, error) {
	if len(fields) == 0 {
		return 0, nil, ValidationError{Message: "no field details provided"}
	}

	prices := make([]float64, 0, len(fields))
	minPrice := math.Inf(1)
	for _, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field.Price), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, nil, ValidationError{Message: fmt.Sprintf("invalid price value: %s", field.Price)}
		}
		prices = append(prices, value)
		if value < minPrice {
			minPrice = value
		}
	}

	return minPrice, prices, nil
}
