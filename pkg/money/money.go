// Package money rounds monetary values to pence.
//
// Amounts are carried as float64 across the domain; every value that is
// derived from another (discounts, VAT, totals) goes through this package so
// that results are rounded half away from zero to two decimal places.
package money

import "github.com/shopspring/decimal"

const Places = 2

func Round(v float64) float64 {
	return toFloat(decimal.NewFromFloat(v).Round(Places))
}

// Percent returns round(v * rate).
func Percent(v, rate float64) float64 {
	return toFloat(decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(rate)).Round(Places))
}

// Discount returns round(v * (1 - rate)).
func Discount(v, rate float64) float64 {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate))
	return toFloat(decimal.NewFromFloat(v).Mul(factor).Round(Places))
}

func Add(a, b float64) float64 {
	return toFloat(decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(Places))
}

func Mul(v float64, qty int) float64 {
	return toFloat(decimal.NewFromFloat(v).Mul(decimal.NewFromInt(int64(qty))).Round(Places))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
