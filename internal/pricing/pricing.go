// Package pricing computes booking totals in whole currency units.
package pricing

import "math"

// Quote разбивка стоимости бронирования.
// GrandTotal сохраняется в запись бронирования, Tax и TotalWithTax только для отображения.
type Quote struct {
	UnitPrice    int64
	Guests       int64
	LineTotal    int64
	ServiceFee   int64
	GrandTotal   int64
	TaxRate      float64
	Tax          int64
	TotalWithTax int64
}

// Calculate считает стоимость. Входные значения должны быть неотрицательными,
// проверка остается на вызывающей стороне.
func Calculate(unitPrice, guests, serviceFee int64, taxRate float64) Quote {
	lineTotal := unitPrice * guests
	grandTotal := lineTotal + serviceFee
	tax := RoundHalfUp(float64(grandTotal) * taxRate)

	return Quote{
		UnitPrice:    unitPrice,
		Guests:       guests,
		LineTotal:    lineTotal,
		ServiceFee:   serviceFee,
		GrandTotal:   grandTotal,
		TaxRate:      taxRate,
		Tax:          tax,
		TotalWithTax: grandTotal + tax,
	}
}

// GrandTotal unitPrice*guests + serviceFee
func GrandTotal(unitPrice, guests, serviceFee int64) int64 {
	return unitPrice*guests + serviceFee
}

// RoundHalfUp округляет до целого, .5 вверх
func RoundHalfUp(v float64) int64 {
	// 1e-9 гасит ошибку представления вроде 4.25*... = 4.4999999
	return int64(math.Floor(v + 0.5 + 1e-9))
}
