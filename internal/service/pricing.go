package service

import "skyhi-pos/internal/model"

// TaxRatePercent is the fixed tax applied to every order subtotal.
// There is no configurable or tiered tax logic.
const TaxRatePercent = 10

// Totals is the persisted money summary of an order, in cents.
type Totals struct {
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
}

// taxCents rounds half-up to a whole cent.
func taxCents(subtotal int64) int64 {
	return (subtotal*TaxRatePercent + 50) / 100
}

// ComputeTotals derives the order totals from snapshot line items.
// It runs once at creation; totals are never recomputed on read.
func ComputeTotals(items []model.OrderItem) Totals {
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPriceCents * int64(it.Quantity)
	}
	tax := taxCents(subtotal)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
}
