package generator

import "github.com/shopspring/decimal"

// Monetary values are rounded to two decimals before aggregation so line
// totals and order totals reconcile without cent-level drift.

const moneyScale = 2

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(moneyScale).InexactFloat64()
}

// lineTotal computes round(unitPrice * quantity * (1 - discountPercent/100), 2)
// with decimal arithmetic. discountPercent is the already-rounded percent
// stored on the line, so the stored total always reconciles with it.
func lineTotal(unitPrice float64, quantity int, discountPercent float64) float64 {
	price := decimal.NewFromFloat(unitPrice)
	qty := decimal.NewFromInt(int64(quantity))
	keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discountPercent).Div(decimal.NewFromInt(100)))
	return price.Mul(qty).Mul(keep).Round(moneyScale).InexactFloat64()
}

// discountValue is the absolute amount taken off one line before rounding.
func discountValue(unitPrice float64, quantity int, discountPercent float64) decimal.Decimal {
	price := decimal.NewFromFloat(unitPrice)
	qty := decimal.NewFromInt(int64(quantity))
	frac := decimal.NewFromFloat(discountPercent).Div(decimal.NewFromInt(100))
	return price.Mul(qty).Mul(frac)
}
