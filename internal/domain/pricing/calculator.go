// internal/domain/pricing/calculator.go

// Package pricing derives order totals from cart lines and the authoritative
// catalog prices. It holds no state; totals are recomputed on demand and
// never cached or persisted.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// Fixed pricing policy. Flat 10% tax; flat-rate shipping waived strictly
// above the free-shipping threshold (a 100.00 subtotal still pays shipping).
var (
	taxRate               = decimal.NewFromFloat(0.10)
	shippingFlatRate      = decimal.NewFromInt(15)
	freeShippingThreshold = decimal.NewFromInt(100)
)

// OrderTotals is the derived pricing of a cart. Values carry full precision;
// rounding to 2 decimals happens only at presentation.
type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals prices the given lines against the current catalog. Lines
// referencing products absent from the catalog contribute nothing.
func ComputeTotals(lines []cart.Line, src *catalog.Source) OrderTotals {
	subtotal := decimal.Zero
	for _, line := range lines {
		product, ok := src.Get(line.ProductID)
		if !ok {
			continue
		}
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	shipping := shippingFlatRate
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate)

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}
