package domain

import "github.com/shopspring/decimal"

// CartLine is one distinct product's aggregated quantity and subtotal within
// a cart. Lines are computed from the flat id sequence, never persisted.
type CartLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}
