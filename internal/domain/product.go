package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry shown on the storefront. Prices are decimal
// to keep line totals exact across many cart items.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
