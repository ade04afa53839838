// Package cart derives priced, quantity-grouped views from the flat ordered
// sequence of product ids a cart persists.
package cart

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// Aggregate groups a sequence of (possibly repeated) product ids by value,
// preserving first-occurrence order of distinct ids, and prices each group
// against the catalog. Ids absent from the catalog are skipped with a
// warning: a cart may reference products deleted since it was filled, and
// that must not break checkout. The grand total is rounded to 2 decimal
// places for display; accumulation itself is exact.
func Aggregate(ids []string, catalog map[string]domain.Product, logger *zap.Logger) ([]domain.CartLine, decimal.Decimal) {
	if logger == nil {
		logger = zap.NewNop()
	}

	order := make([]string, 0, len(ids))
	quantities := make(map[string]int, len(ids))
	for _, id := range ids {
		if _, seen := quantities[id]; !seen {
			order = append(order, id)
		}
		quantities[id]++
	}

	lines := make([]domain.CartLine, 0, len(order))
	total := decimal.Zero
	for _, id := range order {
		product, ok := catalog[id]
		if !ok {
			logger.Warn("cart references unknown product", zap.String("producto_id", id))
			continue
		}

		quantity := quantities[id]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(quantity)))
		lines = append(lines, domain.CartLine{
			ProductID: id,
			Name:      product.Name,
			Quantity:  quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return lines, total.Round(2)
}

// Append adds one unit of a product to the sequence. Repeats are how
// quantity greater than one is represented.
func Append(ids []string, productID string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, productID)
}

// Cleared returns the empty sequence.
func Cleared() []string {
	return []string{}
}
