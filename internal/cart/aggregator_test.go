package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cart"
	"github.com/spec-kit/storefront-service/internal/domain"
)

func product(id, name, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestAggregate(t *testing.T) {
	catalog := map[string]domain.Product{
		"A": product("A", "Bolso Matero", "10.00"),
		"B": product("B", "Pantalon Jean", "5.00"),
	}

	tests := []struct {
		name      string
		ids       []string
		catalog   map[string]domain.Product
		wantLines []domain.CartLine
		wantTotal string
	}{
		{
			name:      "empty sequence yields empty lines and zero total",
			ids:       []string{},
			catalog:   catalog,
			wantLines: []domain.CartLine{},
			wantTotal: "0.00",
		},
		{
			name:    "repeats group into quantities",
			ids:     []string{"A", "A", "B"},
			catalog: catalog,
			wantLines: []domain.CartLine{
				{ProductID: "A", Quantity: 2, LineTotal: decimal.RequireFromString("20.00")},
				{ProductID: "B", Quantity: 1, LineTotal: decimal.RequireFromString("5.00")},
			},
			wantTotal: "25.00",
		},
		{
			name:    "first occurrence order is preserved",
			ids:     []string{"B", "A", "B"},
			catalog: catalog,
			wantLines: []domain.CartLine{
				{ProductID: "B", Quantity: 2, LineTotal: decimal.RequireFromString("10.00")},
				{ProductID: "A", Quantity: 1, LineTotal: decimal.RequireFromString("10.00")},
			},
			wantTotal: "20.00",
		},
		{
			name:      "ids absent from the catalog are skipped silently",
			ids:       []string{"X"},
			catalog:   map[string]domain.Product{},
			wantLines: []domain.CartLine{},
			wantTotal: "0.00",
		},
		{
			name:    "stale id among valid ones only drops its own line",
			ids:     []string{"A", "X", "A"},
			catalog: catalog,
			wantLines: []domain.CartLine{
				{ProductID: "A", Quantity: 2, LineTotal: decimal.RequireFromString("20.00")},
			},
			wantTotal: "20.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, total := cart.Aggregate(tt.ids, tt.catalog, zap.NewNop())

			require.Len(t, lines, len(tt.wantLines))
			for i, want := range tt.wantLines {
				assert.Equal(t, want.ProductID, lines[i].ProductID)
				assert.Equal(t, want.Quantity, lines[i].Quantity)
				assert.True(t, want.LineTotal.Equal(lines[i].LineTotal),
					"line %d total: want %s got %s", i, want.LineTotal, lines[i].LineTotal)
			}
			assert.Equal(t, tt.wantTotal, total.StringFixed(2))
		})
	}
}

func TestAggregateNoFloatDrift(t *testing.T) {
	// 0.1 added floating-point-style 1000 times drifts; decimals must not.
	catalog := map[string]domain.Product{
		"P": product("P", "Sticker", "0.10"),
	}
	ids := make([]string, 1000)
	for i := range ids {
		ids[i] = "P"
	}

	lines, total := cart.Aggregate(ids, catalog, zap.NewNop())

	require.Len(t, lines, 1)
	assert.Equal(t, 1000, lines[0].Quantity)
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestAggregateUnitPriceCarriedPerLine(t *testing.T) {
	catalog := map[string]domain.Product{
		"A": product("A", "Vestido Floral", "59.99"),
	}

	lines, total := cart.Aggregate([]string{"A", "A", "A"}, catalog, zap.NewNop())

	require.Len(t, lines, 1)
	assert.Equal(t, "59.99", lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "179.97", lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "179.97", total.StringFixed(2))
}

func TestAppendAndCleared(t *testing.T) {
	ids := cart.Cleared()
	assert.Empty(t, ids)

	ids = cart.Append(ids, "A")
	ids = cart.Append(ids, "A")
	ids = cart.Append(ids, "B")
	assert.Equal(t, []string{"A", "A", "B"}, ids)

	// Append must not mutate its input
	before := []string{"A"}
	_ = cart.Append(before, "B")
	assert.Equal(t, []string{"A"}, before)

	// clearing is idempotent regardless of prior state
	assert.Empty(t, cart.Cleared())
	lines, total := cart.Aggregate(cart.Cleared(), map[string]domain.Product{}, zap.NewNop())
	assert.Empty(t, lines)
	assert.Equal(t, "0.00", total.StringFixed(2))
}
