package abc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func ordersWithItems(items ...domain.OrderItem) []domain.Order {
	return []domain.Order{{ID: "1", Items: items}}
}

func TestCurve_ClassCuts(t *testing.T) {
	orders := ordersWithItems(
		domain.OrderItem{SKU: "SKU-A", Quantity: 10, Total: 800},
		domain.OrderItem{SKU: "SKU-B", Quantity: 5, Total: 150},
		domain.OrderItem{SKU: "SKU-C", Quantity: 1, Total: 50},
	)

	products := Curve(orders)

	assert.Len(t, products, 3)

	assert.Equal(t, "SKU-A", products[0].SKU)
	assert.Equal(t, domain.ABCClassA, products[0].Class)
	assert.Equal(t, 80.0, products[0].CumulativePct)

	assert.Equal(t, "SKU-B", products[1].SKU)
	assert.Equal(t, domain.ABCClassB, products[1].Class)
	assert.Equal(t, 95.0, products[1].CumulativePct)

	assert.Equal(t, "SKU-C", products[2].SKU)
	assert.Equal(t, domain.ABCClassC, products[2].Class)
	assert.Equal(t, 100.0, products[2].CumulativePct)
}

func TestCurve_AggregatesAcrossOrders(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", Items: []domain.OrderItem{{SKU: "SKU-A", Quantity: 1, Total: 30}}},
		{ID: "2", Items: []domain.OrderItem{{SKU: "SKU-A", Quantity: 2, Total: 70}}},
	}

	products := Curve(orders)

	assert.Len(t, products, 1)
	assert.Equal(t, 100.0, products[0].Revenue)
	assert.Equal(t, 3.0, products[0].Quantity)
	assert.Equal(t, 100.0, products[0].RevenueShare)
	assert.Equal(t, domain.ABCClassA, products[0].Class, "produto único nunca excede o corte A")
}

func TestCurve_SkipsItemsWithoutSKU(t *testing.T) {
	orders := ordersWithItems(
		domain.OrderItem{SKU: "", Quantity: 1, Total: 999},
		domain.OrderItem{SKU: "SKU-A", Quantity: 1, Total: 100},
	)

	products := Curve(orders)

	assert.Len(t, products, 1)
	assert.Equal(t, "SKU-A", products[0].SKU)
	assert.Equal(t, 100.0, products[0].RevenueShare, "item sem SKU não entra no total")
}

func TestCurve_StableOrderingOnRevenueTies(t *testing.T) {
	orders := ordersWithItems(
		domain.OrderItem{SKU: "SKU-B", Quantity: 1, Total: 50},
		domain.OrderItem{SKU: "SKU-A", Quantity: 1, Total: 50},
	)

	products := Curve(orders)

	assert.Equal(t, "SKU-A", products[0].SKU)
	assert.Equal(t, "SKU-B", products[1].SKU)
}

func TestCurve_NoItems(t *testing.T) {
	products := Curve([]domain.Order{{ID: "1", Total: 100}})

	assert.NotNil(t, products)
	assert.Empty(t, products)
}
