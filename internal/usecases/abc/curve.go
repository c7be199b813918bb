package abc

import (
	"sort"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Cortes da curva: A concentra os produtos até 80% da receita acumulada,
// B até 95%, C o restante.
const (
	classACut = 80.0
	classBCut = 95.0
)

// Curve monta a curva ABC de produtos do período: agrega a receita por SKU,
// ordena do maior para o menor e classifica pela participação acumulada.
// Itens sem SKU não são classificáveis e ficam de fora.
func Curve(orders []domain.Order) []*domain.ABCProduct {
	type productAccumulator struct {
		description string
		revenue     float64
		quantity    float64
	}

	bySKU := make(map[string]*productAccumulator)

	var totalRevenue float64
	for _, order := range orders {
		for _, item := range order.Items {
			if item.SKU == "" {
				continue
			}

			acc, ok := bySKU[item.SKU]
			if !ok {
				acc = &productAccumulator{description: item.Description}
				bySKU[item.SKU] = acc
			}

			acc.revenue += item.Total
			acc.quantity += item.Quantity
			totalRevenue += item.Total
		}
	}

	products := make([]*domain.ABCProduct, 0, len(bySKU))
	for sku, acc := range bySKU {
		products = append(products, &domain.ABCProduct{
			SKU:         sku,
			Description: acc.description,
			Revenue:     utils.RoundWithTwoDecimalPlace(acc.revenue),
			Quantity:    acc.quantity,
		})
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Revenue != products[j].Revenue {
			return products[i].Revenue > products[j].Revenue
		}
		return products[i].SKU < products[j].SKU
	})

	cumulative := 0.0
	for _, product := range products {
		share := 0.0
		if totalRevenue > 0 {
			share = product.Revenue / totalRevenue * 100
		}

		// A classe é decidida pelo acumulado antes do produto: um produto que
		// sozinho concentra quase toda a receita ainda é classe A.
		before := cumulative
		cumulative += share

		product.RevenueShare = utils.RoundWithTwoDecimalPlace(share)
		product.CumulativePct = utils.RoundWithTwoDecimalPlace(cumulative)

		switch {
		case before < classACut:
			product.Class = domain.ABCClassA
		case before < classBCut:
			product.Class = domain.ABCClassB
		default:
			product.Class = domain.ABCClassC
		}
	}

	return products
}
