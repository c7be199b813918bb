package merging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// Merge combina as listas de pedidos das duas origens em uma única coleção
// deduplicada. A chave composta é "<origem>_<id local>", porque os ids
// locais se repetem entre as plataformas. Dentro de uma mesma origem a
// última ocorrência vence; entre origens as chaves nunca colidem de fato.
//
// Pedidos sem id não têm como participar da deduplicação e são descartados
// em silêncio. A saída preserva a ordem de inserção (origem A antes da
// origem B); quem precisar de ordem cronológica deve ordenar depois.
func Merge(erpOrders, shopOrders []domain.Order) []domain.Order {
	merged := make([]domain.Order, 0, len(erpOrders)+len(shopOrders))
	position := make(map[string]int, len(erpOrders)+len(shopOrders))
	dropped := 0

	add := func(orders []domain.Order, fallbackSource string) {
		for _, order := range orders {
			if order.ID == "" {
				dropped++
				continue
			}

			if order.Source == "" {
				order.Source = fallbackSource
			}

			key := fmt.Sprintf("%s_%s", order.Source, order.ID)
			if at, exists := position[key]; exists {
				merged[at] = order
				continue
			}

			position[key] = len(merged)
			merged = append(merged, order)
		}
	}

	add(erpOrders, domain.SourceBling)
	add(shopOrders, domain.SourceNuvemshop)

	if dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("pedidos sem id descartados na mesclagem")
	}

	return merged
}
