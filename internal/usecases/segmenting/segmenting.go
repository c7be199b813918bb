package segmenting

import (
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/identity"
)

// Segment classifica cada pedido do período corrente como receita nova ou
// de retenção, comparando a identidade resolvida com o conjunto de
// identidades vistas no histórico. Todo pedido cai em exatamente um dos
// dois baldes, então NewRevenue + RetentionRevenue é sempre a soma dos
// totais do período.
//
// As contagens são de clientes únicos: um cliente com três pedidos novos no
// período conta uma vez. Pedidos sem nenhum sinal de identidade recebem uma
// chave sintética sempre inédita e, portanto, contam como receita nova —
// limitação conhecida quando o cadastro é pobre.
func Segment(current, historical []domain.Order) *domain.RevenueSegmentation {
	seen := historicalKeys(historical)

	newCustomers := make(map[string]struct{})
	returningCustomers := make(map[string]struct{})

	result := &domain.RevenueSegmentation{}

	for _, order := range current {
		key := identity.Key(order)

		if _, ok := seen[key]; ok {
			result.RetentionRevenue += order.Total
			returningCustomers[key] = struct{}{}
			continue
		}

		result.NewRevenue += order.Total
		newCustomers[key] = struct{}{}
	}

	result.NewCustomers = len(newCustomers)
	result.ReturningCustomers = len(returningCustomers)

	return result
}

// CountFirstTimeBuyers retorna apenas a quantidade de clientes do período
// corrente que não aparecem no histórico, para os painéis que não precisam
// da divisão de receita.
func CountFirstTimeBuyers(current, historical []domain.Order) int {
	seen := historicalKeys(historical)

	firstTime := make(map[string]struct{})
	for _, order := range current {
		key := identity.Key(order)
		if _, ok := seen[key]; !ok {
			firstTime[key] = struct{}{}
		}
	}

	return len(firstTime)
}

func historicalKeys(historical []domain.Order) map[string]struct{} {
	keys := make(map[string]struct{}, len(historical))
	for _, order := range historical {
		keys[identity.Key(order)] = struct{}{}
	}
	return keys
}
