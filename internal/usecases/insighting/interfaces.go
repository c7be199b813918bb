package insighting

import (
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

// OrderFetcher busca os pedidos de uma conta em todas as origens
// configuradas (Bling e Nuvemshop) já mesclados e deduplicados.
type OrderFetcher interface {
	GetOrdersByAccount(account *domain.Account, filters *domain.InsightFilters) ([]domain.Order, error)
}

// CustomerInsighter é a interface completa de cálculo de insights de
// clientes consumida pela API e pelo agendador de sincronização.
type CustomerInsighter interface {
	OrderFetcher

	// GetCustomerInsights computa (ou recupera do cache) os insights do
	// período para uma conta, a partir do identificador público da conta.
	GetCustomerInsights(accountID string, filters *domain.InsightFilters) (*domain.CustomerInsights, error)

	// ComputeInsights computa os insights do período sem passar pelo cache.
	// É o caminho usado pelo agendador, que já carregou a conta.
	ComputeInsights(account *domain.Account, filters *domain.InsightFilters) (*domain.CustomerInsights, error)
}
