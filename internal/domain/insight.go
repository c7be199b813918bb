package domain

import (
	"time"
)

// InsightFilters delimita o período analisado pelos cálculos de insights.
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// RevenueSegmentation é o resultado da segmentação de receita entre clientes
// novos e recorrentes. As contagens são de clientes únicos, não de pedidos.
type RevenueSegmentation struct {
	NewRevenue         float64 `json:"new_revenue"`
	RetentionRevenue   float64 `json:"retention_revenue"`
	NewCustomers       int     `json:"new_customers"`
	ReturningCustomers int     `json:"returning_customers"`
}

// SalesSummary são os totais simples do período.
type SalesSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	OrdersCount   int     `json:"orders_count"`
	AverageTicket float64 `json:"average_ticket"`
}

// ResolutionQuality informa por qual caminho a identidade de cada pedido do
// período foi resolvida. Percentuais somam 100 quando há pedidos.
type ResolutionQuality struct {
	Total         int     `json:"total"`
	ByEmail       int     `json:"by_email"`
	ByCustomerID  int     `json:"by_customer_id"`
	ByPrecomputed int     `json:"by_precomputed"`
	ByGeneric     int     `json:"by_generic"`
	Synthesized   int     `json:"synthesized"`
	ResolvedPct   float64 `json:"resolved_pct"`
}

// CustomerInsights agrega todos os resultados derivados de um conjunto de
// pedidos de um período, na forma consumida pela camada de apresentação.
type CustomerInsights struct {
	Summary      *SalesSummary        `json:"summary,omitempty"`
	Segmentation *RevenueSegmentation `json:"segmentation,omitempty"`
	RFM          []*CustomerRFM       `json:"rfm,omitempty"`
	B2B          *B2BSplit            `json:"b2b,omitempty"`
	ABC          []*ABCProduct        `json:"abc,omitempty"`
	Quality      *ResolutionQuality   `json:"quality,omitempty"`
	Filters      *InsightFilters      `json:"filters,omitempty"`
}

// CustomerInsightEntry é um snapshot diário de insights persistido no banco.
type CustomerInsightEntry struct {
	ID        int64             `json:"id"`
	AccountID string            `json:"account_id"`
	Date      time.Time         `json:"date"`
	Insights  *CustomerInsights `json:"insights"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
