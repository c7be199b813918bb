package domain

// B2BSplit é o resultado da divisão da receita do período entre vendas
// atacado (B2B) e varejo (B2C).
type B2BSplit struct {
	B2BRevenue float64 `json:"b2b_revenue"`
	B2CRevenue float64 `json:"b2c_revenue"`

	B2BOrders int `json:"b2b_orders"`
	B2COrders int `json:"b2c_orders"`

	B2BCustomers int `json:"b2b_customers"`
	B2CCustomers int `json:"b2c_customers"`

	B2BAverageTicket float64 `json:"b2b_average_ticket"`
	B2CAverageTicket float64 `json:"b2c_average_ticket"`
}
