package domain

import "time"

// CustomerRFM é o agregado efêmero de um cliente dentro de uma execução de
// RFM. É reconstruído a cada chamada a partir do conjunto de pedidos e nunca
// persiste como entidade própria.
type CustomerRFM struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	LastOrderDate time.Time `json:"last_order_date"`
	RecencyDays   int       `json:"recency_days"`
	Frequency     int       `json:"frequency"`
	Monetary      float64   `json:"monetary"`
	TicketAvg     float64   `json:"ticket_avg"`

	// Scores de 1 a 4, calculados por quartil sobre a população da execução.
	// Recência é invertida: compra mais recente pontua mais alto.
	R int `json:"r"`
	F int `json:"f"`
	M int `json:"m"`
}
