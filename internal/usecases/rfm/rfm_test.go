package rfm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

var reference = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func TestComputeAt_GroupsOrdersByIdentity(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "ana@loja.com", CustomerName: "Ana", Date: "2024-06-20", Total: 100},
		{ID: "2", CustomerEmail: "ana@loja.com", Date: "2024-06-25", Total: 200},
		{ID: "3", CustomerEmail: "bia@loja.com", CustomerName: "Bia", Date: "2024-06-10", Total: 50},
	}

	customers := ComputeAt(orders, reference)

	assert.Len(t, customers, 2)

	// Ordenado por valor monetário decrescente.
	ana := customers[0]
	assert.Equal(t, "ana@loja.com", ana.Key)
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, 2, ana.Frequency)
	assert.Equal(t, 300.0, ana.Monetary)
	assert.Equal(t, 150.0, ana.TicketAvg)
	assert.Equal(t, 5, ana.RecencyDays, "recência conta a partir do último pedido")

	bia := customers[1]
	assert.Equal(t, "bia@loja.com", bia.Key)
	assert.Equal(t, 20, bia.RecencyDays)
}

func TestComputeAt_QuartileScores(t *testing.T) {
	// Quatro clientes com valores distintos ocupam exatamente um quartil cada.
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "q1@x.com", Date: "2024-06-29", Total: 400},
		{ID: "2", CustomerEmail: "q2@x.com", Date: "2024-06-20", Total: 300},
		{ID: "3", CustomerEmail: "q3@x.com", Date: "2024-06-10", Total: 200},
		{ID: "4", CustomerEmail: "q4@x.com", Date: "2024-06-01", Total: 100},
	}

	customers := ComputeAt(orders, reference)

	byKey := make(map[string]*domain.CustomerRFM)
	for _, c := range customers {
		byKey[c.Key] = c
	}

	// Maior valor e compra mais recente → melhor pontuação nos dois eixos.
	assert.Equal(t, 4, byKey["q1@x.com"].M)
	assert.Equal(t, 4, byKey["q1@x.com"].R)

	// Menor valor e compra mais antiga → pior pontuação.
	assert.Equal(t, 1, byKey["q4@x.com"].M)
	assert.Equal(t, 1, byKey["q4@x.com"].R)

	// Os intermediários ficam em ordem.
	assert.Equal(t, 3, byKey["q2@x.com"].M)
	assert.Equal(t, 2, byKey["q3@x.com"].M)
}

func TestComputeAt_ScoreMonotonicity(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "a@x.com", Date: "2024-06-29", Total: 50},
		{ID: "2", CustomerEmail: "b@x.com", Date: "2024-06-28", Total: 150},
		{ID: "3", CustomerEmail: "c@x.com", Date: "2024-06-27", Total: 150},
		{ID: "4", CustomerEmail: "d@x.com", Date: "2024-06-26", Total: 500},
		{ID: "5", CustomerEmail: "e@x.com", Date: "2024-06-25", Total: 700},
	}

	customers := ComputeAt(orders, reference)

	// Saída ordenada por Monetary decrescente: o score M nunca pode crescer
	// ao descer a lista.
	for i := 1; i < len(customers); i++ {
		assert.LessOrEqual(t, customers[i].M, customers[i-1].M)
	}

	for _, c := range customers {
		assert.GreaterOrEqual(t, c.R, 1)
		assert.LessOrEqual(t, c.R, 4)
		assert.GreaterOrEqual(t, c.F, 1)
		assert.LessOrEqual(t, c.F, 4)
		assert.GreaterOrEqual(t, c.M, 1)
		assert.LessOrEqual(t, c.M, 4)
	}
}

func TestComputeAt_EmptyInput(t *testing.T) {
	customers := ComputeAt(nil, reference)

	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestComputeAt_SingleCustomer(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "solo@x.com", Date: "2024-06-29", Total: 100},
	}

	customers := ComputeAt(orders, reference)

	assert.Len(t, customers, 1)
	// População de um: frequência e valor caem no quarto quartil; recência
	// invertida cai no piso.
	assert.Equal(t, 1, customers[0].R)
	assert.Equal(t, 4, customers[0].F)
	assert.Equal(t, 4, customers[0].M)
}

func TestComputeAt_FutureOrderClampsRecencyToZero(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "a@x.com", Date: "2024-07-05", Total: 10},
	}

	customers := ComputeAt(orders, reference)

	assert.Equal(t, 0, customers[0].RecencyDays)
}

func TestComputeAt_StableOrderingOnTies(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerEmail: "b@x.com", Date: "2024-06-29", Total: 100},
		{ID: "2", CustomerEmail: "a@x.com", Date: "2024-06-29", Total: 100},
	}

	customers := ComputeAt(orders, reference)

	assert.Equal(t, "a@x.com", customers[0].Key)
	assert.Equal(t, "b@x.com", customers[1].Key)
}
