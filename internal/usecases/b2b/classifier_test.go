package b2b

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestSplit_DocumentFormatDecides(t *testing.T) {
	classifier := NewClassifier(nil)

	orders := []domain.Order{
		{ID: "1", CustomerCpfCnpj: "12.345.678/0001-90", Total: 1000}, // CNPJ → B2B
		{ID: "2", CustomerCpfCnpj: "123.456.789-01", Total: 100},      // CPF → B2C
		{ID: "3", CustomerCpfCnpj: "", Total: 50},                     // sem documento → B2C
		{ID: "4", CustomerCpfCnpj: "12345", Total: 30},                // malformado → B2C
	}

	split := classifier.Split(orders)

	assert.Equal(t, 1000.0, split.B2BRevenue)
	assert.Equal(t, 180.0, split.B2CRevenue)
	assert.Equal(t, 1, split.B2BOrders)
	assert.Equal(t, 3, split.B2COrders)
}

func TestSplit_SellerAllowListForcesB2B(t *testing.T) {
	classifier := NewClassifier([]string{"Vendedor Atacado", "  ", ""})

	orders := []domain.Order{
		{ID: "1", Seller: "Vendedor Atacado", Total: 500},                                 // sem documento, vendedor listado
		{ID: "2", Seller: "Vendedor Varejo", Total: 100},                                  // não listado
		{ID: "3", Seller: "Vendedor Atacado", CustomerCpfCnpj: "123.456.789-01", Total: 200}, // CPF não impede a lista
	}

	split := classifier.Split(orders)

	assert.Equal(t, 700.0, split.B2BRevenue)
	assert.Equal(t, 100.0, split.B2CRevenue)
	assert.Equal(t, 2, split.B2BOrders)
	assert.Equal(t, 1, split.B2COrders)
}

func TestSplit_CustomerCounts(t *testing.T) {
	classifier := NewClassifier(nil)

	orders := []domain.Order{
		{ID: "1", CustomerCpfCnpj: "12345678000190", Total: 100},
		{ID: "2", CustomerCpfCnpj: "12.345.678/0001-90", Total: 200}, // mesmo CNPJ, pontuação diferente
		{ID: "3", CustomerEmail: "Ana@Loja.com", Total: 10},
		{ID: "4", CustomerEmail: "ana@loja.com", Total: 20}, // mesmo email, caixa diferente
		{ID: "5", CustomerName: "Caio", Total: 5},
	}

	split := classifier.Split(orders)

	assert.Equal(t, 1, split.B2BCustomers, "documento normalizado deduplica o cliente")
	assert.Equal(t, 2, split.B2CCustomers, "email em minúsculas deduplica o cliente")
}

func TestSplit_AverageTickets(t *testing.T) {
	classifier := NewClassifier(nil)

	orders := []domain.Order{
		{ID: "1", CustomerCpfCnpj: "12345678000190", Total: 100},
		{ID: "2", CustomerCpfCnpj: "12345678000190", Total: 300},
		{ID: "3", Total: 50},
	}

	split := classifier.Split(orders)

	assert.Equal(t, 200.0, split.B2BAverageTicket)
	assert.Equal(t, 50.0, split.B2CAverageTicket)
}

func TestSplit_EmptyInput(t *testing.T) {
	classifier := NewClassifier([]string{"Vendedor Atacado"})

	split := classifier.Split(nil)

	assert.Equal(t, 0.0, split.B2BRevenue)
	assert.Equal(t, 0.0, split.B2CRevenue)
	assert.Equal(t, 0.0, split.B2BAverageTicket)
	assert.Equal(t, 0.0, split.B2CAverageTicket)
	assert.Equal(t, 0, split.B2BCustomers)
	assert.Equal(t, 0, split.B2CCustomers)
}
