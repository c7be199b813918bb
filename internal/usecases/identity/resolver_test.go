package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestResolve_Priority(t *testing.T) {
	tests := []struct {
		name           string
		order          domain.Order
		expectedKey    string
		expectedMethod Method
	}{
		{
			name: "Chave pré-computada não genérica vence tudo",
			order: domain.Order{
				CustomerKey:   "cliente-123",
				CustomerEmail: "ana@loja.com.br",
			},
			expectedKey:    "cliente-123",
			expectedMethod: MethodPrecomputed,
		},
		{
			name: "Chave pré-computada genérica é preterida pelo email",
			order: domain.Order{
				CustomerKey:   "wake_customer_99",
				CustomerEmail: "ana@loja.com.br",
			},
			expectedKey:    "ana@loja.com.br",
			expectedMethod: MethodEmail,
		},
		{
			name: "Email é normalizado para minúsculas",
			order: domain.Order{
				CustomerEmail: "Ana.Silva@Loja.COM.BR",
			},
			expectedKey:    "ana.silva@loja.com.br",
			expectedMethod: MethodEmail,
		},
		{
			name: "Email sem arroba é descartado e cai no código de cliente",
			order: domain.Order{
				CustomerEmail: "nao-e-email",
				Raw:           map[string]any{"customer_id": "777"},
			},
			expectedKey:    "777",
			expectedMethod: MethodCustomerID,
		},
		{
			name: "Código de cliente numérico no payload bruto",
			order: domain.Order{
				Raw: map[string]any{"cliente": map[string]any{"id": float64(4512)}},
			},
			expectedKey:    "4512",
			expectedMethod: MethodCustomerID,
		},
		{
			name: "Chave genérica é usada quando não há mais nada",
			order: domain.Order{
				CustomerKey: "unknown_abc",
			},
			expectedKey:    "unknown_abc",
			expectedMethod: MethodGeneric,
		},
		{
			name: "Pedido sem nenhum sinal recebe chave sintetizada pelo id",
			order: domain.Order{
				ID: "555",
			},
			expectedKey:    "unknown_555",
			expectedMethod: MethodSynthesized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution := Resolve(tt.order)

			assert.Equal(t, tt.expectedKey, resolution.Key)
			assert.Equal(t, tt.expectedMethod, resolution.Method)
		})
	}
}

func TestResolve_Totality(t *testing.T) {
	// Nenhum pedido, por pior que seja o cadastro, pode sair sem chave.
	orders := []domain.Order{
		{},
		{CustomerEmail: "   "},
		{Raw: map[string]any{"email": 42}},
		{CustomerKey: ""},
	}

	for _, order := range orders {
		resolution := Resolve(order)

		assert.NotEmpty(t, resolution.Key)
		assert.Equal(t, MethodSynthesized, resolution.Method)
		assert.True(t, IsGenericKey(resolution.Key))
	}
}

func TestIsGenericKey(t *testing.T) {
	assert.True(t, IsGenericKey("unknown_123"))
	assert.True(t, IsGenericKey("wake_customer_9"))
	assert.False(t, IsGenericKey("ana@loja.com.br"))
	assert.False(t, IsGenericKey("cliente-123"))
	assert.False(t, IsGenericKey(""))
}

func TestEmail_Aliases(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.Order
		expected string
	}{
		{
			name:     "Campo direto tem prioridade",
			order:    domain.Order{CustomerEmail: "direto@loja.com"},
			expected: "direto@loja.com",
		},
		{
			name: "Alias raso do payload bruto",
			order: domain.Order{
				Raw: map[string]any{"cliente_email": "raso@loja.com"},
			},
			expected: "raso@loja.com",
		},
		{
			name: "Alias aninhado em contato",
			order: domain.Order{
				Raw: map[string]any{"contato": map[string]any{"email": "aninhado@loja.com"}},
			},
			expected: "aninhado@loja.com",
		},
		{
			name:     "Sem email em lugar nenhum",
			order:    domain.Order{Raw: map[string]any{"email": "sem-arroba"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Email(tt.order))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", DisplayName(domain.Order{CustomerName: "Ana"}))
	assert.Equal(t, "Bia", DisplayName(domain.Order{
		Raw: map[string]any{"cliente": map[string]any{"nome": "Bia"}},
	}))
	assert.Equal(t, "Cliente", DisplayName(domain.Order{}))
}

func TestOrderDate(t *testing.T) {
	tests := []struct {
		name       string
		order      domain.Order
		expectedOK bool
		expected   time.Time
	}{
		{
			name:       "Formato ISO",
			order:      domain.Order{Date: "2024-03-10"},
			expectedOK: true,
			expected:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Formato brasileiro",
			order:      domain.Order{Date: "10/03/2024"},
			expectedOK: true,
			expected:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Timestamp com hora",
			order:      domain.Order{Date: "2024-03-10 14:30:00"},
			expectedOK: true,
			expected:   time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			name: "Data só no payload bruto",
			order: domain.Order{
				Raw: map[string]any{"created_at": "2024-03-09"},
			},
			expectedOK: true,
			expected:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "Data ilegível",
			order:      domain.Order{Date: "ontem"},
			expectedOK: false,
		},
		{
			name:       "Sem data",
			order:      domain.Order{},
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := OrderDate(tt.order)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, date)
			}
		})
	}
}

func TestSynthesize_WithoutID(t *testing.T) {
	// Sem id de pedido a chave ainda é gerada e continua genérica.
	resolution := Resolve(domain.Order{})

	assert.True(t, strings.HasPrefix(resolution.Key, "unknown_"))
	assert.Greater(t, len(resolution.Key), len("unknown_"))
}
