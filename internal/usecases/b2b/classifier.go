package b2b

import (
	"fmt"
	"strings"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Tamanhos de documento fiscal após remover a pontuação. Nenhuma validação
// de dígito verificador é feita: só o formato decide.
const (
	cnpjDigits = 14
	cpfDigits  = 11
)

// Classifier divide pedidos entre atacado (B2B) e varejo (B2C). Além do
// formato do documento, uma lista fixa de vendedores sabidamente atacado,
// mantida pela operação, força a classificação B2B nas vendas em que o
// documento não foi capturado.
type Classifier struct {
	b2bSellers map[string]struct{}
}

func NewClassifier(b2bSellers []string) *Classifier {
	sellers := make(map[string]struct{}, len(b2bSellers))
	for _, seller := range b2bSellers {
		if seller = strings.TrimSpace(seller); seller != "" {
			sellers[seller] = struct{}{}
		}
	}

	return &Classifier{b2bSellers: sellers}
}

// Split agrega receita, pedidos e clientes por segmento. A regra por pedido:
// documento com 14 dígitos → B2B; senão vendedor na lista fixa → B2B; senão
// B2C. CPF (11 dígitos) e documentos malformados ou ausentes caem no varejo
// por omissão: desconhecido é consumidor.
func (c *Classifier) Split(orders []domain.Order) *domain.B2BSplit {
	split := &domain.B2BSplit{}

	b2bCustomers := make(map[string]struct{})
	b2cCustomers := make(map[string]struct{})

	for _, order := range orders {
		customer := localCustomerKey(order)

		if c.isB2B(order) {
			split.B2BRevenue += order.Total
			split.B2BOrders++
			b2bCustomers[customer] = struct{}{}
			continue
		}

		split.B2CRevenue += order.Total
		split.B2COrders++
		b2cCustomers[customer] = struct{}{}
	}

	split.B2BRevenue = utils.RoundWithTwoDecimalPlace(split.B2BRevenue)
	split.B2CRevenue = utils.RoundWithTwoDecimalPlace(split.B2CRevenue)
	split.B2BCustomers = len(b2bCustomers)
	split.B2CCustomers = len(b2cCustomers)

	if split.B2BOrders > 0 {
		split.B2BAverageTicket = utils.RoundWithTwoDecimalPlace(split.B2BRevenue / float64(split.B2BOrders))
	}
	if split.B2COrders > 0 {
		split.B2CAverageTicket = utils.RoundWithTwoDecimalPlace(split.B2CRevenue / float64(split.B2COrders))
	}

	return split
}

func (c *Classifier) isB2B(order domain.Order) bool {
	if len(utils.DigitsOnly(order.CustomerCpfCnpj)) == cnpjDigits {
		return true
	}

	_, listed := c.b2bSellers[order.Seller]
	return listed
}

// localCustomerKey usa um esquema de identidade próprio, mais simples que o
// resolvedor completo: documento, senão email, senão nome, senão uma chave
// sintética por pedido. Sem varredura de aliases no payload bruto.
func localCustomerKey(order domain.Order) string {
	if digits := utils.DigitsOnly(order.CustomerCpfCnpj); digits != "" {
		return digits
	}
	if order.CustomerEmail != "" {
		return strings.ToLower(order.CustomerEmail)
	}
	if order.CustomerName != "" {
		return order.CustomerName
	}
	return fmt.Sprintf("%s_%s", order.Source, order.ID)
}
