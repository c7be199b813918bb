package nuvemshop

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	nuvemshopdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop/domain"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop/nuvemshopclient"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

type NuvemshopIntegrator interface {
	GetOrdersByStore(storeID string, filters *domain.InsightFilters) ([]domain.Order, error)
}

type NuvemshopService struct {
	cfg    *config.Config
	Client nuvemshopclient.Client
}

func New(cfg *config.Config, client nuvemshopclient.Client) NuvemshopIntegrator {
	return &NuvemshopService{
		cfg:    cfg,
		Client: client,
	}
}

// GetOrdersByStore busca os pedidos do período na Nuvemshop e os converte
// para o modelo interno. Pedidos cancelados são filtrados aqui.
func (s *NuvemshopService) GetOrdersByStore(storeID string, filters *domain.InsightFilters) ([]domain.Order, error) {
	params := nuvemshopclient.OrdersByPeriodParams{
		StoreID:   storeID,
		StartDate: filters.StartDate.Format(time.DateOnly),
		EndDate:   filters.EndDate.Format(time.DateOnly),
	}

	resp, err := s.Client.GetOrders(params)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, wireOrder := range resp {
		if isCancelled(wireOrder.Status) {
			continue
		}
		orders = append(orders, mapOrder(wireOrder))
	}

	return orders, nil
}

func isCancelled(status string) bool {
	lowered := strings.ToLower(status)
	return strings.Contains(lowered, "cancelled") || strings.Contains(lowered, "cancelado")
}

func mapOrder(wireOrder nuvemshopdomain.Order) domain.Order {
	order := domain.Order{
		ID:              strconv.Itoa(wireOrder.ID),
		Source:          domain.SourceNuvemshop,
		Date:            wireOrder.CreatedAt,
		Total:           parseAmount(wireOrder.Total),
		Status:          wireOrder.Status,
		CustomerCpfCnpj: wireOrder.Customer.Identification,
		CustomerName:    wireOrder.Customer.Name,
		CustomerEmail:   wireOrder.Customer.Email,
		CustomerPhone:   wireOrder.Customer.Phone,
		Raw:             wireOrder.Raw,
	}

	if wireOrder.ID == 0 {
		order.ID = ""
	}

	for _, product := range wireOrder.Products {
		order.Items = append(order.Items, domain.OrderItem{
			SKU:         product.SKU,
			Description: product.Name,
			Quantity:    float64(product.Quantity),
			Total:       parseAmount(product.Price) * float64(product.Quantity),
		})
	}

	return order
}

// parseAmount converte o valor monetário serializado como string. Valor
// ilegível vira zero em vez de derrubar a agregação inteira.
func parseAmount(raw string) float64 {
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		logrus.WithField("value", raw).Debug("valor monetário ilegível, assumindo zero")
		return 0
	}

	return value
}
