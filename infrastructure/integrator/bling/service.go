package bling

import (
	"strconv"
	"strings"
	"time"

	blingdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/domain"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/blingclient"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

type BlingIntegrator interface {
	GetOrdersByAccount(params blingdomain.GetOrdersParams, filters *domain.InsightFilters) ([]domain.Order, error)
	CheckConnection(params blingdomain.CheckConnectionParams) (bool, error)
}

type BlingService struct {
	cfg    *config.Config
	Client blingclient.Client
}

func New(cfg *config.Config, client blingclient.Client) BlingIntegrator {
	return &BlingService{
		cfg:    cfg,
		Client: client,
	}
}

// GetOrdersByAccount busca os pedidos do período no Bling e os converte para
// o modelo interno. Pedidos cancelados são filtrados aqui, antes de qualquer
// cálculo de insight.
func (s *BlingService) GetOrdersByAccount(params blingdomain.GetOrdersParams, filters *domain.InsightFilters) ([]domain.Order, error) {
	blingConfig := s.cfg.BlingMultiClient[params.SecretName]

	paramsClient := blingclient.OrdersByPeriodParams{
		StartDate: filters.StartDate.Format(time.DateOnly),
		EndDate:   filters.EndDate.Format(time.DateOnly),
		CNPJ:      params.CNPJ,
	}

	resp, err := s.Client.GetOrders(paramsClient, &blingConfig)
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

func (s *BlingService) CheckConnection(params blingdomain.CheckConnectionParams) (bool, error) {
	paramsClient := blingclient.OrdersByPeriodParams{
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
		CNPJ:      params.CNPJ,
	}

	blingConfig := config.Bling{
		URL:         s.cfg.Bling.URL,
		AccessToken: params.Token,
	}

	_, err := s.Client.GetOrders(paramsClient, &blingConfig)
	if err != nil {
		return false, err
	}

	return true, nil
}

func isCancelled(status string) bool {
	return strings.Contains(strings.ToLower(status), "cancelado")
}

func mapOrder(wireOrder blingdomain.Order) domain.Order {
	order := domain.Order{
		ID:              strconv.Itoa(wireOrder.ID),
		Source:          domain.SourceBling,
		Date:            wireOrder.Date,
		Total:           wireOrder.Total,
		Status:          wireOrder.Status,
		CustomerCpfCnpj: wireOrder.Contact.DocumentNumber,
		CustomerName:    wireOrder.Contact.Name,
		CustomerEmail:   wireOrder.Contact.Email,
		CustomerPhone:   wireOrder.Contact.Phone,
		Seller:          wireOrder.Seller.Name,
		Raw:             wireOrder.Raw,
	}

	if wireOrder.ID == 0 {
		order.ID = ""
	}

	for _, item := range wireOrder.Items {
		order.Items = append(order.Items, domain.OrderItem{
			SKU:         item.Code,
			Description: item.Description,
			Quantity:    item.Quantity,
			Total:       item.Value * item.Quantity,
		})
	}

	return order
}
