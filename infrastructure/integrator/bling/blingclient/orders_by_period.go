package blingclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	blingdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/domain"
	"github.com/vfg2006/commerce-insights-api/internal/config"
)

type OrdersByPeriodParams struct {
	StartDate string
	EndDate   string
	CNPJ      string
}

type OrdersByPeriodResponse []blingdomain.Order

// ordersEnvelope é o envelope de resposta da API do Bling.
type ordersEnvelope struct {
	Data []blingdomain.Order `json:"data"`
}

func (c *BlingClient) GetOrders(params OrdersByPeriodParams, blingConfig *config.Bling) (OrdersByPeriodResponse, error) {
	var response OrdersByPeriodResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(blingConfig.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/pedidos/vendas")

	query := endpoint.Query()
	query.Set("dataInicial", params.StartDate)
	query.Set("dataFinal", params.EndDate)
	query.Set("cnpj", params.CNPJ)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+blingConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var envelope ordersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return OrdersByPeriodResponse(envelope.Data), nil
}
