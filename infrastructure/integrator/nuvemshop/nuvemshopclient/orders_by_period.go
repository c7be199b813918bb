package nuvemshopclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	nuvemshopdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop/domain"
)

type OrdersByPeriodParams struct {
	StoreID   string
	StartDate string
	EndDate   string
}

type OrdersByPeriodResponse []nuvemshopdomain.Order

func (c *NuvemshopClient) GetOrders(params OrdersByPeriodParams) (OrdersByPeriodResponse, error) {
	var response OrdersByPeriodResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Nuvemshop.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, params.StoreID, "orders")

	query := endpoint.Query()
	query.Set("created_at_min", params.StartDate)
	query.Set("created_at_max", params.EndDate)
	query.Set("per_page", "200")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authentication", "bearer "+c.config.Nuvemshop.AccessToken)
	req.Header.Set("User-Agent", c.config.Nuvemshop.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
