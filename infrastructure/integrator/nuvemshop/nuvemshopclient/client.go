package nuvemshopclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

type Client interface {
	GetOrders(params OrdersByPeriodParams) (OrdersByPeriodResponse, error)
}

type NuvemshopClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &NuvemshopClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
