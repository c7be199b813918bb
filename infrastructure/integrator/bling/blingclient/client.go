package blingclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

type Client interface {
	GetOrders(params OrdersByPeriodParams, blingConfig *config.Bling) (OrdersByPeriodResponse, error)
}

type BlingClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &BlingClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
