package insighting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	blingdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/domain"
	blingmocks "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/mocks"
	nuvemshopmocks "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop/mocks"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func testConfig() *config.Config {
	return &config.Config{
		Insights: config.Insights{
			HistoryDays: 30,
		},
	}
}

// fixedNow deixa o período de teste sempre encerrado em relação ao relógio.
var fixedNow = time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *blingmocks.MockBlingIntegrator, *nuvemshopmocks.MockNuvemshopIntegrator, *mocks.MockAccountRepository, *mocks.MockCustomerInsightRepository) {
	ctrl := gomock.NewController(t)

	blingMock := blingmocks.NewMockBlingIntegrator(ctrl)
	nuvemshopMock := nuvemshopmocks.NewMockNuvemshopIntegrator(ctrl)
	accountRepoMock := mocks.NewMockAccountRepository(ctrl)
	insightRepoMock := mocks.NewMockCustomerInsightRepository(ctrl)

	service := &Service{
		cfg:               testConfig(),
		blingService:      blingMock,
		nuvemshopService:  nuvemshopMock,
		accountRepository: accountRepoMock,
		now:               func() time.Time { return fixedNow },
	}

	return service, blingMock, nuvemshopMock, accountRepoMock, insightRepoMock
}

func blingOnlyAccount() *domain.Account {
	return &domain.Account{
		ID:         "ACC001",
		Name:       "Loja A",
		CNPJ:       stringPtr("12345678000190"),
		SecretName: stringPtr("loja_a"),
		Status:     domain.AccountStatusActive,
	}
}

func TestGetCustomerInsights_ValidatesFilters(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	tests := []struct {
		name    string
		filters *domain.InsightFilters
	}{
		{name: "Filtros ausentes", filters: nil},
		{name: "Sem data de início", filters: &domain.InsightFilters{EndDate: datePtr(2024, 6, 30)}},
		{name: "Sem data de fim", filters: &domain.InsightFilters{StartDate: datePtr(2024, 6, 1)}},
		{
			name: "Início depois do fim",
			filters: &domain.InsightFilters{
				StartDate: datePtr(2024, 6, 30),
				EndDate:   datePtr(2024, 6, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights, err := service.GetCustomerInsights("ACC001", tt.filters)

			assert.Error(t, err)
			assert.Nil(t, insights)
		})
	}
}

func TestGetCustomerInsights_AccountNotFound(t *testing.T) {
	service, _, _, accountRepoMock, _ := newTestService(t)

	accountRepoMock.EXPECT().
		GetAccountByID("ACC404").
		Return(nil, nil)

	insights, err := service.GetCustomerInsights("ACC404", &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	})

	assert.Error(t, err)
	assert.Nil(t, insights)
	assert.Contains(t, err.Error(), "conta não encontrada")
}

func TestGetCustomerInsights_ClosedPeriodUsesSnapshot(t *testing.T) {
	service, _, _, accountRepoMock, insightRepoMock := newTestService(t)
	service.WithCache(insightRepoMock)

	filters := &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	}

	cached := &domain.CustomerInsights{
		Summary: &domain.SalesSummary{TotalRevenue: 1234.56, OrdersCount: 10},
		Filters: &domain.InsightFilters{
			StartDate: datePtr(2024, 6, 1),
			EndDate:   datePtr(2024, 6, 30),
		},
	}

	accountRepoMock.EXPECT().
		GetAccountByID("ACC001").
		Return(blingOnlyAccount(), nil)

	insightRepoMock.EXPECT().
		GetByAccountIDAndDate("ACC001", *filters.EndDate).
		Return(&domain.CustomerInsightEntry{
			AccountID: "ACC001",
			Date:      *filters.EndDate,
			Insights:  cached,
		}, nil)

	// Nenhuma chamada às origens deve acontecer num acerto de cache.
	insights, err := service.GetCustomerInsights("ACC001", filters)

	assert.NoError(t, err)
	assert.Equal(t, cached, insights)
}

func TestGetCustomerInsights_SnapshotWithDifferentWindowIsIgnored(t *testing.T) {
	service, blingMock, _, accountRepoMock, insightRepoMock := newTestService(t)
	service.WithCache(insightRepoMock)

	filters := &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	}

	accountRepoMock.EXPECT().
		GetAccountByID("ACC001").
		Return(blingOnlyAccount(), nil)

	// Snapshot do mesmo dia final, mas de uma janela diferente: não serve.
	insightRepoMock.EXPECT().
		GetByAccountIDAndDate("ACC001", *filters.EndDate).
		Return(&domain.CustomerInsightEntry{
			AccountID: "ACC001",
			Date:      *filters.EndDate,
			Insights: &domain.CustomerInsights{
				Filters: &domain.InsightFilters{
					StartDate: datePtr(2024, 6, 30),
					EndDate:   datePtr(2024, 6, 30),
				},
			},
		}, nil)

	blingMock.EXPECT().
		GetOrdersByAccount(gomock.Any(), gomock.Any()).
		Return([]domain.Order{
			{ID: "1", Source: domain.SourceBling, Date: "2024-06-15", CustomerEmail: "ana@loja.com", Total: 100},
		}, nil)

	insightRepoMock.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.CustomerInsightEntry) error {
			assert.Equal(t, "ACC001", entry.AccountID)
			assert.Equal(t, *filters.EndDate, entry.Date)
			assert.NotNil(t, entry.Insights)
			return nil
		})

	insights, err := service.GetCustomerInsights("ACC001", filters)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, insights.Summary.TotalRevenue)
}

func TestGetCustomerInsights_OpenPeriodSkipsCache(t *testing.T) {
	service, blingMock, _, accountRepoMock, insightRepoMock := newTestService(t)
	service.WithCache(insightRepoMock)

	// Período terminando hoje: nem lê nem grava snapshot.
	today := fixedNow.Truncate(24 * time.Hour)
	filters := &domain.InsightFilters{
		StartDate: datePtr(2024, 7, 1),
		EndDate:   &today,
	}

	accountRepoMock.EXPECT().
		GetAccountByID("ACC001").
		Return(blingOnlyAccount(), nil)

	blingMock.EXPECT().
		GetOrdersByAccount(gomock.Any(), gomock.Any()).
		Return([]domain.Order{}, nil)

	insights, err := service.GetCustomerInsights("ACC001", filters)

	assert.NoError(t, err)
	assert.Equal(t, 0, insights.Summary.OrdersCount)
}

func TestComputeInsights_ExtendedFetchWindow(t *testing.T) {
	service, blingMock, _, _, _ := newTestService(t)

	filters := &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	}

	blingMock.EXPECT().
		GetOrdersByAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(params blingdomain.GetOrdersParams, extended *domain.InsightFilters) ([]domain.Order, error) {
			// Uma única busca cobre a janela histórica e o período analisado.
			assert.Equal(t, "12345678000190", params.CNPJ)
			assert.Equal(t, "2024-05-02", extended.StartDate.Format(time.DateOnly))
			assert.Equal(t, "2024-06-30", extended.EndDate.Format(time.DateOnly))
			return []domain.Order{
				{ID: "h1", Source: domain.SourceBling, Date: "2024-05-10", CustomerEmail: "ana@loja.com", Total: 80},
				{ID: "c1", Source: domain.SourceBling, Date: "2024-06-10", CustomerEmail: "ana@loja.com", Total: 100},
				{ID: "c2", Source: domain.SourceBling, Date: "2024-06-12", CustomerEmail: "bia@loja.com", Total: 200},
			}, nil
		})

	insights, err := service.ComputeInsights(blingOnlyAccount(), filters)

	assert.NoError(t, err)

	// Só os pedidos do período analisado entram nos totais.
	assert.Equal(t, 2, insights.Summary.OrdersCount)
	assert.Equal(t, 300.0, insights.Summary.TotalRevenue)

	// O pedido histórico faz a Ana contar como recorrente.
	assert.Equal(t, 100.0, insights.Segmentation.RetentionRevenue)
	assert.Equal(t, 200.0, insights.Segmentation.NewRevenue)
	assert.Equal(t, 1, insights.Segmentation.ReturningCustomers)
	assert.Equal(t, 1, insights.Segmentation.NewCustomers)

	assert.Len(t, insights.RFM, 2)
	assert.NotNil(t, insights.B2B)
	assert.NotNil(t, insights.Quality)
	assert.Equal(t, filters, insights.Filters)
}

func TestGetOrdersByAccount_NoConfiguredSource(t *testing.T) {
	service, _, _, _, _ := newTestService(t)

	account := &domain.Account{ID: "ACC002", Name: "Loja Sem Origem"}

	orders, err := service.GetOrdersByAccount(account, &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	})

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "nenhuma origem de pedidos configurada")
}

func TestGetOrdersByAccount_PartialFailureKeepsSurvivingSource(t *testing.T) {
	service, blingMock, nuvemshopMock, _, _ := newTestService(t)

	account := blingOnlyAccount()
	account.StoreID = stringPtr("9001")

	blingMock.EXPECT().
		GetOrdersByAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("bling indisponível"))

	nuvemshopMock.EXPECT().
		GetOrdersByStore("9001", gomock.Any()).
		Return([]domain.Order{
			{ID: "10", Source: domain.SourceNuvemshop, Total: 42},
		}, nil)

	orders, err := service.GetOrdersByAccount(account, &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	})

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "10", orders[0].ID)
}

func TestGetOrdersByAccount_AllSourcesFailed(t *testing.T) {
	service, blingMock, nuvemshopMock, _, _ := newTestService(t)

	account := blingOnlyAccount()
	account.StoreID = stringPtr("9001")

	blingMock.EXPECT().
		GetOrdersByAccount(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("bling indisponível"))

	nuvemshopMock.EXPECT().
		GetOrdersByStore("9001", gomock.Any()).
		Return(nil, fmt.Errorf("nuvemshop indisponível"))

	orders, err := service.GetOrdersByAccount(account, &domain.InsightFilters{
		StartDate: datePtr(2024, 6, 1),
		EndDate:   datePtr(2024, 6, 30),
	})

	assert.Error(t, err)
	assert.Nil(t, orders)
	assert.Contains(t, err.Error(), "todas as origens de pedidos falharam")
}

func TestSplitByPeriod(t *testing.T) {
	periodStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	orders := []domain.Order{
		{ID: "1", Date: "2024-05-31", Total: 10},
		{ID: "2", Date: "2024-06-01", Total: 20},
		{ID: "3", Date: "2024-06-15", Total: 30},
		{ID: "4", Date: "sem-data", Total: 40}, // ilegível fica no período analisado
	}

	current, historical := splitByPeriod(orders, periodStart)

	assert.Len(t, historical, 1)
	assert.Equal(t, "1", historical[0].ID)

	assert.Len(t, current, 3)
	assert.Equal(t, "2", current[0].ID)
	assert.Equal(t, "4", current[2].ID)
}

func TestBuildQuality(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", CustomerKey: "cliente-1"},                // precomputed
		{ID: "2", CustomerEmail: "ana@loja.com"},           // email
		{ID: "3", Raw: map[string]any{"customer_id": "7"}}, // customer_id
		{ID: "4", CustomerKey: "wake_customer_3"},          // generic
		{ID: "5"},                                          // synthesized
	}

	quality := buildQuality(orders)

	assert.Equal(t, 5, quality.Total)
	assert.Equal(t, 1, quality.ByPrecomputed)
	assert.Equal(t, 1, quality.ByEmail)
	assert.Equal(t, 1, quality.ByCustomerID)
	assert.Equal(t, 1, quality.ByGeneric)
	assert.Equal(t, 1, quality.Synthesized)
	assert.Equal(t, 60.0, quality.ResolvedPct)
}

func TestBuildSummary(t *testing.T) {
	orders := []domain.Order{
		{ID: "1", Total: 10.50},
		{ID: "2", Total: 20.52},
	}

	summary := buildSummary(orders)

	assert.Equal(t, 2, summary.OrdersCount)
	assert.Equal(t, 31.02, summary.TotalRevenue)
	assert.Equal(t, 15.51, summary.AverageTicket)
}
