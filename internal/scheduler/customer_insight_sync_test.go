package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	insightingmocks "github.com/vfg2006/commerce-insights-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestGetActiveAccounts_FiltersAccountsWithoutOrderSource(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAccountRepo := mocks.NewMockAccountRepository(ctrl)

	service := &CustomerInsightSyncService{
		accountRepo: mockAccountRepo,
	}

	accounts := []*domain.Account{
		{
			ID:         "ACC001",
			Name:       "Loja com Bling",
			CNPJ:       stringPtr("12345678000190"),
			SecretName: stringPtr("loja_a"),
		},
		{
			ID:      "ACC002",
			Name:    "Loja com Nuvemshop",
			StoreID: stringPtr("9001"),
		},
		{
			ID:   "ACC003",
			Name: "Loja sem origem configurada",
		},
		{
			ID:   "ACC004",
			Name: "Loja com Bling incompleto",
			CNPJ: stringPtr("12345678000190"), // sem secret_name não dá para autenticar
		},
	}

	mockAccountRepo.EXPECT().
		ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
		Return(accounts, nil)

	active, err := service.getActiveAccounts()

	assert.NoError(t, err)
	assert.Len(t, active, 2)
	assert.Equal(t, "ACC001", active[0].ID)
	assert.Equal(t, "ACC002", active[1].ID)
}

func TestGetDatesToProcess_StartsYesterdayGoingBack(t *testing.T) {
	service := &CustomerInsightSyncService{
		config: CustomerInsightSyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	assert.Equal(t, yesterday, dates[0].Format(time.DateOnly))

	// O dia corrente nunca entra na lista.
	today := time.Now().Format(time.DateOnly)
	for _, date := range dates {
		assert.NotEqual(t, today, date.Format(time.DateOnly))
	}

	// Datas decrescem um dia por posição.
	for i := 1; i < len(dates); i++ {
		expected := dates[i-1].AddDate(0, 0, -1).Format(time.DateOnly)
		assert.Equal(t, expected, dates[i].Format(time.DateOnly))
	}
}

func TestProcessAccountSnapshot_PersistsSingleDayWindow(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockInsightRepo := mocks.NewMockCustomerInsightRepository(ctrl)
	mockInsighter := insightingmocks.NewMockCustomerInsighter(ctrl)

	service := &CustomerInsightSyncService{
		insightRepo:    mockInsightRepo,
		insightService: mockInsighter,
	}

	account := &domain.Account{
		ID:         "ACC001",
		Name:       "Loja A",
		CNPJ:       stringPtr("12345678000190"),
		SecretName: stringPtr("loja_a"),
	}
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	computed := &domain.CustomerInsights{
		Summary: &domain.SalesSummary{TotalRevenue: 500, OrdersCount: 3},
	}

	mockInsighter.EXPECT().
		ComputeInsights(account, gomock.Any()).
		DoAndReturn(func(_ *domain.Account, filters *domain.InsightFilters) (*domain.CustomerInsights, error) {
			// Snapshot cobre exatamente um dia.
			assert.Equal(t, date, *filters.StartDate)
			assert.Equal(t, date, *filters.EndDate)
			return computed, nil
		})

	mockInsightRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.CustomerInsightEntry) error {
			assert.Equal(t, "ACC001", entry.AccountID)
			assert.Equal(t, date, entry.Date)
			assert.Equal(t, computed, entry.Insights)
			return nil
		})

	service.processAccountSnapshot(account, date)
}

func TestProcessAccountSnapshot_ComputeFailureDoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockInsightRepo := mocks.NewMockCustomerInsightRepository(ctrl)
	mockInsighter := insightingmocks.NewMockCustomerInsighter(ctrl)

	service := &CustomerInsightSyncService{
		insightRepo:    mockInsightRepo,
		insightService: mockInsighter,
	}

	account := &domain.Account{ID: "ACC001", Name: "Loja A"}
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	mockInsighter.EXPECT().
		ComputeInsights(account, gomock.Any()).
		Return(nil, fmt.Errorf("origens indisponíveis"))

	// Nenhuma escrita no repositório deve acontecer.
	service.processAccountSnapshot(account, date)
}

func TestProcessInsightsForDates_SharedDatesStayIntactAcrossWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockInsightRepo := mocks.NewMockCustomerInsightRepository(ctrl)
	mockInsighter := insightingmocks.NewMockCustomerInsighter(ctrl)

	service := &CustomerInsightSyncService{
		config:         CustomerInsightSyncConfig{MaxConcurrentJobs: 4},
		insightRepo:    mockInsightRepo,
		insightService: mockInsighter,
	}

	accounts := make([]*domain.Account, 0, 4)
	for i := 1; i <= 4; i++ {
		accounts = append(accounts, &domain.Account{
			ID:         fmt.Sprintf("ACC%03d", i),
			Name:       fmt.Sprintf("Loja %d", i),
			CNPJ:       stringPtr("12345678000190"),
			SecretName: stringPtr("loja"),
		})
	}

	// Mesma ordem decrescente produzida por getDatesToProcess.
	base := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		base.AddDate(0, 0, 2),
		base.AddDate(0, 0, 1),
		base,
	}
	original := make([]time.Time, len(dates))
	copy(original, dates)

	var mu sync.Mutex
	processedByAccount := make(map[string][]time.Time)

	mockInsighter.EXPECT().
		ComputeInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(acc *domain.Account, filters *domain.InsightFilters) (*domain.CustomerInsights, error) {
			mu.Lock()
			processedByAccount[acc.ID] = append(processedByAccount[acc.ID], *filters.StartDate)
			mu.Unlock()
			return &domain.CustomerInsights{}, nil
		}).
		Times(len(accounts) * len(dates))

	mockInsightRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil).
		Times(len(accounts) * len(dates))

	service.processInsightsForDates(accounts, dates)

	// Os workers rodam em paralelo mas nenhum deles reordena a fatia
	// compartilhada de datas.
	assert.Equal(t, original, dates)

	// Cada conta processa do dia mais antigo para o mais recente.
	for _, account := range accounts {
		processed := processedByAccount[account.ID]
		assert.Len(t, processed, len(dates))
		for i := 1; i < len(processed); i++ {
			assert.True(t, processed[i].After(processed[i-1]))
		}
	}
}

func TestCleanupOldSnapshots(t *testing.T) {
	tests := []struct {
		name          string
		retentionDays int
		setup         func(repo *mocks.MockCustomerInsightRepository)
	}{
		{
			name:          "Retenção zero desabilita a limpeza",
			retentionDays: 0,
			setup:         func(repo *mocks.MockCustomerInsightRepository) {},
		},
		{
			name:          "Retenção positiva apaga os snapshots antigos",
			retentionDays: 90,
			setup: func(repo *mocks.MockCustomerInsightRepository) {
				repo.EXPECT().
					DeleteOlderThan(90).
					Return(int64(12), nil)
			},
		},
		{
			name:          "Erro na limpeza não derruba a sincronização",
			retentionDays: 30,
			setup: func(repo *mocks.MockCustomerInsightRepository) {
				repo.EXPECT().
					DeleteOlderThan(30).
					Return(int64(0), fmt.Errorf("banco indisponível"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockInsightRepo := mocks.NewMockCustomerInsightRepository(ctrl)
			tt.setup(mockInsightRepo)

			service := &CustomerInsightSyncService{
				config:      CustomerInsightSyncConfig{RetentionDays: tt.retentionDays},
				insightRepo: mockInsightRepo,
			}

			service.cleanupOldSnapshots()
		})
	}
}

func TestGetStatus(t *testing.T) {
	service := &CustomerInsightSyncService{
		config: CustomerInsightSyncConfig{
			CronSchedule:      "0 4 * * *",
			LookbackDays:      7,
			MaxConcurrentJobs: 3,
			RetentionDays:     90,
			SyncEnabled:       true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 4 * * *", status["sync_cron"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, "snapshots mantidos por 90 dias", status["retention_policy"])
}

func TestGetStatus_WithoutRetention(t *testing.T) {
	service := &CustomerInsightSyncService{}

	status := service.GetStatus()

	assert.Equal(t, "dados mantidos permanentemente", status["retention_policy"])
}
