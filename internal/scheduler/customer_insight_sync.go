package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
)

// CustomerInsightSyncConfig representa a configuração do agendador de
// sincronização de snapshots de insights de clientes
type CustomerInsightSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	RetentionDays       int
	SyncEnabled         bool
}

// CustomerInsightSyncService computa e persiste, fora do horário de pico, os
// snapshots diários de insights de clientes de todas as contas ativas. Cada
// snapshot cobre um único dia já encerrado, pronto para ser servido pelo
// cache da API sem reconsultar o Bling e a Nuvemshop.
type CustomerInsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              CustomerInsightSyncConfig
	appConfig           *config.Config
	accountRepo         repository.AccountRepository
	insightRepo         repository.CustomerInsightRepository
	insightService      insighting.CustomerInsighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewCustomerInsightSyncService cria uma nova instância do serviço de sincronização
func NewCustomerInsightSyncService(
	accountRepo repository.AccountRepository,
	insightRepo repository.CustomerInsightRepository,
	insightService insighting.CustomerInsighter,
	appConfig *config.Config,
) *CustomerInsightSyncService {
	// Criar a configuração com base na config global
	syncConfig := CustomerInsightSyncConfig{
		CronSchedule:        appConfig.InsightSync.CronSchedule,
		LookbackDays:        appConfig.InsightSync.LookbackDays,
		RequestDelaySeconds: appConfig.InsightSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.InsightSync.MaxConcurrentJobs,
		RetentionDays:       appConfig.InsightSync.RetentionDays,
		SyncEnabled:         appConfig.InsightSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"retention_days":        syncConfig.RetentionDays,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de insights de clientes carregada")

	return &CustomerInsightSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		accountRepo:    accountRepo,
		insightRepo:    insightRepo,
		insightService: insightService,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *CustomerInsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de insights de clientes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de insights de clientes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCustomerInsights()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de insights de clientes: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de insights de clientes")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCustomerInsights sincroniza os snapshots de todas as contas ativas
func (s *CustomerInsightSyncService) syncAllCustomerInsights() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights de clientes já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de insights de clientes para todas as contas ativas")

	activeAccounts, err := s.getActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para sincronização de insights de clientes")
		return
	}

	if len(activeAccounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para sincronização de insights de clientes")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização de insights de clientes")

	s.processInsightsForDates(activeAccounts, dates)

	s.cleanupOldSnapshots()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"accounts": len(activeAccounts),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização de insights de clientes concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveAccounts busca e filtra as contas ativas com pelo menos uma
// origem de pedidos configurada
func (s *CustomerInsightSyncService) getActiveAccounts() ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta encontrada para sincronização de insights de clientes")
		return []*domain.Account{}, nil
	}

	activeAccounts := make([]*domain.Account, 0, len(accounts))
	for _, account := range accounts {
		if hasOrderSource(account) {
			activeAccounts = append(activeAccounts, account)
		}
	}

	logrus.WithFields(logrus.Fields{
		"active_accounts": len(activeAccounts),
	}).Info("Contas encontradas para sincronização de insights de clientes")

	return activeAccounts, nil
}

func hasOrderSource(account *domain.Account) bool {
	hasBling := account.CNPJ != nil && *account.CNPJ != "" &&
		account.SecretName != nil && *account.SecretName != ""
	hasNuvemshop := account.StoreID != nil && *account.StoreID != ""
	return hasBling || hasNuvemshop
}

// getDatesToProcess cria o conjunto de datas para processar, começando de
// ontem e indo para trás. O dia corrente nunca vira snapshot.
func (s *CustomerInsightSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}
	return dates
}

// processInsightsForDates processa os snapshots de cada conta em paralelo,
// limitado pelo número máximo de jobs concorrentes
func (s *CustomerInsightSyncService) processInsightsForDates(accounts []*domain.Account, dates []time.Time) {
	// Ordenação feita uma única vez, em uma cópia: a fatia é compartilhada
	// entre todos os workers e reordená-la dentro deles seria uma corrida.
	ordered := make([]time.Time, len(dates))
	copy(ordered, dates)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, account := range accounts {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"account_id":   acc.ID,
				"account_name": acc.Name,
				"total_dates":  len(dates),
			}).Info("Processando insights de clientes para conta")

			s.processAccountForAllDates(acc, ordered)
		}(account)
	}

	wg.Wait()
}

// processAccountForAllDates processa os snapshots de uma conta, do dia mais
// antigo para o mais recente, respeitando o intervalo entre requisições.
// A fatia de datas já chega ordenada e não pode ser modificada aqui: ela é
// compartilhada com os workers das outras contas.
func (s *CustomerInsightSyncService) processAccountForAllDates(acc *domain.Account, dates []time.Time) {
	for _, date := range dates {
		s.processAccountSnapshot(acc, date)

		// Aguardar antes da próxima requisição para evitar sobrecarga nas APIs
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}
}

// processAccountSnapshot computa e persiste o snapshot de um dia para uma
// conta. Snapshot já existente é recomputado e sobrescrito, o que absorve
// pedidos que chegaram atrasados nas origens.
func (s *CustomerInsightSyncService) processAccountSnapshot(acc *domain.Account, date time.Time) {
	filters := &domain.InsightFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   acc.ID,
		"account_name": acc.Name,
		"date":         date.Format(time.DateOnly),
	}).Info("Computando insights de clientes para conta e data")

	insights, err := s.insightService.ComputeInsights(acc, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao computar insights de clientes para conta e data")
		return
	}

	entry := &domain.CustomerInsightEntry{
		AccountID: acc.ID,
		Date:      date,
		Insights:  insights,
	}

	if err := s.insightRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": acc.ID,
			"date":       date.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("Erro ao salvar snapshot de insights no banco de dados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": acc.ID,
		"date":       date.Format(time.DateOnly),
	}).Info("Snapshot de insights salvo com sucesso para conta e data")
}

// cleanupOldSnapshots apaga snapshots além da janela de retenção
func (s *CustomerInsightSyncService) cleanupOldSnapshots() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.insightRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao apagar snapshots antigos de insights")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos de insights apagados")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de insights de clientes
func (s *CustomerInsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de insights de clientes já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de insights de clientes")
	go s.syncAllCustomerInsights()
}

// GetStatus retorna o status atual do agendador
func (s *CustomerInsightSyncService) GetStatus() map[string]any {
	retention := "dados mantidos permanentemente"
	if s.config.RetentionDays > 0 {
		retention = fmt.Sprintf("snapshots mantidos por %d dias", s.config.RetentionDays)
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_policy":       retention,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
