package insighting

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling"
	blingdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/domain"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/nuvemshop"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/abc"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/b2b"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/identity"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/merging"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/rfm"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/segmenting"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Service computa os insights de clientes de uma conta a partir dos pedidos
// das origens. O pipeline é sempre o mesmo: buscar pedidos das origens em
// paralelo, mesclar, separar o período analisado do histórico e rodar os
// cálculos (segmentação, RFM, B2B, curva ABC e qualidade de resolução).
type Service struct {
	cfg               *config.Config
	blingService      bling.BlingIntegrator
	nuvemshopService  nuvemshop.NuvemshopIntegrator
	accountRepository repository.AccountRepository
	insightRepository repository.CustomerInsightRepository
	useCache          bool

	// now é substituível em testes.
	now func() time.Time
}

// NewService cria uma nova instância do serviço de insights de clientes
func NewService(
	cfg *config.Config,
	blingService bling.BlingIntegrator,
	nuvemshopService nuvemshop.NuvemshopIntegrator,
	accountRepo repository.AccountRepository,
) CustomerInsighter {
	return &Service{
		cfg:               cfg,
		blingService:      blingService,
		nuvemshopService:  nuvemshopService,
		accountRepository: accountRepo,
		useCache:          false,
		now:               time.Now,
	}
}

// WithCache habilita o cache de snapshots diários de insights
func (s *Service) WithCache(insightRepo repository.CustomerInsightRepository) *Service {
	s.insightRepository = insightRepo
	s.useCache = insightRepo != nil
	return s
}

// GetCustomerInsights computa os insights do período para uma conta. Quando o
// cache está habilitado e o período já se encerrou, o snapshot persistido do
// último dia do período é reutilizado em vez de reconsultar as origens.
func (s *Service) GetCustomerInsights(accountID string, filters *domain.InsightFilters) (*domain.CustomerInsights, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.WithError(err).WithField("account_id", accountID).
			Error("Erro ao buscar conta pelo ID no repositório")
		return nil, err
	}

	if account == nil {
		return nil, fmt.Errorf("conta não encontrada: %s", accountID)
	}

	cacheable := s.useCache && s.isClosedPeriod(filters)

	if cacheable {
		entry, err := s.insightRepository.GetByAccountIDAndDate(account.ID, *filters.EndDate)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": account.ID,
				"date":       filters.EndDate.Format(time.DateOnly),
			}).Warn("Erro ao buscar snapshot de insights no banco de dados")
		} else if entry != nil && entry.Insights != nil && sameWindow(entry.Insights.Filters, filters) {
			return entry.Insights, nil
		}
	}

	insights, err := s.ComputeInsights(account, filters)
	if err != nil {
		return nil, err
	}

	// Snapshots só são persistidos para períodos encerrados. O dia corrente
	// ainda recebe pedidos e seria um cache permanentemente desatualizado.
	if cacheable {
		entry := &domain.CustomerInsightEntry{
			AccountID: account.ID,
			Date:      *filters.EndDate,
			Insights:  insights,
		}
		if err := s.insightRepository.SaveOrUpdate(entry); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id": account.ID,
				"date":       filters.EndDate.Format(time.DateOnly),
			}).Warn("Erro ao salvar snapshot de insights no banco de dados")
		}
	}

	return insights, nil
}

// ComputeInsights roda o pipeline completo para uma conta já carregada.
func (s *Service) ComputeInsights(account *domain.Account, filters *domain.InsightFilters) (*domain.CustomerInsights, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	historyDays := account.HistoryDays
	if historyDays <= 0 {
		historyDays = s.cfg.Insights.HistoryDays
	}

	// Uma única busca cobre a janela histórica e o período analisado. A
	// separação é feita localmente pela data de cada pedido.
	historyStart := filters.StartDate.AddDate(0, 0, -historyDays)
	extended := &domain.InsightFilters{
		StartDate: &historyStart,
		EndDate:   filters.EndDate,
	}

	orders, err := s.GetOrdersByAccount(account, extended)
	if err != nil {
		return nil, err
	}

	current, historical := splitByPeriod(orders, *filters.StartDate)

	b2bSellers := account.B2BSellers
	if len(b2bSellers) == 0 {
		b2bSellers = s.cfg.Insights.B2BSellers
	}
	classifier := b2b.NewClassifier(b2bSellers)

	insights := &domain.CustomerInsights{
		Summary:      buildSummary(current),
		Segmentation: segmenting.Segment(current, historical),
		RFM:          rfm.ComputeAt(current, *filters.EndDate),
		B2B:          classifier.Split(current),
		ABC:          abc.Curve(current),
		Quality:      buildQuality(current),
		Filters:      filters,
	}

	return insights, nil
}

// GetOrdersByAccount busca os pedidos das duas origens em paralelo e os
// mescla. Origem não configurada na conta é simplesmente ignorada; origem
// configurada que falha é registrada e o cálculo segue com o que restou,
// a menos que todas as origens configuradas tenham falhado.
func (s *Service) GetOrdersByAccount(account *domain.Account, filters *domain.InsightFilters) ([]domain.Order, error) {
	var (
		blingOrders []domain.Order
		shopOrders  []domain.Order
		blingErr    error
		shopErr     error
	)

	hasBling := account.CNPJ != nil && *account.CNPJ != "" &&
		account.SecretName != nil && *account.SecretName != ""
	hasNuvemshop := account.StoreID != nil && *account.StoreID != ""

	if !hasBling && !hasNuvemshop {
		return nil, fmt.Errorf("conta %s não tem nenhuma origem de pedidos configurada", account.ID)
	}

	wg := sync.WaitGroup{}

	if hasBling {
		wg.Add(1)
		go func() {
			defer wg.Done()

			params := blingdomain.GetOrdersParams{
				CNPJ:       *account.CNPJ,
				SecretName: *account.SecretName,
			}

			blingOrders, blingErr = s.blingService.GetOrdersByAccount(params, filters)
			if blingErr != nil {
				logrus.WithError(blingErr).WithField("account_id", account.ID).
					Warn("Erro ao obter pedidos do Bling")
			}
		}()
	}

	if hasNuvemshop {
		wg.Add(1)
		go func() {
			defer wg.Done()

			shopOrders, shopErr = s.nuvemshopService.GetOrdersByStore(*account.StoreID, filters)
			if shopErr != nil {
				logrus.WithError(shopErr).WithField("account_id", account.ID).
					Warn("Erro ao obter pedidos da Nuvemshop")
			}
		}()
	}

	wg.Wait()

	blingFailed := hasBling && blingErr != nil
	shopFailed := hasNuvemshop && shopErr != nil
	if blingFailed && (!hasNuvemshop || shopFailed) {
		return nil, fmt.Errorf("todas as origens de pedidos falharam para a conta %s: %w", account.ID, blingErr)
	}
	if shopFailed && !hasBling {
		return nil, fmt.Errorf("todas as origens de pedidos falharam para a conta %s: %w", account.ID, shopErr)
	}

	return merging.Merge(blingOrders, shopOrders), nil
}

// isClosedPeriod indica se o período termina antes do dia corrente.
func (s *Service) isClosedPeriod(filters *domain.InsightFilters) bool {
	today := s.now().Format(time.DateOnly)
	return filters.EndDate.Format(time.DateOnly) < today
}

// sameWindow compara duas janelas de filtro pela data, ignorando a hora.
func sameWindow(a, b *domain.InsightFilters) bool {
	if a == nil || b == nil || a.StartDate == nil || b.StartDate == nil ||
		a.EndDate == nil || b.EndDate == nil {
		return false
	}

	return a.StartDate.Format(time.DateOnly) == b.StartDate.Format(time.DateOnly) &&
		a.EndDate.Format(time.DateOnly) == b.EndDate.Format(time.DateOnly)
}

// splitByPeriod separa os pedidos entre o período analisado e a janela
// histórica anterior a ele. Pedido com data ilegível fica no período
// analisado, que é onde ele afeta menos a segmentação.
func splitByPeriod(orders []domain.Order, periodStart time.Time) (current, historical []domain.Order) {
	cutoff := periodStart.Format(time.DateOnly)

	current = make([]domain.Order, 0, len(orders))
	historical = make([]domain.Order, 0)

	for _, order := range orders {
		date, ok := identity.OrderDate(order)
		if ok && date.Format(time.DateOnly) < cutoff {
			historical = append(historical, order)
			continue
		}
		current = append(current, order)
	}

	return current, historical
}

func buildSummary(orders []domain.Order) *domain.SalesSummary {
	summary := &domain.SalesSummary{
		OrdersCount: len(orders),
	}

	total := 0.0
	for _, order := range orders {
		total += order.Total
	}

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(total)
	if summary.OrdersCount > 0 {
		summary.AverageTicket = utils.RoundWithTwoDecimalPlace(total / float64(summary.OrdersCount))
	}

	return summary
}

// buildQuality mede por qual caminho a identidade de cada pedido foi
// resolvida. Pedidos resolvidos por fallback genérico ou sintetizados não
// identificam um cliente real e abaixam o percentual de resolução.
func buildQuality(orders []domain.Order) *domain.ResolutionQuality {
	quality := &domain.ResolutionQuality{
		Total: len(orders),
	}

	for _, order := range orders {
		switch identity.Resolve(order).Method {
		case identity.MethodPrecomputed:
			quality.ByPrecomputed++
		case identity.MethodEmail:
			quality.ByEmail++
		case identity.MethodCustomerID:
			quality.ByCustomerID++
		case identity.MethodGeneric:
			quality.ByGeneric++
		case identity.MethodSynthesized:
			quality.Synthesized++
		}
	}

	if quality.Total > 0 {
		resolved := quality.Total - quality.ByGeneric - quality.Synthesized
		quality.ResolvedPct = utils.RoundWithTwoDecimalPlace(
			float64(resolved) / float64(quality.Total) * 100,
		)
	}

	return quality
}
