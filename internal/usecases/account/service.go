package account

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling"
	blingdomain "github.com/vfg2006/commerce-insights-api/infrastructure/integrator/bling/domain"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

type AccountService interface {
	ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error)
	UpdateAccount(request *domain.UpdateAccountRequest) (*domain.UpdateAccountResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	blingService      bling.BlingIntegrator
	cfg               *config.Config
}

func NewService(
	accountRepository repository.AccountRepository,
	blingService bling.BlingIntegrator,
	cfg *config.Config,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		blingService:      blingService,
		cfg:               cfg,
	}
}

func (s *Service) ListAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	accountsResponse := make([]*domain.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		accountsResponse = append(accountsResponse, &domain.AccountResponse{
			ID:       acc.ID,
			Name:     acc.Name,
			Nickname: acc.Nickname,
			CNPJ:     acc.CNPJ,
			HasToken: acc.SecretName != nil,
			Status:   acc.Status,
		})
	}

	return accountsResponse, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) (*domain.UpdateAccountResponse, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	if request.Token != nil && *request.Token != "" {
		cnpj := request.CNPJ
		if cnpj == nil {
			cnpj = account.CNPJ
		}
		if cnpj == nil {
			return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrMissingRequiredData, request.ID, "CNPJ é obrigatório para validar o token do Bling")
		}

		date := time.Now()
		hasConnection, err := s.blingService.CheckConnection(blingdomain.CheckConnectionParams{
			CNPJ:      *cnpj,
			Token:     *request.Token,
			StartDate: date,
			EndDate:   date,
		})
		if err != nil {
			logrus.Error("Error check connection with bling:", err)
			return nil, NewAccountErrorWithID(ErrBlingConnection, apiErrors.ErrInvalidTokenBling, request.ID, "Falha ao verificar conexão com a API do Bling")
		}

		if !hasConnection {
			logrus.Warn("Invalid token for account:", account.ID)
			return nil, NewAccountErrorWithID(ErrInvalidToken, apiErrors.ErrInvalidToken, request.ID, "Token inválido para a conta")
		}

		// Token validado: o secret_name padrão da conta passa a ser o
		// próprio ID e o multi client recebe o token em memória.
		secretName := account.ID
		if account.SecretName != nil && *account.SecretName != "" {
			secretName = *account.SecretName
		}
		request.SecretName = &secretName

		s.cfg.BlingMultiClient[secretName] = config.Bling{
			URL:         s.cfg.Bling.URL,
			AccessToken: *request.Token,
		}
	}

	// Atualiza a conta no repositório
	if err := s.accountRepository.UpdateAccount(request); err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateAccountResponse{
		ID:         request.ID,
		Nickname:   request.Nickname,
		CNPJ:       request.CNPJ,
		SecretName: request.SecretName,
		StoreID:    request.StoreID,
		Status:     request.Status,
	}, nil
}
