package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/account"
	"github.com/vfg2006/commerce-insights-api/pkg/apiErrors"
)

// AccountList lista as contas cadastradas, com filtro opcional por status.
func AccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make([]domain.AccountStatus, 0)
		for _, raw := range r.URL.Query()["status"] {
			status = append(status, domain.AccountStatus(raw))
		}

		accounts, err := service.ListAccounts(status)
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			writeAccountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// UpdateAccount atualiza o cadastro de uma conta. Quando um token do Bling é
// enviado, ele é validado contra a API antes de a conta ser atualizada.
func UpdateAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var request domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.ID = id

		response, err := service.UpdateAccount(&request)
		if err != nil {
			logrus.Error("Error updating account:", err)
			writeAccountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// writeAccountError traduz erros do caso de uso de contas para a resposta
// padronizada da API.
func writeAccountError(w http.ResponseWriter, err error) {
	var accErr *account.AccountError
	if errors.As(err, &accErr) {
		details := map[string]any{}
		if accErr.AccountID != "" {
			details["account_id"] = accErr.AccountID
		}
		apiErrors.WriteError(w, accErr.Code, accErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, account.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
	case errors.Is(err, account.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Conta não encontrada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar conta", nil)
	}
}
