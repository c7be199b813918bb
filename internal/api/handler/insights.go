package handler

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-insights-api/infrastructure/repository"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Serialização JSON dos handlers, compatível com a biblioteca padrão.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseInsightFilters extrai e valida o período analisado da query string.
// As duas datas são obrigatórias: sem elas o período degeneraria para uma
// janela começando no ano 1.
func parseInsightFilters(r *http.Request) (*domain.InsightFilters, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")
	if startParam == "" || endParam == "" {
		return nil, fmt.Errorf("os parâmetros start_date e end_date são obrigatórios")
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// fetchInsights concentra o fluxo comum dos handlers de insights: parse dos
// filtros, chamada ao serviço e tratamento de erro. Retorna nil quando a
// resposta já foi escrita.
func fetchInsights(w http.ResponseWriter, r *http.Request, service insighting.CustomerInsighter) *domain.CustomerInsights {
	logger := log.ForContext(r.Context())

	id := httprouter.ParamsFromContext(r.Context()).ByName("id")

	filters, err := parseInsightFilters(r)
	if err != nil {
		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": r.URL.Query().Get("start_date"),
			"end_date":   r.URL.Query().Get("end_date"),
			"error":      err.Error(),
		}).Warn("insights: invalid date parameters")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	logger.WithFields(log.Fields{
		"account_id": id,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Debug("insights: fetching customer insights with filters")

	insights, err := service.GetCustomerInsights(id, filters)
	if err != nil {
		logger.WithFields(log.Fields{
			"account_id": id,
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"error":      err.Error(),
		}).Error("insights: failed to get customer insights for account")

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}

	return insights
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).
			Error("insights: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCustomerInsightsByID retorna o payload completo de insights do período.
func GetCustomerInsightsByID(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, insights)
	})
}

// GetCustomerSegmentation retorna os totais do período e a segmentação da
// receita entre clientes novos e recorrentes.
func GetCustomerSegmentation(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, &domain.CustomerInsights{
			Summary:      insights.Summary,
			Segmentation: insights.Segmentation,
			Filters:      insights.Filters,
		})
	})
}

// GetCustomerRFM retorna o ranking RFM dos clientes do período.
func GetCustomerRFM(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, &domain.CustomerInsights{
			RFM:     insights.RFM,
			Filters: insights.Filters,
		})
	})
}

// GetB2BSplit retorna a divisão da receita entre clientes B2B e B2C.
func GetB2BSplit(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, &domain.CustomerInsights{
			B2B:     insights.B2B,
			Filters: insights.Filters,
		})
	})
}

// GetABCCurve retorna a curva ABC de produtos do período.
func GetABCCurve(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, &domain.CustomerInsights{
			ABC:     insights.ABC,
			Filters: insights.Filters,
		})
	})
}

// GetInsightHistory retorna os snapshots diários já materializados para a
// conta dentro do período, sem recomputar nada: é a série histórica crua que
// alimenta gráficos de evolução no painel.
func GetInsightHistory(insightRepo repository.CustomerInsightRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseInsightFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Warn("insights: invalid date parameters")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		entries, err := insightRepo.GetByDateRange(id, *filters.StartDate, *filters.EndDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("insights: failed to load snapshot history")

			http.Error(w, "Erro ao consultar o histórico de snapshots", http.StatusInternalServerError)
			return
		}

		writeJSON(w, r, entries)
	})
}

// GetResolutionQuality retorna o diagnóstico de qualidade da resolução de
// identidade dos pedidos do período.
func GetResolutionQuality(service insighting.CustomerInsighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		insights := fetchInsights(w, r, service)
		if insights == nil {
			return
		}

		writeJSON(w, r, &domain.CustomerInsights{
			Quality: insights.Quality,
			Filters: insights.Filters,
		})
	})
}
