package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/aggregating"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

// ProviderMetrics retorna as métricas de um provider para uma conta,
// preferindo o cache sincronizado e caindo para consulta ao vivo
func ProviderMetrics(service aggregating.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		provider, err := domain.ParseProvider(params.ByName("provider"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedProvider, "Provider não suportado", nil)
			return
		}

		accountID := params.ByName("account_id")

		filters, ok := insightFiltersFromRequest(w, r)
		if !ok {
			return
		}

		response, err := service.GetProviderMetrics(r.Context(), provider, accountID, filters)
		if err != nil {
			writeMetricsError(w, err, "Erro ao consultar métricas do provider")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CombinedMetrics retorna as métricas agregadas de todos os providers
// conectados do tenant, com as séries prontas para os gráficos
func CombinedMetrics(service aggregating.MetricsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		tenantID := params.ByName("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da empresa não informado", nil)
			return
		}

		filters, ok := insightFiltersFromRequest(w, r)
		if !ok {
			return
		}

		response, err := service.GetCombinedMetrics(r.Context(), tenantID, filters)
		if err != nil {
			writeMetricsError(w, err, "Erro ao consultar métricas combinadas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func insightFiltersFromRequest(w http.ResponseWriter, r *http.Request) (*domain.InsightFilters, bool) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" || endParam == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
		return nil, false
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida, use o formato YYYY-MM-DD", nil)
		return nil, false
	}

	return &domain.InsightFilters{StartDate: startDate, EndDate: endDate}, true
}

func writeMetricsError(w http.ResponseWriter, err error, logMessage string) {
	logrus.Error(logMessage, ": ", err)

	var metricsErr *aggregating.MetricsError
	if errors.As(err, &metricsErr) {
		apiErrors.WriteError(w, metricsErr.Code, metricsErr.Err.Error(), metricsErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, logMessage, nil)
}
