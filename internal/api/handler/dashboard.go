package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/internal/usecases/aggregating"
	"github.com/zaytech/message-dashboard-api/pkg/apiErrors"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

// parseStatsDate lê a data dos cards na query string; sem data, o dia
// corrente é usado
func parseStatsDate(r *http.Request) (time.Time, error) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		return time.Now(), nil
	}

	date, err := utils.ParseDate(dateParam)
	if err != nil {
		return time.Time{}, err
	}

	return *date, nil
}

func GetStoreStats(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		date, err := parseStatsDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		stats, err := service.GetStoreStats(storeID, date)
		if err != nil {
			logrus.Error("Error fetching store stats:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar estatísticas da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(stats); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetCategoryChart devolve as fatias do gráfico de mensagens por
// categoria, na ordem de precedência e incluindo categorias zeradas
func GetCategoryChart(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		date, err := parseStatsDate(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro date inválido, use o formato YYYY-MM-DD", nil)
			return
		}

		chart, err := service.GetCategoryChart(storeID, date)
		if err != nil {
			logrus.Error("Error fetching category chart:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar gráfico de categorias", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(chart); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
