package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"github.com/zaytech/message-dashboard-api/pkg/apiErrors"
)

func ListCategories(service categorizing.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		categories, err := service.ListCategories(storeID)
		if err != nil {
			logrus.Error("Error listing categories:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar categorias no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(categories); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpsertCategory(service categorizing.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpsertCategory")

		w.Header().Set("Content-Type", "application/json")

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		var upsertRequest domain.UpsertCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&upsertRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		category, err := service.UpsertCategory(storeID, &upsertRequest)
		if err != nil {
			logrus.Error("Error upserting category:", err)

			var validationErr *categorizing.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), map[string]interface{}{
					"field": validationErr.Field,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar categoria no banco de dados", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(category); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeleteCategory remove uma categoria. Quando a categoria possui mensagens
// classificadas, o chamador precisa indicar a categoria de destino via
// query param reassign_to.
func DeleteCategory(service categorizing.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCategory")

		w.Header().Set("Content-Type", "application/json")

		params := httprouter.ParamsFromContext(r.Context())
		storeID := params.ByName("store_id")
		categoryID := params.ByName("category_id")
		if storeID == "" || categoryID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "IDs da loja e da categoria são obrigatórios", nil)
			return
		}

		reassignTo := r.URL.Query().Get("reassign_to")

		err := service.DeleteCategory(r.Context(), storeID, categoryID, reassignTo)
		if err != nil {
			logrus.Error("Error deleting category:", err)

			switch {
			case errors.Is(err, categorizing.ErrCategoryNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Categoria não encontrada", map[string]interface{}{
					"category_id": categoryID,
				})

			case errors.Is(err, categorizing.ErrCategoryInUse):
				apiErrors.WriteError(w, apiErrors.ErrCategoryInUse, "Categoria possui mensagens classificadas. Informe reassign_to com a categoria de destino", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover categoria no banco de dados", nil)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetStoreSettings(service categorizing.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		settings, err := service.GetSettings(storeID)
		if err != nil {
			logrus.Error("Error fetching store settings:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar configuração da loja", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateStoreSettings(service categorizing.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateStoreSettings")

		w.Header().Set("Content-Type", "application/json")

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateStoreSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		settings, err := service.UpdateSettings(storeID, &updateRequest)
		if err != nil {
			logrus.Error("Error updating store settings:", err)

			var validationErr *categorizing.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, validationErr.Error(), map[string]interface{}{
					"field": validationErr.Field,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração da loja", nil)
			return
		}

		if err := json.NewEncoder(w).Encode(settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
