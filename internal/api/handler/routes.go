package handler

import (
	"net/http"

	"github.com/zaytech/message-dashboard-api/internal/api/handler/router"
	"github.com/zaytech/message-dashboard-api/internal/usecases/aggregating"
	"github.com/zaytech/message-dashboard-api/internal/usecases/authenticating"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"github.com/zaytech/message-dashboard-api/internal/usecases/messaging"
	"github.com/zaytech/message-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Webhooks é a superfície pública consumida pela Evolution API. Não passa
// por autenticação de usuário; o AuthMiddleware libera o prefixo.
func Webhooks(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhooks/evolution",
			Method:  http.MethodPost,
			Handler: EvolutionWebhook(service),
		},
	}
}

func Categories(service categorizing.Registry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:store_id/categories",
			Method:      http.MethodGet,
			Handler:     ListCategories(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/categories",
			Method:      http.MethodPut,
			Handler:     UpsertCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/categories/:category_id",
			Method:      http.MethodDelete,
			Handler:     DeleteCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/stores/:store_id/settings",
			Method:      http.MethodGet,
			Handler:     GetStoreSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/settings",
			Method:      http.MethodPut,
			Handler:     UpdateStoreSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Messages(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:store_id/messages",
			Method:      http.MethodGet,
			Handler:     ListMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/messages/:message_id/reclassify",
			Method:      http.MethodPost,
			Handler:     ReclassifyMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/reply",
			Method:      http.MethodPost,
			Handler:     ReplyMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:store_id/stats",
			Method:      http.MethodGet,
			Handler:     GetStoreStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:store_id/stats/categories",
			Method:      http.MethodGet,
			Handler:     GetCategoryChart(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserStores retorna as rotas para gerenciamento de lojas vinculadas a usuários
func UserStores(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/stores",
			Method:      http.MethodGet,
			Handler:     GetUserStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/stores",
			Method:      http.MethodPut,
			Handler:     UpdateUserStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/stores/link",
			Method:      http.MethodPost,
			Handler:     LinkUserStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/stores/:store_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
