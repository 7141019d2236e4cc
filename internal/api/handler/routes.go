package handler

import (
	"net/http"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/api/handler/router"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/aggregating"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/connecting"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing"
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

// Integrations retorna as rotas do ciclo de vida das connections OAuth
func Integrations(service connecting.ConnectionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/integrations/:provider/auth/:tenant_id",
			Method:  http.MethodGet,
			Handler: BeginAuthorization(service),
		},
		{
			Path:    "/v1/integrations/:provider/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
		{
			Path:    "/v1/integrations/:provider/connect/:tenant_id",
			Method:  http.MethodPost,
			Handler: ConnectWithToken(service),
		},
		{
			Path:    "/v1/integrations/:provider/accounts/:connection_id",
			Method:  http.MethodGet,
			Handler: ListConnectionAdAccounts(service),
		},
		{
			Path:    "/v1/integrations/:provider/connections/:connection_id",
			Method:  http.MethodDelete,
			Handler: DisconnectConnection(service),
		},
	}
}

// Sync retorna as rotas de sincronização de contas de anúncio
func Sync(service syncing.SyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/:tenant_id/:connection_id/:account_id",
			Method:  http.MethodPost,
			Handler: StartSync(service),
		},
		{
			Path:    "/v1/sync/:tenant_id/:connection_id/:account_id/status",
			Method:  http.MethodGet,
			Handler: SyncStatus(service),
		},
	}
}

// Metrics retorna as rotas de consulta de métricas dos dashboards
func Metrics(service aggregating.MetricsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/provider/:provider/:account_id",
			Method:  http.MethodGet,
			Handler: ProviderMetrics(service),
		},
		{
			Path:    "/v1/metrics/combined/:tenant_id",
			Method:  http.MethodGet,
			Handler: CombinedMetrics(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
