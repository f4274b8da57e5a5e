package handler

import (
	"net/http"

	"github.com/vfg2006/procurement-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/spending"
	"github.com/vfg2006/procurement-dashboard-api/internal/usecases/urgency"
	"github.com/vfg2006/procurement-dashboard-api/pkg/middleware"
)

// dashboards são sempre recalculados, nenhuma resposta pode ser cacheada
var noStore = []func(http.Handler) http.Handler{middleware.NoStore()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func UrgentDashboard(service urgency.UrgencyService, clock Clock) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/urgent/by-department",
			Method:      http.MethodGet,
			Handler:     GetUrgentByDepartment(service),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/dashboard/urgent/status",
			Method:      http.MethodGet,
			Handler:     GetUrgentStatus(service, clock),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/dashboard/urgent/kpis",
			Method:      http.MethodGet,
			Handler:     GetUrgentKpis(service),
			Middlewares: noStore,
		},
	}
}

func SpendDashboard(service spending.SpendingService, clock Clock) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/spend",
			Method:      http.MethodGet,
			Handler:     GetSpendSummary(service, clock),
			Middlewares: noStore,
		},
		{
			Path:        "/v1/dashboard/spend/series",
			Method:      http.MethodGet,
			Handler:     GetSpendSeries(service, clock),
			Middlewares: noStore,
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
			Path:        "/v1/cron",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: noStore,
		},
	}
}
