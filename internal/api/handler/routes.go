package handler

import (
	"net/http"

	"github.com/vfg2006/liquor-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/liquor-sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/liquor-sales-dashboard/pkg/middleware"
)

func Healthcheck(heartbeat HeartbeatService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(heartbeat),
		},
		{
			Path:    "/v1/warehouse/heartbeat",
			Method:  http.MethodPost,
			Handler: TriggerHeartbeat(heartbeat),
		},
	}
}

func Dashboard(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     DashboardPage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
		{
			Path:        "/v1/sales/categories",
			Method:      http.MethodGet,
			Handler:     GetSalesByCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.NoStore()},
		},
	}
}
