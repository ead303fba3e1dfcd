package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-dashboard/internal/config"
	"github.com/BruksfildServices01/salon-dashboard/internal/handlers"
	"github.com/BruksfildServices01/salon-dashboard/internal/middleware"
)

type Deps struct {
	Config    *config.Config
	Log       logrus.FieldLogger
	Gatherer  prometheus.Gatherer
	Dashboard *handlers.DashboardHandler
	Me        *handlers.MeHandler
	AuditLogs *handlers.AuditLogsHandler // nil without a database
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	api.GET("/me", middleware.AuthMiddleware(deps.Config), deps.Me.GetMe)

	salon := api.Group("/salons/:salonId")
	salon.Use(middleware.AuthMiddleware(deps.Config))
	salon.Use(middleware.SalonScope("salonId"))
	{
		salon.GET("/dashboard", deps.Dashboard.Get)
		salon.GET("/dashboard/metrics/:tag", deps.Dashboard.MetricDetail)

		if deps.AuditLogs != nil {
			salon.GET("/audit-logs", deps.AuditLogs.List)
		}
	}
}
