package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/httperr"
	"github.com/BruksfildServices01/salon-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/salon-dashboard/internal/middleware"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
	ucDashboard "github.com/BruksfildServices01/salon-dashboard/internal/usecase/dashboard"
)

type DashboardComputer interface {
	Execute(ctx context.Context, salonID models.ID) (*domain.Snapshot, error)
}

type MetricDetailComputer interface {
	Execute(ctx context.Context, tag string, salonID models.ID) (domain.MetricDetail, error)
}

type DashboardHandler struct {
	dashboard DashboardComputer
	detail    MetricDetailComputer
}

func NewDashboardHandler(
	dashboard DashboardComputer,
	detail MetricDetailComputer,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		detail:    detail,
	}
}

// GET /api/salons/:salonId/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	salonID := models.ID(c.Param("salonId"))

	snap, err := h.dashboard.Execute(requestContext(c), salonID)
	if err != nil {
		if httperr.IsBusiness(err, ucDashboard.ErrCodeUnavailable) {
			httperr.BadGateway(c, ucDashboard.ErrCodeUnavailable, "Không thể tải dữ liệu dashboard.")
			return
		}
		httperr.Internal(c, "dashboard_error", "Đã xảy ra lỗi khi tính toán dashboard.")
		return
	}

	httpresp.OK(c, snap)
}

// GET /api/salons/:salonId/dashboard/metrics/:tag
func (h *DashboardHandler) MetricDetail(c *gin.Context) {
	salonID := models.ID(c.Param("salonId"))

	detail, err := h.detail.Execute(requestContext(c), c.Param("tag"), salonID)
	if err != nil {
		httperr.Internal(c, "metric_detail_error", "Không thể tải chi tiết chỉ số.")
		return
	}

	httpresp.OK(c, detail)
}

func requestContext(c *gin.Context) context.Context {
	return audit.WithActor(c.Request.Context(), c.GetString(middleware.ContextUserID))
}
