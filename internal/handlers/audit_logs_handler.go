package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	"github.com/BruksfildServices01/salon-dashboard/internal/httperr"
	"github.com/BruksfildServices01/salon-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	store AuditLogReader
}

func NewAuditLogsHandler(store AuditLogReader) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// GET /api/salons/:salonId/audit-logs
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageLimit)))

	f := audit.Filter{
		SalonID: c.Param("salonId"),
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Page:    page,
		Limit:   limit,
	}.Normalize()

	if v := c.Query("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Ngày bắt đầu không hợp lệ (YYYY-MM-DD).")
			return
		}
		f.From = from
	}

	if v := c.Query("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Ngày kết thúc không hợp lệ (YYYY-MM-DD).")
			return
		}
		f.To = to
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Không thể tải nhật ký.")
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
