package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-dashboard/internal/httperr"
	"github.com/BruksfildServices01/salon-dashboard/internal/httpresp"
	"github.com/BruksfildServices01/salon-dashboard/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GET /api/me echoes the identity the token carries, so the front end
// knows which salon dashboard to open.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		httperr.Unauthorized(c, "user_not_in_context", "Chưa đăng nhập.")
		return
	}

	httpresp.OK(c, gin.H{
		"userId":  userID,
		"salonId": c.GetString(middleware.ContextSalonID),
		"role":    c.GetString(middleware.ContextUserRole),
	})
}
