package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-dashboard/internal/config"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextSalonID  = "salonID"
	ContextUserRole = "userRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID := claimID(claims["sub"])
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextSalonID, claimID(claims["salonId"]))
		c.Set(ContextUserRole, strings.ToUpper(role))

		c.Next()
	}
}

// SalonScope rejects requests for a salon other than the one in the
// token. Admins may view any salon.
func SalonScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := models.ID(strings.TrimSpace(c.Param(param)))
		if requested.IsZero() {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing_salon_id"})
			return
		}

		if c.GetString(ContextUserRole) != models.RoleAdmin &&
			models.ID(c.GetString(ContextSalonID)) != requested {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "salon_forbidden"})
			return
		}

		c.Next()
	}
}

// claimID reads an id claim that may be a JSON string or number.
func claimID(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return fmt.Sprintf("%.0f", id)
	}
	return ""
}
