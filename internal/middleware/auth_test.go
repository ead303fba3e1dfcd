package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-dashboard/internal/config"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/salons/:salonId",
		AuthMiddleware(&config.Config{JWTSecret: testSecret}),
		SalonScope("salonId"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user":  c.GetString(ContextUserID),
				"salon": c.GetString(ContextSalonID),
			})
		})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"missing header", "/salons/s1", "", http.StatusUnauthorized},
		{"garbage token", "/salons/s1", "abc", http.StatusUnauthorized},
		{"no subject", "/salons/s1", signed(t, jwt.MapClaims{"salonId": "s1", "exp": exp}), http.StatusUnauthorized},
		{"own salon", "/salons/s1", signed(t, jwt.MapClaims{"sub": "u1", "salonId": "s1", "role": "owner", "exp": exp}), http.StatusOK},
		{"numeric ids", "/salons/12", signed(t, jwt.MapClaims{"sub": 5, "salonId": 12, "exp": exp}), http.StatusOK},
		{"other salon", "/salons/s2", signed(t, jwt.MapClaims{"sub": "u1", "salonId": "s1", "exp": exp}), http.StatusForbidden},
		{"admin any salon", "/salons/s2", signed(t, jwt.MapClaims{"sub": "a1", "role": "ADMIN", "exp": exp}), http.StatusOK},
		{"expired", "/salons/s1", signed(t, jwt.MapClaims{"sub": "u1", "salonId": "s1", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
		})
	}
}
