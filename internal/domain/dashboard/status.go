package dashboard

import (
	"strings"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// NormalizeStatus upper-cases and trims an upstream status string.
func NormalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

// IsSuccessful reports whether a booking or payment status counts toward
// revenue.
func IsSuccessful(status string) bool {
	switch NormalizeStatus(status) {
	case models.StatusSuccess, models.StatusCompleted:
		return true
	}
	return false
}
