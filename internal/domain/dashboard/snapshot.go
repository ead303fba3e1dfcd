package dashboard

import (
	"time"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// Snapshot is the full set of derived metrics for one salon, rebuilt on
// every call.
type Snapshot struct {
	SalonID            models.ID         `json:"salonId"`
	RevenueData        []MonthlyRevenue  `json:"revenueData"`
	ServiceData        []ServiceStat     `json:"serviceData"`
	StylistBookingData []StylistBookings `json:"stylistBookingData"`
	DailyBookings      []DailyBookings   `json:"dailyBookings"`
	TopStylists        []StaffStat       `json:"topStylists"`
	SalonDetails       models.Salon      `json:"salonDetails"`
	CategoryData       []CategoryStat    `json:"categoryData"`
	StaffList          []StaffStat       `json:"staffList"`
	Stats              Stats             `json:"stats"`
	Degraded           []Degradation     `json:"degraded"`
	GeneratedAt        time.Time         `json:"generatedAt"`
}

type MonthlyRevenue struct {
	Month     int     `json:"month"`
	Label     string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	Customers int     `json:"customers"`
}

type ServiceStat struct {
	ID         models.ID `json:"id"`
	Name       string    `json:"name"`
	CategoryID models.ID `json:"categoryId"`
	Price      float64   `json:"price"`
	Bookings   int       `json:"bookings"`
	Revenue    float64   `json:"revenue"`
	Steps      []Step    `json:"steps"`
}

type StaffStat struct {
	ID                  models.ID `json:"id"`
	FullName            string    `json:"fullName"`
	Rating              float64   `json:"rating"`
	Bookings            int       `json:"bookings"`
	MonthlyRevenue      float64   `json:"monthlyRevenueValue"`
	MonthlyRevenueLabel string    `json:"monthlyRevenue"`
}

type StylistBookings struct {
	ID       models.ID `json:"id"`
	Name     string    `json:"name"`
	Bookings int       `json:"bookings"`
}

type DailyBookings struct {
	Date      string `json:"date"`
	Label     string `json:"day"`
	Bookings  int    `json:"bookings"`
	Customers int    `json:"customers"`
}

type CategoryStat struct {
	ID       models.ID `json:"id"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Services int       `json:"services"`
}

// ServiceSummary marshals to {} when there is no service to report.
type ServiceSummary struct {
	ID    models.ID `json:"id,omitempty"`
	Name  string    `json:"name,omitempty"`
	Price float64   `json:"price,omitempty"`
}

type Stats struct {
	TotalRevenue           float64        `json:"totalRevenue"`
	TotalTransactions      int            `json:"totalTransactions"`
	SuccessfulTransactions int            `json:"successfulTransactions"`
	SuccessRate            float64        `json:"successRate"`
	TopService             string         `json:"topService"`
	HighestPricedService   ServiceSummary `json:"highestPricedService"`
}
