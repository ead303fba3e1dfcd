package dashboard

import (
	"time"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

var (
	ict      = time.FixedZone("ICT", 7*60*60)
	fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, ict)
)

func at(y, m, d, h int) models.Timestamp {
	return models.NewTimestamp(time.Date(y, time.Month(m), d, h, 0, 0, 0, ict))
}

func rating(f float64) *models.Amount {
	a := models.Amount(f)
	return &a
}

func ids(v ...string) []models.ID {
	out := make([]models.ID, 0, len(v))
	for _, s := range v {
		out = append(out, models.ID(s))
	}
	return out
}

var cdn = ImageResolverFunc(func(s string) string { return "https://cdn.test/" + s })

// sampleCollections is one salon ("s1") with a few rows from a
// neighbouring salon ("s2") mixed in, as the global upstreams return.
func sampleCollections() Collections {
	return Collections{
		Users: []models.User{
			{ID: "u1", SalonID: "s1", Role: "STAFF", FullName: "Lan", Rating: rating(4.8)},
			{ID: "u2", SalonID: "s1", Role: "staff", FullName: "Mai"},
			{ID: "u3", SalonID: "s2", Role: "STAFF", FullName: "Hoa"},
			{ID: "c1", SalonID: "s1", Role: "USER", FullName: "Khách"},
			{ID: "u4", SalonID: "s1", Role: "STAFF", FullName: "Tuấn"},
			{ID: "u5", SalonID: "s1", Role: "STAFF", FullName: "Vy"},
			{ID: "u6", SalonID: "s1", Role: "STAFF", FullName: "Linh"},
		},
		Salon: &models.Salon{ID: "s1", Name: "Mây Salon", Address: "12 Lê Lợi", Images: []string{"front.jpg"}},
		Categories: []models.Category{
			{ID: "cat1", SalonID: "s1", Name: "Tóc"},
			{ID: "cat2", SalonID: "s1", Name: "Móng"},
			{ID: "cat3", SalonID: "s2", Name: "Spa"},
		},
		Services: []models.Service{
			{ID: "sv1", SalonID: "s1", CategoryID: "cat1", Name: "Cắt|Gội|Sấy", Image: "a.jpg|b.jpg", Price: 200000},
			{ID: "sv2", SalonID: "s1", CategoryID: "cat1", Name: "Nhuộm", Image: "c.jpg", Price: 500000},
			{ID: "sv3", SalonID: "s1", CategoryID: "cat2", Name: "Sơn móng", Price: 100000},
		},
		Bookings: []models.Booking{
			{ID: "b1", SalonID: "s1", CustomerID: "c1", StaffID: "u1", ServiceIDs: ids("sv1"), StartTime: at(2026, 10, 17, 9), Status: "SUCCESS", TotalPrice: 2_000_000},
			{ID: "b2", SalonID: "s1", CustomerID: "c2", StaffID: "u1", ServiceIDs: ids("sv1", "sv2"), StartTime: at(2026, 10, 15, 14), Status: "completed", TotalPrice: 1_500_000},
			{ID: "b3", SalonID: "s1", CustomerID: "c1", StaffID: "u2", ServiceIDs: ids("sv2"), StartTime: at(2026, 10, 17, 15), Status: "PENDING", TotalPrice: 900_000},
			{ID: "b4", SalonID: "s1", CustomerID: "c3", StaffID: "u2", ServiceIDs: ids("sv2"), StartTime: at(2026, 9, 20, 10), Status: "SUCCESS", TotalPrice: 3_000_000},
			{ID: "b5", SalonID: "s1", CustomerID: "c1", StaffID: "u4", ServiceIDs: ids("sv3"), StartTime: at(2026, 10, 11, 8), Status: "SUCCESS", TotalPrice: 1_200_000},
			{ID: "b6", SalonID: "s2", CustomerID: "c9", StaffID: "u3", ServiceIDs: ids("sv1"), StartTime: at(2026, 10, 16, 9), Status: "SUCCESS", TotalPrice: 700_000},
			{ID: "b7", SalonID: "s1", CustomerID: "c4", StaffID: "u5", ServiceIDs: ids("sv1"), StartTime: at(2025, 10, 17, 9), Status: "SUCCESS", TotalPrice: 5_000_000},
		},
		Payments: []models.Payment{
			{ID: "p1", SalonID: "s1", BookingID: "b1", UserID: "c1", Amount: 200000, Status: "SUCCESS", PaymentMethod: "CASH"},
			{ID: "p2", SalonID: "s1", BookingID: "b2", UserID: "c2", Amount: 700000, Status: "completed", PaymentMethod: "VNPAY"},
			{ID: "p3", SalonID: "s1", BookingID: "b3", UserID: "c1", Amount: 500000, Status: "PENDING", PaymentMethod: "VNPAY"},
			{ID: "p4", SalonID: "s1", BookingID: "b4", UserID: "c3", Amount: 500000, Status: "SUCCESS", PaymentMethod: "CASH"},
			{ID: "p5", SalonID: "s1", BookingID: "b-missing", UserID: "c5", Amount: 999, Status: "SUCCESS", PaymentMethod: "CASH"},
			{ID: "p6", SalonID: "s2", BookingID: "b1", UserID: "c9", Amount: 123, Status: "SUCCESS", PaymentMethod: "CASH"},
			{ID: "p7", SalonID: "s1", BookingID: "b7", UserID: "c4", Amount: 300000, Status: "SUCCESS", PaymentMethod: "CASH"},
		},
	}
}

func sampleIndex() *Index {
	return BuildIndex("s1", sampleCollections(), IndexOptions{Images: cdn})
}
