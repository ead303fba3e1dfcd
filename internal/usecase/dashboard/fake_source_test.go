package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

var fixedNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.FixedZone("ICT", 7*60*60))

type fakeSource struct {
	mu    sync.Mutex
	calls []string

	users      []models.User
	salon      *models.Salon
	categories []models.Category
	services   []models.Service
	bookings   []models.Booking
	payments   []models.Payment

	errs map[string]error
}

func (f *fakeSource) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeSource) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSource) FetchUsers(ctx context.Context) ([]models.User, error) {
	if err := f.hit("users"); err != nil {
		return nil, err
	}
	return f.users, nil
}

func (f *fakeSource) FetchSalon(ctx context.Context, salonID models.ID) (*models.Salon, error) {
	if err := f.hit("salon"); err != nil {
		return nil, err
	}
	return f.salon, nil
}

func (f *fakeSource) FetchCategories(ctx context.Context, salonID models.ID) ([]models.Category, error) {
	if err := f.hit("categories"); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeSource) FetchServices(ctx context.Context, salonID models.ID) ([]models.Service, error) {
	if err := f.hit("services"); err != nil {
		return nil, err
	}
	return f.services, nil
}

func (f *fakeSource) FetchBookings(ctx context.Context, salonID models.ID) ([]models.Booking, error) {
	if err := f.hit("bookings"); err != nil {
		return nil, err
	}
	return f.bookings, nil
}

func (f *fakeSource) FetchPayments(ctx context.Context) ([]models.Payment, error) {
	if err := f.hit("payments"); err != nil {
		return nil, err
	}
	return f.payments, nil
}

func newFakeSource() *fakeSource {
	at := func(d, h int) models.Timestamp {
		return models.NewTimestamp(time.Date(2026, 10, d, h, 0, 0, 0, fixedNow.Location()))
	}
	return &fakeSource{
		users: []models.User{
			{ID: "u1", SalonID: "s1", Role: models.RoleStaff, FullName: "Lan"},
			{ID: "c1", SalonID: "s1", Role: models.RoleUser, FullName: "Khách"},
		},
		salon: &models.Salon{ID: "s1", Name: "Mây Salon"},
		categories: []models.Category{
			{ID: "cat1", SalonID: "s1", Name: "Tóc"},
		},
		services: []models.Service{
			{ID: "sv1", SalonID: "s1", CategoryID: "cat1", Name: "Cắt|Gội", Image: "a.jpg", Price: 200000},
		},
		bookings: []models.Booking{
			{ID: "b1", SalonID: "s1", CustomerID: "c1", StaffID: "u1", ServiceIDs: []models.ID{"sv1"}, StartTime: at(16, 9), Status: "SUCCESS", TotalPrice: 200000},
		},
		payments: []models.Payment{
			{ID: "p1", SalonID: "s1", BookingID: "b1", UserID: "c1", Amount: 200000, Status: "SUCCESS"},
			{ID: "p2", SalonID: "s2", BookingID: "b9", Amount: 50, Status: "SUCCESS"},
		},
		errs: map[string]error{},
	}
}

type memoryRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (m *memoryRecorder) Record(ev audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func fixedOptions() Options {
	return Options{Clock: domain.FixedClock(fixedNow)}
}
