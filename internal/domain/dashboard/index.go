package dashboard

import (
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// Collections is one point-in-time fetch of the six upstream collections.
type Collections struct {
	Users      []models.User
	Salon      *models.Salon
	Categories []models.Category
	Services   []models.Service
	Bookings   []models.Booking
	Payments   []models.Payment
}

// Offering is a service with its step sequence already decoded.
type Offering struct {
	models.Service
	Steps []Step
}

type IndexOptions struct {
	Images       ImageResolver
	DefaultImage string
}

// Index holds the salon-scoped collections and the lookups the
// calculators join through. Lookups return ok=false for ids that have no
// match; callers exclude those rows.
type Index struct {
	SalonID models.ID
	Salon   models.Salon

	Staff      []models.User
	Categories []models.Category
	Offerings  []Offering
	Bookings   []models.Booking
	Payments   []models.Payment

	users             map[models.ID]models.User
	categories        map[models.ID]int
	offerings         map[models.ID]int
	bookings          map[models.ID]int
	bookingsByService map[models.ID][]int
	paymentsByBooking map[models.ID][]int
}

// BuildIndex makes one pass over each collection. Rows that carry a
// salonId different from salonID are dropped; rows without one are kept,
// since scoped fetches do not always echo it back. Payments are global
// upstream and are kept only when their salonId matches.
func BuildIndex(salonID models.ID, in Collections, opts IndexOptions) *Index {
	ix := &Index{
		SalonID:           salonID,
		Staff:             []models.User{},
		Categories:        []models.Category{},
		Offerings:         []Offering{},
		Bookings:          []models.Booking{},
		Payments:          []models.Payment{},
		users:             make(map[models.ID]models.User, len(in.Users)),
		categories:        make(map[models.ID]int, len(in.Categories)),
		offerings:         make(map[models.ID]int, len(in.Services)),
		bookings:          make(map[models.ID]int, len(in.Bookings)),
		bookingsByService: make(map[models.ID][]int),
		paymentsByBooking: make(map[models.ID][]int),
	}

	if in.Salon != nil {
		ix.Salon = *in.Salon
	}

	for _, u := range in.Users {
		if !u.ID.IsZero() {
			ix.users[u.ID] = u
		}
		if NormalizeStatus(u.Role) == models.RoleStaff && u.SalonID == salonID {
			ix.Staff = append(ix.Staff, u)
		}
	}

	for _, c := range in.Categories {
		if !ix.inScope(c.SalonID) {
			continue
		}
		if !c.ID.IsZero() {
			ix.categories[c.ID] = len(ix.Categories)
		}
		ix.Categories = append(ix.Categories, c)
	}

	for _, s := range in.Services {
		if !ix.inScope(s.SalonID) {
			continue
		}
		if !s.ID.IsZero() {
			ix.offerings[s.ID] = len(ix.Offerings)
		}
		ix.Offerings = append(ix.Offerings, Offering{
			Service: s,
			Steps:   DecodeSteps(s.Name, s.Image, opts.Images, opts.DefaultImage),
		})
	}

	for _, b := range in.Bookings {
		if !ix.inScope(b.SalonID) {
			continue
		}
		pos := len(ix.Bookings)
		if !b.ID.IsZero() {
			ix.bookings[b.ID] = pos
		}
		seen := make(map[models.ID]struct{}, len(b.ServiceIDs))
		for _, sid := range b.ServiceIDs {
			if sid.IsZero() {
				continue
			}
			if _, dup := seen[sid]; dup {
				continue
			}
			seen[sid] = struct{}{}
			ix.bookingsByService[sid] = append(ix.bookingsByService[sid], pos)
		}
		ix.Bookings = append(ix.Bookings, b)
	}

	for _, p := range in.Payments {
		if p.SalonID != salonID {
			continue
		}
		if !p.BookingID.IsZero() {
			ix.paymentsByBooking[p.BookingID] = append(ix.paymentsByBooking[p.BookingID], len(ix.Payments))
		}
		ix.Payments = append(ix.Payments, p)
	}

	return ix
}

func (ix *Index) inScope(id models.ID) bool {
	return id.IsZero() || id == ix.SalonID
}

func (ix *Index) User(id models.ID) (models.User, bool) {
	u, ok := ix.users[id]
	return u, ok
}

func (ix *Index) Category(id models.ID) (models.Category, bool) {
	i, ok := ix.categories[id]
	if !ok {
		return models.Category{}, false
	}
	return ix.Categories[i], true
}

func (ix *Index) Offering(id models.ID) (Offering, bool) {
	i, ok := ix.offerings[id]
	if !ok {
		return Offering{}, false
	}
	return ix.Offerings[i], true
}

func (ix *Index) Booking(id models.ID) (models.Booking, bool) {
	i, ok := ix.bookings[id]
	if !ok {
		return models.Booking{}, false
	}
	return ix.Bookings[i], true
}

// BookingsForService returns the bookings whose serviceIds contain id.
func (ix *Index) BookingsForService(id models.ID) []models.Booking {
	positions := ix.bookingsByService[id]
	out := make([]models.Booking, 0, len(positions))
	for _, i := range positions {
		out = append(out, ix.Bookings[i])
	}
	return out
}

// PaymentsForBooking returns the salon payments that reference id.
func (ix *Index) PaymentsForBooking(id models.ID) []models.Payment {
	if id.IsZero() {
		return nil
	}
	positions := ix.paymentsByBooking[id]
	out := make([]models.Payment, 0, len(positions))
	for _, i := range positions {
		out = append(out, ix.Payments[i])
	}
	return out
}
