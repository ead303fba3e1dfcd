package dashboard

import (
	"context"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// Source is the set of upstream collection accessors the engine reads
// from. Implementations own transport, auth, retries and timeouts.
type Source interface {
	FetchUsers(ctx context.Context) ([]models.User, error)

	FetchSalon(
		ctx context.Context,
		salonID models.ID,
	) (*models.Salon, error)

	FetchCategories(
		ctx context.Context,
		salonID models.ID,
	) ([]models.Category, error)

	FetchServices(
		ctx context.Context,
		salonID models.ID,
	) ([]models.Service, error)

	FetchBookings(
		ctx context.Context,
		salonID models.ID,
	) ([]models.Booking, error)

	// FetchPayments is global; payments are attributed to a salon by
	// their own salonId.
	FetchPayments(ctx context.Context) ([]models.Payment, error)
}

// ImageResolver turns one image segment of a service into a URL the
// front end can load.
type ImageResolver interface {
	Resolve(segment string) string
}

type ImageResolverFunc func(segment string) string

func (f ImageResolverFunc) Resolve(segment string) string { return f(segment) }

// IdentityImages returns segments unchanged.
var IdentityImages ImageResolver = ImageResolverFunc(func(s string) string { return s })
