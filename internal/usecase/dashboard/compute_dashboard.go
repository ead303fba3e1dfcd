package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/httperr"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

var errSalonMissing = errors.New("salon not found")

type ComputeDashboard struct {
	source domain.Source
	opts   Options
}

func NewComputeDashboard(
	source domain.Source,
	opts Options,
) *ComputeDashboard {
	return &ComputeDashboard{
		source: source,
		opts:   opts.withDefaults(),
	}
}

// Execute fetches the six collections concurrently and builds the
// snapshot for salonID. Users and salon are required; any other
// collection that fails is replaced by an empty one and listed in
// Snapshot.Degraded.
func (uc *ComputeDashboard) Execute(
	ctx context.Context,
	salonID models.ID,
) (*domain.Snapshot, error) {

	start := time.Now()
	defer uc.opts.Metrics.Observe("dashboard", start)

	log := uc.opts.Log.WithField("salon_id", salonID.String())

	var (
		users      []models.User
		salon      *models.Salon
		categories domain.Outcome[models.Category]
		services   domain.Outcome[models.Service]
		bookings   domain.Outcome[models.Booking]
		payments   domain.Outcome[models.Payment]
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := uc.source.FetchUsers(gctx)
		if err != nil {
			return fmt.Errorf("fetch users: %w", err)
		}
		users = u
		return nil
	})

	g.Go(func() error {
		s, err := uc.source.FetchSalon(gctx, salonID)
		if err != nil {
			return fmt.Errorf("fetch salon: %w", err)
		}
		if s == nil {
			return fmt.Errorf("fetch salon: %w", errSalonMissing)
		}
		salon = s
		return nil
	})

	opts := uc.opts
	opts.Log = log

	g.Go(settle(gctx, opts, domain.CollectionCategories, func(ctx context.Context) ([]models.Category, error) {
		return uc.source.FetchCategories(ctx, salonID)
	}, &categories))

	g.Go(settle(gctx, opts, domain.CollectionServices, func(ctx context.Context) ([]models.Service, error) {
		return uc.source.FetchServices(ctx, salonID)
	}, &services))

	g.Go(settle(gctx, opts, domain.CollectionBookings, func(ctx context.Context) ([]models.Booking, error) {
		return uc.source.FetchBookings(ctx, salonID)
	}, &bookings))

	g.Go(settle(gctx, opts, domain.CollectionPayments, uc.source.FetchPayments, &payments))

	if err := g.Wait(); err != nil {
		uc.opts.Metrics.Failed("dashboard")
		log.WithError(err).Error("cannot load dashboard data")
		return nil, httperr.Wrap(ErrCodeUnavailable, fmt.Errorf("cannot load dashboard data: %w", err))
	}

	ix := domain.BuildIndex(salonID, domain.Collections{
		Users:      users,
		Salon:      salon,
		Categories: categories.Items,
		Services:   services.Items,
		Bookings:   bookings.Items,
		Payments:   payments.Items,
	}, uc.opts.indexOptions())

	degraded := domain.Degradations(
		categories.Degraded,
		services.Degraded,
		bookings.Degraded,
		payments.Degraded,
	)

	snap := domain.Assemble(ix, uc.opts.Clock.Now(), degraded)

	log.WithFields(logrus.Fields{
		"bookings": len(ix.Bookings),
		"payments": len(ix.Payments),
		"degraded": len(degraded),
		"duration": time.Since(start).String(),
	}).Info("dashboard computed")

	uc.opts.Audit.Dispatch(audit.Event{
		SalonID:  salonID.String(),
		UserID:   audit.ActorFrom(ctx),
		Action:   "dashboard_viewed",
		Entity:   "dashboard",
		Metadata: map[string]any{"degraded": degradedNames(degraded)},
	})

	return &snap, nil
}
