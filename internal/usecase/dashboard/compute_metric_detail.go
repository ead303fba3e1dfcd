package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

type ComputeMetricDetail struct {
	source domain.Source
	opts   Options
}

func NewComputeMetricDetail(
	source domain.Source,
	opts Options,
) *ComputeMetricDetail {
	return &ComputeMetricDetail{
		source: source,
		opts:   opts.withDefaults(),
	}
}

// Execute refetches payments, bookings and services and computes the
// drill-down table for tag. Unknown tags return the "no data" result
// without touching the upstreams.
func (uc *ComputeMetricDetail) Execute(
	ctx context.Context,
	tag string,
	salonID models.ID,
) (domain.MetricDetail, error) {

	metric := domain.MetricTag(tag)
	if !metric.Known() {
		return domain.EmptyDetail(), nil
	}

	start := time.Now()
	defer uc.opts.Metrics.Observe("detail", start)

	opts := uc.opts
	opts.Log = uc.opts.Log.WithField("salon_id", salonID.String()).WithField("metric", tag)

	var (
		services domain.Outcome[models.Service]
		bookings domain.Outcome[models.Booking]
		payments domain.Outcome[models.Payment]
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(settle(gctx, opts, domain.CollectionServices, func(ctx context.Context) ([]models.Service, error) {
		return uc.source.FetchServices(ctx, salonID)
	}, &services))

	g.Go(settle(gctx, opts, domain.CollectionBookings, func(ctx context.Context) ([]models.Booking, error) {
		return uc.source.FetchBookings(ctx, salonID)
	}, &bookings))

	g.Go(settle(gctx, opts, domain.CollectionPayments, uc.source.FetchPayments, &payments))

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		uc.opts.Metrics.Failed("detail")
		return domain.MetricDetail{}, err
	}

	ix := domain.BuildIndex(salonID, domain.Collections{
		Services: services.Items,
		Bookings: bookings.Items,
		Payments: payments.Items,
	}, uc.opts.indexOptions())

	uc.opts.Audit.Dispatch(audit.Event{
		SalonID:  salonID.String(),
		UserID:   audit.ActorFrom(ctx),
		Action:   "metric_detail_viewed",
		Entity:   tag,
		Metadata: map[string]any{"degraded": degradedNames(domain.Degradations(services.Degraded, bookings.Degraded, payments.Degraded))},
	})

	return domain.BuildMetricDetail(metric, ix), nil
}
