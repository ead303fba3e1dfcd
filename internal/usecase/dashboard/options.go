package dashboard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/salon-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/salon-dashboard/internal/domain/dashboard"
	"github.com/BruksfildServices01/salon-dashboard/internal/logger"
	"github.com/BruksfildServices01/salon-dashboard/internal/metrics"
)

const ErrCodeUnavailable = "dashboard_unavailable"

type Options struct {
	Clock        domain.Clock
	Images       domain.ImageResolver
	DefaultImage string

	Log     logrus.FieldLogger
	Metrics *metrics.Recorder
	Audit   *audit.Dispatcher
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = domain.ClockFunc(time.Now)
	}
	if o.Images == nil {
		o.Images = domain.IdentityImages
	}
	if o.Log == nil {
		o.Log = logger.Discard()
	}
	return o
}

func (o Options) indexOptions() domain.IndexOptions {
	return domain.IndexOptions{Images: o.Images, DefaultImage: o.DefaultImage}
}

// settle runs one secondary fetch and records a degradation instead of
// returning its error, so the errgroup never aborts on it.
func settle[T any](
	ctx context.Context,
	opts Options,
	c domain.Collection,
	fetch func(context.Context) ([]T, error),
	out *domain.Outcome[T],
) func() error {

	return func() error {
		items, err := fetch(ctx)
		*out = domain.Settle(c, items, err)

		if !out.OK() {
			opts.Log.WithFields(logrus.Fields{
				"collection": string(c),
				"reason":     out.Degraded.Reason,
			}).Warn("upstream collection degraded to empty")
			opts.Metrics.Degraded(string(c))
		}
		return nil
	}
}

func degradedNames(ds []domain.Degradation) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, string(d.Collection))
	}
	return out
}
