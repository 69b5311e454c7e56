package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

type options struct {
	cache       ports.TimelineCache
	events      ports.EventPublisher
	logger      *slog.Logger
	transitions domain.TransitionMode
	location    *time.Location
	now         func() time.Time
}

type Option func(*options)

// WithTimelineCache makes writes drop cached timeline grids and lets the
// timeline service serve from the cache.
func WithTimelineCache(cache ports.TimelineCache) Option {
	return func(o *options) { o.cache = cache }
}

func WithEventPublisher(events ports.EventPublisher) Option {
	return func(o *options) { o.events = events }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithTransitionMode(mode domain.TransitionMode) Option {
	return func(o *options) { o.transitions = mode }
}

// WithLocation sets the zone used to decide what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:      slog.Default(),
		transitions: domain.TransitionsStrict,
		location:    time.UTC,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// afterWrite runs the side effects of a committed write. Failures are logged and
// never undo the write.
func (o *options) afterWrite(ctx context.Context, evt domain.Event) {
	if o.cache != nil {
		if err := o.cache.Invalidate(ctx); err != nil {
			o.logger.WarnContext(ctx, "timeline cache invalidation failed", slog.String("event", string(evt.Type)), slog.Any("err", err))
		}
	}

	if o.events != nil {
		if err := o.events.Publish(ctx, evt); err != nil {
			o.logger.WarnContext(ctx, "event publish failed", slog.String("event", string(evt.Type)), slog.String("key", evt.Key()), slog.Any("err", err))
		}
	}
}

func actorFrom(ctx context.Context) uuid.UUID {
	if actor, ok := domain.ActorFromContext(ctx); ok {
		return actor.ID
	}
	return uuid.Nil
}
