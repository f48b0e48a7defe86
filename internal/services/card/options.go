package card

import (
	"github.com/thenoetrevino/cardstack/internal/config"
	"github.com/thenoetrevino/cardstack/internal/events"
	"github.com/thenoetrevino/cardstack/internal/metrics"
	"go.opentelemetry.io/otel/trace"
)

// Option configures optional service dependencies
type Option func(*service)

// WithShiftStrategy selects how position ranges are renumbered
// (config.ShiftBulk or config.ShiftStepwise)
func WithShiftStrategy(strategy string) Option {
	return func(s *service) {
		s.strategy = strategy
	}
}

// WithPublisher sets where change events go after each commit.
// A nil publisher disables events.
func WithPublisher(p events.Publisher) Option {
	return func(s *service) {
		s.publisher = p
	}
}

// WithMetrics sets the counters the service records into
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTracerProvider sets the provider spans are created from.
// Defaults to the global otel provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *service) {
		if tp != nil {
			s.tracer = tp.Tracer(tracerName)
		}
	}
}

func defaultOptions() []Option {
	return []Option{WithShiftStrategy(config.ShiftBulk)}
}
