package app

import (
	"github.com/thenoetrevino/cardstack/internal/events"
	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	publisher      events.Publisher
	shiftStrategy  string
	tracerProvider trace.TracerProvider
	eventBuffer    int
}

// WithEventPublisher replaces the in-process bus as the card service's event sink
func WithEventPublisher(p events.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.publisher = p
	}
}

// WithShiftStrategy selects the position renumbering strategy
func WithShiftStrategy(strategy string) Option {
	return func(cfg *appConfig) {
		cfg.shiftStrategy = strategy
	}
}

// WithTracerProvider sets the provider used for service spans
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *appConfig) {
		cfg.tracerProvider = tp
	}
}

// WithEventBuffer sets the per-subscriber queue length of the bus
func WithEventBuffer(size int) Option {
	return func(cfg *appConfig) {
		cfg.eventBuffer = size
	}
}
