package usecase

import (
	"time"

	"github.com/jhoicas/sistema-bancario/internal/application/ports"
	"github.com/jhoicas/sistema-bancario/pkg/logger"
)

// Option configura dependencias opcionales de los casos de uso.
type Option func(*options)

type options struct {
	log     *logger.Logger
	metrics ports.MetricsRecorder
	now     func() time.Time
}

// WithLogger inyecta el logger; por defecto no se registra nada.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics inyecta el recolector de métricas.
func WithMetrics(m ports.MetricsRecorder) Option {
	return func(o *options) { o.metrics = m }
}

// WithClock reemplaza time.Now (tests, cambio de día).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(component string, opts []Option) options {
	o := options{log: logger.Nop(), metrics: ports.NoopMetrics{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.Component(component)
	return o
}
