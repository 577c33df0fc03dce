// Package metrics adapta ports.MetricsRecorder a Prometheus sobre un registry propio.
// No se expone por HTTP: al cerrar la sesión main lee Summary y lo registra en el log.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/application/ports"
)

var _ ports.MetricsRecorder = (*PrometheusCollector)(nil)

// PrometheusCollector contadores de operaciones de la sesión.
type PrometheusCollector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	rejections *prometheus.CounterVec
	amounts    *prometheus.CounterVec
}

// NewPrometheusCollector registra los contadores bajo namespace.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	pc := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Operaciones exitosas por tipo",
			},
			[]string{"operation"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Operaciones rechazadas por tipo y motivo",
			},
			[]string{"operation", "reason"},
		),
		amounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "amount_total",
				Help:      "Suma de montos movidos por tipo de operación",
			},
			[]string{"operation"},
		),
	}
	pc.registry.MustRegister(pc.operations, pc.rejections, pc.amounts)
	return pc
}

// RecordSuccess cuenta la operación y acumula el monto si es positivo.
func (pc *PrometheusCollector) RecordSuccess(operation string, amount decimal.Decimal) {
	pc.operations.WithLabelValues(operation).Inc()
	if amount.IsPositive() {
		pc.amounts.WithLabelValues(operation).Add(amount.InexactFloat64())
	}
}

// RecordRejection cuenta un rechazo.
func (pc *PrometheusCollector) RecordRejection(operation, reason string) {
	pc.rejections.WithLabelValues(operation, reason).Inc()
}

// Registry expone el registry (tests, futuros exportadores).
func (pc *PrometheusCollector) Registry() *prometheus.Registry {
	return pc.registry
}

// Summary aplana los contadores como "nombre{label=valor,...}" -> valor, ordenado por clave.
func (pc *PrometheusCollector) Summary() ([]Sample, error) {
	families, err := pc.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather métricas: %w", err)
	}
	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out = append(out, Sample{Name: sampleName(mf.GetName(), m.GetLabel()), Value: m.GetCounter().GetValue()})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Sample valor de un contador.
type Sample struct {
	Name  string
	Value float64
}

func sampleName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	s := name + "{"
	for i, l := range labels {
		if i > 0 {
			s += ","
		}
		s += l.GetName() + "=" + l.GetValue()
	}
	return s + "}"
}
