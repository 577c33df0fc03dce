package mocks

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/sistema-bancario/internal/application/ports"
)

var _ ports.MetricsRecorder = (*MetricsRecorder)(nil)

// MetricsRecorder mock de ports.MetricsRecorder.
type MetricsRecorder struct {
	mock.Mock
}

// NewMetricsRecorder crea el mock y verifica las expectativas al terminar el test.
func NewMetricsRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsRecorder {
	m := &MetricsRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MetricsRecorder) RecordSuccess(operation string, amount decimal.Decimal) {
	m.Called(operation, amount)
}

func (m *MetricsRecorder) RecordRejection(operation string, reason string) {
	m.Called(operation, reason)
}
