package ports

import "github.com/shopspring/decimal"

// Operaciones reportadas a MetricsRecorder.
const (
	OpRegisterCustomer = "register_customer"
	OpOpenAccount      = "open_account"
	OpDeposit          = "deposit"
	OpWithdraw         = "withdraw"
	OpStatement        = "statement"
)

// MetricsRecorder puerto de salida para contadores de la sesión.
// La aplicación solo conoce este contrato; el adaptador decide cómo exportarlos.
type MetricsRecorder interface {
	// RecordSuccess cuenta una operación exitosa; amount es cero si no aplica.
	RecordSuccess(operation string, amount decimal.Decimal)
	// RecordRejection cuenta una operación rechazada por una regla de negocio.
	RecordRejection(operation string, reason string)
}

// NoopMetrics implementación vacía, usada cuando no se configuran métricas.
type NoopMetrics struct{}

func (NoopMetrics) RecordSuccess(string, decimal.Decimal) {}
func (NoopMetrics) RecordRejection(string, string)        {}
