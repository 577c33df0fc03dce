package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tipo de movimiento en la conta.
type TransactionKind string

// Tipos de transacción.
const (
	TransactionDeposit    TransactionKind = "DEPOSIT"
	TransactionWithdrawal TransactionKind = "WITHDRAWAL"
)

// Label nombre para el extrato.
func (k TransactionKind) Label() string {
	switch k {
	case TransactionDeposit:
		return "Depósito"
	case TransactionWithdrawal:
		return "Saque"
	default:
		return string(k)
	}
}

// Transaction movimiento registrado en el historial. Inmutable una vez agregado.
type Transaction struct {
	ID           string
	Kind         TransactionKind
	Amount       decimal.Decimal // siempre positivo
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}
