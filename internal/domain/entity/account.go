package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBranchCode agência única del simulador.
const DefaultBranchCode = "0001"

// WithdrawalPolicy límites de saque de la conta corrente.
type WithdrawalPolicy struct {
	MaxAmount decimal.Decimal // tope por saque
	MaxDaily  int             // cantidad de saques permitidos por día
}

// DefaultWithdrawalPolicy R$ 500 por saque, 3 saques por día.
func DefaultWithdrawalPolicy() WithdrawalPolicy {
	return WithdrawalPolicy{MaxAmount: decimal.NewFromInt(500), MaxDaily: 3}
}

// Account conta corrente vinculada a un cliente.
// WithdrawalsToday cuenta los saques del día WithdrawalDay; un día distinto equivale a cero.
type Account struct {
	BranchCode       string
	Number           int
	CustomerID       string
	Balance          decimal.Decimal
	WithdrawalsToday int
	WithdrawalDay    time.Time
	Policy           WithdrawalPolicy
	History          []Transaction
	CreatedAt        time.Time
}

// Clone copia profunda; el historial no se comparte con el original.
func (a *Account) Clone() *Account {
	cp := *a
	cp.History = append([]Transaction(nil), a.History...)
	return &cp
}
