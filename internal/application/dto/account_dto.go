package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountResponse conta con datos del titular para listados.
type AccountResponse struct {
	BranchCode         string
	Number             int
	HolderName         string
	HolderNationalID   string
	Balance            decimal.Decimal
	WithdrawalsToday   int
	WithdrawalsAllowed int
}

// TransactionResponse movimiento del historial.
type TransactionResponse struct {
	ID           string
	Kind         string // DEPOSIT | WITHDRAWAL
	Label        string // Depósito | Saque
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}

// OperationResponse resultado de un depósito o saque aplicado.
type OperationResponse struct {
	Account     AccountResponse
	Transaction TransactionResponse
}

// StatementResponse extrato: historial en orden cronológico y saldo actual.
type StatementResponse struct {
	Account      AccountResponse
	Transactions []TransactionResponse
	Balance      decimal.Decimal
}
