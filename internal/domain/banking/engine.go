// Package banking aplica las reglas de depósito y saque sobre una conta
// (servicio de dominio, sin persistencia).
package banking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
)

// Operation datos de un movimiento a aplicar. ID y At los define el caso de uso.
type Operation struct {
	ID     string
	Amount decimal.Decimal
	At     time.Time
}

// Deposit suma el monto al saldo y registra el depósito. Monto <= 0 se rechaza sin tocar la conta.
func Deposit(acc *entity.Account, op Operation) (entity.Transaction, error) {
	if !op.Amount.IsPositive() {
		return entity.Transaction{}, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, op.Amount)
	}
	acc.Balance = acc.Balance.Add(op.Amount)
	return record(acc, entity.TransactionDeposit, op), nil
}

// Withdraw resta el monto si CheckWithdrawal lo permite; incrementa el contador del día.
func Withdraw(acc *entity.Account, op Operation) (entity.Transaction, error) {
	if err := CheckWithdrawal(acc, op.Amount, op.At); err != nil {
		return entity.Transaction{}, err
	}
	count := WithdrawalsOn(acc, op.At)
	acc.Balance = acc.Balance.Sub(op.Amount)
	acc.WithdrawalsToday = count + 1
	acc.WithdrawalDay = day(op.At)
	return record(acc, entity.TransactionWithdrawal, op), nil
}

// CheckWithdrawal valida, en este orden: monto positivo, saldo suficiente,
// tope por saque y cantidad de saques del día.
func CheckWithdrawal(acc *entity.Account, amount decimal.Decimal, at time.Time) error {
	switch {
	case !amount.IsPositive():
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	case amount.GreaterThan(acc.Balance):
		return fmt.Errorf("%w: saldo %s, solicitado %s", domain.ErrInsufficientFunds, acc.Balance.StringFixed(2), amount.StringFixed(2))
	case amount.GreaterThan(acc.Policy.MaxAmount):
		return fmt.Errorf("%w: máximo %s", domain.ErrWithdrawalLimitExceeded, acc.Policy.MaxAmount.StringFixed(2))
	case WithdrawalsOn(acc, at) >= acc.Policy.MaxDaily:
		return fmt.Errorf("%w: %d por dia", domain.ErrDailyWithdrawalsExceeded, acc.Policy.MaxDaily)
	}
	return nil
}

// WithdrawalsOn saques ya realizados el día de at. El contador guardado solo vale para WithdrawalDay.
func WithdrawalsOn(acc *entity.Account, at time.Time) int {
	if acc.WithdrawalDay.IsZero() || !day(acc.WithdrawalDay).Equal(day(at)) {
		return 0
	}
	return acc.WithdrawalsToday
}

func record(acc *entity.Account, kind entity.TransactionKind, op Operation) entity.Transaction {
	tx := entity.Transaction{
		ID:           op.ID,
		Kind:         kind,
		Amount:       op.Amount,
		BalanceAfter: acc.Balance,
		Timestamp:    op.At,
	}
	acc.History = append(acc.History, tx)
	return tx
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
