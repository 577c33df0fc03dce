package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/internal/application/ports"
	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/banking"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
	"github.com/jhoicas/sistema-bancario/pkg/money"
)

// TransactionUseCase depósitos, saques y extrato (transaction engine).
// Cada rechazo es terminal: la conta guardada no cambia.
type TransactionUseCase struct {
	accounts  repository.AccountRepository
	customers repository.CustomerRepository
	options
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	accounts repository.AccountRepository,
	customers repository.CustomerRepository,
	opts ...Option,
) *TransactionUseCase {
	return &TransactionUseCase{
		accounts:  accounts,
		customers: customers,
		options:   buildOptions("transactions", opts),
	}
}

type applyFunc func(*entity.Account, banking.Operation) (entity.Transaction, error)

// Deposit acredita amount en la conta number.
func (uc *TransactionUseCase) Deposit(number int, amount decimal.Decimal) (*dto.OperationResponse, error) {
	return uc.apply(ports.OpDeposit, number, amount, banking.Deposit)
}

// Withdraw debita amount de la conta number respetando saldo, tope por saque y saques del día.
func (uc *TransactionUseCase) Withdraw(number int, amount decimal.Decimal) (*dto.OperationResponse, error) {
	return uc.apply(ports.OpWithdraw, number, amount, banking.Withdraw)
}

func (uc *TransactionUseCase) apply(operation string, number int, amount decimal.Decimal, fn applyFunc) (*dto.OperationResponse, error) {
	acc, err := uc.load(number)
	if err != nil {
		uc.reject(operation, number, err)
		return nil, err
	}
	// El titular se resuelve antes de tocar el saldo: un error aquí no deja la operación guardada.
	holder, err := uc.customers.GetByID(acc.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("titular de la conta %d: %w", number, err)
	}
	op := banking.Operation{
		ID:     uuid.New().String(),
		Amount: money.Round(amount),
		At:     uc.now(),
	}
	// fn trabaja sobre la copia devuelta por el repositorio; solo se guarda si no hay error.
	tx, err := fn(acc, op)
	if err != nil {
		uc.reject(operation, number, err)
		return nil, err
	}
	if err := uc.accounts.Update(acc); err != nil {
		return nil, fmt.Errorf("guardar conta %d: %w", number, err)
	}

	uc.metrics.RecordSuccess(operation, op.Amount)
	uc.log.Debug().
		Str("operation", operation).
		Int("account", number).
		Str("amount", op.Amount.StringFixed(money.Places)).
		Str("balance", acc.Balance.StringFixed(money.Places)).
		Msg("transação aplicada")

	return &dto.OperationResponse{
		Account:     *toAccountResponse(acc, holder, op.At),
		Transaction: toTransactionResponse(tx),
	}, nil
}

// Statement historial completo en orden cronológico y saldo actual. Solo lectura.
func (uc *TransactionUseCase) Statement(number int) (*dto.StatementResponse, error) {
	acc, err := uc.load(number)
	if err != nil {
		uc.reject(ports.OpStatement, number, err)
		return nil, err
	}
	holder, err := uc.customers.GetByID(acc.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("titular de la conta %d: %w", number, err)
	}
	txs := make([]dto.TransactionResponse, 0, len(acc.History))
	for _, t := range acc.History {
		txs = append(txs, toTransactionResponse(t))
	}
	uc.metrics.RecordSuccess(ports.OpStatement, decimal.Zero)
	return &dto.StatementResponse{
		Account:      *toAccountResponse(acc, holder, uc.now()),
		Transactions: txs,
		Balance:      acc.Balance,
	}, nil
}

func (uc *TransactionUseCase) load(number int) (*entity.Account, error) {
	acc, err := uc.accounts.GetByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("buscar conta %d: %w", number, err)
	}
	if acc == nil {
		return nil, fmt.Errorf("conta %d: %w", number, domain.ErrAccountNotFound)
	}
	return acc, nil
}

func (uc *TransactionUseCase) reject(operation string, number int, err error) {
	reason := rejectionReason(err)
	uc.metrics.RecordRejection(operation, reason)
	uc.log.Warn().
		Str("operation", operation).
		Int("account", number).
		Str("reason", reason).
		Err(err).
		Msg("transação rejeitada")
}

func toTransactionResponse(t entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           t.ID,
		Kind:         string(t.Kind),
		Label:        t.Kind.Label(),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Timestamp:    t.Timestamp,
	}
}
