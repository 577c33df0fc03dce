package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/internal/application/ports"
	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/banking"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
)

// AccountConfig agência y política de saque asignadas a cada conta nueva.
type AccountConfig struct {
	BranchCode string
	Policy     entity.WithdrawalPolicy
}

// AccountUseCase apertura y listado de contas (account registry).
type AccountUseCase struct {
	accounts  repository.AccountRepository
	customers repository.CustomerRepository
	cfg       AccountConfig
	options
}

// NewAccountUseCase construye el caso de uso. Campos vacíos de cfg toman los valores por defecto.
func NewAccountUseCase(
	accounts repository.AccountRepository,
	customers repository.CustomerRepository,
	cfg AccountConfig,
	opts ...Option,
) *AccountUseCase {
	if cfg.BranchCode == "" {
		cfg.BranchCode = entity.DefaultBranchCode
	}
	if cfg.Policy.MaxAmount.IsZero() && cfg.Policy.MaxDaily == 0 {
		cfg.Policy = entity.DefaultWithdrawalPolicy()
	}
	return &AccountUseCase{
		accounts:  accounts,
		customers: customers,
		cfg:       cfg,
		options:   buildOptions("accounts", opts),
	}
}

// Open abre una conta corrente con saldo cero para el cliente del CPF indicado.
func (uc *AccountUseCase) Open(nationalID string) (*dto.AccountResponse, error) {
	customer, err := findCustomer(uc.customers, nationalID)
	if err != nil {
		uc.metrics.RecordRejection(ports.OpOpenAccount, rejectionReason(err))
		uc.log.Warn().Err(err).Msg("apertura de conta rechazada")
		return nil, err
	}

	number, err := uc.accounts.NextNumber()
	if err != nil {
		return nil, fmt.Errorf("reservar número de conta: %w", err)
	}
	now := uc.now()
	account := &entity.Account{
		BranchCode: uc.cfg.BranchCode,
		Number:     number,
		CustomerID: customer.ID,
		Balance:    decimal.Zero,
		Policy:     uc.cfg.Policy,
		CreatedAt:  now,
	}
	if err := uc.accounts.Create(account); err != nil {
		return nil, fmt.Errorf("abrir conta: %w", err)
	}
	customer.Accounts = append(customer.Accounts, number)
	if err := uc.customers.Update(customer); err != nil {
		return nil, fmt.Errorf("vincular conta %d al cliente: %w", number, err)
	}

	uc.metrics.RecordSuccess(ports.OpOpenAccount, decimal.Zero)
	uc.log.Info().Int("account", number).Str("customer_id", customer.ID).Msg("conta aberta")
	return toAccountResponse(account, customer, now), nil
}

// List todas las contas en orden de número.
func (uc *AccountUseCase) List() ([]dto.AccountResponse, error) {
	list, err := uc.accounts.List()
	if err != nil {
		return nil, fmt.Errorf("listar contas: %w", err)
	}
	return uc.withHolders(list)
}

// Get conta por número con su titular.
func (uc *AccountUseCase) Get(number int) (*dto.AccountResponse, error) {
	a, err := uc.accounts.GetByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("buscar conta %d: %w", number, err)
	}
	if a == nil {
		return nil, fmt.Errorf("conta %d: %w", number, domain.ErrAccountNotFound)
	}
	holder, err := uc.customers.GetByID(a.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("titular de la conta %d: %w", number, err)
	}
	return toAccountResponse(a, holder, uc.now()), nil
}

// ListByCustomer contas del cliente del CPF indicado.
func (uc *AccountUseCase) ListByCustomer(nationalID string) ([]dto.AccountResponse, error) {
	customer, err := findCustomer(uc.customers, nationalID)
	if err != nil {
		return nil, err
	}
	list, err := uc.accounts.ListByCustomer(customer.ID)
	if err != nil {
		return nil, fmt.Errorf("listar contas del cliente: %w", err)
	}
	return uc.withHolders(list)
}

func (uc *AccountUseCase) withHolders(list []*entity.Account) ([]dto.AccountResponse, error) {
	now := uc.now()
	out := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		holder, err := uc.customers.GetByID(a.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("titular de la conta %d: %w", a.Number, err)
		}
		out = append(out, *toAccountResponse(a, holder, now))
	}
	return out, nil
}

// toAccountResponse holder puede ser nil si el titular no se encuentra.
func toAccountResponse(a *entity.Account, holder *entity.Customer, now time.Time) *dto.AccountResponse {
	resp := &dto.AccountResponse{
		BranchCode:         a.BranchCode,
		Number:             a.Number,
		Balance:            a.Balance,
		WithdrawalsToday:   banking.WithdrawalsOn(a, now),
		WithdrawalsAllowed: a.Policy.MaxDaily,
	}
	if holder != nil {
		resp.HolderName = holder.Name
		resp.HolderNationalID = holder.NationalID
	}
	return resp
}
