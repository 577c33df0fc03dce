package usecase

import (
	"errors"

	"github.com/jhoicas/sistema-bancario/internal/domain"
)

// rejectionReason etiqueta estable para métricas y logs.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "withdrawal_limit"
	case errors.Is(err, domain.ErrDailyWithdrawalsExceeded):
		return "daily_withdrawals"
	default:
		return "internal"
	}
}
