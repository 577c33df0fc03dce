package cli

import (
	"errors"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/identity"
	"github.com/jhoicas/sistema-bancario/pkg/money"
)

// report muestra el error al usuario; las validaciones de registro se listan una por línea.
func (m *Menu) report(err error) {
	if ve, ok := identity.AsValidationError(err); ok {
		m.println("")
		m.println("Erros de validação:")
		for _, msg := range ve.Messages() {
			m.println("-", msg)
		}
		return
	}
	msg := userMessage(err)
	if msg == "" {
		m.log.Error().Err(err).Msg("error inesperado")
		msg = "Operação não realizada: " + err.Error()
	}
	m.println(msg)
}

// userMessage texto para los errores conocidos; vacío si no hay traducción.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errInvalidAccountNumber):
		return "Número da conta inválido! Digite apenas números."
	case errors.Is(err, money.ErrInvalidFormat):
		return "Valor inválido! Digite apenas números positivos."
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "Usuário não encontrado!"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "Conta não encontrada!"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Valor inválido!"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Saldo insuficiente!"
	case errors.Is(err, domain.ErrWithdrawalLimitExceeded):
		return "Valor excede o limite por saque!"
	case errors.Is(err, domain.ErrDailyWithdrawalsExceeded):
		return "Limite de saques diários atingido!"
	}
	return ""
}
