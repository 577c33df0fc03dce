package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCustomerNotFound         = errors.New("cliente não encontrado")
	ErrAccountNotFound          = errors.New("conta não encontrada")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrDuplicate                = errors.New("recurso duplicado")
	ErrInvalidAmount            = errors.New("valor inválido")
	ErrInsufficientFunds        = errors.New("saldo insuficiente")
	ErrWithdrawalLimitExceeded  = errors.New("valor excede o limite por saque")
	ErrDailyWithdrawalsExceeded = errors.New("limite de saques diários atingido")
)
