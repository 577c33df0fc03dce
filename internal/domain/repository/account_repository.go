package repository

import "github.com/jhoicas/sistema-bancario/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	// NextNumber reserva el siguiente número de conta (secuencial desde 1).
	NextNumber() (int, error)
	Create(account *entity.Account) error
	GetByNumber(number int) (*entity.Account, error)
	List() ([]*entity.Account, error)
	ListByCustomer(customerID string) ([]*entity.Account, error)
	Update(account *entity.Account) error
}
