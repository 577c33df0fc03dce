package repository

import "github.com/jhoicas/sistema-bancario/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Los Get devuelven (nil, nil) cuando no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByNationalID(nationalID string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
}
