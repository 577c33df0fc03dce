// Package memory implementa los repositorios sobre mapas en memoria del proceso.
// El estado se pierde al terminar la ejecución. No es seguro para uso concurrente:
// el simulador tiene un único actor (la sesión de terminal).
package memory

import (
	"fmt"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes indexados por ID y por CPF, con orden de registro.
type CustomerRepo struct {
	byID         map[string]*entity.Customer
	byNationalID map[string]string
	order        []string
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{
		byID:         make(map[string]*entity.Customer),
		byNationalID: make(map[string]string),
	}
}

// Create guarda una copia del cliente. CPF repetido -> domain.ErrDuplicate.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if _, ok := r.byNationalID[customer.NationalID]; ok {
		return fmt.Errorf("insert customer %s: %w", customer.NationalID, domain.ErrDuplicate)
	}
	if _, ok := r.byID[customer.ID]; ok {
		return fmt.Errorf("insert customer id %s: %w", customer.ID, domain.ErrDuplicate)
	}
	r.byID[customer.ID] = customer.Clone()
	r.byNationalID[customer.NationalID] = customer.ID
	r.order = append(r.order, customer.ID)
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// GetByNationalID obtiene un cliente por CPF normalizado.
func (r *CustomerRepo) GetByNationalID(nationalID string) (*entity.Customer, error) {
	id, ok := r.byNationalID[nationalID]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

// List devuelve los clientes en orden de registro.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// Update reemplaza el cliente. El CPF no puede cambiar.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	cur, ok := r.byID[customer.ID]
	if !ok {
		return fmt.Errorf("update customer %s: %w", customer.ID, domain.ErrCustomerNotFound)
	}
	if cur.NationalID != customer.NationalID {
		return fmt.Errorf("update customer %s: CPF imutável: %w", customer.ID, domain.ErrInvalidInput)
	}
	r.byID[customer.ID] = customer.Clone()
	return nil
}
