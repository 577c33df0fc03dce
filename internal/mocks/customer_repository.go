// Package mocks dobles de prueba basados en testify/mock para los puertos del dominio.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository mock de repository.CustomerRepository.
type CustomerRepository struct {
	mock.Mock
}

// NewCustomerRepository crea el mock y verifica las expectativas al terminar el test.
func NewCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CustomerRepository) Create(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	ret := m.Called(id)
	c, _ := ret.Get(0).(*entity.Customer)
	return c, ret.Error(1)
}

func (m *CustomerRepository) GetByNationalID(nationalID string) (*entity.Customer, error) {
	ret := m.Called(nationalID)
	c, _ := ret.Get(0).(*entity.Customer)
	return c, ret.Error(1)
}

func (m *CustomerRepository) List() ([]*entity.Customer, error) {
	ret := m.Called()
	list, _ := ret.Get(0).([]*entity.Customer)
	return list, ret.Error(1)
}

func (m *CustomerRepository) Update(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}
