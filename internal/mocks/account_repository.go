package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepository)(nil)

// AccountRepository mock de repository.AccountRepository.
type AccountRepository struct {
	mock.Mock
}

// NewAccountRepository crea el mock y verifica las expectativas al terminar el test.
func NewAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountRepository) NextNumber() (int, error) {
	ret := m.Called()
	return ret.Int(0), ret.Error(1)
}

func (m *AccountRepository) Create(account *entity.Account) error {
	return m.Called(account).Error(0)
}

func (m *AccountRepository) GetByNumber(number int) (*entity.Account, error) {
	ret := m.Called(number)
	a, _ := ret.Get(0).(*entity.Account)
	return a, ret.Error(1)
}

func (m *AccountRepository) List() ([]*entity.Account, error) {
	ret := m.Called()
	list, _ := ret.Get(0).([]*entity.Account)
	return list, ret.Error(1)
}

func (m *AccountRepository) ListByCustomer(customerID string) ([]*entity.Account, error) {
	ret := m.Called(customerID)
	list, _ := ret.Get(0).([]*entity.Account)
	return list, ret.Error(1)
}

func (m *AccountRepository) Update(account *entity.Account) error {
	return m.Called(account).Error(0)
}
