package memory

import (
	"fmt"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo contas indexadas por número. Los números se reservan con NextNumber
// y nunca se reutilizan.
type AccountRepo struct {
	byNumber map[int]*entity.Account
	order    []int
	last     int
}

// NewAccountRepository construye el repositorio vacío.
func NewAccountRepository() *AccountRepo {
	return &AccountRepo{byNumber: make(map[int]*entity.Account)}
}

// NextNumber reserva el siguiente número (1, 2, 3...).
func (r *AccountRepo) NextNumber() (int, error) {
	r.last++
	return r.last, nil
}

// Create guarda una copia de la conta.
func (r *AccountRepo) Create(account *entity.Account) error {
	if account.Number < 1 || account.Number > r.last {
		return fmt.Errorf("insert account %d: número não reservado: %w", account.Number, domain.ErrInvalidInput)
	}
	if _, ok := r.byNumber[account.Number]; ok {
		return fmt.Errorf("insert account %d: %w", account.Number, domain.ErrDuplicate)
	}
	r.byNumber[account.Number] = account.Clone()
	r.order = append(r.order, account.Number)
	return nil
}

// GetByNumber obtiene una conta por número.
func (r *AccountRepo) GetByNumber(number int) (*entity.Account, error) {
	a, ok := r.byNumber[number]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

// List devuelve todas las contas en orden de apertura.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byNumber[n].Clone())
	}
	return out, nil
}

// ListByCustomer contas del cliente en orden de apertura.
func (r *AccountRepo) ListByCustomer(customerID string) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, n := range r.order {
		if a := r.byNumber[n]; a.CustomerID == customerID {
			out = append(out, a.Clone())
		}
	}
	return out, nil
}

// Update reemplaza la conta existente.
func (r *AccountRepo) Update(account *entity.Account) error {
	if _, ok := r.byNumber[account.Number]; !ok {
		return fmt.Errorf("update account %d: %w", account.Number, domain.ErrAccountNotFound)
	}
	r.byNumber[account.Number] = account.Clone()
	return nil
}
