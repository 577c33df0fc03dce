package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/internal/application/ports"
	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/domain/identity"
	"github.com/jhoicas/sistema-bancario/internal/domain/repository"
	"github.com/jhoicas/sistema-bancario/pkg/cpf"
)

// CustomerUseCase registro y consulta de clientes (identity registry).
type CustomerUseCase struct {
	repo repository.CustomerRepository
	val  *customerValidator
	options
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, opts ...Option) *CustomerUseCase {
	o := buildOptions("customers", opts)
	return &CustomerUseCase{repo: repo, val: newCustomerValidator(o.now), options: o}
}

// Register valida todos los campos y el CPF único, y registra el cliente.
// Las violaciones se devuelven juntas en un *identity.ValidationError.
func (uc *CustomerUseCase) Register(in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error) {
	ve := uc.val.validate(in)

	nationalID := cpf.Normalize(in.NationalID)
	if cpf.Validate(nationalID) == nil {
		existing, err := uc.repo.GetByNationalID(nationalID)
		if err != nil {
			return nil, fmt.Errorf("buscar cliente por CPF: %w", err)
		}
		if existing != nil {
			ve.Add("NationalID", identity.ErrNationalIDTaken)
		}
	}
	if ve.HasErrors() {
		uc.metrics.RecordRejection(ports.OpRegisterCustomer, rejectionReason(ve))
		uc.log.Warn().Strs("violations", ve.Messages()).Msg("registro de cliente rechazado")
		return nil, ve
	}

	now := uc.now()
	birth, err := identity.ParseBirthDate(in.BirthDate, now)
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       strings.Join(strings.Fields(in.Name), " "),
		BirthDate:  birth,
		NationalID: nationalID,
		Address:    strings.TrimSpace(in.Address),
		CreatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("registrar cliente: %w", err)
	}

	uc.metrics.RecordSuccess(ports.OpRegisterCustomer, decimal.Zero)
	uc.log.Info().Str("customer_id", customer.ID).Msg("cliente registrado")
	return toCustomerResponse(customer), nil
}

// GetByNationalID busca un cliente por CPF (con o sin puntuación).
func (uc *CustomerUseCase) GetByNationalID(nationalID string) (*dto.CustomerResponse, error) {
	c, err := uc.find(nationalID)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// List clientes en orden de registro.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) find(nationalID string) (*entity.Customer, error) {
	return findCustomer(uc.repo, nationalID)
}

// findCustomer resuelve un CPF ingresado por el usuario; ErrCustomerNotFound si no existe.
func findCustomer(repo repository.CustomerRepository, nationalID string) (*entity.Customer, error) {
	normalized := cpf.Normalize(nationalID)
	c, err := repo.GetByNationalID(normalized)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente por CPF: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("CPF %s: %w", normalized, domain.ErrCustomerNotFound)
	}
	return c, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		BirthDate:  c.BirthDate.Format(identity.BirthDateLayout),
		NationalID: c.NationalID,
		Address:    c.Address,
		Accounts:   append([]int(nil), c.Accounts...),
	}
}
