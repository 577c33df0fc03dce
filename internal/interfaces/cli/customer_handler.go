package cli

import (
	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/pkg/cpf"
	"github.com/jhoicas/sistema-bancario/pkg/money"
)

// registerCustomer opción [u].
func (m *Menu) registerCustomer() error {
	var in dto.RegisterCustomerRequest
	var err error
	if in.Name, err = m.prompt("Nome completo: "); err != nil {
		return err
	}
	if in.BirthDate, err = m.prompt("Data de nascimento (dd/mm/aaaa): "); err != nil {
		return err
	}
	if in.NationalID, err = m.prompt("CPF (formato xxx.xxx.xxx-xx ou apenas números): "); err != nil {
		return err
	}
	if in.Address, err = m.prompt("Endereço (logradouro, nro - bairro - cidade/sigla estado): "); err != nil {
		return err
	}

	customer, err := m.deps.Customers.Register(in)
	if err != nil {
		return err
	}
	m.printf("Usuário %s criado com sucesso!\n", customer.Name)
	return nil
}

// showCustomer opción [v]: datos del cliente y sus contas.
func (m *Menu) showCustomer() error {
	nationalID, err := m.prompt("CPF do usuário (formato xxx.xxx.xxx-xx ou apenas números): ")
	if err != nil {
		return err
	}
	customer, err := m.deps.Customers.GetByNationalID(nationalID)
	if err != nil {
		return err
	}
	accounts, err := m.deps.Accounts.ListByCustomer(nationalID)
	if err != nil {
		return err
	}
	m.println("")
	m.println("--- DADOS DO USUÁRIO ---")
	m.printf("Nome: %s | Nascimento: %s | CPF: %s\n", customer.Name, customer.BirthDate, cpf.Format(customer.NationalID))
	m.printf("Endereço: %s\n", customer.Address)
	if len(accounts) == 0 {
		m.println("Nenhuma conta cadastrada.")
	}
	for _, a := range accounts {
		m.printf("Agência: %s | Conta: %d | Saldo: %s\n", a.BranchCode, a.Number, money.Format(a.Balance))
	}
	m.println("------------------------")
	return nil
}

// listCustomers opción [n].
func (m *Menu) listCustomers() error {
	customers, err := m.deps.Customers.List()
	if err != nil {
		return err
	}
	m.println("")
	m.println("--- USUÁRIOS CADASTRADOS ---")
	if len(customers) == 0 {
		m.println("Nenhum usuário cadastrado.")
	}
	for _, c := range customers {
		m.printf("Nome: %s | CPF: %s | Contas: %d\n", c.Name, cpf.Format(c.NationalID), len(c.Accounts))
	}
	m.println("----------------------------")
	return nil
}
