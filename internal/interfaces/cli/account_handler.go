package cli

import "github.com/jhoicas/sistema-bancario/pkg/cpf"

// openAccount opción [c].
func (m *Menu) openAccount() error {
	nationalID, err := m.prompt("CPF do usuário (formato xxx.xxx.xxx-xx ou apenas números): ")
	if err != nil {
		return err
	}
	account, err := m.deps.Accounts.Open(nationalID)
	if err != nil {
		return err
	}
	m.printf("Conta %d (agência %s) criada para %s.\n", account.Number, account.BranchCode, account.HolderName)
	return nil
}

// listAccounts opción [l].
func (m *Menu) listAccounts() error {
	accounts, err := m.deps.Accounts.List()
	if err != nil {
		return err
	}
	m.println("")
	m.println("--- CONTAS CADASTRADAS ---")
	if len(accounts) == 0 {
		m.println("Nenhuma conta cadastrada.")
	}
	for _, a := range accounts {
		m.printf("Agência: %s | Conta: %d | Titular: %s | CPF: %s\n",
			a.BranchCode, a.Number, a.HolderName, cpf.Format(a.HolderNationalID))
	}
	m.println("--------------------------")
	return nil
}
