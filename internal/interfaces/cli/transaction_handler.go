package cli

import (
	"github.com/jhoicas/sistema-bancario/pkg/money"
)

const timestampLayout = "02/01/2006 15:04:05"

// deposit opción [d]. La conta se verifica antes de pedir el valor.
func (m *Menu) deposit() error {
	number, err := m.promptAccountNumber()
	if err != nil {
		return err
	}
	if _, err := m.deps.Accounts.Get(number); err != nil {
		return err
	}
	amount, err := m.promptAmount("Valor do depósito: ")
	if err != nil {
		return err
	}
	res, err := m.deps.Transactions.Deposit(number, amount)
	if err != nil {
		return err
	}
	m.printf("Depósito realizado com sucesso! Saldo: %s\n", money.Format(res.Account.Balance))
	return nil
}

// withdraw opción [s].
func (m *Menu) withdraw() error {
	number, err := m.promptAccountNumber()
	if err != nil {
		return err
	}
	if _, err := m.deps.Accounts.Get(number); err != nil {
		return err
	}
	amount, err := m.promptAmount("Valor do saque: ")
	if err != nil {
		return err
	}
	res, err := m.deps.Transactions.Withdraw(number, amount)
	if err != nil {
		return err
	}
	m.printf("Saque realizado com sucesso! Saldo: %s (saques hoje: %d/%d)\n",
		money.Format(res.Account.Balance), res.Account.WithdrawalsToday, res.Account.WithdrawalsAllowed)
	return nil
}

// statement opción [e].
func (m *Menu) statement() error {
	number, err := m.promptAccountNumber()
	if err != nil {
		return err
	}
	st, err := m.deps.Transactions.Statement(number)
	if err != nil {
		return err
	}
	m.println("")
	m.println("===== EXTRATO =====")
	m.printf("Agência: %s | Conta: %d | Titular: %s\n", st.Account.BranchCode, st.Account.Number, st.Account.HolderName)
	if len(st.Transactions) == 0 {
		m.println("Não foram realizadas movimentações.")
	}
	for _, t := range st.Transactions {
		m.printf("%s - %s: %s\n", t.Timestamp.Format(timestampLayout), t.Label, money.Format(t.Amount))
	}
	m.printf("Saldo: %s\n", money.Format(st.Balance))
	m.println("===================")
	return nil
}
