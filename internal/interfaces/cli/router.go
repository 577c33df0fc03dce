package cli

const quitKey = "q"

// command opción del menú.
type command struct {
	key   string
	label string
	run   func() error
}

// routes registra las opciones del menú en el orden en que se muestran.
func (m *Menu) routes() []command {
	return []command{
		{key: "u", label: "Criar usuário", run: m.registerCustomer},
		{key: "c", label: "Criar conta", run: m.openAccount},
		{key: "d", label: "Depositar", run: m.deposit},
		{key: "s", label: "Sacar", run: m.withdraw},
		{key: "e", label: "Extrato", run: m.statement},
		{key: "l", label: "Listar contas", run: m.listAccounts},
		{key: "v", label: "Consultar usuário", run: m.showCustomer},
		{key: "n", label: "Listar usuários", run: m.listCustomers},
	}
}
