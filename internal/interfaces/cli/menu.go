// Package cli implementa el menú de terminal del simulador: lee opciones de stdin,
// delega en los casos de uso y escribe el resultado en stdout.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/pkg/logger"
)

// CustomerService registro y consulta de clientes.
type CustomerService interface {
	Register(in dto.RegisterCustomerRequest) (*dto.CustomerResponse, error)
	GetByNationalID(nationalID string) (*dto.CustomerResponse, error)
	List() ([]dto.CustomerResponse, error)
}

// AccountService apertura y consulta de contas.
type AccountService interface {
	Open(nationalID string) (*dto.AccountResponse, error)
	Get(number int) (*dto.AccountResponse, error)
	List() ([]dto.AccountResponse, error)
	ListByCustomer(nationalID string) ([]dto.AccountResponse, error)
}

// TransactionService depósitos, saques y extrato.
type TransactionService interface {
	Deposit(number int, amount decimal.Decimal) (*dto.OperationResponse, error)
	Withdraw(number int, amount decimal.Decimal) (*dto.OperationResponse, error)
	Statement(number int) (*dto.StatementResponse, error)
}

// Deps dependencias del menú.
type Deps struct {
	Customers    CustomerService
	Accounts     AccountService
	Transactions TransactionService
	Log          *logger.Logger
}

// Menu loop interactivo. No es seguro para uso concurrente.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	deps     Deps
	log      *logger.Logger
	commands []command
}

// New construye el menú sobre in/out.
func New(in io.Reader, out io.Writer, deps Deps) *Menu {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	m := &Menu{
		in:   bufio.NewScanner(in),
		out:  out,
		deps: deps,
		log:  log.Component("cli"),
	}
	m.commands = m.routes()
	return m
}

// Run muestra el menú hasta que el usuario elige salir, se cierra la entrada o se cancela ctx.
// Los errores de cada comando se muestran y el loop continúa.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			m.println("Saindo do sistema...")
			return nil
		}
		m.printMenu()
		choice, err := m.prompt("=> ")
		if err != nil {
			return m.endOfInput(err)
		}
		choice = strings.ToLower(strings.TrimSpace(choice))
		if choice == quitKey {
			m.println("Saindo do sistema...")
			return nil
		}
		cmd, ok := m.lookup(choice)
		if !ok {
			m.println("Opção inválida!")
			continue
		}
		m.log.Debug().Str("option", choice).Msg("opción seleccionada")
		if err := cmd.run(); err != nil {
			if errors.Is(err, io.EOF) {
				return m.endOfInput(err)
			}
			m.report(err)
		}
	}
}

// endOfInput EOF equivale a salir; cualquier otro error de lectura se devuelve.
func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		m.println("")
		m.println("Saindo do sistema...")
		return nil
	}
	return fmt.Errorf("leer entrada: %w", err)
}

func (m *Menu) printMenu() {
	var b strings.Builder
	b.WriteString("\n")
	for _, c := range m.commands {
		fmt.Fprintf(&b, "    [%s] %s\n", c.key, c.label)
	}
	fmt.Fprintf(&b, "    [%s] Sair\n", quitKey)
	fmt.Fprint(m.out, b.String())
}

func (m *Menu) lookup(key string) (command, bool) {
	for _, c := range m.commands {
		if c.key == key {
			return c, true
		}
	}
	return command{}, false
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	fmt.Fprintf(m.out, format, a...)
}
