package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/internal/application/usecase"
	"github.com/jhoicas/sistema-bancario/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-bancario/internal/interfaces/cli"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

const registerJoao = "u\nJoão Silva\n01/01/1990\n111.444.777-35\nRua A, 123 - Centro - São Paulo/SP\n"

// runSession ejecuta el menú completo con casos de uso reales sobre repositorios en memoria.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()
	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()
	clock := usecase.WithClock(func() time.Time { return fixedNow })

	var out bytes.Buffer
	menu := cli.New(strings.NewReader(strings.Join(lines, "")), &out, cli.Deps{
		Customers:    usecase.NewCustomerUseCase(customerRepo, clock),
		Accounts:     usecase.NewAccountUseCase(accountRepo, customerRepo, usecase.AccountConfig{}, clock),
		Transactions: usecase.NewTransactionUseCase(accountRepo, customerRepo, clock),
	})
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_FlujoCompleto(t *testing.T) {
	out := runSession(t,
		registerJoao,
		"c\n11144477735\n",
		"d\n1\n200\n",
		"s\n1\n50,00\n",
		"s\n1\n500\n",
		"e\n1\n",
		"l\n",
		"q\n",
	)

	assert.Contains(t, out, "Usuário João Silva criado com sucesso!")
	assert.Contains(t, out, "Conta 1 (agência 0001) criada para João Silva.")
	assert.Contains(t, out, "Depósito realizado com sucesso! Saldo: R$ 200,00")
	assert.Contains(t, out, "Saque realizado com sucesso! Saldo: R$ 150,00 (saques hoje: 1/3)")
	assert.Contains(t, out, "Saldo insuficiente!")
	assert.Contains(t, out, "===== EXTRATO =====")
	assert.Contains(t, out, "19/10/2026 09:30:00 - Depósito: R$ 200,00")
	assert.Contains(t, out, "19/10/2026 09:30:00 - Saque: R$ 50,00")
	assert.Contains(t, out, "Saldo: R$ 150,00")
	assert.Contains(t, out, "Agência: 0001 | Conta: 1 | Titular: João Silva | CPF: 111.444.777-35")
	assert.True(t, strings.HasSuffix(out, "Saindo do sistema...\n"))
}

func TestMenu_ExtratoVacio(t *testing.T) {
	out := runSession(t, registerJoao, "c\n11144477735\n", "e\n1\n", "q\n")
	assert.Contains(t, out, "Não foram realizadas movimentações.")
	assert.Contains(t, out, "Saldo: R$ 0,00")
}

func TestMenu_ErroresDeValidacionDelRegistro(t *testing.T) {
	out := runSession(t, "u\nJoão\n31/02/1990\n11111111111\nRua A\n", "l\n", "q\n")

	assert.Contains(t, out, "Erros de validação:")
	assert.Contains(t, out, "- nome deve conter nome e sobrenome")
	assert.Contains(t, out, "- data de nascimento inexistente no calendário")
	assert.Contains(t, out, "- CPF inválido!")
	assert.Contains(t, out, "- endereço inválido!")
	assert.Contains(t, out, "Nenhuma conta cadastrada.")
}

func TestMenu_CPFDuplicado(t *testing.T) {
	out := runSession(t, registerJoao, registerJoao, "q\n")
	assert.Contains(t, out, "- CPF já cadastrado")
}

func TestMenu_EntradasInvalidas(t *testing.T) {
	out := runSession(t,
		"x\n",
		"c\n52998224725\n",
		"d\nabc\n",
		"d\n7\n",
		registerJoao,
		"c\n11144477735\n",
		"d\n1\n-10\n",
		"d\n1\n10,123\n",
		"d\n1\n0\n",
		"d\n1\n1000\n",
		"s\n1\n600\n",
		"q\n",
	)

	assert.Contains(t, out, "Opção inválida!")
	assert.Contains(t, out, "Usuário não encontrado!")
	assert.Contains(t, out, "Número da conta inválido! Digite apenas números.")
	assert.Contains(t, out, "Conta não encontrada!")
	assert.Equal(t, 2, strings.Count(out, "Valor inválido! Digite apenas números positivos."))
	assert.Contains(t, out, "Valor inválido!\n")
	assert.Contains(t, out, "Valor excede o limite por saque!")
}

func TestMenu_LimiteDiarioDeSaques(t *testing.T) {
	out := runSession(t,
		registerJoao,
		"c\n11144477735\n",
		"d\n1\n1000\n",
		"s\n1\n10\n", "s\n1\n10\n", "s\n1\n10\n", "s\n1\n10\n",
		"e\n1\n",
		"q\n",
	)
	assert.Equal(t, 3, strings.Count(out, "Saque realizado com sucesso!"))
	assert.Contains(t, out, "Limite de saques diários atingido!")
	assert.Contains(t, out, "Saldo: R$ 970,00")
}

func TestMenu_OpcionesSinDistinguirMayusculas(t *testing.T) {
	out := runSession(t, "L\n", "Q\n")
	assert.Contains(t, out, "--- CONTAS CADASTRADAS ---")
	assert.Contains(t, out, "Saindo do sistema...")
}

func TestMenu_ConsultaDeUsuarios(t *testing.T) {
	out := runSession(t,
		"n\n",
		registerJoao,
		"c\n11144477735\n",
		"d\n1\n1234,5\n",
		"v\n111.444.777-35\n",
		"v\n52998224725\n",
		"n\n",
		"q\n",
	)

	assert.Contains(t, out, "Nenhum usuário cadastrado.")
	assert.Contains(t, out, "--- DADOS DO USUÁRIO ---")
	assert.Contains(t, out, "Nome: João Silva | Nascimento: 01/01/1990 | CPF: 111.444.777-35")
	assert.Contains(t, out, "Endereço: Rua A, 123 - Centro - São Paulo/SP")
	assert.Contains(t, out, "Agência: 0001 | Conta: 1 | Saldo: R$ 1.234,50")
	assert.Contains(t, out, "Usuário não encontrado!")
	assert.Contains(t, out, "Nome: João Silva | CPF: 111.444.777-35 | Contas: 1")
}

func TestMenu_ContaInexistenteNoPideValor(t *testing.T) {
	out := runSession(t, "s\n3\n", "q\n")
	assert.Contains(t, out, "Conta não encontrada!")
	assert.NotContains(t, out, "Valor do saque: ")
	assert.NotContains(t, out, "Opção inválida!")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fin de la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_EOFTerminaSinError(t *testing.T) {
	out := runSession(t, "u\nJoão Silva\n")
	assert.True(t, strings.HasSuffix(out, "Saindo do sistema...\n"))
}

func TestMenu_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	menu := cli.New(strings.NewReader("l\n"), &out, cli.Deps{})
	require.NoError(t, menu.Run(ctx))
	assert.Equal(t, "Saindo do sistema...\n", out.String())
}

type failingAccounts struct{}

func (failingAccounts) Open(string) (*dto.AccountResponse, error) { return nil, errors.New("boom") }
func (failingAccounts) Get(int) (*dto.AccountResponse, error)     { return nil, errors.New("boom") }
func (failingAccounts) List() ([]dto.AccountResponse, error)      { return nil, errors.New("boom") }
func (failingAccounts) ListByCustomer(string) ([]dto.AccountResponse, error) {
	return nil, errors.New("boom")
}

type noTransactions struct{}

func (noTransactions) Deposit(int, decimal.Decimal) (*dto.OperationResponse, error) {
	return nil, errors.New("boom")
}
func (noTransactions) Withdraw(int, decimal.Decimal) (*dto.OperationResponse, error) {
	return nil, errors.New("boom")
}
func (noTransactions) Statement(int) (*dto.StatementResponse, error) { return nil, errors.New("boom") }

func TestMenu_ErrorInesperadoNoEsFatal(t *testing.T) {
	var out bytes.Buffer
	menu := cli.New(strings.NewReader("l\ne\n1\nq\n"), &out, cli.Deps{
		Accounts:     failingAccounts{},
		Transactions: noTransactions{},
	})
	require.NoError(t, menu.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), "Operação não realizada: boom"))
	assert.Contains(t, out.String(), "Saindo do sistema...")
}
