package cli

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistema-bancario/pkg/money"
)

var errInvalidAccountNumber = errors.New("número da conta inválido")

var accountNumberPattern = regexp.MustCompile(`^\d+$`)

// prompt escribe label y lee una línea. Entrada cerrada -> io.EOF.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

// promptAccountNumber solo dígitos.
func (m *Menu) promptAccountNumber() (int, error) {
	s, err := m.prompt("Número da conta: ")
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if !accountNumberPattern.MatchString(s) {
		return 0, errInvalidAccountNumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidAccountNumber
	}
	return n, nil
}

// promptAmount dígitos con coma o punto opcional y hasta dos decimales.
func (m *Menu) promptAmount(label string) (decimal.Decimal, error) {
	s, err := m.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Parse(s)
}
