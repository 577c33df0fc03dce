// Package money parsea y formatea montos en reales con dos decimales.
package money

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Places cantidad de decimales con que se manejan los montos.
const Places = 2

// ErrInvalidFormat monto con caracteres distintos a dígitos y un separador decimal.
var ErrInvalidFormat = errors.New("valor inválido! Digite apenas números positivos")

// Dígitos con coma o punto opcional y hasta dos decimales. Sin signos ni espacios internos.
var amountPattern = regexp.MustCompile(`^\d+([.,]\d{1,2})?$`)

// Separadores de miles y decimales de pt-BR según x/text.
var groupSep, decimalSep = separators(language.BrazilianPortuguese)

// separators lee los separadores del locale formateando un número de referencia ("1.234.567,5").
func separators(tag language.Tag) (group, dec string) {
	r := []rune(message.NewPrinter(tag).Sprintf("%v", number.Decimal(1234567.5, number.Scale(1))))
	return string(r[1]), string(r[len(r)-2])
}

// Parse convierte la entrada del usuario ("150", "150,5", "150.50") a decimal.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, ErrInvalidFormat
	}
	d, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrInvalidFormat
	}
	return d, nil
}

// Round redondea a Places decimales.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format devuelve el monto como "R$ 1.234,56" a partir del decimal exacto, sin pasar por float64.
func Format(d decimal.Decimal) string {
	s := Round(d).StringFixed(Places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	integer, fraction, _ := strings.Cut(s, ".")
	return "R$ " + sign + group(integer) + decimalSep + fraction
}

// group inserta el separador de miles cada tres dígitos desde la derecha.
func group(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
