// Package identity contiene las reglas de validación del registro de clientes:
// nombre completo, fecha de nacimiento, CPF y dirección.
package identity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/pkg/cpf"
)

// BirthDateLayout formato dd/mm/aaaa.
const BirthDateLayout = "02/01/2006"

// MinBirthYear año mínimo aceptado para la fecha de nacimiento.
const MinBirthYear = 1900

var (
	ErrNameEmpty        = errors.New("nome não pode estar vazio")
	ErrNameIncomplete   = errors.New("nome deve conter nome e sobrenome")
	ErrBirthDateFormat  = errors.New("data de nascimento inválida! Use o formato dd/mm/aaaa")
	ErrBirthDateInvalid = errors.New("data de nascimento inexistente no calendário")
	ErrBirthDateRange   = errors.New("ano de nascimento fora do intervalo permitido")
	ErrNationalID       = errors.New("CPF inválido! Verifique se os dígitos estão corretos")
	ErrAddress          = errors.New("endereço inválido! Use o formato: logradouro, nro - bairro - cidade/sigla estado")
	ErrNationalIDTaken  = fmt.Errorf("CPF já cadastrado: %w", domain.ErrDuplicate)
)

var (
	birthDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	// "Rua das Flores, 123 - Centro - São Paulo/SP"
	addressPattern = regexp.MustCompile(`^[^,]+,\s*\d+\s*-\s*[^-]+-\s*[^/]+/[A-Z]{2}$`)
)

// ValidateName exige al menos dos palabras alfabéticas. Se aceptan acentos,
// apóstrofos y guiones dentro de la palabra ("D'Ávila", "Ana-Maria").
func ValidateName(name string) error {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ErrNameEmpty
	}
	words := 0
	for _, f := range fields {
		if isAlphabeticToken(f) {
			words++
		}
	}
	if words < 2 {
		return ErrNameIncomplete
	}
	return nil
}

func isAlphabeticToken(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == '\'' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return letters > 0
}

// ParseBirthDate valida formato, existencia en el calendario (años bisiestos incluidos)
// y que el año esté en [MinBirthYear, año actual]. La fecha no puede ser futura.
func ParseBirthDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !birthDatePattern.MatchString(s) {
		return time.Time{}, ErrBirthDateFormat
	}
	// time.Parse rechaza 31/04 y 29/02 en años no bisiestos.
	d, err := time.ParseInLocation(BirthDateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, ErrBirthDateInvalid
	}
	if d.Year() < MinBirthYear || d.Year() > now.Year() {
		return time.Time{}, ErrBirthDateRange
	}
	if d.After(now) {
		return time.Time{}, ErrBirthDateRange
	}
	return d, nil
}

// ValidateNationalID valida el CPF y devuelve su forma normalizada (solo dígitos).
func ValidateNationalID(s string) (string, error) {
	if err := cpf.Validate(s); err != nil {
		return "", fmt.Errorf("%w (%v)", ErrNationalID, err)
	}
	return cpf.Normalize(s), nil
}

// ValidateAddress exige "logradouro, nro - bairro - cidade/UF".
func ValidateAddress(addr string) error {
	if !addressPattern.MatchString(strings.TrimSpace(addr)) {
		return ErrAddress
	}
	return nil
}
