// Package cpf valida y normaliza el CPF (Cadastro de Pessoas Físicas, Brasil):
// 11 dígitos, los dos últimos son dígitos verificadores módulo 11.
package cpf

import (
	"errors"
	"fmt"
	"unicode"
)

// Length cantidad de dígitos de un CPF normalizado.
const Length = 11

var (
	ErrLength     = errors.New("cpf: deve conter 11 dígitos")
	ErrRepeated   = errors.New("cpf: sequência de dígitos repetidos")
	ErrCheckDigit = errors.New("cpf: dígito verificador inválido")
)

// Normalize extrae solo los dígitos; acepta "xxx.xxx.xxx-xx" o "xxxxxxxxxxx".
func Normalize(s string) string {
	out := make([]byte, 0, Length)
	for _, r := range s {
		if unicode.IsDigit(r) && r < 0x80 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Validate comprueba longitud, secuencias repetidas y los dos dígitos verificadores.
// El input puede venir formateado; se normaliza antes de validar.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != Length {
		return fmt.Errorf("%w: se encontraron %d", ErrLength, len(digits))
	}
	if isRepeated(digits) {
		return ErrRepeated
	}
	d1, d2, err := ComputeCheckDigits(digits[:9])
	if err != nil {
		return err
	}
	if digits[9] != d1 || digits[10] != d2 {
		return fmt.Errorf("%w: esperado %c%c, recebido %s", ErrCheckDigit, d1, d2, digits[9:])
	}
	return nil
}

// ComputeCheckDigits calcula los dos dígitos verificadores para la base de 9 dígitos.
// Primer dígito: pesos 10..2 sobre la base; segundo: pesos 11..2 sobre base + primer dígito.
// Resto 10 se mapea a 0.
func ComputeCheckDigits(base string) (byte, byte, error) {
	digits := Normalize(base)
	if len(digits) != 9 {
		return 0, 0, fmt.Errorf("cpf: base deve conter 9 dígitos, se encontraron %d", len(digits))
	}
	d1 := checkDigit(digits)
	d2 := checkDigit(digits + string(d1))
	return d1, d2, nil
}

func checkDigit(digits string) byte {
	weight := len(digits) + 1
	var sum int
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

func isRepeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// Format devuelve el CPF como "xxx.xxx.xxx-xx". Si no tiene 11 dígitos lo devuelve sin cambios.
func Format(s string) string {
	d := Normalize(s)
	if len(d) != Length {
		return s
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}
