package entity

import "time"

// Customer representa un cliente persona física, identificado por CPF.
type Customer struct {
	ID         string
	Name       string
	BirthDate  time.Time // solo fecha
	NationalID string    // CPF normalizado, 11 dígitos
	Address    string    // "logradouro, nro - bairro - cidade/UF"
	Accounts   []int     // números de conta en orden de apertura
	CreatedAt  time.Time
}

// Clone copia profunda (el slice de cuentas no se comparte).
func (c *Customer) Clone() *Customer {
	cp := *c
	cp.Accounts = append([]int(nil), c.Accounts...)
	return &cp
}
