package identity

import (
	"errors"
	"strings"

	"github.com/jhoicas/sistema-bancario/internal/domain"
)

// FieldError violación de una regla de registro.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e FieldError) Unwrap() error { return e.Err }

// ValidationError agrupa todas las violaciones de un registro de cliente.
// errors.Is funciona contra domain.ErrInvalidInput y contra cada error de campo.
type ValidationError struct {
	Fields []FieldError
}

// Add agrega una violación.
func (v *ValidationError) Add(field string, err error) {
	v.Fields = append(v.Fields, FieldError{Field: field, Err: err})
}

// HasErrors indica si hay al menos una violación.
func (v *ValidationError) HasErrors() bool { return v != nil && len(v.Fields) > 0 }

// Messages textos para mostrar al usuario, en orden de detección.
func (v *ValidationError) Messages() []string {
	out := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		out = append(out, f.Err.Error())
	}
	return out
}

func (v *ValidationError) Error() string {
	return domain.ErrInvalidInput.Error() + ": " + strings.Join(v.Messages(), "; ")
}

func (v *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v.Fields)+1)
	errs = append(errs, domain.ErrInvalidInput)
	for _, f := range v.Fields {
		errs = append(errs, f)
	}
	return errs
}

// AsValidationError extrae el ValidationError de una cadena de errores.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
