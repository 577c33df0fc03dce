package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/sistema-bancario/internal/application/dto"
	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/identity"
)

// customerValidator conecta los tags de dto.RegisterCustomerRequest con las reglas de identity.
type customerValidator struct {
	v   *validator.Validate
	now func() time.Time
}

func newCustomerValidator(now func() time.Time) *customerValidator {
	cv := &customerValidator{v: validator.New(), now: now}
	cv.register("fullname", func(s string) error { return identity.ValidateName(s) })
	cv.register("birthdate", func(s string) error {
		_, err := identity.ParseBirthDate(s, cv.now())
		return err
	})
	cv.register("cpf", func(s string) error {
		_, err := identity.ValidateNationalID(s)
		return err
	})
	cv.register("fulladdress", identity.ValidateAddress)
	return cv
}

func (cv *customerValidator) register(tag string, rule func(string) error) {
	err := cv.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rule(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("registrar validación %q: %v", tag, err))
	}
}

// validate devuelve todas las violaciones en orden de campo; vacío si el request es válido.
func (cv *customerValidator) validate(in dto.RegisterCustomerRequest) *identity.ValidationError {
	ve := &identity.ValidationError{}
	err := cv.v.Struct(in)
	if err == nil {
		return ve
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add("", err)
		return ve
	}
	for _, fe := range fieldErrs {
		value, _ := fe.Value().(string)
		ve.Add(fe.StructField(), cv.explain(fe.StructField(), value))
	}
	return ve
}

// explain vuelve a correr la regla del campo para obtener el motivo concreto.
func (cv *customerValidator) explain(field, value string) error {
	var err error
	switch field {
	case "Name":
		err = identity.ValidateName(value)
	case "BirthDate":
		_, err = identity.ParseBirthDate(value, cv.now())
	case "NationalID":
		_, err = identity.ValidateNationalID(value)
	case "Address":
		err = identity.ValidateAddress(value)
	}
	if err == nil {
		return domain.ErrInvalidInput
	}
	return err
}
