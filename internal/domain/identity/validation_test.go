package identity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-bancario/internal/domain"
	"github.com/jhoicas/sistema-bancario/internal/domain/identity"
)

var refNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestValidateName(t *testing.T) {
	assert.NoError(t, identity.ValidateName("João Silva"))
	assert.NoError(t, identity.ValidateName("  Maria   D'Ávila  Souza "))
	assert.NoError(t, identity.ValidateName("Ana-Maria Braga"))

	assert.ErrorIs(t, identity.ValidateName(""), identity.ErrNameEmpty)
	assert.ErrorIs(t, identity.ValidateName("   "), identity.ErrNameEmpty)
	assert.ErrorIs(t, identity.ValidateName("João"), identity.ErrNameIncomplete)
	assert.ErrorIs(t, identity.ValidateName("João 123"), identity.ErrNameIncomplete)
	assert.ErrorIs(t, identity.ValidateName("R2D2 C3PO"), identity.ErrNameIncomplete)
}

func TestParseBirthDate(t *testing.T) {
	t.Run("valida", func(t *testing.T) {
		d, err := identity.ParseBirthDate("01/01/1990", refNow)
		require.NoError(t, err)
		assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("bisiesto", func(t *testing.T) {
		_, err := identity.ParseBirthDate("29/02/2000", refNow)
		assert.NoError(t, err)
		_, err = identity.ParseBirthDate("29/02/1900", refNow)
		assert.ErrorIs(t, err, identity.ErrBirthDateInvalid, "1900 no es bisiesto")
		_, err = identity.ParseBirthDate("29/02/2023", refNow)
		assert.ErrorIs(t, err, identity.ErrBirthDateInvalid)
	})

	t.Run("fecha_inexistente", func(t *testing.T) {
		for _, in := range []string{"31/04/1990", "00/01/1990", "15/13/1990", "32/01/1990"} {
			_, err := identity.ParseBirthDate(in, refNow)
			assert.ErrorIs(t, err, identity.ErrBirthDateInvalid, in)
		}
	})

	t.Run("formato", func(t *testing.T) {
		for _, in := range []string{"1/1/1990", "1990-01-01", "01-01-1990", "", "01/01/90"} {
			_, err := identity.ParseBirthDate(in, refNow)
			assert.ErrorIs(t, err, identity.ErrBirthDateFormat, in)
		}
	})

	t.Run("rango", func(t *testing.T) {
		_, err := identity.ParseBirthDate("31/12/1899", refNow)
		assert.ErrorIs(t, err, identity.ErrBirthDateRange)
		_, err = identity.ParseBirthDate("01/01/2027", refNow)
		assert.ErrorIs(t, err, identity.ErrBirthDateRange)
		_, err = identity.ParseBirthDate("01/12/2026", refNow)
		assert.ErrorIs(t, err, identity.ErrBirthDateRange, "fecha futura dentro del año actual")
		_, err = identity.ParseBirthDate("01/01/1900", refNow)
		assert.NoError(t, err)
	})
}

func TestValidateNationalID(t *testing.T) {
	got, err := identity.ValidateNationalID("111.444.777-35")
	require.NoError(t, err)
	assert.Equal(t, "11144477735", got)

	_, err = identity.ValidateNationalID("11111111111")
	assert.ErrorIs(t, err, identity.ErrNationalID)

	_, err = identity.ValidateNationalID("12345678901")
	assert.ErrorIs(t, err, identity.ErrNationalID)
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, identity.ValidateAddress("Rua A, 123 - Centro - São Paulo/SP"))
	assert.NoError(t, identity.ValidateAddress(" Av. Brasil,10-Jardim-Rio de Janeiro/RJ "))

	for _, in := range []string{
		"Rua A 123 - Centro - São Paulo/SP",
		"Rua A, s/n - Centro - São Paulo/SP",
		"Rua A, 123 - Centro - São Paulo/sp",
		"Rua A, 123 - Centro - São Paulo",
		"",
	} {
		assert.ErrorIs(t, identity.ValidateAddress(in), identity.ErrAddress, in)
	}
}

func TestValidationError(t *testing.T) {
	ve := &identity.ValidationError{}
	assert.False(t, ve.HasErrors())

	ve.Add("Name", identity.ErrNameEmpty)
	ve.Add("NationalID", identity.ErrNationalIDTaken)

	var err error = ve
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.True(t, errors.Is(err, identity.ErrNameEmpty))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, []string{identity.ErrNameEmpty.Error(), identity.ErrNationalIDTaken.Error()}, ve.Messages())

	got, ok := identity.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, got.Fields, 2)
}
