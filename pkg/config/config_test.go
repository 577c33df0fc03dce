package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-bancario/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "sistema-bancario", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "0001", cfg.Bank.BranchCode)
	assert.Equal(t, "500", cfg.Bank.WithdrawalMaxAmount.String())
	assert.Equal(t, 3, cfg.Bank.WithdrawalDailyMax)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BANK_BRANCH_CODE", "0042")
	t.Setenv("BANK_WITHDRAWAL_MAX_AMOUNT", "750,00")
	t.Setenv("BANK_WITHDRAWAL_DAILY_LIMIT", "5")

	_, err := config.Load()
	require.Error(t, err, "la coma no es separador válido en configuración")

	t.Setenv("BANK_WITHDRAWAL_MAX_AMOUNT", "750.00")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0042", cfg.Bank.BranchCode)
	assert.Equal(t, "750", cfg.Bank.WithdrawalMaxAmount.String())
	assert.Equal(t, 5, cfg.Bank.WithdrawalDailyMax)
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	t.Run("limite_diario_no_numerico", func(t *testing.T) {
		t.Setenv("BANK_WITHDRAWAL_DAILY_LIMIT", "tres")
		_, err := config.Load()
		assert.Error(t, err)
	})
	t.Run("tope_negativo", func(t *testing.T) {
		t.Setenv("BANK_WITHDRAWAL_MAX_AMOUNT", "-1")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
