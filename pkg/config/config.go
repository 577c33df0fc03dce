package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Log  LogConfig
	Bank BankConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// LogConfig nivel de log; la salida siempre es stderr.
type LogConfig struct {
	Level string
}

// BankConfig reglas fijas del simulador: agencia y política de saques de la conta corrente.
type BankConfig struct {
	BranchCode          string
	WithdrawalMaxAmount decimal.Decimal // tope por saque
	WithdrawalDailyMax  int             // cantidad de saques por día
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, BANK_BRANCH_CODE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	maxAmount, err := decimal.NewFromString(getString(v, "BANK_WITHDRAWAL_MAX_AMOUNT", "500.00"))
	if err != nil {
		return nil, fmt.Errorf("BANK_WITHDRAWAL_MAX_AMOUNT: %w", err)
	}
	if !maxAmount.IsPositive() {
		return nil, fmt.Errorf("BANK_WITHDRAWAL_MAX_AMOUNT debe ser positivo, recibido %s", maxAmount)
	}
	dailyMax, err := getInt(v, "BANK_WITHDRAWAL_DAILY_LIMIT", 3)
	if err != nil {
		return nil, fmt.Errorf("BANK_WITHDRAWAL_DAILY_LIMIT: %w", err)
	}
	if dailyMax < 0 {
		return nil, fmt.Errorf("BANK_WITHDRAWAL_DAILY_LIMIT no puede ser negativo, recibido %d", dailyMax)
	}
	branch := getString(v, "BANK_BRANCH_CODE", "0001")
	if branch == "" {
		return nil, fmt.Errorf("BANK_BRANCH_CODE vacío")
	}

	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sistema-bancario"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
		},
		Bank: BankConfig{
			BranchCode:          branch,
			WithdrawalMaxAmount: maxAmount,
			WithdrawalDailyMax:  dailyMax,
		},
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	default:
		return v.GetInt(key), nil
	}
}
