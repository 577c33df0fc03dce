package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/sistema-bancario/internal/application/usecase"
	"github.com/jhoicas/sistema-bancario/internal/domain/entity"
	"github.com/jhoicas/sistema-bancario/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-bancario/internal/infrastructure/metrics"
	"github.com/jhoicas/sistema-bancario/internal/interfaces/cli"
	"github.com/jhoicas/sistema-bancario/pkg/config"
	"github.com/jhoicas/sistema-bancario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	collector := metrics.NewPrometheusCollector("banco")
	opts := []usecase.Option{usecase.WithLogger(log), usecase.WithMetrics(collector)}

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	customerUC := usecase.NewCustomerUseCase(customerRepo, opts...)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, usecase.AccountConfig{
		BranchCode: cfg.Bank.BranchCode,
		Policy: entity.WithdrawalPolicy{
			MaxAmount: cfg.Bank.WithdrawalMaxAmount,
			MaxDaily:  cfg.Bank.WithdrawalDailyMax,
		},
	}, opts...)
	transactionUC := usecase.NewTransactionUseCase(accountRepo, customerRepo, opts...)

	menu := cli.New(os.Stdin, os.Stdout, cli.Deps{
		Customers:    customerUC,
		Accounts:     accountUC,
		Transactions: transactionUC,
		Log:          log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// El menú bloquea en stdin; ante una señal no se espera a la próxima línea.
	done := make(chan error, 1)
	go func() {
		done <- menu.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("menú finalizado con error")
		}
	case <-ctx.Done():
		log.Info().Msg("señal de apagado recibida")
		os.Stdout.WriteString("\nSaindo do sistema...\n")
	}

	samples, err := collector.Summary()
	if err != nil {
		log.Error().Err(err).Msg("resumen de métricas")
	}
	for _, s := range samples {
		log.Info().Str("metric", s.Name).Float64("value", s.Value).Msg("resumen de sesión")
	}
	log.Info().Msg("aplicación detenida")
}
