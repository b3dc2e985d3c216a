// Package main запускает терминальную витрину магазина.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/storefront-system/internal/auth"
	"github.com/mmeshcher/storefront-system/internal/catalog"
	"github.com/mmeshcher/storefront-system/internal/config"
	"github.com/mmeshcher/storefront-system/internal/currency"
	"github.com/mmeshcher/storefront-system/internal/metrics"
	"github.com/mmeshcher/storefront-system/internal/model"
	"github.com/mmeshcher/storefront-system/internal/order"
	"github.com/mmeshcher/storefront-system/internal/siteconfig"
	"github.com/mmeshcher/storefront-system/internal/storefront"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	converter, err := currency.NewConverter(cfg.Currency)
	if err != nil {
		sugar.Fatalw("currency initialization error", "error", err.Error())
	}

	products := catalog.NewProvider(catalog.DefaultCatalog())
	site := siteconfig.NewProvider(siteconfig.DefaultConfig())
	orders := order.NewStore()
	sink := metrics.NewSink()

	session := auth.NewService(cfg.SessionSecret)
	seedUsers(session, sugar)

	controller := storefront.NewController(storefront.Deps{
		Catalog:    products,
		Session:    session,
		Orders:     orders,
		Metrics:    sink,
		SiteConfig: site,
		Logger:     logger,
	})

	reporter := metrics.NewReporter(sink, logger, cfg.MetricsInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Запуск фонового вывода метрик
	g.Go(func() error {
		reporter.Run(ctx)
		return nil
	})

	// Запуск интерактивной витрины
	g.Go(func() error {
		defer stop()
		sugar.Infow("starting storefront", "store", cfg.StoreName, "currency", cfg.Currency)

		r := newREPL(cfg, controller, session, orders, converter, os.Stdin, os.Stdout)
		return r.run(ctx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}

	sugar.Info("storefront stopped gracefully")
}

// seedUsers наполняет сессию демонстрационными пользователями.
func seedUsers(session *auth.Service, sugar *zap.SugaredLogger) {
	seed := []struct {
		name     string
		email    string
		password string
		role     model.Role
	}{
		{"Store Admin", "admin@pharmamart.io", "admin123", model.RoleAdmin},
		{"Support Agent", "agent@pharmamart.io", "agent123", model.RoleAgent},
		{"Demo Customer", "demo@example.com", "demo123", model.RoleCustomer},
	}

	for _, s := range seed {
		if _, err := session.Register(s.name, s.email, s.password, s.role); err != nil {
			sugar.Fatalw("user seed error", "email", s.email, "error", err.Error())
		}
	}
}
