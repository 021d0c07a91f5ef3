package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hungrybay/food-ordering/internal/domain"
	"github.com/hungrybay/food-ordering/internal/events"
	"github.com/hungrybay/food-ordering/internal/handler"
	"github.com/hungrybay/food-ordering/internal/repository"
	"github.com/hungrybay/food-ordering/internal/service"
	"github.com/hungrybay/food-ordering/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	logger.Info("Service configuration",
		zap.Int("order_number_base", cfg.OrderNumberBase),
		zap.String("currency_symbol", cfg.CurrencySymbol),
		zap.Bool("seed_menu", cfg.SeedMenu))

	// Initialize components
	menuRepo := repository.NewMenuRepository()
	ledgerRepo := repository.NewLedgerRepository(cfg.OrderNumberBase)
	journal := events.NewJournal(logger)

	menuService := service.NewMenuService(menuRepo, logger)
	orderService := service.NewOrderService(ledgerRepo, journal, logger)

	ctx := context.Background()
	if cfg.SeedMenu {
		seedMenu(ctx, menuService, logger)
	}

	customer := domain.NewCustomer(101, "Student", "student@arel.edu.tr", "+905551234567")
	admin := domain.NewAdmin(1, "Admin", "admin@arel.edu.tr", "+905009998877")

	console := handler.NewConsole(menuService, orderService, journal,
		customer, admin, cfg.CurrencySymbol, os.Stdin, os.Stdout, logger)

	if err := console.Run(ctx); err != nil {
		logger.Fatal("Console stopped", zap.Error(err))
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	// Logs go to stderr so they never interleave with the console prompts.
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func seedMenu(ctx context.Context, menu *service.MenuService, logger *zap.Logger) {
	seeds := []struct {
		name  string
		price string
	}{
		{"CheeseBurger", "8.99"},
		{"Pizza", "12.50"},
		{"Coke", "2.00"},
	}
	for _, s := range seeds {
		if _, err := menu.AddItem(ctx, s.name, decimal.RequireFromString(s.price)); err != nil {
			logger.Warn("Failed to seed menu item", zap.String("name", s.name), zap.Error(err))
		}
	}
}
