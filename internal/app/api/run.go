package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	marketplaceserver "github.com/anycomp/marketplace-api/server"

	buyersmemory "github.com/anycomp/marketplace-api/internal/domains/buyers/adapters/memory"
	buyerspostgres "github.com/anycomp/marketplace-api/internal/domains/buyers/adapters/persistence/postgres"
	buyersapp "github.com/anycomp/marketplace-api/internal/domains/buyers/application"
	buyersports "github.com/anycomp/marketplace-api/internal/domains/buyers/ports"

	sellersmemory "github.com/anycomp/marketplace-api/internal/domains/sellers/adapters/memory"
	sellerspostgres "github.com/anycomp/marketplace-api/internal/domains/sellers/adapters/persistence/postgres"
	sellersapp "github.com/anycomp/marketplace-api/internal/domains/sellers/application"
	sellersports "github.com/anycomp/marketplace-api/internal/domains/sellers/ports"

	itemsdirectory "github.com/anycomp/marketplace-api/internal/domains/items/adapters/directory"
	itemsmemory "github.com/anycomp/marketplace-api/internal/domains/items/adapters/memory"
	itemspostgres "github.com/anycomp/marketplace-api/internal/domains/items/adapters/persistence/postgres"
	itemsapp "github.com/anycomp/marketplace-api/internal/domains/items/application"
	itemsports "github.com/anycomp/marketplace-api/internal/domains/items/ports"

	purchasesdirectory "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/directory"
	purchasesmemory "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/memory"
	purchasesobs "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/observability"
	purchasespostgres "github.com/anycomp/marketplace-api/internal/domains/purchases/adapters/persistence/postgres"
	purchasesapp "github.com/anycomp/marketplace-api/internal/domains/purchases/application"
	purchasesports "github.com/anycomp/marketplace-api/internal/domains/purchases/ports"

	"github.com/anycomp/marketplace-api/internal/platform/migrations"
	platformobservability "github.com/anycomp/marketplace-api/internal/platform/observability"
	platformpostgres "github.com/anycomp/marketplace-api/internal/platform/postgres"
)

// repositories groups the persistence adapters selected at startup.
type repositories struct {
	buyers    buyersports.Repository
	sellers   sellersports.Repository
	items     itemsports.Repository
	purchases purchasesports.Repository

	buyerLookup purchasesports.BuyerDirectory
	catalog     purchasesports.Catalog
}

// Run boots the marketplace HTTP API with observability, repositories, and
// middleware wired through explicit constructor injection.
func Run(ctx context.Context) error {
	const serviceName = "marketplace-api"

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, cleanup := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer cleanup()

	repos, err := buildRepositories(db, logger)
	if err != nil {
		return err
	}

	buyerService := buyersapp.NewService(repos.buyers)
	sellerService := sellersapp.NewService(repos.sellers)
	itemService := itemsapp.NewService(repos.items, itemsdirectory.NewSellerLookup(repos.sellers))
	purchaseService := purchasesobs.New(
		purchasesapp.NewService(repos.purchases, repos.buyerLookup, repos.catalog),
		purchasesobs.WithLogger(logger),
		purchasesobs.WithTracer(instruments.Tracer("internal.purchases.application")),
		purchasesobs.WithMeter(instruments.Meter("internal.purchases.application")),
	)

	handlers := marketplaceserver.ApiHandleFunctions{
		BuyersAPI:    marketplaceserver.NewBuyersAPI(buyerService),
		SellersAPI:   marketplaceserver.NewSellersAPI(sellerService),
		ItemsAPI:     marketplaceserver.NewItemsAPI(itemService),
		PurchasesAPI: marketplaceserver.NewPurchasesAPI(purchaseService),
	}

	router := marketplaceserver.NewRouter(handlers,
		otelgin.Middleware(serviceName),
		marketplaceserver.RequestID(),
		cors.New(corsConfig(cfg)),
		marketplaceserver.BearerAuth(cfg.AuthToken),
	)

	logger.Info("marketplace API listening", slog.String("addr", cfg.Addr()))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Error("marketplace API server exited", slog.String("addr", cfg.Addr()), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildRepositories selects postgres-backed adapters when a connection is
// available and falls back to the in-memory set otherwise. The whole set
// switches together; mixing stores would break the purchase transaction.
func buildRepositories(db *gorm.DB, logger *slog.Logger) (repositories, error) {
	if db == nil {
		buyerRepo := buyersmemory.NewRepository()
		sellerRepo := sellersmemory.NewRepository()
		itemRepo := itemsmemory.NewRepository()
		buyerLookup := purchasesdirectory.NewBuyerLookup(buyerRepo)
		catalog := purchasesdirectory.NewCatalogLookup(itemRepo)
		return repositories{
			buyers:  buyerRepo,
			sellers: sellerRepo,
			items:   itemRepo,
			purchases: purchasesmemory.NewRepository(
				purchasesdirectory.NewStockGate(itemRepo), buyerLookup, catalog),
			buyerLookup: buyerLookup,
			catalog:     catalog,
		}, nil
	}
	if err := migrations.Run(db); err != nil {
		return repositories{}, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("repositories configured with postgres")
	buyerRepo := buyerspostgres.NewRepository(db)
	sellerRepo := sellerspostgres.NewRepository(db)
	itemRepo := itemspostgres.NewRepository(db)
	return repositories{
		buyers:      buyerRepo,
		sellers:     sellerRepo,
		items:       itemRepo,
		purchases:   purchasespostgres.NewRepository(db),
		buyerLookup: purchasesdirectory.NewBuyerLookup(buyerRepo),
		catalog:     purchasesdirectory.NewCatalogLookup(itemRepo),
	}, nil
}

func corsConfig(cfg Config) cors.Config {
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{cfg.CORSAllowedOrigin}
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	config.AllowHeaders = []string{"*"}
	return config
}
