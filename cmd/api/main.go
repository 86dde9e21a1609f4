package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Cerveceria-api/docs"
	"github.com/jhoicas/Cerveceria-api/internal/application/auth"
	"github.com/jhoicas/Cerveceria-api/internal/application/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/application/orders"
	"github.com/jhoicas/Cerveceria-api/internal/application/planning"
	"github.com/jhoicas/Cerveceria-api/internal/application/production"
	"github.com/jhoicas/Cerveceria-api/internal/application/purchasing"
	"github.com/jhoicas/Cerveceria-api/internal/application/receiving"
	"github.com/jhoicas/Cerveceria-api/internal/application/reports"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Cerveceria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cerveceria-api/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/Cerveceria-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Cerveceria-api/internal/interfaces/http"
	"github.com/jhoicas/Cerveceria-api/pkg/config"
	"github.com/jhoicas/Cerveceria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios ligados al pool (lecturas fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	vesselRepo := postgres.NewVesselRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, itemRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	vesselUC := usecase.NewVesselUseCase(vesselRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	batchUC := production.NewBatchUseCase(txRunner, batchRepo, recipeRepo, vesselRepo, production.Config{
		NumberPrefix: cfg.Numbering.BatchPrefix,
	})
	orderUC := orders.NewOrderUseCase(txRunner, orderRepo, customerRepo, recipeRepo, orders.Config{
		NumberPrefix: cfg.Numbering.OrderPrefix,
		DefaultTax:   cfg.Tax.DefaultRate,
	})
	purchaseUC := purchasing.NewPurchaseOrderUseCase(txRunner, poRepo, supplierRepo, itemRepo, purchasing.Config{
		NumberPrefix: cfg.Numbering.PurchaseOrderPrefix,
		DefaultTax:   cfg.Tax.DefaultRate,
	})

	transLog := log.Component("transiciones")
	batchTransUC := lifecycle.NewBatchTransitionUseCase(txRunner, transLog)
	orderTransUC := lifecycle.NewOrderTransitionUseCase(txRunner, transLog)
	poTransUC := lifecycle.NewPurchaseOrderTransitionUseCase(txRunner, transLog)
	receiveUC := receiving.NewReceiveLineUseCase(txRunner, log.Component("recepcion"))
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, log.Component("inventario"))
	positionsUC := inventory.NewPositionsUseCase(ledgerRepo)
	demandUC := planning.NewDemandUseCase(ledgerRepo)

	// El empaque corre después del commit de planned->...->packaged:
	// crea producto terminado y consume materia prima FEFO.
	packagingUC := production.NewPackagingUseCase(txRunner, log.Component("empaque"))
	batchTransUC.OnPackaged(packagingUC.Hook)

	reportsUC := reports.NewUseCase(
		orderRepo, customerRepo, recipeRepo, positionsUC,
		infrapdf.NewDispatchNoteGenerator(cfg.App.Name),
		infraxlsx.NewPositionReport(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		RecipeUC:    recipeUC,
		ItemUC:      itemUC,
		VesselUC:    vesselUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		BatchUC:     batchUC,
		BatchTrans:  batchTransUC,
		OrderUC:     orderUC,
		OrderTrans:  orderTransUC,
		PurchaseUC:  purchaseUC,
		POTrans:     poTransUC,
		ReceiveUC:   receiveUC,
		PositionsUC: positionsUC,
		AdjustUC:    adjustUC,
		DemandUC:    demandUC,
		ReportsUC:   reportsUC,
		Movements:   movementRepo,
		Lots:        lotRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
}
