package http

import (
	"github.com/gofiber/fiber/v2"

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
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	RecipeUC    *usecase.RecipeUseCase
	ItemUC      *usecase.ItemUseCase
	VesselUC    *usecase.VesselUseCase
	CustomerUC  *usecase.CustomerUseCase
	SupplierUC  *usecase.SupplierUseCase
	BatchUC     *production.BatchUseCase
	BatchTrans  *lifecycle.BatchTransitionUseCase
	OrderUC     *orders.OrderUseCase
	OrderTrans  *lifecycle.OrderTransitionUseCase
	PurchaseUC  *purchasing.PurchaseOrderUseCase
	POTrans     *lifecycle.PurchaseOrderTransitionUseCase
	ReceiveUC   *receiving.ReceiveLineUseCase
	PositionsUC *inventory.PositionsUseCase
	AdjustUC    *inventory.AdjustStockUseCase
	DemandUC    *planning.DemandUseCase
	ReportsUC   *reports.UseCase
	Movements   repository.StockMovementRepository
	Lots        repository.LotRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Escrituras de planta (lotes, tanques, compras, ajustes) exigen rol cervecero;
// escrituras comerciales (pedidos, clientes) exigen rol vendedor. admin pasa
// siempre. Las lecturas solo requieren token válido.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	brewer := RequireRole(entity.RoleCervecero)
	seller := RequireRole(entity.RoleVendedor)

	// Recipes (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", brewer, recipeHandler.Create)
	recipes.Post("/:id/clone", brewer, recipeHandler.Clone)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", brewer, itemHandler.Create)
	items.Put("/:id", brewer, itemHandler.Update)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	// Vessels (protegido)
	vessels := protected.Group("/vessels")
	vesselHandler := NewVesselHandler(deps.VesselUC)
	vessels.Post("/", brewer, vesselHandler.Create)
	vessels.Put("/:id/status", brewer, vesselHandler.SetStatus)
	vessels.Get("/", vesselHandler.List)
	vessels.Get("/:id", vesselHandler.GetByID)

	// Batches (protegido)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC, deps.BatchTrans)
	batches.Post("/", brewer, batchHandler.Create)
	batches.Put("/:id/status", brewer, batchHandler.Transition)
	batches.Put("/:id/vessel", brewer, batchHandler.AssignVessel)
	batches.Put("/:id/measurements", brewer, batchHandler.RecordMeasurements)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", seller, customerHandler.Create)
	customers.Put("/:id", seller, customerHandler.Update)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderTrans)
	reportHandler := NewReportHandler(deps.ReportsUC)
	ordersGroup.Post("/", seller, orderHandler.Create)
	ordersGroup.Put("/:id/lines", seller, orderHandler.ReplaceLines)
	ordersGroup.Put("/:id/status", seller, orderHandler.Transition)
	ordersGroup.Post("/:id/lines/:lineId/pick", seller, orderHandler.PickLine)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/dispatch-note", reportHandler.DispatchNote)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", brewer, supplierHandler.Create)
	suppliers.Put("/:id", brewer, supplierHandler.Update)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Purchase orders (protegido)
	purchases := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.POTrans, deps.ReceiveUC)
	purchases.Post("/", brewer, purchaseHandler.Create)
	purchases.Put("/:id/status", brewer, purchaseHandler.Transition)
	purchases.Post("/:id/receipts", brewer, purchaseHandler.ReceiveLine)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.PositionsUC, deps.AdjustUC, deps.Movements, deps.Lots)
	invGroup.Get("/positions", inventoryHandler.Positions)
	invGroup.Get("/finished", inventoryHandler.FinishedPositions)
	invGroup.Get("/movements", inventoryHandler.Movements)
	invGroup.Get("/lots", inventoryHandler.Lots)
	invGroup.Post("/adjustments", brewer, inventoryHandler.Adjust)

	// Planning (protegido)
	planningGroup := protected.Group("/planning")
	planningHandler := NewPlanningHandler(deps.DemandUC)
	planningGroup.Get("/demand", planningHandler.Demand)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/positions", reportHandler.PositionsReport)
}
