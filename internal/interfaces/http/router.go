package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/retail-inventory/internal/application/inventory"
	"github.com/jhoicas/retail-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransferUC *inventory.TransferUseCase
	AlertsUC   *inventory.AlertsUseCase
	ProductUC  *usecase.ProductUseCase
	StoreUC    *usecase.StoreUseCase
	MovementUC *usecase.MovementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stores
	stores := app.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id/inventory", storeHandler.Inventory)

	// Inventory: transferencias y alertas
	inv := app.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.TransferUC, deps.AlertsUC)
	inv.Post("/transfer", inventoryHandler.Transfer)
	inv.Get("/alerts", inventoryHandler.Alerts)

	// Movements (auditoría, solo lectura)
	movements := app.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
}
