package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/application/inventory"
	"github.com/jhoicas/retail-inventory/internal/domain"
)

// InventoryHandler maneja transferencias de stock y alertas de stock bajo.
type InventoryHandler struct {
	transfer *inventory.TransferUseCase
	alerts   *inventory.AlertsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(transfer *inventory.TransferUseCase, alerts *inventory.AlertsUseCase) *InventoryHandler {
	return &InventoryHandler{transfer: transfer, alerts: alerts}
}

// Transfer godoc
// @Summary      Transferir stock entre tiendas
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, source_store_id, target_store_id, quantity"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid JSON in request body."))
	}
	result, err := h.transfer.Transfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("Transfer completed successfully.", result))
}

// Alerts godoc
// @Summary      Alertas de stock bajo
// @Description  Filas de inventario con quantity <= min_stock, con conteos
//               agregados. store_id filtra a una tienda (debe existir).
// @Tags         inventory
// @Produce      json
// @Param        store_id  query  int  false  "Filtrar por tienda"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	var storeID *int64
	if raw := c.Query("store_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return respondError(c, domain.NewValidationError("The store_id must be an integer."))
		}
		storeID = &id
	}
	data, err := h.alerts.ListLowStockAlerts(c.Context(), storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Success("", data))
}
