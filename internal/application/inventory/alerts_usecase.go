package inventory

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// AlertsUseCase reporte de solo lectura de inventario bajo mínimo
// (quantity <= min_stock). Lectura instantánea sin bloqueos: las alertas
// son consultivas y pueden quedar desactualizadas al momento de actuar.
type AlertsUseCase struct {
	invRepo   repository.InventoryRepository
	storeRepo repository.StoreRepository
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(invRepo repository.InventoryRepository, storeRepo repository.StoreRepository) *AlertsUseCase {
	return &AlertsUseCase{invRepo: invRepo, storeRepo: storeRepo}
}

// ListLowStockAlerts lista las filas con quantity <= min_stock, opcionalmente
// filtradas a una tienda (que debe existir), ordenadas por nombre de producto
// y de tienda, con conteos agregados.
func (uc *AlertsUseCase) ListLowStockAlerts(ctx context.Context, storeID *int64) (*dto.AlertsData, error) {
	if storeID != nil {
		store, err := uc.storeRepo.GetByID(ctx, *storeID)
		if err != nil {
			return nil, err
		}
		if store == nil {
			return nil, domain.NewNotFoundError("Store not found.")
		}
	}

	rows, err := uc.invRepo.QueryLowStock(ctx, storeID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.Alert, 0, len(rows))
	critical := 0
	for _, row := range rows {
		level := dto.AlertLevelWarning
		if row.Quantity == 0 {
			level = dto.AlertLevelCritical
			critical++
		}
		alerts = append(alerts, dto.Alert{
			InventoryID: row.InventoryID,
			Product: dto.AlertProduct{
				ID:       row.ProductID,
				Name:     row.ProductName,
				SKU:      row.ProductSKU,
				Category: row.Category.Display(),
			},
			Store: dto.AlertStore{
				ID:      row.StoreID,
				Name:    row.StoreName,
				Address: row.StoreAddress,
			},
			CurrentStock: row.Quantity,
			MinStock:     row.MinStock,
			Deficit:      row.MinStock - row.Quantity,
			AlertLevel:   level,
		})
	}

	return &dto.AlertsData{
		Alerts: alerts,
		Summary: dto.AlertSummary{
			TotalAlerts:    len(alerts),
			CriticalAlerts: critical,
			WarningAlerts:  len(alerts) - critical,
		},
		FilterApplied: dto.AlertFilter{StoreID: storeID},
	}, nil
}
