package repository

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
)

// LowStockRow fila de inventario bajo mínimo con producto y tienda resueltos,
// tal como la devuelve QueryLowStock (ordenada por nombre de producto y tienda).
type LowStockRow struct {
	InventoryID  int64
	Quantity     int
	MinStock     int
	ProductID    int64
	ProductName  string
	ProductSKU   string
	Category     entity.Category
	StoreID      int64
	StoreName    string
	StoreAddress *string
}

// InventoryRepository define el puerto para consultar y actualizar stock
// por (product, store). Las lecturas con bloqueo se usan dentro de
// transacciones para garantizar consistencia.
type InventoryRepository interface {
	// GetForUpdate lee la fila y la bloquea (SELECT FOR UPDATE).
	// Devuelve (nil, nil) si no existe fila para el par: ausencia de
	// presencia, distinta de cantidad cero.
	GetForUpdate(ctx context.Context, productID, storeID int64) (*entity.Inventory, error)
	// UpdateQuantity fija la cantidad de una fila ya bloqueada.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// IncrementOrCreate suma quantity a la fila del par, creándola con
	// defaults (quantity=0, min_stock=0) si no existe. Devuelve la fila
	// resultante y si fue creada. Seguro ante creaciones concurrentes.
	IncrementOrCreate(ctx context.Context, productID, storeID int64, quantity int) (*entity.Inventory, bool, error)
	// Create inserta una fila nueva (stock inicial de un producto).
	Create(ctx context.Context, inv *entity.Inventory) error
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Inventory, error)
	TotalStockByProduct(ctx context.Context, productID int64) (int, error)
	// QueryLowStock lista filas con quantity <= min_stock, opcionalmente
	// filtradas a una tienda. Lectura instantánea, sin bloqueos.
	QueryLowStock(ctx context.Context, storeID *int64) ([]LowStockRow, error)
}
