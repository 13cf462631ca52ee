package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx; las lecturas con bloqueo requieren tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene la fila del par (product, store) y la bloquea
// (SELECT FOR UPDATE). Devuelve (nil, nil) si el par no tiene fila.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, storeID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, store_id, quantity, min_stock
		FROM inventory WHERE product_id = $1 AND store_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, productID, storeID).Scan(
		&inv.ID, &inv.ProductID, &inv.StoreID, &inv.Quantity, &inv.MinStock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad de una fila ya bloqueada.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	_, err := r.q.Exec(ctx, `UPDATE inventory SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	return nil
}

// IncrementOrCreate suma quantity a la fila del par, creándola con defaults
// si no existe. El upsert es incremental (quantity = quantity + EXCLUDED),
// así dos creaciones concurrentes del mismo par no pierden unidades.
// xmax = 0 solo en filas insertadas, no actualizadas.
func (r *InventoryRepo) IncrementOrCreate(ctx context.Context, productID, storeID int64, quantity int) (*entity.Inventory, bool, error) {
	query := `
		INSERT INTO inventory (product_id, store_id, quantity, min_stock)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
		RETURNING id, quantity, min_stock, (xmax = 0) AS inserted`
	inv := entity.Inventory{ProductID: productID, StoreID: storeID}
	var created bool
	err := r.q.QueryRow(ctx, query, productID, storeID, quantity).Scan(
		&inv.ID, &inv.Quantity, &inv.MinStock, &created,
	)
	if err != nil {
		return nil, false, fmt.Errorf("increment or create inventory: %w", err)
	}
	return &inv, created, nil
}

// Create inserta una fila nueva (stock inicial) y completa su ID.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, store_id, quantity, min_stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, inv.ProductID, inv.StoreID, inv.Quantity, inv.MinStock).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// ListByStore lista las filas de inventario de una tienda.
func (r *InventoryRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, store_id, quantity, min_stock
		FROM inventory WHERE store_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by store: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.StoreID, &inv.Quantity, &inv.MinStock); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// TotalStockByProduct suma el stock del producto entre todas las tiendas.
func (r *InventoryRepo) TotalStockByProduct(ctx context.Context, productID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM inventory WHERE product_id = $1`, productID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total stock by product: %w", err)
	}
	return total, nil
}

// QueryLowStock lista filas con quantity <= min_stock con producto y tienda
// resueltos, ordenadas por nombre de producto y de tienda (orden estable).
// Lectura sin bloqueos: el reporte es consultivo.
func (r *InventoryRepo) QueryLowStock(ctx context.Context, storeID *int64) ([]repository.LowStockRow, error) {
	query := `
		SELECT i.id, i.quantity, i.min_stock,
		       p.id, p.name, p.sku, p.category,
		       s.id, s.name, s.address
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN stores s ON s.id = i.store_id
		WHERE i.quantity <= i.min_stock`
	args := []any{}
	if storeID != nil {
		query += ` AND i.store_id = $1`
		args = append(args, *storeID)
	}
	query += ` ORDER BY p.name, s.name, i.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		var category string
		if err := rows.Scan(
			&row.InventoryID, &row.Quantity, &row.MinStock,
			&row.ProductID, &row.ProductName, &row.ProductSKU, &category,
			&row.StoreID, &row.StoreName, &row.StoreAddress,
		); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		row.Category = entity.Category(category)
		list = append(list, row)
	}
	return list, rows.Err()
}
