package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lista: los movimientos son
// inmutables una vez escritos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y completa ID y Timestamp (asignados por
// la base de datos; el timestamp es inmutable una vez fijado).
// TransactionID lo asigna el caso de uso que abre la transacción.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	query := `
		INSERT INTO movements (transaction_id, product_id, source_store_id, target_store_id, quantity, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.ProductID,
		movement.SourceStoreID, movement.TargetStoreID,
		movement.Quantity, movement.Type,
	).Scan(&movement.ID, &movement.Timestamp)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve los movimientos más recientes primero, con producto y
// tiendas resueltos vía LEFT JOIN (las tiendas pueden ser null).
func (r *MovementRepo) List(ctx context.Context) ([]repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.type, m.quantity, m.created_at,
		       p.id, p.name, p.sku,
		       src.id, src.name,
		       tgt.id, tgt.name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN stores src ON src.id = m.source_store_id
		LEFT JOIN stores tgt ON tgt.id = m.target_store_id
		ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(
			&rec.ID, &rec.Type, &rec.Quantity, &rec.Timestamp,
			&rec.ProductID, &rec.ProductName, &rec.ProductSKU,
			&rec.SourceID, &rec.SourceName,
			&rec.TargetID, &rec.TargetName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
