package repository

import (
	"context"
	"time"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
)

// MovementRecord movimiento con producto y tiendas resueltos para el listado
// de auditoría. Las tiendas pueden ser nil (movimiento externo o tienda borrada).
type MovementRecord struct {
	ID          int64
	ProductID   int64
	ProductName string
	ProductSKU  string
	Type        string
	Quantity    int
	SourceID    *int64
	SourceName  *string
	TargetID    *int64
	TargetName  *string
	Timestamp   time.Time
}

// MovementRepository define el puerto de persistencia para Movement.
// Solo inserción y lectura: el registro de movimientos es append-only.
type MovementRepository interface {
	// Create inserta el movimiento y completa ID y Timestamp (asignados
	// por el servidor de base de datos). TransactionID lo asigna el caller.
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context) ([]MovementRecord, error)
}
