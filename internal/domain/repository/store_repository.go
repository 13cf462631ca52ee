package repository

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// GetByID devuelve (nil, nil) cuando la tienda no existe.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
}
