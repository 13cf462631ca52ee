package usecase

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// MovementUseCase lectura del registro de auditoría de movimientos.
type MovementUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo}
}

// List devuelve los movimientos más recientes primero, con producto y
// tiendas resueltos (las tiendas pueden ser null).
func (uc *MovementUseCase) List(ctx context.Context) (*dto.MovementListData, error) {
	records, err := uc.movRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, dto.MovementResponse{
			ID: rec.ID,
			Product: dto.ProductSnippet{
				ID:   rec.ProductID,
				Name: rec.ProductName,
				SKU:  rec.ProductSKU,
			},
			Type:        rec.Type,
			Quantity:    rec.Quantity,
			SourceStore: toMovementStore(rec.SourceID, rec.SourceName),
			TargetStore: toMovementStore(rec.TargetID, rec.TargetName),
			Timestamp:   rec.Timestamp,
		})
	}
	return &dto.MovementListData{Movements: items}, nil
}

func toMovementStore(id *int64, name *string) *dto.MovementStoreSnippet {
	if id == nil {
		return nil
	}
	snippet := &dto.MovementStoreSnippet{ID: *id}
	if name != nil {
		snippet.Name = *name
	}
	return snippet
}
