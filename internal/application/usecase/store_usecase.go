package usecase

import (
	"context"

	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// StoreUseCase casos de uso de tiendas y su inventario.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
	invRepo   repository.InventoryRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository, invRepo repository.InventoryRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, invRepo: invRepo}
}

// Create crea una tienda (name y address obligatorios).
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if in.Name == "" || in.Address == nil || *in.Address == "" {
		return nil, domain.NewValidationError("Name and address are required.")
	}
	store := &entity.Store{Name: in.Name, Address: in.Address}
	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista todas las tiendas.
func (uc *StoreUseCase) List(ctx context.Context) (*dto.StoreListData, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, domain.NewNotFoundError("No stores found.")
	}
	items := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListData{Stores: items}, nil
}

// GetInventory lista las filas de inventario de una tienda existente.
func (uc *StoreUseCase) GetInventory(ctx context.Context, storeID int64) (*dto.StoreInventoryData, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewNotFoundError("Store not found.")
	}
	rows, err := uc.invRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(rows))
	for _, inv := range rows {
		items = append(items, dto.InventoryItemResponse{
			ID:        inv.ID,
			ProductID: inv.ProductID,
			StoreID:   inv.StoreID,
			Quantity:  inv.Quantity,
			MinStock:  inv.MinStock,
		})
	}
	return &dto.StoreInventoryData{Inventory: items}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{ID: s.ID, Name: s.Name, Address: s.Address}
}
