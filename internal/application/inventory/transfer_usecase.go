package inventory

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/jhoicas/retail-inventory/internal/application/dto"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// TransferUseCase ejecuta transferencias de stock entre tiendas como una
// operación todo-o-nada: valida la petición, resuelve entidades, y dentro
// de una transacción bloquea las filas de inventario (SELECT FOR UPDATE),
// resta en origen, suma en destino (creando la fila si no existe) y
// registra exactamente un Movement de tipo TRANSFER.
type TransferUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// requiredFields orden de validación de campos del body (mensajes estables).
var requiredFields = []struct {
	name    string
	present func(dto.TransferRequest) bool
}{
	{"product_id", func(in dto.TransferRequest) bool { return in.ProductID != nil }},
	{"source_store_id", func(in dto.TransferRequest) bool { return in.SourceStoreID != nil }},
	{"target_store_id", func(in dto.TransferRequest) bool { return in.TargetStoreID != nil }},
	{"quantity", func(in dto.TransferRequest) bool { return in.Quantity != nil }},
}

// validateRequest valida el body sin tocar almacenamiento (fail fast).
func validateRequest(in dto.TransferRequest) error {
	for _, f := range requiredFields {
		if !f.present(in) {
			return domain.NewValidationError("The field '%s' is required.", f.name)
		}
	}
	// Cota superior de int4: más allá la cantidad no es representable en
	// la columna quantity y la conversión a int desbordaría.
	q := *in.Quantity
	if q <= 0 || q != math.Trunc(q) || q > math.MaxInt32 {
		return domain.NewValidationError("The quantity must be a positive integer.")
	}
	if *in.SourceStoreID == *in.TargetStoreID {
		return domain.NewValidationError("The origin and destination stores must be different.")
	}
	return nil
}

// Transfer mueve quantity unidades del producto desde la tienda origen a la
// destino. Cualquier fallo de validación o resolución aborta sin efectos;
// un fallo dentro de la fase atómica revierte todos los pasos juntos.
func (uc *TransferUseCase) Transfer(ctx context.Context, in dto.TransferRequest) (*dto.TransferResult, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}
	productID := *in.ProductID
	sourceID := *in.SourceStoreID
	targetID := *in.TargetStoreID
	quantity := int(*in.Quantity)

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("Product not found.")
	}

	source, err := uc.storeRepo.GetByID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	target, err := uc.storeRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	switch {
	case source == nil && target == nil:
		return nil, domain.NewNotFoundError("Source and target stores could not be found.")
	case source == nil:
		return nil, domain.NewNotFoundError("Source store not found.")
	case target == nil:
		return nil, domain.NewNotFoundError("Target store not found.")
	}

	var result *dto.TransferResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		_ repository.ProductRepository,
	) error {
		// Bloquear las filas de inventario en orden ascendente de tienda:
		// dos transferencias opuestas entre el mismo par de tiendas toman
		// los bloqueos en el mismo orden y no pueden inter-bloquearse.
		var sourceInv, targetInv *entity.Inventory
		first, second := sourceID, targetID
		if targetID < sourceID {
			first, second = targetID, sourceID
		}
		for _, storeID := range [2]int64{first, second} {
			inv, err := invRepo.GetForUpdate(ctx, productID, storeID)
			if err != nil {
				return err
			}
			if storeID == sourceID {
				sourceInv = inv
			} else {
				targetInv = inv
			}
		}

		if sourceInv == nil {
			return domain.NewValidationError(
				"The product '%s' is not available in the store '%s'.", product.Name, source.Name)
		}
		if sourceInv.Quantity < quantity {
			return domain.NewValidationError(
				"Insufficient stock in store '%s'. Available: %d, Required: %d.",
				source.Name, sourceInv.Quantity, quantity)
		}

		remaining := sourceInv.Quantity - quantity
		if err := invRepo.UpdateQuantity(ctx, sourceInv.ID, remaining); err != nil {
			return err
		}

		var newStock int
		created := false
		if targetInv != nil {
			newStock = targetInv.Quantity + quantity
			if err := invRepo.UpdateQuantity(ctx, targetInv.ID, newStock); err != nil {
				return err
			}
		} else {
			// La fila destino no existía al bloquear: crear con defaults.
			// El upsert incremental tolera una creación concurrente.
			inv, wasCreated, err := invRepo.IncrementOrCreate(ctx, productID, targetID, quantity)
			if err != nil {
				return err
			}
			newStock = inv.Quantity
			created = wasCreated
		}

		movement := &entity.Movement{
			TransactionID: uuid.New().String(),
			ProductID:     productID,
			SourceStoreID: &sourceID,
			TargetStoreID: &targetID,
			Quantity:      quantity,
			Type:          entity.MovementTypeTRANSFER,
		}
		if err := movRepo.Create(ctx, movement); err != nil {
			return err
		}

		result = &dto.TransferResult{
			TransferID: movement.ID,
			Product: dto.ProductSnippet{
				ID:   product.ID,
				Name: product.Name,
				SKU:  product.SKU,
			},
			SourceStore: dto.SourceStoreSnippet{
				ID:             source.ID,
				Name:           source.Name,
				RemainingStock: remaining,
			},
			TargetStore: dto.TargetStoreSnippet{
				ID:               target.ID,
				Name:             target.Name,
				NewStock:         newStock,
				InventoryCreated: created,
			},
			QuantityTransferred: quantity,
			Timestamp:           movement.Timestamp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
