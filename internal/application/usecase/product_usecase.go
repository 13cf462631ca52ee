package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/retail-inventory/internal/application/dto"
	appinventory "github.com/jhoicas/retail-inventory/internal/application/inventory"
	"github.com/jhoicas/retail-inventory/internal/domain"
	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD del catálogo de productos.
// La creación siembra el stock inicial en una tienda (fila de inventario
// más un movimiento IN) dentro de una sola transacción.
type ProductUseCase struct {
	txRunner  appinventory.TxRunner
	storeRepo repository.StoreRepository
	// Repositorios atados al pool para lecturas fuera de transacción.
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner appinventory.TxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	invRepo repository.InventoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		invRepo:     invRepo,
	}
}

// Create valida la petición, crea el producto y su inventario inicial y,
// si quantity > 0, registra el movimiento IN correspondiente.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"name", in.Name != nil},
		{"description", in.Description != nil},
		{"category", in.Category != nil},
		{"price", in.Price != nil},
		{"sku", in.SKU != nil},
		{"store_id", in.StoreID != nil},
		{"quantity", in.Quantity != nil},
		{"min_stock", in.MinStock != nil},
	} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError("Missing required fields: %s", strings.Join(missing, ", "))
	}

	category := entity.Category(*in.Category)
	if !category.IsValid() {
		return nil, domain.NewValidationError("The category '%s' is not valid.", *in.Category)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.NewValidationError("The price must be zero or positive.")
	}
	if *in.Quantity < 0 || *in.MinStock < 0 {
		return nil, domain.NewValidationError("The quantity and min_stock must be zero or positive.")
	}

	store, err := uc.storeRepo.GetByID(ctx, *in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewNotFoundError("Store not found.")
	}

	product := &entity.Product{
		Name:        *in.Name,
		Description: *in.Description,
		Category:    category,
		Price:       *in.Price,
		SKU:         *in.SKU,
	}
	inv := &entity.Inventory{
		StoreID:  store.ID,
		Quantity: *in.Quantity,
		MinStock: *in.MinStock,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		inv.ProductID = product.ID
		if err := invRepo.Create(ctx, inv); err != nil {
			return err
		}
		if inv.Quantity > 0 {
			// Stock inicial: entrada externa, sin tienda origen.
			return movRepo.Create(ctx, &entity.Movement{
				TransactionID: uuid.New().String(),
				ProductID:     product.ID,
				TargetStoreID: &store.ID,
				Quantity:      inv.Quantity,
				Type:          entity.MovementTypeIN,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toProductResponse(product, inv.Quantity)
	resp.Inventory = &dto.ProductInventoryInfo{
		StoreID:   store.ID,
		StoreName: store.Name,
		Quantity:  inv.Quantity,
		MinStock:  inv.MinStock,
	}
	return resp, nil
}

// GetByID devuelve el producto con su stock total entre tiendas.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("Product not found.")
	}
	total, err := uc.invRepo.TotalStockByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, total), nil
}

// List lista el catálogo ordenado por nombre con stock total por producto.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListData, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		total, err := uc.invRepo.TotalStockByProduct(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toProductResponse(p, total))
	}
	return &dto.ProductListData{Products: items}, nil
}

// Update actualiza campos de catálogo (nunca inventario: el stock solo
// cambia a través de movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFoundError("Product not found.")
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		category := entity.Category(*in.Category)
		if !category.IsValid() {
			return nil, domain.NewValidationError("The category '%s' is not valid.", *in.Category)
		}
		product.Category = category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError("The price must be zero or positive.")
		}
		product.Price = *in.Price
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	total, err := uc.invRepo.TotalStockByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product, total), nil
}

// Delete elimina el producto; su inventario cae en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("Product not found.")
	}
	return nil
}

func toProductResponse(p *entity.Product, totalStock int) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category.Display(),
		Price:       p.Price,
		SKU:         p.SKU,
		TotalStock:  totalStock,
	}
}
