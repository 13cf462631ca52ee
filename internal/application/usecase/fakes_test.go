package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// fakeDB backend en memoria compartido por los fakes de repositorio.
// Sin mutex: estos tests no ejercitan concurrencia.
type fakeDB struct {
	nextID    int64
	products  map[int64]*entity.Product
	stores    map[int64]*entity.Store
	inventory map[[2]int64]*entity.Inventory
	movements []*entity.Movement
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		products:  make(map[int64]*entity.Product),
		stores:    make(map[int64]*entity.Store),
		inventory: make(map[[2]int64]*entity.Inventory),
	}
}

func (db *fakeDB) id() int64 { db.nextID++; return db.nextID }

type fakeProductRepo struct{ db *fakeDB }

func (r fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.db.id()
	r.db.products[p.ID] = p
	return nil
}

func (r fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.db.products[id], nil
}

func (r fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		out = append(out, p)
	}
	return out, nil
}

func (r fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.db.products[p.ID] = p
	return nil
}

func (r fakeProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.db.products[id]; !ok {
		return false, nil
	}
	delete(r.db.products, id)
	return true, nil
}

type fakeStoreRepo struct{ db *fakeDB }

func (r fakeStoreRepo) Create(_ context.Context, st *entity.Store) error {
	st.ID = r.db.id()
	r.db.stores[st.ID] = st
	return nil
}

func (r fakeStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	return r.db.stores[id], nil
}

func (r fakeStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.db.stores))
	for _, st := range r.db.stores {
		out = append(out, st)
	}
	return out, nil
}

type fakeInventoryRepo struct{ db *fakeDB }

func (r fakeInventoryRepo) GetForUpdate(_ context.Context, productID, storeID int64) (*entity.Inventory, error) {
	return r.db.inventory[[2]int64{productID, storeID}], nil
}

func (r fakeInventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	for _, inv := range r.db.inventory {
		if inv.ID == id {
			inv.Quantity = quantity
		}
	}
	return nil
}

func (r fakeInventoryRepo) IncrementOrCreate(_ context.Context, productID, storeID int64, quantity int) (*entity.Inventory, bool, error) {
	key := [2]int64{productID, storeID}
	if inv, ok := r.db.inventory[key]; ok {
		inv.Quantity += quantity
		return inv, false, nil
	}
	inv := &entity.Inventory{ID: r.db.id(), ProductID: productID, StoreID: storeID, Quantity: quantity}
	r.db.inventory[key] = inv
	return inv, true, nil
}

func (r fakeInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	inv.ID = r.db.id()
	r.db.inventory[[2]int64{inv.ProductID, inv.StoreID}] = inv
	return nil
}

func (r fakeInventoryRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.db.inventory {
		if inv.StoreID == storeID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r fakeInventoryRepo) TotalStockByProduct(_ context.Context, productID int64) (int, error) {
	total := 0
	for _, inv := range r.db.inventory {
		if inv.ProductID == productID {
			total += inv.Quantity
		}
	}
	return total, nil
}

func (r fakeInventoryRepo) QueryLowStock(_ context.Context, _ *int64) ([]repository.LowStockRow, error) {
	return nil, nil
}

type fakeMovementRepo struct{ db *fakeDB }

func (r fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.db.id()
	m.Timestamp = time.Now().UTC()
	r.db.movements = append(r.db.movements, m)
	return nil
}

func (r fakeMovementRepo) List(_ context.Context) ([]repository.MovementRecord, error) {
	out := make([]repository.MovementRecord, 0, len(r.db.movements))
	for i := len(r.db.movements) - 1; i >= 0; i-- {
		m := r.db.movements[i]
		rec := repository.MovementRecord{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			SourceID:  m.SourceStoreID,
			TargetID:  m.TargetStoreID,
			Timestamp: m.Timestamp,
		}
		if p := r.db.products[m.ProductID]; p != nil {
			rec.ProductName = p.Name
			rec.ProductSKU = p.SKU
		}
		if m.SourceStoreID != nil {
			if st := r.db.stores[*m.SourceStoreID]; st != nil {
				rec.SourceName = &st.Name
			}
		}
		if m.TargetStoreID != nil {
			if st := r.db.stores[*m.TargetStoreID]; st != nil {
				rec.TargetName = &st.Name
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// fakeTxRunner pasa los repos del backend directamente; sin rollback, los
// tests de esta capa no ejercitan fallos a mitad de transacción.
type fakeTxRunner struct{ db *fakeDB }

func (r fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(fakeMovementRepo{r.db}, fakeInventoryRepo{r.db}, fakeProductRepo{r.db})
}
