package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/retail-inventory/internal/domain/entity"
	"github.com/jhoicas/retail-inventory/internal/domain/repository"
)

// memStore backend en memoria para probar los casos de uso sin PostgreSQL.
// El TxRunner falso serializa transacciones con el mutex y revierte el
// estado si el callback falla, imitando la semántica todo-o-nada de la BD.
type memStore struct {
	mu        sync.Mutex
	nextID    int64
	products  map[int64]*entity.Product
	stores    map[int64]*entity.Store
	inventory map[[2]int64]*entity.Inventory // clave: (productID, storeID)
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[int64]*entity.Product),
		stores:    make(map[int64]*entity.Store),
		inventory: make(map[[2]int64]*entity.Inventory),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) addProduct(p *entity.Product) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.products[p.ID] = p
	return p
}

func (s *memStore) addStore(st *entity.Store) *entity.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = s.id()
	s.stores[st.ID] = st
	return st
}

func (s *memStore) addInventory(productID, storeID int64, quantity, minStock int) *entity.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv := &entity.Inventory{
		ID:        s.id(),
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  quantity,
		MinStock:  minStock,
	}
	s.inventory[[2]int64{productID, storeID}] = inv
	return inv
}

func (s *memStore) quantityAt(productID, storeID int64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.inventory[[2]int64{productID, storeID}]
	if !ok {
		return 0, false
	}
	return inv.Quantity, true
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// ──────────────────────────────────────────────────────────────────────────
// Repositorios fuera de transacción (bloquean por llamada)
// ──────────────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.products[p.ID] = p
	return nil
}

func (r memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[p.ID] = p
	return nil
}

func (r memProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

type memStoreRepo struct{ s *memStore }

func (r memStoreRepo) Create(_ context.Context, st *entity.Store) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st.ID = r.s.id()
	r.s.stores[st.ID] = st
	return nil
}

func (r memStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.stores[id], nil
}

func (r memStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Store, 0, len(r.s.stores))
	for _, st := range r.s.stores {
		out = append(out, st)
	}
	return out, nil
}

type memInventoryRepo struct{ s *memStore }

func (r memInventoryRepo) GetForUpdate(_ context.Context, productID, storeID int64) (*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return txInventoryRepo{r.s}.get(productID, storeID), nil
}

func (r memInventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return txInventoryRepo{r.s}.updateQuantity(id, quantity)
}

func (r memInventoryRepo) IncrementOrCreate(_ context.Context, productID, storeID int64, quantity int) (*entity.Inventory, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, created := txInventoryRepo{r.s}.incrementOrCreate(productID, storeID, quantity)
	return inv, created, nil
}

func (r memInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv.ID = r.s.id()
	r.s.inventory[[2]int64{inv.ProductID, inv.StoreID}] = inv
	return nil
}

func (r memInventoryRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.Inventory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		if inv.StoreID == storeID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r memInventoryRepo) TotalStockByProduct(_ context.Context, productID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := 0
	for _, inv := range r.s.inventory {
		if inv.ProductID == productID {
			total += inv.Quantity
		}
	}
	return total, nil
}

func (r memInventoryRepo) QueryLowStock(_ context.Context, storeID *int64) ([]repository.LowStockRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var rows []repository.LowStockRow
	for _, inv := range r.s.inventory {
		if storeID != nil && inv.StoreID != *storeID {
			continue
		}
		if inv.Quantity > inv.MinStock {
			continue
		}
		p := r.s.products[inv.ProductID]
		st := r.s.stores[inv.StoreID]
		rows = append(rows, repository.LowStockRow{
			InventoryID:  inv.ID,
			Quantity:     inv.Quantity,
			MinStock:     inv.MinStock,
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductSKU:   p.SKU,
			Category:     p.Category,
			StoreID:      st.ID,
			StoreName:    st.Name,
			StoreAddress: st.Address,
		})
	}
	// Mismo orden que la consulta SQL: nombre de producto, nombre de tienda, id.
	sortLowStock(rows)
	return rows, nil
}

func sortLowStock(rows []repository.LowStockRow) {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && lowStockLess(rows[j], rows[j-1]); j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
}

func lowStockLess(a, b repository.LowStockRow) bool {
	if a.ProductName != b.ProductName {
		return a.ProductName < b.ProductName
	}
	if a.StoreName != b.StoreName {
		return a.StoreName < b.StoreName
	}
	return a.InventoryID < b.InventoryID
}

// ──────────────────────────────────────────────────────────────────────────
// TxRunner falso y repositorios atados a la "transacción"
// ──────────────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	invRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Snapshot para revertir si el callback falla.
	snapInv := make(map[[2]int64]entity.Inventory, len(r.s.inventory))
	for k, v := range r.s.inventory {
		snapInv[k] = *v
	}
	snapMov := len(r.s.movements)

	err := fn(txMovementRepo{r.s}, txInventoryRepo{r.s}, txProductRepo{r.s})
	if err != nil {
		restored := make(map[[2]int64]*entity.Inventory, len(snapInv))
		for k, v := range snapInv {
			inv := v
			restored[k] = &inv
		}
		r.s.inventory = restored
		r.s.movements = r.s.movements[:snapMov]
	}
	return err
}

// Los repos tx no bloquean: el mutex ya lo sostiene Run.

type txInventoryRepo struct{ s *memStore }

func (r txInventoryRepo) get(productID, storeID int64) *entity.Inventory {
	return r.s.inventory[[2]int64{productID, storeID}]
}

func (r txInventoryRepo) updateQuantity(id int64, quantity int) error {
	for _, inv := range r.s.inventory {
		if inv.ID == id {
			inv.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r txInventoryRepo) incrementOrCreate(productID, storeID int64, quantity int) (*entity.Inventory, bool) {
	key := [2]int64{productID, storeID}
	if inv, ok := r.s.inventory[key]; ok {
		inv.Quantity += quantity
		return inv, false
	}
	inv := &entity.Inventory{
		ID:        r.s.id(),
		ProductID: productID,
		StoreID:   storeID,
		Quantity:  quantity,
		MinStock:  0,
	}
	r.s.inventory[key] = inv
	return inv, true
}

func (r txInventoryRepo) GetForUpdate(_ context.Context, productID, storeID int64) (*entity.Inventory, error) {
	return r.get(productID, storeID), nil
}

func (r txInventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int) error {
	return r.updateQuantity(id, quantity)
}

func (r txInventoryRepo) IncrementOrCreate(_ context.Context, productID, storeID int64, quantity int) (*entity.Inventory, bool, error) {
	inv, created := r.incrementOrCreate(productID, storeID, quantity)
	return inv, created, nil
}

func (r txInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	inv.ID = r.s.id()
	r.s.inventory[[2]int64{inv.ProductID, inv.StoreID}] = inv
	return nil
}

func (r txInventoryRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, inv := range r.s.inventory {
		if inv.StoreID == storeID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r txInventoryRepo) TotalStockByProduct(_ context.Context, productID int64) (int, error) {
	total := 0
	for _, inv := range r.s.inventory {
		if inv.ProductID == productID {
			total += inv.Quantity
		}
	}
	return total, nil
}

func (r txInventoryRepo) QueryLowStock(_ context.Context, _ *int64) ([]repository.LowStockRow, error) {
	return nil, nil
}

type txMovementRepo struct{ s *memStore }

func (r txMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.s.id()
	m.Timestamp = time.Now().UTC()
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r txMovementRepo) List(_ context.Context) ([]repository.MovementRecord, error) {
	out := make([]repository.MovementRecord, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		p := r.s.products[m.ProductID]
		rec := repository.MovementRecord{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			SourceID:  m.SourceStoreID,
			TargetID:  m.TargetStoreID,
			Timestamp: m.Timestamp,
		}
		if p != nil {
			rec.ProductName = p.Name
			rec.ProductSKU = p.SKU
		}
		if m.SourceStoreID != nil {
			if st := r.s.stores[*m.SourceStoreID]; st != nil {
				rec.SourceName = &st.Name
			}
		}
		if m.TargetStoreID != nil {
			if st := r.s.stores[*m.TargetStoreID]; st != nil {
				rec.TargetName = &st.Name
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

type txProductRepo struct{ s *memStore }

func (r txProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.s.id()
	r.s.products[p.ID] = p
	return nil
}

func (r txProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r txProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r txProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r txProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}
