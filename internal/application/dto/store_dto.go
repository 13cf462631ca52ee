package dto

// CreateStoreRequest body para POST /stores.
type CreateStoreRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// StoreResponse tienda serializada.
type StoreResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// StoreListData payload de GET /stores.
type StoreListData struct {
	Stores []StoreResponse `json:"stores"`
}

// InventoryItemResponse fila de inventario de una tienda.
type InventoryItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	StoreID   int64 `json:"store_id"`
	Quantity  int   `json:"quantity"`
	MinStock  int   `json:"min_stock"`
}

// StoreInventoryData payload de GET /stores/:id/inventory.
type StoreInventoryData struct {
	Inventory []InventoryItemResponse `json:"inventory"`
}
