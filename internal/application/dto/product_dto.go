package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /products. Crea el producto y su
// stock inicial en una tienda (fila de inventario + movimiento IN).
type CreateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	SKU         *string          `json:"sku"`
	StoreID     *int64           `json:"store_id"`
	Quantity    *int             `json:"quantity"`
	MinStock    *int             `json:"min_stock"`
}

// UpdateProductRequest body para PUT /products/:id (solo campos de catálogo).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	SKU         *string          `json:"sku"`
}

// ProductInventoryInfo stock inicial creado junto con el producto.
type ProductInventoryInfo struct {
	StoreID   int64  `json:"store_id"`
	StoreName string `json:"store_name"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}

// ProductResponse producto con categoría legible y stock total entre tiendas.
type ProductResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	SKU         string                `json:"sku"`
	TotalStock  int                   `json:"total_stock"`
	Inventory   *ProductInventoryInfo `json:"inventory,omitempty"`
}

// ProductListData payload de GET /products.
type ProductListData struct {
	Products []ProductResponse `json:"products"`
}
