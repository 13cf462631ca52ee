package dto

import "time"

// TransferRequest body para POST /inventory/transfer.
// Campos como punteros para distinguir "ausente" de "cero" en la validación.
// Quantity llega como número JSON; el motor rechaza no enteros y <= 0.
type TransferRequest struct {
	ProductID     *int64   `json:"product_id"`
	SourceStoreID *int64   `json:"source_store_id"`
	TargetStoreID *int64   `json:"target_store_id"`
	Quantity      *float64 `json:"quantity"`
}

// ProductSnippet identidad mínima del producto en la respuesta de transferencia.
type ProductSnippet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// SourceStoreSnippet tienda origen con su stock restante tras la transferencia.
type SourceStoreSnippet struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	RemainingStock int    `json:"remaining_stock"`
}

// TargetStoreSnippet tienda destino con su stock nuevo e indicador de si la
// fila de inventario se creó en esta transferencia.
type TargetStoreSnippet struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NewStock         int    `json:"new_stock"`
	InventoryCreated bool   `json:"inventory_created"`
}

// TransferResult resultado de una transferencia confirmada.
type TransferResult struct {
	TransferID          int64              `json:"transfer_id"`
	Product             ProductSnippet     `json:"product"`
	SourceStore         SourceStoreSnippet `json:"source_store"`
	TargetStore         TargetStoreSnippet `json:"target_store"`
	QuantityTransferred int                `json:"quantity_transferred"`
	Timestamp           time.Time          `json:"timestamp"`
}
