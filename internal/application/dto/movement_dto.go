package dto

import "time"

// MovementStoreSnippet referencia de tienda en un movimiento (puede faltar:
// movimiento externo o tienda eliminada).
type MovementStoreSnippet struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovementResponse movimiento del registro de auditoría.
type MovementResponse struct {
	ID          int64                 `json:"id"`
	Product     ProductSnippet        `json:"product"`
	Type        string                `json:"type"`
	Quantity    int                   `json:"quantity"`
	SourceStore *MovementStoreSnippet `json:"source_store"`
	TargetStore *MovementStoreSnippet `json:"target_store"`
	Timestamp   time.Time             `json:"timestamp"`
}

// MovementListData payload de GET /movements.
type MovementListData struct {
	Movements []MovementResponse `json:"movements"`
}
