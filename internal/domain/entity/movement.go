package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada externa (source null)
	MovementTypeOUT      = "OUT"      // salida externa (target null)
	MovementTypeTRANSFER = "TRANSFER" // traslado entre tiendas
)

// Movement registro inmutable de auditoría de un cambio de stock.
// Nunca se actualiza ni se borra; es la única pista de auditoría del sistema.
type Movement struct {
	ID            int64
	TransactionID string // uuid de correlación de la transacción que lo creó
	ProductID     int64
	SourceStoreID *int64 // nil = entrada externa
	TargetStoreID *int64 // nil = salida externa
	Quantity      int    // siempre positivo
	Type          string
	Timestamp     time.Time // asignado por el servidor al crear
}
