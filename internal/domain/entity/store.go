package entity

// Store representa una tienda o sucursal donde se almacena inventario.
type Store struct {
	ID      int64
	Name    string
	Address *string // opcional
}
