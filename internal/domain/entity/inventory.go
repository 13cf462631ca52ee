package entity

// Inventory representa el stock actual de un producto en una tienda.
// A lo sumo una fila por (product, store); quantity nunca es negativo.
// Se crea de forma perezosa (quantity=0, min_stock=0) la primera vez
// que entra stock a la tienda.
type Inventory struct {
	ID        int64
	ProductID int64
	StoreID   int64
	Quantity  int
	MinStock  int // umbral de alerta de stock bajo
}
