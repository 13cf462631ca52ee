package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (SKU único).
// El stock por tienda vive en Inventory; el motor de transferencias
// solo referencia productos, nunca los muta.
type Product struct {
	ID          int64
	Name        string
	Description string
	Category    Category
	Price       decimal.Decimal // precio de venta, >= 0
	SKU         string          // código único
}
