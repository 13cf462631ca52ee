package entity

// Category código de categoría de producto (2 letras, estilo choices).
type Category string

const (
	CategoryElectronics Category = "EL"
	CategoryFashion     Category = "FA"
	CategoryHome        Category = "HO"
	CategoryToys        Category = "TO"
	CategorySports      Category = "SP"
)

var categoryNames = map[Category]string{
	CategoryElectronics: "Electronics",
	CategoryFashion:     "Fashion",
	CategoryHome:        "Home",
	CategoryToys:        "Toys",
	CategorySports:      "Sports",
}

// IsValid indica si el código pertenece al catálogo de categorías.
func (c Category) IsValid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Display devuelve el nombre legible ("Electronics", "Home", ...).
// Para códigos desconocidos devuelve el código tal cual.
func (c Category) Display() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}
