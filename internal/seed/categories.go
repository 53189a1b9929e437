// internal/seed/categories.go
package seed

import "github.com/Zevk4/levelup-store/internal/domain/catalog"

// Categories is the static menu tree the storefront navigates by.
func Categories() []catalog.Category {
	return []catalog.Category{
		{
			Title: "Juegos",
			Link:  "/categoria/Juegos",
			Subcategories: []catalog.Subcategory{
				{Name: "Juegos de Mesa", Link: "/categoria/Juegos/Juegos de Mesa"},
				{Name: "Videojuegos", Link: "/categoria/Juegos/Videojuegos"},
				{Name: "Cartas", Link: "/categoria/Juegos/Cartas"},
			},
		},
		{
			Title: "Perifericos",
			Link:  "/categoria/Perifericos",
			Subcategories: []catalog.Subcategory{
				{Name: "Mouse Gamer", Link: "/categoria/Perifericos/Mouse Gamer"},
				{Name: "Teclados", Link: "/categoria/Perifericos/Teclados"},
				{Name: "Auriculares", Link: "/categoria/Perifericos/Auriculares"},
				{Name: "Controles", Link: "/categoria/Perifericos/Controles"},
			},
		},
		{
			Title: "Consolas",
			Link:  "/categoria/Consolas",
			Subcategories: []catalog.Subcategory{
				{Name: "PlayStation", Link: "/categoria/Consolas/PlayStation"},
				{Name: "Xbox", Link: "/categoria/Consolas/Xbox"},
				{Name: "Nintendo", Link: "/categoria/Consolas/Nintendo"},
			},
		},
		{
			Title: "Computacion",
			Link:  "/categoria/Computacion",
			Subcategories: []catalog.Subcategory{
				{Name: "PC Escritorio", Link: "/categoria/Computacion/PC Escritorio"},
				{Name: "Laptop", Link: "/categoria/Computacion/Laptop"},
				{Name: "Componentes", Link: "/categoria/Computacion/Componentes"},
			},
		},
		{
			Title: "Sillas Gamer",
			Link:  "/categoria/Sillas Gamer",
			Subcategories: []catalog.Subcategory{
				{Name: "Secretlab", Link: "/categoria/Sillas Gamer/Secretlab"},
				{Name: "DXRacer", Link: "/categoria/Sillas Gamer/DXRacer"},
				{Name: "Cougar", Link: "/categoria/Sillas Gamer/Cougar"},
			},
		},
		{
			Title: "Accesorios",
			Link:  "/categoria/Accesorios",
			Subcategories: []catalog.Subcategory{
				{Name: "Mousepad", Link: "/categoria/Accesorios/Mousepad"},
				{Name: "Audífonos", Link: "/categoria/Accesorios/Audífonos"},
				{Name: "Cables", Link: "/categoria/Accesorios/Cables"},
			},
		},
		{
			Title: "Poleras Personalizadas",
			Link:  "/categoria/Poleras Personalizadas",
			Subcategories: []catalog.Subcategory{
				{Name: "Otras", Link: "/categoria/Poleras Personalizadas/Otras"},
			},
		},
	}
}
