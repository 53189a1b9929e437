// internal/seed/products.go
package seed

import "github.com/Zevk4/levelup-store/internal/domain/catalog"

// Products is the static catalog the store boots with when session
// storage holds no product list. Prices are integer CLP. Codes follow the
// subcategory prefix scheme the admin code generator continues.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			Code:        "JM001",
			Image:       "/img/catan.jpg",
			Category:    "Juegos",
			Subcategory: "Juegos de Mesa",
			Name:        "Catan",
			Price:       29990,
			Description: "Clásico juego de estrategia y comercio para 3-4 jugadores.",
		},
		{
			Code:        "JM002",
			Image:       "/img/carcassonne.jpg",
			Category:    "Juegos",
			Subcategory: "Juegos de Mesa",
			Name:        "Carcassonne",
			Price:       24990,
			Description: "Juego de colocación de losetas ambientado en la Francia medieval.",
		},
		{
			Code:        "JM003",
			Image:       "/img/zelda-totk.jpg",
			Category:    "Juegos",
			Subcategory: "Videojuegos",
			Name:        "The Legend of Zelda: Tears of the Kingdom",
			Price:       59990,
			Description: "Aventura de mundo abierto para Nintendo Switch.",
		},
		{
			Code:        "AC001",
			Image:       "/img/xbox-controller.jpg",
			Category:    "Perifericos",
			Subcategory: "Controles",
			Name:        "Control Inalámbrico Xbox Series X",
			Price:       59990,
			Description: "Control inalámbrico con texturas antideslizantes y mapeo de botones.",
		},
		{
			Code:        "AC002",
			Image:       "/img/hyperx-cloud.jpg",
			Category:    "Perifericos",
			Subcategory: "Auriculares",
			Name:        "Auriculares Gamer HyperX Cloud II",
			Price:       79990,
			Description: "Sonido envolvente 7.1 y micrófono con cancelación de ruido.",
		},
		{
			Code:        "MO001",
			Image:       "/img/logitech-g502.jpg",
			Category:    "Perifericos",
			Subcategory: "Mouse Gamer",
			Name:        "Mouse Gamer Logitech G502 HERO",
			Price:       49990,
			Description: "Sensor HERO 25K y 11 botones programables.",
		},
		{
			Code:        "TE001",
			Image:       "/img/redragon-kumara.jpg",
			Category:    "Perifericos",
			Subcategory: "Teclados",
			Name:        "Teclado Mecánico Redragon Kumara",
			Price:       39990,
			Description: "Teclado mecánico compacto retroiluminado, switches Outemu Blue.",
		},
		{
			Code:        "CO001",
			Image:       "/img/ps5.jpg",
			Category:    "Consolas",
			Subcategory: "PlayStation",
			Name:        "PlayStation 5",
			Price:       549990,
			Description: "Consola de última generación de Sony con SSD ultrarrápido.",
		},
		{
			Code:        "CO002",
			Image:       "/img/switch-oled.jpg",
			Category:    "Consolas",
			Subcategory: "Nintendo",
			Name:        "Nintendo Switch OLED",
			Price:       349990,
			Description: "Consola híbrida con pantalla OLED de 7 pulgadas.",
		},
		{
			Code:        "CG001",
			Image:       "/img/pc-gamer-asus.jpg",
			Category:    "Computacion",
			Subcategory: "PC Escritorio",
			Name:        "PC Gamer ASUS ROG Strix",
			Price:       1299990,
			Description: "Torre gamer con tarjeta gráfica dedicada y refrigeración líquida.",
		},
		{
			Code:        "COMP001",
			Image:       "/img/rtx4070.jpg",
			Category:    "Computacion",
			Subcategory: "Componentes",
			Name:        "Tarjeta Gráfica GeForce RTX 4070",
			Price:       699990,
			Description: "GPU de alto rendimiento para gaming en 1440p.",
		},
		{
			Code:        "SG001",
			Image:       "/img/secretlab-titan.jpg",
			Category:    "Sillas Gamer",
			Subcategory: "Secretlab",
			Name:        "Silla Gamer Secretlab Titan Evo",
			Price:       449990,
			Description: "Silla ergonómica premium con soporte lumbar ajustable.",
		},
		{
			Code:        "MP001",
			Image:       "/img/mousepad-xl.jpg",
			Category:    "Accesorios",
			Subcategory: "Mousepad",
			Name:        "Mousepad Gamer XL",
			Price:       14990,
			Description: "Superficie extendida de 90x40 cm con bordes cosidos.",
		},
		{
			Code:        "PP001",
			Image:       "/img/polera-levelup.jpg",
			Category:    "Poleras Personalizadas",
			Subcategory: "Otras",
			Name:        "Polera Personalizada 'Level-UP'",
			Price:       12990,
			Description: "Polera de algodón con diseño gamer personalizable.",
		},
	}
}
