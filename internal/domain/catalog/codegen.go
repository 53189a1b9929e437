// internal/domain/catalog/codegen.go
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// subcategoryPrefixes maps each subcategory to the fixed code prefix used
// by the seed dataset. Subcategories missing from this table fall back to
// the first two letters of the category name, uppercased.
var subcategoryPrefixes = map[string]string{
	"Juegos de Mesa":   "JM",
	"Videojuegos":      "JM",
	"Cartas":           "JM",
	"Controles":        "AC",
	"Auriculares":      "AC",
	"Audífonos":        "AC",
	"Mouse Gamer":      "MO",
	"Teclados":         "TE",
	"PlayStation":      "CO",
	"Xbox":             "CO",
	"Nintendo":         "CO",
	"PC Escritorio":    "CG",
	"Laptop":           "CG",
	"Componentes":      "COMP",
	"Secretlab":        "SG",
	"DXRacer":          "SG",
	"Cougar":           "SG",
	"Mousepad":         "MP",
	"Otras":            "PP",
}

// NextCode generates the product code for a new admin submission: the
// subcategory prefix plus the highest numeric suffix among existing
// products of that subcategory, incremented and zero-padded to three
// digits. Generation is not atomic against concurrent submissions; this
// system assumes a single admin.
func NextCode(category, subcategory string, existing []Product) string {
	prefix, ok := subcategoryPrefixes[subcategory]
	if !ok {
		prefix = fallbackPrefix(category)
	}

	max := 0
	for _, p := range existing {
		if p.Subcategory != subcategory {
			continue
		}
		if n, ok := numericSuffix(p.Code); ok && n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%03d", prefix, max+1)
}

// numericSuffix parses the trailing digits of a product code.
func numericSuffix(code string) (int, bool) {
	i := len(code)
	for i > 0 && code[i-1] >= '0' && code[i-1] <= '9' {
		i--
	}
	if i == len(code) {
		return 0, false
	}
	n, err := strconv.Atoi(code[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

func fallbackPrefix(category string) string {
	runes := []rune(category)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
