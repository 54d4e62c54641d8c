package country

import (
	"regexp"
	"strings"
)

// Fallback is the home market used when nothing else resolves.
const Fallback = "Танзанія"

// aliases maps lowercased raw labels from the tracker reports to canonical
// display names. Canonical names map to themselves so Standardize is idempotent.
var aliases = map[string]string{
	"танзанія":  "Танзанія",
	"танзания":  "Танзанія",
	"tanzania":  "Танзанія",
	"кенія":     "Кенія",
	"кения":     "Кенія",
	"kenya":     "Кенія",
	"нігерія":   "Нігерія",
	"нигерия":   "Нігерія",
	"nigeria":   "Нігерія",
	"гана":      "Гана",
	"ghana":     "Гана",
	"уганда":    "Уганда",
	"uganda":    "Уганда",
	"замбія":    "Замбія",
	"замбия":    "Замбія",
	"zambia":    "Замбія",
	"камерун":   "Камерун",
	"cameroon":  "Камерун",
	"сенегал":   "Сенегал",
	"senegal":   "Сенегал",
	"мозамбік":  "Мозамбік",
	"мозамбик":  "Мозамбік",
	"mozambique": "Мозамбік",
	"кот-д'івуар": "Кот-д'Івуар",
	"кот-д'ивуар": "Кот-д'Івуар",
	"ivory coast": "Кот-д'Івуар",
	"cote d'ivoire": "Кот-д'Івуар",
	"конго":     "Конго",
	"congo":     "Конго",
	"руанда":    "Руанда",
	"rwanda":    "Руанда",
	"малаві":    "Малаві",
	"малави":    "Малаві",
	"malawi":    "Малаві",
	"ефіопія":   "Ефіопія",
	"эфиопия":   "Ефіопія",
	"ethiopia":  "Ефіопія",
	"пар":       "ПАР",
	"юар":       "ПАР",
	"south africa": "ПАР",
}

// suffixCodes maps the trailing two-letter geo code of a creative identifier
// (e.g. HO1TZ) to a canonical country name.
var suffixCodes = map[string]string{
	"TZ": "Танзанія",
	"KE": "Кенія",
	"NG": "Нігерія",
	"GH": "Гана",
	"UG": "Уганда",
	"ZM": "Замбія",
	"CM": "Камерун",
	"SN": "Сенегал",
	"MZ": "Мозамбік",
	"CI": "Кот-д'Івуар",
	"CG": "Конго",
	"RW": "Руанда",
	"MW": "Малаві",
	"ET": "Ефіопія",
	"ZA": "ПАР",
}

var suffixPattern = regexp.MustCompile(`([A-Z]{2})$`)

// Standardize maps a raw country label to its canonical display name.
// Unknown labels pass through trimmed, so the function is idempotent.
func Standardize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if canonical, ok := aliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// InferFromCreativeID resolves a country from the trailing two-letter
// uppercase code of a creative identifier. Returns "" when the identifier
// carries no known code.
func InferFromCreativeID(creativeID string) string {
	m := suffixPattern.FindStringSubmatch(creativeID)
	if m == nil {
		return ""
	}
	return suffixCodes[m[1]]
}

// Resolve picks the authoritative country for a creative: the reported label
// when present, then the identifier's geo code, then the home market.
// Always returns a standardized, non-empty name.
func Resolve(reported, creativeID string) string {
	if strings.TrimSpace(reported) != "" {
		return Standardize(reported)
	}
	if inferred := InferFromCreativeID(creativeID); inferred != "" {
		return inferred
	}
	return Fallback
}
