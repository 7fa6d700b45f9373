// Package geo normaliza nombres de ciudades, cuenta encuestados por ciudad y
// arma los marcadores del mapa.
package geo

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"moda-survey/internal/domain"
)

var stateSuffix = regexp.MustCompile(`^(.+?)\s*[-/,]\s*[A-Za-z]{2}$`)

// cityAliases corrige variantes que el title-case no resuelve.
var cityAliases = map[string]string{
	"Salmourāo": "Salmourão",
}

// NormalizeCity recorta, compone acentos, quita el sufijo de estado
// ("- SP", "/SP", ", SP") y aplica title-case.
func NormalizeCity(raw string) string {
	s := strings.TrimSpace(norm.NFC.String(raw))
	if s == "" {
		return ""
	}
	if m := stateSuffix.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	// Caser guarda estado; no se comparte entre goroutines.
	s = cases.Title(language.BrazilianPortuguese).String(strings.Join(strings.Fields(s), " "))
	if alias, ok := cityAliases[s]; ok {
		return alias
	}
	return s
}

// CountCities normaliza y cuenta. Orden: conteo descendente, empates por
// primera aparicion. Entradas vacias se ignoran.
func CountCities(raw []string) []domain.CityCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range raw {
		city := NormalizeCity(r)
		if city == "" {
			continue
		}
		if _, ok := counts[city]; !ok {
			order = append(order, city)
		}
		counts[city]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	out := make([]domain.CityCount, len(order))
	for i, city := range order {
		out[i] = domain.CityCount{City: city, Count: counts[city]}
	}
	return out
}
