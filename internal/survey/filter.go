package survey

import (
	"strings"

	"moda-survey/internal/domain"
)

// Filter devuelve las respuestas que cumplen la seleccion. No modifica el
// dataset. Claves desconocidas o sin columna se ignoran; una clave con
// valores excluye filas sin respuesta en esa pregunta.
func Filter(ds domain.Dataset, cat Catalog, sel domain.Selection) []domain.Response {
	if sel.IsEmpty() {
		return ds.Responses
	}

	sets := make(map[string]map[string]struct{})
	for key, allowed := range sel {
		if len(allowed) == 0 {
			continue
		}
		header := cat.Header(key)
		if header == "" || !ds.HasColumn(header) {
			continue
		}
		set := make(map[string]struct{}, len(allowed))
		for _, v := range allowed {
			set[strings.TrimSpace(v)] = struct{}{}
		}
		sets[header] = set
	}
	if len(sets) == 0 {
		return ds.Responses
	}

	out := make([]domain.Response, 0, len(ds.Responses))
	for _, r := range ds.Responses {
		pass := true
		for header, set := range sets {
			val, ok := r.Answer(header)
			if !ok {
				pass = false
				break
			}
			if _, allowed := set[val]; !allowed {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, r)
		}
	}
	return out
}

// FilterOption son los valores disponibles de un filtro.
type FilterOption struct {
	Key      string   `json:"key"`
	Question string   `json:"question"`
	Values   []string `json:"values"`
}

// Options lista los valores distintos de cada pregunta filtro en orden de
// primera aparicion.
func Options(ds domain.Dataset, cat Catalog) []FilterOption {
	var out []FilterOption
	for _, q := range cat.ByKind(KindFilter) {
		opt := FilterOption{Key: q.Key, Question: q.Header, Values: []string{}}
		if ds.HasColumn(q.Header) {
			seen := make(map[string]struct{})
			for _, r := range ds.Responses {
				val, ok := r.Answer(q.Header)
				if !ok {
					continue
				}
				if _, dup := seen[val]; dup {
					continue
				}
				seen[val] = struct{}{}
				opt.Values = append(opt.Values, val)
			}
		}
		out = append(out, opt)
	}
	return out
}
