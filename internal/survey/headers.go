package survey

import (
	"strings"
)

// MissingWarningPrefix antecede la lista de columnas requeridas ausentes.
const MissingWarningPrefix = "Colunas não encontradas na planilha: "

// NormalizeHeader reemplaza saltos de linha por espacios y recorta.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ReplaceAll(h, "\r\n", " ")
	h = strings.ReplaceAll(h, "\n", " ")
	return strings.TrimSpace(h)
}

// Canonicalize renombra cada encabezado a su pregunta del catalogo. Cada
// pregunta se asigna a una sola columna; la primera que coincide gana.
// Devuelve los encabezados resultantes y las preguntas requeridas que faltan.
func Canonicalize(headers []string, cat Catalog) ([]string, []string) {
	out := make([]string, len(headers))
	bound := make(map[string]bool, len(cat.Questions))

	for i, raw := range headers {
		h := NormalizeHeader(raw)
		out[i] = h
		for _, q := range cat.Questions {
			if bound[q.Key] {
				continue
			}
			if strings.EqualFold(h, q.Header) || q.matches(h) {
				out[i] = q.Header
				bound[q.Key] = true
				break
			}
		}
	}

	var missing []string
	for _, q := range cat.Questions {
		if q.Required && !bound[q.Key] {
			missing = append(missing, q.Header)
		}
	}
	return out, missing
}

// MissingWarning arma el aviso para columnas ausentes; "" si no falta nada.
func MissingWarning(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return MissingWarningPrefix + strings.Join(missing, ", ")
}
