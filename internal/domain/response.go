package domain

import "time"

// Response es la fila de un encuestado: pregunta canonica -> respuesta.
// Una clave ausente significa "sin respuesta".
type Response struct {
	Position int               `json:"position"`
	Answers  map[string]string `json:"answers"`
}

// Answer devuelve la respuesta para la pregunta y si existe.
func (r Response) Answer(header string) (string, bool) {
	if r.Answers == nil || header == "" {
		return "", false
	}
	val, ok := r.Answers[header]
	return val, ok
}

// Dataset agrupa las respuestas cargadas desde una planilla.
type Dataset struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Source    string     `json:"source"`
	Columns   []string   `json:"columns"`
	Missing   []string   `json:"missing,omitempty"`
	Responses []Response `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
}

// DatasetSummary es la vista liviana usada en listados.
type DatasetSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Respondents int       `json:"respondents"`
	CreatedAt   time.Time `json:"created_at"`
}

func (d Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		ID:          d.ID,
		Name:        d.Name,
		Source:      d.Source,
		Respondents: len(d.Responses),
		CreatedAt:   d.CreatedAt,
	}
}

// HasColumn indica si el dataset trae la columna canonica.
func (d Dataset) HasColumn(header string) bool {
	for _, c := range d.Columns {
		if c == header {
			return true
		}
	}
	return false
}

// Selection son los filtros del dashboard: clave de filtro -> valores permitidos.
// Dentro de una clave se combina con OR y entre claves con AND.
type Selection map[string][]string

// IsEmpty devuelve true si ningun filtro restringe.
func (s Selection) IsEmpty() bool {
	for _, vals := range s {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}
