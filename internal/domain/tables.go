package domain

// FrequencyRow es una categoria de una tabla de frecuencia.
type FrequencyRow struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// FrequencyTable es el conteo por categoria de una pregunta.
type FrequencyTable struct {
	Question string         `json:"question"`
	Total    int            `json:"total"`
	Rows     []FrequencyRow `json:"rows"`
}

// Crosstab cruza dos preguntas. Values[i][j] corresponde a Rows[i] x Columns[j].
type Crosstab struct {
	RowQuestion    string      `json:"row_question"`
	ColumnQuestion string      `json:"column_question"`
	Rows           []string    `json:"rows"`
	Columns        []string    `json:"columns"`
	Values         [][]float64 `json:"values"`
}

// RespondentScore es el indice de circularidad de un encuestado.
type RespondentScore struct {
	Position   int    `json:"position"`
	Repair     int    `json:"repair"`
	Brand      int    `json:"brand"`
	Secondhand int    `json:"secondhand"`
	Index      int    `json:"index"`
	Label      string `json:"label"`
}

// HabitShare es la proporcion de "sim" en una pregunta de habito.
type HabitShare struct {
	Question string  `json:"question"`
	Yes      int     `json:"yes"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

// TermFrequency es una palabra y sus ocurrencias.
type TermFrequency struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// TermGroup son los terminos de un subgrupo (por ejemplo un genero).
type TermGroup struct {
	Group string          `json:"group"`
	Terms []TermFrequency `json:"terms"`
}

// Dashboard reune las secciones calculadas para una seleccion.
type Dashboard struct {
	DatasetID           string         `json:"dataset_id"`
	Respondents         int            `json:"respondents"`
	Warnings            []string       `json:"warnings,omitempty"`
	PurchaseFrequency   FrequencyTable `json:"purchase_frequency"`
	Spending            FrequencyTable `json:"spending"`
	FrequencyBySpending Crosstab       `json:"frequency_by_spending"`
	Secondhand          FrequencyTable `json:"secondhand"`
	ImpactByPractice    Crosstab       `json:"impact_by_practice"`
	SDG                 FrequencyTable `json:"sdg"`
	Habits              []HabitShare   `json:"habits"`
}
