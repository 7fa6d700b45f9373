package domain

// CityCount es la cantidad de encuestados por ciudad normalizada.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// MapMarker es un circulo del mapa de ciudades.
type MapMarker struct {
	City   string  `json:"city"`
	Count  int     `json:"count"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

// CityMap es el payload del mapa con estadisticas.
type CityMap struct {
	Cities   []CityCount `json:"cities"`
	Markers  []MapMarker `json:"markers"`
	Unplaced []string    `json:"unplaced,omitempty"`
	Distinct int         `json:"distinct"`
	Total    int         `json:"total"`
}
