package geo

import "moda-survey/internal/domain"

// MarkerColor clasifica la frecuencia de una ciudad.
func MarkerColor(count int) string {
	switch {
	case count >= 50:
		return "red"
	case count >= 20:
		return "orange"
	case count >= 10:
		return "blue"
	default:
		return "green"
	}
}

// MarkerRadius crece con la frecuencia.
func MarkerRadius(count int) float64 {
	return 8 + float64(count)/10
}

// BuildMap ubica cada ciudad en el gazetteer. Las ciudades sin coordenadas
// quedan en Unplaced.
func BuildMap(counts []domain.CityCount, gz Gazetteer) domain.CityMap {
	m := domain.CityMap{
		Cities:   counts,
		Markers:  make([]domain.MapMarker, 0, len(counts)),
		Distinct: len(counts),
	}
	for _, c := range counts {
		m.Total += c.Count
		coord, ok := gz.Lookup(c.City)
		if !ok {
			m.Unplaced = append(m.Unplaced, c.City)
			continue
		}
		m.Markers = append(m.Markers, domain.MapMarker{
			City:   c.City,
			Count:  c.Count,
			Lat:    coord.Lat,
			Lon:    coord.Lon,
			Radius: MarkerRadius(c.Count),
			Color:  MarkerColor(c.Count),
		})
	}
	return m
}
