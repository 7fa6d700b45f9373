package geo

import "strings"

// Coordinate es una posicion lat/lon.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Gazetteer resuelve ciudades normalizadas a coordenadas.
type Gazetteer map[string]Coordinate

// Lookup busca sin distinguir mayusculas.
func (g Gazetteer) Lookup(city string) (Coordinate, bool) {
	if c, ok := g[city]; ok {
		return c, true
	}
	for name, c := range g {
		if strings.EqualFold(name, city) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// DefaultGazetteer cubre las ciudades observadas en la encuesta.
func DefaultGazetteer() Gazetteer {
	return Gazetteer{
		"Osvaldo Cruz":            {-21.7963, -50.8798},
		"Adamantina":              {-21.6822, -51.0724},
		"Parapuã":                 {-21.7771, -50.6455},
		"Salmourão":               {-21.6216, -50.8619},
		"Lucélia":                 {-21.7182, -51.0059},
		"Tupã":                    {-21.9337, -50.5191},
		"São Paulo":               {-23.5505, -46.6333},
		"Inúbia Paulista":         {-21.7697, -51.2559},
		"Flórida Paulista":        {-21.6127, -51.1726},
		"Pacaembu":                {-21.5628, -51.2672},
		"Marília":                 {-22.2176, -49.9506},
		"Rinópolis":               {-21.8304, -50.7264},
		"Pompéia":                 {-22.1071, -50.1758},
		"Iacri":                   {-21.8571, -50.6379},
		"Presidente Prudente":     {-22.1207, -51.3893},
		"Rio De Janeiro":          {-22.9068, -43.1729},
		"Tupi Paulista":           {-21.3828, -51.5625},
		"Lins":                    {-21.6733, -49.7424},
		"Araçatuba":               {-21.2081, -50.4014},
		"Mirante Do Paranapanema": {-22.2905, -51.9085},
		"Ourinhos":                {-22.9774, -49.8706},
		"Natal":                   {-5.7945, -35.2094},
		"Sapucaia Do Sul":         {-29.8276, -51.1498},
		"Carapicuíba":             {-23.5225, -46.8353},
		"Quintana":                {-22.0964, -50.3052},
		"Presidente Venceslau":    {-21.8753, -51.8479},
		"São Gonçalo":             {-22.8268, -43.0634},
		"Campinas":                {-22.9056, -47.0608},
		"Bastos":                  {-21.9287, -50.7354},
		"Herculândia":             {-22.0036, -50.3893},
		"Sete Lagoas":             {-19.4653, -44.2469},
		"Campos Novos Paulista":   {-22.6037, -49.9986},
		"Ribeirão Preto":          {-21.1775, -47.8103},
		"Nova Alvorada Do Sul":    {-21.4652, -54.3750},
		"Paulinia":                {-22.7665, -47.1470},
		"Palmas":                  {-10.2095, -48.3317},
		"Mariápolis":              {-21.7949, -51.1998},
		"Volta Redonda":           {-22.5200, -44.1045},
		"Guarulhos":               {-23.4543, -46.5333},
		"Brasília":                {-15.8267, -47.9218},
		"Niterói":                 {-22.8832, -43.1034},
		"Pracinha":                {-21.8531, -51.0951},
		"Campo Mourão":            {-24.0465, -52.3781},
		"Gabriel Monteiro":        {-21.5292, -50.5523},
		"Maringá":                 {-23.4262, -51.9333},
		"Jundiai":                 {-23.1857, -46.8842},
		"Ouro Verde":              {-21.4879, -51.7016},
		"Arco Iris":               {-21.7707, -50.4565},
	}
}
