// Package tabulate arma tablas de frecuencia y tablas cruzadas sobre
// columnas categoricas de la encuesta.
package tabulate

import (
	"math"
	"sort"
	"strings"

	"moda-survey/internal/domain"
)

// NoAnswer es la categoria explicita para respuestas ausentes.
const NoAnswer = "(Sem resposta)"

func category(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NoAnswer
	}
	return v
}

// Round1 redondea a un decimal.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// sorted devuelve las claves por conteo descendente; empates por primera aparicion.
func (c *counter) sorted() []string {
	keys := append([]string(nil), c.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// Frequency cuenta cada valor distinto (recortado). Un valor vacio cae en
// NoAnswer. El porcentaje es sobre el total de filas, a un decimal.
func Frequency(question string, values []string) domain.FrequencyTable {
	c := newCounter()
	for _, v := range values {
		c.add(category(v))
	}

	table := domain.FrequencyTable{
		Question: question,
		Total:    len(values),
		Rows:     make([]domain.FrequencyRow, 0, len(c.order)),
	}
	for _, key := range c.sorted() {
		count := c.counts[key]
		table.Rows = append(table.Rows, domain.FrequencyRow{
			Category: key,
			Count:    count,
			Percent:  Round1(float64(count) / float64(len(values)) * 100),
		})
	}
	return table
}

// Column extrae los valores de una pregunta; ausente -> "".
func Column(responses []domain.Response, header string) []string {
	out := make([]string, len(responses))
	for i, r := range responses {
		out[i], _ = r.Answer(header)
	}
	return out
}
