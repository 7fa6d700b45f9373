package tabulate

import (
	"sort"

	"moda-survey/internal/domain"
)

// Crosstab cuenta pares (fila, columna). Ambos ejes se ordenan
// alfabeticamente y solo incluyen categorias observadas.
func Crosstab(rowQuestion, columnQuestion string, rows, cols []string) domain.Crosstab {
	n := len(rows)
	if len(cols) < n {
		n = len(cols)
	}

	rowSet := make(map[string]int)
	colSet := make(map[string]int)
	pairs := make(map[[2]string]int)
	for i := 0; i < n; i++ {
		r, c := category(rows[i]), category(cols[i])
		rowSet[r]++
		colSet[c]++
		pairs[[2]string{r, c}]++
	}

	ct := domain.Crosstab{
		RowQuestion:    rowQuestion,
		ColumnQuestion: columnQuestion,
		Rows:           sortedKeys(rowSet),
		Columns:        sortedKeys(colSet),
	}
	ct.Values = make([][]float64, len(ct.Rows))
	for i, r := range ct.Rows {
		ct.Values[i] = make([]float64, len(ct.Columns))
		for j, c := range ct.Columns {
			ct.Values[i][j] = float64(pairs[[2]string{r, c}])
		}
	}
	return ct
}

// RowPercent normaliza cada fila a 100, redondeado a un decimal.
func RowPercent(ct domain.Crosstab) domain.Crosstab {
	out := ct
	out.Values = make([][]float64, len(ct.Values))
	for i, row := range ct.Values {
		var total float64
		for _, v := range row {
			total += v
		}
		out.Values[i] = make([]float64, len(row))
		if total == 0 {
			continue
		}
		for j, v := range row {
			out.Values[i][j] = Round1(v / total * 100)
		}
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
