package tabulate

import (
	"encoding/csv"
	"io"
	"strconv"

	"moda-survey/internal/domain"
)

var csvHeader = []string{"Categoria", "Contagem", "%"}

// WriteCSV escribe la tabla como CSV UTF-8 con BOM para abrir limpio en Excel.
func WriteCSV(w io.Writer, table domain.FrequencyTable) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range table.Rows {
		record := []string{
			row.Category,
			strconv.Itoa(row.Count),
			strconv.FormatFloat(row.Percent, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
