package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"moda-survey/internal/domain"
)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// printTable escribe una tabla con borde simple.
func printTable(out io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(out, t.Render())
	return err
}

func printFrequency(out io.Writer, ft domain.FrequencyTable) error {
	rows := make([][]string, 0, len(ft.Rows))
	for _, row := range ft.Rows {
		rows = append(rows, []string{row.Category, strconv.Itoa(row.Count), strconv.FormatFloat(row.Percent, 'f', 1, 64)})
	}
	return printTable(out, []string{"Categoria", "Contagem", "%"}, rows)
}
