package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moda-survey/internal/domain"
	"moda-survey/internal/geo"
)

var citiesCmd = &cobra.Command{
	Use:   "cities [list.txt | -]",
	Short: "Count respondents per normalized city",
	Long: `Normalize city names and count them.

Without arguments the city column of --file is used. With a path (or "-" for
stdin) the input is read as one city per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCities,
}

func runCities(cmd *cobra.Command, args []string) error {
	var m domain.CityMap
	if len(args) == 1 {
		lines, err := readLines(cmd, args[0])
		if err != nil {
			return err
		}
		m = geo.BuildMap(geo.CountCities(lines), geo.DefaultGazetteer())
	} else {
		dash, id, err := localDashboard(cmd)
		if err != nil {
			return err
		}
		if m, err = dash.Cities(cmd.Context(), id, nil); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	rows := make([][]string, 0, len(m.Cities))
	for _, c := range m.Cities {
		rows = append(rows, []string{c.City, strconv.Itoa(c.Count)})
	}
	if err := printTable(out, []string{"Cidade", "Contagem"}, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nCidades distintas: %d\nTotal de respostas: %d\n", m.Distinct, m.Total)
	if len(m.Unplaced) > 0 {
		fmt.Fprintf(out, "Sem coordenadas: %s\n", strings.Join(m.Unplaced, ", "))
	}
	return nil
}

func readLines(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open city list: %w", err)
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
