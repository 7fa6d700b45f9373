package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var indexDetail bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Circularity index distribution",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexDetail, "detail", false, "also print the index of each respondent")
}

func runIndex(cmd *cobra.Command, args []string) error {
	dash, id, err := localDashboard(cmd)
	if err != nil {
		return err
	}
	report, err := dash.Circularity(cmd.Context(), id, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printFrequency(out, report.Distribution); err != nil {
		return err
	}
	if !indexDetail {
		return nil
	}

	fmt.Fprintln(out)
	rows := make([][]string, 0, len(report.Scores))
	for _, sc := range report.Scores {
		rows = append(rows, []string{
			strconv.Itoa(sc.Position),
			strconv.Itoa(sc.Repair),
			strconv.Itoa(sc.Brand),
			strconv.Itoa(sc.Secondhand),
			strconv.Itoa(sc.Index),
			sc.Label,
		})
	}
	return printTable(out, []string{"Linha", "Reforma", "Marca", "Segunda mão", "Índice", "Nível"}, rows)
}
