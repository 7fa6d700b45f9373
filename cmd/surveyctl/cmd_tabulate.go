package main

import (
	"github.com/spf13/cobra"
)

var (
	tabulateQuestion string
	tabulateCSV      bool
)

var tabulateCmd = &cobra.Command{
	Use:   "tabulate",
	Short: "Frequency table of a categorical question",
	Long: `Print the frequency table of a question. --question accepts the table
names of the API (frequency, spending, secondhand, sdg) or any categorical
catalog key. With --csv the table is written as CSV with a UTF-8 BOM.`,
	RunE: runTabulate,
}

func init() {
	tabulateCmd.Flags().StringVarP(&tabulateQuestion, "question", "q", "frequency", "table name or catalog key")
	tabulateCmd.Flags().BoolVar(&tabulateCSV, "csv", false, "write CSV instead of a text table")
}

func runTabulate(cmd *cobra.Command, args []string) error {
	dash, id, err := localDashboard(cmd)
	if err != nil {
		return err
	}
	if tabulateCSV {
		_, err := dash.ExportTable(cmd.Context(), cmd.OutOrStdout(), id, tabulateQuestion, nil)
		return err
	}
	table, err := dash.Table(cmd.Context(), id, tabulateQuestion, nil)
	if err != nil {
		return err
	}
	return printFrequency(cmd.OutOrStdout(), table)
}
