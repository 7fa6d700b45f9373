// surveyctl corre los analisis de la encuesta sobre un archivo local, sin
// levantar el servicio HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moda-survey/internal/repository"
	"moda-survey/internal/service"
	"moda-survey/internal/survey"
)

var (
	catalogFile string
	sheetName   string
	dataFile    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Fashion consumption survey analysis",
	Long: `surveyctl loads a survey spreadsheet (.csv or .xlsx) and prints the
tables behind the dashboard: city counts, word frequencies, the circularity
index and per-question frequency tables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger == nil {
			logger = zap.NewExample()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "moda.xlsx", "survey spreadsheet (.csv, .xlsx)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "question catalog yaml (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "xlsx sheet name (default: first sheet)")

	rootCmd.AddCommand(citiesCmd, wordsCmd, indexCmd, tabulateCmd, importCmd, tokenCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// localDashboard importa la planilla a un repositorio en memoria y devuelve
// el servicio del dashboard junto con el id del dataset.
func localDashboard(cmd *cobra.Command) (*service.DashboardService, string, error) {
	cat, err := survey.ResolveCatalog(catalogFile)
	if err != nil {
		return nil, "", err
	}
	datasets := service.NewDatasetService(repository.NewMemoryDatasetRepository(), cat, logger)
	ds, err := datasets.ImportFile(cmd.Context(), dataFile, sheetName)
	if err != nil {
		return nil, "", err
	}
	if warning := survey.MissingWarning(ds.Missing); warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), warning)
	}
	return service.NewDashboardService(datasets, nil, nil, nil, logger), ds.ID, nil
}
