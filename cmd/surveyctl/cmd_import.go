package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moda-survey/internal/config"
	"moda-survey/internal/db"
	"moda-survey/internal/repository"
	"moda-survey/internal/service"
	"moda-survey/internal/survey"
)

var importName string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a survey spreadsheet into Postgres",
	Long: `Parse --file and store it as a new dataset in the database pointed to by
DATABASE_URL. The schema is created when missing.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importName, "name", "", "dataset name (default: file name)")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required for import")
	}
	cat, err := survey.ResolveCatalog(catalogFile)
	if err != nil {
		return err
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}
	if err := db.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("db schema: %w", err)
	}

	f, err := os.Open(dataFile)
	if err != nil {
		return fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()

	datasets := service.NewDatasetService(repository.NewPgDatasetRepository(pool), cat, logger)
	ds, err := datasets.Import(ctx, importName, dataFile, sheetName, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d respondentes\n", ds.ID, ds.Name, len(ds.Responses))
	if warning := survey.MissingWarning(ds.Missing); warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), warning)
	}
	return nil
}
