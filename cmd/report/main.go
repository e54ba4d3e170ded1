// Command report exports a license's monitoring history to an .xlsx workbook.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"outorga_monitor/internal/adapter/persistence/repository"
	"outorga_monitor/internal/infrastructure/database"
	"outorga_monitor/internal/infrastructure/report"
	"outorga_monitor/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

type historyFactory func(ctx context.Context) (usecase.IHistoryUseCase, error)

func main() {
	if err := rootCmd(dynamoHistory).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func dynamoHistory(ctx context.Context) (usecase.IHistoryUseCase, error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoConfigFromEnv())
	if err != nil {
		return nil, err
	}
	return usecase.NewHistoryUseCase(
		repository.NewLicenseDynamoRepository(ddb),
		repository.NewMeterReadingDynamoRepository(ddb),
	), nil
}

func rootCmd(newHistory historyFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Water-use monitoring reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(historyCmd(newHistory))
	return cmd
}

func historyCmd(newHistory historyFactory) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "history <license-id>",
		Short: "Export the 12-month monitoring history of a license",
		Long: `Builds the 12-month window anchored at the license's first finalized
reading and writes it as an .xlsx workbook. Use --out - to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newHistory(cmd.Context())
			if err != nil {
				return err
			}
			hist, err := uc.ReconstructHistory(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reconstruct history: %w", err)
			}

			path := out
			if path == "" {
				path = report.HistoryFileName(hist.LicenseID)
			}
			if path == "-" {
				return report.WriteHistoryXLSX(cmd.OutOrStdout(), hist)
			}
			if err := writeFile(path, func(w io.Writer) error { return report.WriteHistoryXLSX(w, hist) }); err != nil {
				return err
			}
			if !hist.Started {
				fmt.Fprintf(cmd.ErrOrStderr(), "license %s: monitoring not started\n", hist.LicenseID)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default monitoring-history-<license-id>.xlsx)")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
