package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"paypulse/adapters/kv"
	"paypulse/adapters/report"
	"paypulse/app/analytics"
	"paypulse/app/ingest"
	"paypulse/app/store"
	"paypulse/internal/config"
	"paypulse/internal/format"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "paypulse-cli",
		Short: "PayPulse CLI for ingesting payroll spreadsheets and inspecting aggregates",
	}

	rootCmd.AddCommand(
		newIngestCmd(),
		newAggregateCmd(),
		newHistoryCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() (*ingest.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	datasetStore := store.New(kv.NewFileStore(cfg.Store.DataFile))
	return ingest.NewService(datasetStore), nil
}

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Ingest spreadsheet files into the local dataset",
		Long: `Read, classify and merge one or more spreadsheet files.

Example: paypulse-cli ingest 2024_급여대장.xlsx 외주비.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}

			files := make([]ingest.UploadFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				files = append(files, ingest.UploadFile{
					Name: filepath.Base(path),
					Data: data,
				})
			}

			summary, err := service.UploadFiles(context.Background(), files)
			if err != nil {
				return err
			}

			fmt.Printf("Added %d payroll and %d fee records\n",
				summary.AddedPayroll, summary.AddedFee)
			for _, file := range summary.Files {
				if file.Error != "" {
					fmt.Printf("  %s: SKIPPED (%s)\n", file.FileName, file.Error)
					continue
				}
				fmt.Printf("  %s: %s, %d rows accepted, %d dropped\n",
					file.FileName, file.FileType, file.Accepted, file.Dropped)
			}
			return nil
		},
	}
}

func newAggregateCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Print aggregates over the stored dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			dataset, err := service.Dataset(context.Background())
			if err != nil {
				return err
			}
			agg := analytics.Compute(dataset)

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(agg)
			}

			fmt.Printf("Total labor cost: %s KRW\n", format.Number(agg.TotalLaborCost))
			fmt.Printf("  Payroll: %s KRW (%.1f%%) across %d employees\n",
				format.Number(agg.TotalPayrollCost), agg.PayrollShare, agg.TotalEmployees)
			fmt.Printf("  Fees:    %s KRW (%.1f%%) across %d companies\n",
				format.Number(agg.TotalFeeCost), agg.FeeShare, agg.TotalCompanies)
			fmt.Printf("Average salary: %s KRW\n", format.Number(agg.AverageSalary))
			for _, dept := range agg.DepartmentBreakdown {
				fmt.Printf("  %s: %d, total %s KRW\n",
					dept.Name, dept.Count, format.Number(dept.TotalCost))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit aggregates as JSON")
	return cmd
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List uploaded files",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			entries, err := service.History(context.Background())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No uploads yet")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %s (%s): %d records\n",
					e.UploadDate.Format("2006-01-02 15:04"), e.FileName, e.FileType, e.RecordCount)
			}
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a labor-cost summary PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}
			dataset, err := service.Dataset(context.Background())
			if err != nil {
				return err
			}

			path, err := report.NewGenerator(outputDir).Summary(
				analytics.Compute(dataset), time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "out", "reports", "directory for generated reports")
	return cmd
}
