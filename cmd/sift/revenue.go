package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ckasturi/sift/internal/cli"
	"github.com/ckasturi/sift/internal/export"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/revenue"
)

func revenueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revenue <payments.xlsx>",
		Short: "Build the month-to-date revenue report",
		Long: `Join the payment export against the registration lookups, bucket each
payment by account type, and report month-to-date revenue with a
day-wise breakdown and prior-period comparisons.

The reporting window runs from the first of the month through yesterday;
today's partial data is excluded.`,
		Args: cobra.ExactArgs(1),
		RunE: runRevenue,
	}

	cmd.Flags().String("entities", "", "principal entity registration export")
	cmd.Flags().String("tm-entities", "", "telemarketer entity registration export")
	cmd.Flags().String("tms", "", "telemarketer registration export")
	cmd.Flags().String("export", "", "write the revenue report as an XLSX workbook")

	return cmd
}

func runRevenue(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	paymentPath := args[0]

	entityPath, _ := cmd.Flags().GetString("entities")
	tmEntityPath, _ := cmd.Flags().GetString("tm-entities")
	tmPath, _ := cmd.Flags().GetString("tms")

	paths := []string{paymentPath}
	for _, p := range []string{entityPath, tmEntityPath, tmPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}

	results, err := ingest.ReadFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("failed to read exports: %w", err)
	}

	tables := make(map[string]ingest.Table, len(results))
	for _, r := range results {
		tables[r.Path] = r.Table
	}

	lookups := revenue.BuildLookups(
		tables[entityPath].Records,
		tables[tmEntityPath].Records,
		tables[tmPath].Records,
	)
	engine := revenue.NewEngine(lookups)

	paymentRows := tables[paymentPath].Records
	slog.Info("Loaded payments", "path", paymentPath, "rows", len(paymentRows))

	now := time.Now()
	current := engine.Process(paymentRows, revenue.CurrentMonthWindow(now))
	priorYear := engine.Process(paymentRows, revenue.PriorYearWindow(now))
	priorMonth := engine.Process(paymentRows, revenue.PriorMonthWindow(now))
	store.SetPayments(current)

	report := revenue.BuildReport(current)
	fmt.Println(cli.FormatTitle("Revenue Report " + now.Format("January 2006")))
	fmt.Println(cli.RenderRevenueReport(report))

	days, daywise := revenue.Daywise(current, now)
	fmt.Println(cli.FormatTitle("Day-wise Revenue"))
	fmt.Println(cli.RenderDaywise(days, daywise))

	fmt.Println(cli.FormatTitle("Versus Last Year"))
	fmt.Println(cli.RenderComparison("LYTD", revenue.Compare(current, priorYear)))

	fmt.Println(cli.FormatTitle("Versus Last Month"))
	fmt.Println(cli.RenderComparison("LMTD", revenue.Compare(current, priorMonth)))

	if out, _ := cmd.Flags().GetString("export"); out != "" {
		if err := export.WriteRevenue(out, report, days, daywise); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Println(cli.FormatSuccess("Wrote " + out))
	}

	return nil
}
