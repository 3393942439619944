package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ckasturi/sift/internal/cli"
	"github.com/ckasturi/sift/internal/common"
	"github.com/ckasturi/sift/internal/export"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/kyc"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Build the financial-year registration dashboard",
		Long: `Aggregate registration exports into a month-by-month dashboard for the
current financial year: received, pending, approved inside and outside
24 hours, and refunds, broken down by registration segment.`,
		RunE: runDashboard,
	}

	cmd.Flags().String("entities", "", "principal entity registration export")
	cmd.Flags().String("tm-entities", "", "telemarketer entity registration export")
	cmd.Flags().String("tms", "", "telemarketer registration export")
	cmd.Flags().String("refunds", "", "refund export")
	cmd.Flags().Bool("daily", false, "include the current month's day-wise breakdown")
	cmd.Flags().String("export", "", "write the dashboard as an XLSX workbook")

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sources := map[kyc.Segment]string{}
	for seg, flag := range map[kyc.Segment]string{
		kyc.SegmentEntities:   "entities",
		kyc.SegmentTMEntities: "tm-entities",
		kyc.SegmentTMS:        "tms",
	} {
		if path, _ := cmd.Flags().GetString(flag); path != "" {
			sources[seg] = path
		}
	}
	refundPath, _ := cmd.Flags().GetString("refunds")

	if len(sources) == 0 {
		return fmt.Errorf("%w: provide at least one of --entities, --tm-entities, --tms", common.ErrEmptyInput)
	}

	paths := make([]string, 0, len(sources)+1)
	for _, p := range sources {
		paths = append(paths, p)
	}
	if refundPath != "" {
		paths = append(paths, refundPath)
	}

	results, err := ingest.ReadFiles(ctx, paths)
	if err != nil {
		return fmt.Errorf("failed to read registration exports: %w", err)
	}

	tables := make(map[string]ingest.Table, len(results))
	for _, r := range results {
		tables[r.Path] = r.Table
	}

	data := &kyc.Dataset{}
	for seg, path := range sources {
		records := kyc.NormalizeRecords(tables[path].Records)
		slog.Info("Loaded registrations", "segment", string(seg), "path", path, "records", len(records))
		switch seg {
		case kyc.SegmentEntities:
			data.Entities = records
		case kyc.SegmentTMEntities:
			data.TMEntities = records
		case kyc.SegmentTMS:
			data.TMS = records
		}
	}
	if refundPath != "" {
		data.Refunds = kyc.NormalizeRefunds(tables[refundPath].Records)
	}

	store.SetKYC(data, paths[0])

	now := time.Now()
	stats := kyc.Calculate(data, now)

	fmt.Println(cli.FormatTitle("Registration Dashboard " + stats.FinancialYear))
	fmt.Println(cli.RenderMonthlyStatistics(stats))
	fmt.Printf("Approval rate: %.1f%%\n\n", stats.ApprovalRate())

	overview := map[string]int{}
	for _, seg := range kyc.Segments() {
		for status, count := range kyc.StatusOverview(data.BySegment(seg)) {
			overview[status] += count
		}
	}
	fmt.Println(cli.FormatTitle("Status Overview"))
	fmt.Println(cli.RenderStatusOverview(overview))

	var daily *kyc.DailyStatistics
	if withDaily, _ := cmd.Flags().GetBool("daily"); withDaily {
		daily = kyc.CalculateDaily(data, now)
		fmt.Println(cli.FormatTitle("Daily Breakdown " + daily.MonthKey))
		fmt.Println(cli.RenderDailyStatistics(daily))
	}

	if out, _ := cmd.Flags().GetString("export"); out != "" {
		if err := export.WriteDashboard(out, data, stats, daily, overview); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Println(cli.FormatSuccess("Wrote " + out))
	}

	return nil
}
