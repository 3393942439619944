package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ckasturi/sift/internal/classifier"
	"github.com/ckasturi/sift/internal/kyc"
	"github.com/ckasturi/sift/internal/revenue"
)

// dash renders zero counts as a dash so the tables read as sparse grids.
func dash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func newTable(sb *strings.Builder) *tabwriter.Writer {
	return tabwriter.NewWriter(sb, 0, 0, 2, ' ', 0)
}

func writeHeader(w *tabwriter.Writer, columns ...string) {
	rendered := make([]string, len(columns))
	separators := make([]string, len(columns))
	for i, c := range columns {
		rendered[i] = HeaderStyle.Render(c)
		separators[i] = strings.Repeat("─", len(c))
	}
	fmt.Fprintln(w, strings.Join(rendered, "\t"))
	fmt.Fprintln(w, strings.Join(separators, "\t"))
}

// RenderMonthlyStatistics renders the financial-year registration dashboard
// as a month-by-month table with a totals row.
func RenderMonthlyStatistics(stats *kyc.Statistics) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w,
		"Month",
		"PE Recv", "PE <24h", "PE >24h", "PE Pend",
		"TM-E Recv", "TM-E <24h", "TM-E >24h", "TM-E Pend",
		"TM Recv", "TM <24h", "TM >24h", "TM Pend",
		"Refunds", "Approved")

	for _, monthKey := range stats.MonthKeys() {
		bucket := stats.Monthly[monthKey]
		if bucket == nil {
			bucket = &kyc.SegmentCounters{}
		}
		approvals := stats.ApprovalsByMonth[monthKey]
		if approvals == nil {
			approvals = &kyc.ApprovalCounts{}
		}

		cells := []string{monthKey}
		for _, seg := range kyc.Segments() {
			c := bucket.Get(seg)
			cells = append(cells, dash(c.Received), dash(c.Within24h), dash(c.After24h), dash(c.Pending))
		}
		cells = append(cells, dash(stats.RefundsByMonth[monthKey]), dash(approvals.Total()))
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	totals := []string{
		"Total",
		dash(stats.GrandTotals.Entities.Received), dash(stats.GrandTotals.Entities.Within24h),
		dash(stats.GrandTotals.Entities.After24h), dash(stats.GrandTotals.Entities.Pending),
		dash(stats.GrandTotals.TMEntities.Received), dash(stats.GrandTotals.TMEntities.Within24h),
		dash(stats.GrandTotals.TMEntities.After24h), dash(stats.GrandTotals.TMEntities.Pending),
		dash(stats.GrandTotals.TMS.Received), dash(stats.GrandTotals.TMS.Within24h),
		dash(stats.GrandTotals.TMS.After24h), dash(stats.GrandTotals.TMS.Pending),
		dash(stats.TotalRefunds), dash(stats.TotalApproved()),
	}
	fmt.Fprintln(w, strings.Join(totals, "\t"))

	_ = w.Flush()
	return sb.String()
}

// RenderDailyStatistics renders the current month's day-wise breakdown.
func RenderDailyStatistics(daily *kyc.DailyStatistics) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w,
		"Date",
		"PE Recv", "PE Pend",
		"TM-E Recv", "TM-E Pend",
		"TM Recv", "TM Pend",
		"Approved")

	for _, day := range daily.Days {
		bucket := daily.Daily[day]
		approvals := daily.ApprovalsByDay[day]

		cells := []string{day}
		for _, seg := range kyc.Segments() {
			c := bucket.Get(seg)
			cells = append(cells, dash(c.Received), dash(c.Pending))
		}
		cells = append(cells, dash(approvals.Total()))
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	_ = w.Flush()
	return sb.String()
}

// RenderStatusOverview renders status counts sorted by name.
func RenderStatusOverview(overview map[string]int) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w, "Status", "Count")

	statuses := make([]string, 0, len(overview))
	for s := range overview {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%d\n", s, overview[s])
	}

	_ = w.Flush()
	return sb.String()
}

// RenderRevenueReport renders the per-account-type rollup with a grand
// total row.
func RenderRevenueReport(report *revenue.Report) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w, "Account Type", "New", "Renewal", "New Revenue", "Renewal Revenue", "Deposit", "Net Revenue")

	for _, at := range revenue.AccountTypes() {
		line := report.Lines[at]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			string(at), dash(line.NewCount), dash(line.RenewCount),
			line.NewRevenue.String(), line.RenewRev.String(),
			line.Deposit.String(), line.NetRevenue().String())
	}

	total := report.GrandTotal()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		"Total", dash(total.NewCount), dash(total.RenewCount),
		total.NewRevenue.String(), total.RenewRev.String(),
		total.Deposit.String(), total.NetRevenue().String())

	_ = w.Flush()
	return sb.String()
}

// RenderDaywise renders the trailing five-day revenue breakdown.
func RenderDaywise(days []string, daywise map[string]*revenue.DayRevenue) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w, "Date", "New", "Renewal", "Fee Exemption", "Net Revenue", "Deposit")

	for _, day := range days {
		d := daywise[day]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			day, dash(d.New), dash(d.Renewal), dash(d.FeeExemption),
			d.NetRevenue().String(), d.Deposit.String())
	}

	_ = w.Flush()
	return sb.String()
}

// RenderComparison renders a current-versus-prior period comparison with
// percentage deltas.
func RenderComparison(label string, cmp revenue.Comparison) string {
	var sb strings.Builder
	w := newTable(&sb)

	writeHeader(w, label, "New", "Renewal", "Total")

	fmt.Fprintf(w, "Current\t%d\t%d\t%d\n", cmp.Current.New, cmp.Current.Renewal, cmp.Current.Total)
	fmt.Fprintf(w, "Prior\t%d\t%d\t%d\n", cmp.Prior.New, cmp.Prior.Renewal, cmp.Prior.Total)
	fmt.Fprintf(w, "Change\t%s\t%s\t%s\n",
		formatDelta(cmp.NewDelta), formatDelta(cmp.RenewalDelta), formatDelta(cmp.TotalDelta))

	_ = w.Flush()
	return sb.String()
}

func formatDelta(pct int) string {
	if pct > 0 {
		return SuccessStyle.Render(fmt.Sprintf("+%d%%", pct))
	}
	if pct < 0 {
		return ErrorStyle.Render(fmt.Sprintf("%d%%", pct))
	}
	return SubtleStyle.Render("0%")
}

// RenderClassificationSummary renders label and agent counts after a bulk
// classification run.
func RenderClassificationSummary(summary *classifier.BulkSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Processed: %d\n", summary.Processed))
	sb.WriteString(fmt.Sprintf("Needs review: %d\n", summary.Review))
	sb.WriteString(fmt.Sprintf("Placeholder issues: %d\n", summary.BadFormat))
	sb.WriteString(fmt.Sprintf("Average confidence: %.1f%% (high %d / medium %d / low %d)\n",
		summary.AvgConfidence, summary.HighConfidence, summary.MedConfidence, summary.LowConfidence))
	sb.WriteString("\n")

	w := newTable(&sb)
	writeHeader(w, "Category", "Count")
	labels := make([]string, 0, len(summary.ByLabel))
	for label := range summary.ByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(w, "%s\t%d\n", label, summary.ByLabel[label])
	}
	_ = w.Flush()

	sb.WriteString("\n")
	w = newTable(&sb)
	writeHeader(w, "Agent", "Count")
	agents := make([]string, 0, len(summary.ByAgent))
	for agent := range summary.ByAgent {
		agents = append(agents, agent)
	}
	sort.Strings(agents)
	for _, agent := range agents {
		fmt.Fprintf(w, "%s\t%d\n", agent, summary.ByAgent[agent])
	}
	_ = w.Flush()

	return sb.String()
}
