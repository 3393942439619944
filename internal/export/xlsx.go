// Package export writes classification results and dashboard rollups back
// out as XLSX workbooks.
package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ckasturi/sift/internal/classifier"
	"github.com/ckasturi/sift/internal/dates"
	"github.com/ckasturi/sift/internal/kyc"
	"github.com/ckasturi/sift/internal/model"
	"github.com/ckasturi/sift/internal/revenue"
)

// Columns appended to the original sheet by the classification export.
var classifiedColumns = []string{
	"Template_Type", "Confidence", "Variable_Format", "Agent_Name", "Classification_Date",
}

const maxColumnWidth = 50

// WriteClassified writes the classified templates to path, preserving the
// original columns in source order and appending the classification
// columns. Column widths are fitted to the content.
func WriteClassified(path string, headers []string, templates []classifier.ProcessedTemplate) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "AI_Classification"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	allHeaders := append(append([]string{}, headers...), classifiedColumns...)
	widths := make([]int, len(allHeaders))

	for col, h := range allHeaders {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
		widths[col] = len(h)
	}

	for i, t := range templates {
		row := i + 2
		values := make([]string, 0, len(allHeaders))
		for _, h := range headers {
			values = append(values, t.Row[h])
		}
		values = append(values,
			t.Result.Label,
			strconv.Itoa(t.Result.Confidence)+"%",
			t.VariableFormat,
			t.Agent,
			t.ClassifiedOn,
		)

		for col, v := range values {
			if err := setCell(f, sheet, col+1, row, v); err != nil {
				return err
			}
			if len(v) > widths[col] {
				widths[col] = len(v)
			}
		}
	}

	for col := range allHeaders {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", col+1, err)
		}
		w := widths[col] + 2
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, name, name, float64(w)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Sheet names for the per-segment record listings.
var segmentSheets = map[kyc.Segment]string{
	kyc.SegmentEntities:   "Entities",
	kyc.SegmentTMEntities: "TM Entities",
	kyc.SegmentTMS:        "Telemarketers",
}

// WriteDashboard writes the KYC statistics as a workbook: a monthly sheet,
// an optional daily sheet, a status overview, and one record sheet per
// loaded segment.
func WriteDashboard(path string, data *kyc.Dataset, stats *kyc.Statistics, daily *kyc.DailyStatistics, overview map[string]int) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	monthly := "Monthly Summary"
	if err := f.SetSheetName(f.GetSheetName(0), monthly); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeMonthlySheet(f, monthly, stats); err != nil {
		return err
	}

	if daily != nil {
		dailySheet := "Daily Breakdown"
		if _, err := f.NewSheet(dailySheet); err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
		if err := writeDailySheet(f, dailySheet, daily); err != nil {
			return err
		}
	}

	if len(overview) > 0 {
		statusSheet := "Status Overview"
		if _, err := f.NewSheet(statusSheet); err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
		if err := writeStatusSheet(f, statusSheet, overview); err != nil {
			return err
		}
	}

	if data != nil {
		for _, seg := range kyc.Segments() {
			records := data.BySegment(seg)
			if len(records) == 0 {
				continue
			}
			sheet := segmentSheets[seg]
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet: %w", err)
			}
			if err := writeRecordSheet(f, sheet, records); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func writeRecordSheet(f *excelize.File, sheet string, records []model.TransactionRecord) error {
	headers := []string{"Registration ID", "Submitted", "Approved", "Status", "Hours To Approval"}
	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, r := range records {
		submitted, approved := "", ""
		if r.SubmissionDate != nil {
			submitted = dates.Display(*r.SubmissionDate)
		}
		if r.ApprovalDate != nil {
			approved = dates.Display(*r.ApprovalDate)
		}

		values := []any{r.RegistrationID, submitted, approved, string(r.Status)}
		if r.IsApproved() && r.SubmissionDate != nil && r.ApprovalDate != nil {
			values = append(values, r.HoursToApproval)
		} else {
			values = append(values, "")
		}

		for col, v := range values {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeMonthlySheet(f *excelize.File, sheet string, stats *kyc.Statistics) error {
	headers := []string{"Month"}
	for _, seg := range []string{"PE", "TM-E", "TM"} {
		headers = append(headers,
			seg+" Recv", seg+" <24h", seg+" >24h", seg+" Pend", seg+" Appr")
	}
	headers = append(headers, "Total Recv", "Total Pend", "Refunds", "Total Appr")

	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
	}

	row := 2
	for _, monthKey := range stats.MonthKeys() {
		bucket := stats.Monthly[monthKey]
		if bucket == nil {
			bucket = &kyc.SegmentCounters{}
		}
		approvals := stats.ApprovalsByMonth[monthKey]
		if approvals == nil {
			approvals = &kyc.ApprovalCounts{}
		}

		values := []any{monthKey}
		totalReceived, totalPending := 0, 0
		for _, seg := range kyc.Segments() {
			c := bucket.Get(seg)
			var appr int
			switch seg {
			case kyc.SegmentEntities:
				appr = approvals.Entities
			case kyc.SegmentTMEntities:
				appr = approvals.TMEntities
			default:
				appr = approvals.TMS
			}
			values = append(values, c.Received, c.Within24h, c.After24h, c.Pending, appr)
			totalReceived += c.Received
			totalPending += c.Pending
		}
		values = append(values, totalReceived, totalPending,
			stats.RefundsByMonth[monthKey], approvals.Total())

		for col, v := range values {
			if err := setCell(f, sheet, col+1, row, v); err != nil {
				return err
			}
		}
		row++
	}

	totals := []any{
		"Total",
		stats.GrandTotals.Entities.Received, stats.GrandTotals.Entities.Within24h,
		stats.GrandTotals.Entities.After24h, stats.GrandTotals.Entities.Pending,
		stats.GrandTotals.Entities.ApprovedByApproval,
		stats.GrandTotals.TMEntities.Received, stats.GrandTotals.TMEntities.Within24h,
		stats.GrandTotals.TMEntities.After24h, stats.GrandTotals.TMEntities.Pending,
		stats.GrandTotals.TMEntities.ApprovedByApproval,
		stats.GrandTotals.TMS.Received, stats.GrandTotals.TMS.Within24h,
		stats.GrandTotals.TMS.After24h, stats.GrandTotals.TMS.Pending,
		stats.GrandTotals.TMS.ApprovedByApproval,
		stats.TotalReceived(), stats.TotalPending(), stats.TotalRefunds, stats.TotalApproved(),
	}
	for col, v := range totals {
		if err := setCell(f, sheet, col+1, row, v); err != nil {
			return err
		}
	}
	return nil
}

func writeDailySheet(f *excelize.File, sheet string, daily *kyc.DailyStatistics) error {
	headers := []string{"Date"}
	for _, seg := range []string{"PE", "TM-E", "TM"} {
		headers = append(headers, seg+" Recv", seg+" <24h", seg+" >24h", seg+" Pend")
	}
	headers = append(headers, "Appr PE", "Appr TM-E", "Appr TM")

	for col, h := range headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
	}

	for i, day := range daily.Days {
		bucket := daily.Daily[day]
		approvals := daily.ApprovalsByDay[day]

		values := []any{day}
		for _, seg := range kyc.Segments() {
			c := bucket.Get(seg)
			values = append(values, c.Received, c.Within24h, c.After24h, c.Pending)
		}
		values = append(values, approvals.Entities, approvals.TMEntities, approvals.TMS)

		for col, v := range values {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStatusSheet(f *excelize.File, sheet string, overview map[string]int) error {
	if err := setCell(f, sheet, 1, 1, "Status"); err != nil {
		return err
	}
	if err := setCell(f, sheet, 2, 1, "Count"); err != nil {
		return err
	}

	row := 2
	for _, status := range sortedKeys(overview) {
		if err := setCell(f, sheet, 1, row, status); err != nil {
			return err
		}
		if err := setCell(f, sheet, 2, row, overview[status]); err != nil {
			return err
		}
		row++
	}
	return nil
}

// WriteRevenue writes the revenue report and day-wise breakdown as a
// two-sheet workbook.
func WriteRevenue(path string, report *revenue.Report, days []string, daywise map[string]*revenue.DayRevenue) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const reportSheet = "Revenue Report"
	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Account Type", "New", "Renewal", "New Revenue", "Renewal Revenue", "Deposit", "Net Revenue"}
	for col, h := range headers {
		if err := setCell(f, reportSheet, col+1, 1, h); err != nil {
			return err
		}
	}

	row := 2
	for _, at := range revenue.AccountTypes() {
		line := report.Lines[at]
		values := []any{
			string(at), line.NewCount, line.RenewCount,
			line.NewRevenue.String(), line.RenewRev.String(),
			line.Deposit.String(), line.NetRevenue().String(),
		}
		for col, v := range values {
			if err := setCell(f, reportSheet, col+1, row, v); err != nil {
				return err
			}
		}
		row++
	}
	total := report.GrandTotal()
	totalValues := []any{
		"Total", total.NewCount, total.RenewCount,
		total.NewRevenue.String(), total.RenewRev.String(),
		total.Deposit.String(), total.NetRevenue().String(),
	}
	for col, v := range totalValues {
		if err := setCell(f, reportSheet, col+1, row, v); err != nil {
			return err
		}
	}

	const daySheet = "Daywise"
	if _, err := f.NewSheet(daySheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}
	dayHeaders := []string{"Date", "New", "Renewal", "Fee Exemption", "New Revenue", "Renewal Revenue", "Deposit", "Net Revenue"}
	for col, h := range dayHeaders {
		if err := setCell(f, daySheet, col+1, 1, h); err != nil {
			return err
		}
	}
	for i, day := range days {
		d := daywise[day]
		values := []any{
			day, d.New, d.Renewal, d.FeeExemption,
			d.NewRev.String(), d.RenewalRev.String(),
			d.Deposit.String(), d.NetRevenue().String(),
		}
		for col, v := range values {
			if err := setCell(f, daySheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to build cell reference: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
