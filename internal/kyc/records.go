// Package kyc normalizes registration exports and aggregates them into the
// monthly and daily approval statistics shown on the operations dashboard.
package kyc

import (
	"strconv"
	"strings"

	"github.com/ckasturi/sift/internal/dates"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

// Segment identifies which registration population a record belongs to.
type Segment string

const (
	SegmentEntities   Segment = "entities"
	SegmentTMEntities Segment = "tmEntities"
	SegmentTMS        Segment = "tms"
)

// Segments returns the registration segments in display order.
func Segments() []Segment {
	return []Segment{SegmentEntities, SegmentTMEntities, SegmentTMS}
}

var (
	registrationIDColumns = []string{"Registration ID", "Temp ID", "TempID"}
	submissionDateColumns = []string{"Application Submitted Date"}
	approvalDateColumns   = []string{"Approved On"}
	statusColumns         = []string{"Status"}
	refundDateColumns     = []string{"Refund Initiated Date"}
)

// CleanRegistrationID strips stray quotes and expands scientific notation
// that spreadsheet tools apply to long numeric IDs.
func CleanRegistrationID(raw string) string {
	id := strings.NewReplacer(`'`, "", `"`, "").Replace(strings.TrimSpace(raw))
	if strings.Contains(id, "e+") || strings.Contains(id, "E+") {
		if f, err := strconv.ParseFloat(id, 64); err == nil {
			return strconv.FormatFloat(f, 'f', 0, 64)
		}
	}
	return id
}

// NormalizeKey lowercases a status and drops everything that is not a
// letter or digit, so "In Progress", "in-progress" and "INPROGRESS" all
// compare equal.
func NormalizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeStatus maps a raw status cell onto the known status set.
func NormalizeStatus(raw string) model.RegistrationStatus {
	switch NormalizeKey(raw) {
	case "approved":
		return model.StatusApproved
	case "approvalpending", "resubmitted":
		return model.StatusPending
	case "suspended":
		return model.StatusSuspended
	case "blacklisted":
		return model.StatusBlacklisted
	case "inactive":
		return model.StatusInactive
	case "deregistered":
		return model.StatusDeRegistered
	default:
		return model.StatusOther
	}
}

// NormalizeRecords turns raw registration rows into transaction records.
// Rows without a registration ID are dropped, duplicate IDs keep the first
// occurrence, and rows whose status is in progress are excluded entirely.
func NormalizeRecords(raw []ingest.RawRecord) []model.TransactionRecord {
	seen := make(map[string]bool, len(raw))
	records := make([]model.TransactionRecord, 0, len(raw))

	for _, row := range raw {
		id := CleanRegistrationID(row.Lookup(registrationIDColumns...))
		if id == "" {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		status := strings.TrimSpace(row.Lookup(statusColumns...))
		if NormalizeKey(status) == "inprogress" {
			continue
		}

		record := model.TransactionRecord{
			RegistrationID: id,
			RawStatus:      status,
			Status:         NormalizeStatus(status),
		}

		if t, ok := dates.ParseFlexible(row.Lookup(submissionDateColumns...)); ok {
			sub := t
			record.SubmissionDate = &sub
		}
		if t, ok := dates.ParseFlexible(row.Lookup(approvalDateColumns...)); ok {
			appr := t
			record.ApprovalDate = &appr
		}

		// 24-hour timing needs both dates.
		if record.SubmissionDate != nil && record.ApprovalDate != nil {
			record.HoursToApproval = record.ApprovalDate.Sub(*record.SubmissionDate).Hours()
			record.Within24h = record.HoursToApproval <= 24
			record.After24h = record.HoursToApproval > 24
		}

		records = append(records, record)
	}

	return records
}

// NormalizeRefunds turns raw refund rows into refund records. Rows without
// a parseable Refund Initiated Date are dropped.
func NormalizeRefunds(raw []ingest.RawRecord) []model.RefundRecord {
	seen := make(map[string]bool, len(raw))
	refunds := make([]model.RefundRecord, 0, len(raw))

	for _, row := range raw {
		id := CleanRegistrationID(row.Lookup(registrationIDColumns...))
		if id == "" {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		t, ok := dates.ParseFlexible(row.Lookup(refundDateColumns...))
		if !ok {
			continue
		}
		refunds = append(refunds, model.RefundRecord{
			RegistrationID: id,
			InitiatedDate:  t,
		})
	}

	return refunds
}

// CountByStatus counts records whose raw status normalizes to the same key
// as the target status.
func CountByStatus(records []model.TransactionRecord, status string) int {
	target := NormalizeKey(status)
	count := 0
	for _, r := range records {
		if NormalizeKey(r.RawStatus) == target {
			count++
		}
	}
	return count
}

// StatusOverview tallies records by normalized raw status, keyed by the
// first raw spelling seen for each status.
func StatusOverview(records []model.TransactionRecord) map[string]int {
	labels := make(map[string]string)
	counts := make(map[string]int)

	for _, r := range records {
		key := NormalizeKey(r.RawStatus)
		if key == "" {
			key = "unknown"
		}
		if _, ok := labels[key]; !ok {
			label := strings.TrimSpace(r.RawStatus)
			if label == "" {
				label = "Unknown"
			}
			labels[key] = label
		}
		counts[labels[key]]++
	}

	return counts
}

// Dataset groups the normalized inputs for one dashboard run.
type Dataset struct {
	Entities   []model.TransactionRecord
	TMEntities []model.TransactionRecord
	TMS        []model.TransactionRecord
	Refunds    []model.RefundRecord
}

// BySegment returns the records for one segment.
func (d *Dataset) BySegment(s Segment) []model.TransactionRecord {
	switch s {
	case SegmentEntities:
		return d.Entities
	case SegmentTMEntities:
		return d.TMEntities
	default:
		return d.TMS
	}
}

// TotalRecords reports the record count across all segments.
func (d *Dataset) TotalRecords() int {
	return len(d.Entities) + len(d.TMEntities) + len(d.TMS)
}
