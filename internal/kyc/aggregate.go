package kyc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ckasturi/sift/internal/dates"
)

// Counters holds the per-month or per-day tallies for one segment.
type Counters struct {
	Received             int
	Within24h            int
	After24h             int
	Pending              int
	ApprovedBySubmission int
	ApprovedByApproval   int
}

// SegmentCounters holds one Counters per registration segment.
type SegmentCounters struct {
	Entities   Counters
	TMEntities Counters
	TMS        Counters
}

// Get returns the counters for a segment.
func (s *SegmentCounters) Get(seg Segment) *Counters {
	switch seg {
	case SegmentEntities:
		return &s.Entities
	case SegmentTMEntities:
		return &s.TMEntities
	default:
		return &s.TMS
	}
}

// ApprovalCounts tallies approvals bucketed by approval date.
type ApprovalCounts struct {
	Entities   int
	TMEntities int
	TMS        int
}

// Add increments the count for a segment.
func (a *ApprovalCounts) Add(seg Segment) {
	switch seg {
	case SegmentEntities:
		a.Entities++
	case SegmentTMEntities:
		a.TMEntities++
	default:
		a.TMS++
	}
}

// Total sums all segments.
func (a *ApprovalCounts) Total() int {
	return a.Entities + a.TMEntities + a.TMS
}

// Statistics is the monthly dashboard for one financial year. The received,
// pending, and 24-hour series bucket by submission month; the approval
// series buckets by approval month independently. Records outside the
// financial year count toward nothing, including the grand totals.
type Statistics struct {
	Monthly          map[string]*SegmentCounters
	ApprovalsByMonth map[string]*ApprovalCounts
	RefundsByMonth   map[string]int
	FinancialYear    string
	GrandTotals      SegmentCounters
	TotalRefunds     int
}

// Calculate builds the monthly statistics for the financial year containing
// now.
func Calculate(data *Dataset, now time.Time) *Statistics {
	fy := dates.FinancialYear(now)
	stats := &Statistics{
		FinancialYear:    fy,
		Monthly:          make(map[string]*SegmentCounters),
		ApprovalsByMonth: make(map[string]*ApprovalCounts),
		RefundsByMonth:   make(map[string]int),
	}

	for _, seg := range Segments() {
		for _, record := range data.BySegment(seg) {
			if record.SubmissionDate != nil && dates.FinancialYear(*record.SubmissionDate) == fy {
				monthKey := dates.MonthKey(*record.SubmissionDate)
				bucket, ok := stats.Monthly[monthKey]
				if !ok {
					bucket = &SegmentCounters{}
					stats.Monthly[monthKey] = bucket
				}
				counters := bucket.Get(seg)
				grand := stats.GrandTotals.Get(seg)

				counters.Received++
				grand.Received++

				if record.IsPending() {
					counters.Pending++
					grand.Pending++
				}

				if record.IsApproved() {
					if record.Within24h {
						counters.Within24h++
						grand.Within24h++
					}
					if record.After24h {
						counters.After24h++
						grand.After24h++
					}
					counters.ApprovedBySubmission++
					grand.ApprovedBySubmission++
				}
			}

			if record.ApprovalDate != nil && record.IsApproved() &&
				dates.FinancialYear(*record.ApprovalDate) == fy {
				monthKey := dates.MonthKey(*record.ApprovalDate)
				counts, ok := stats.ApprovalsByMonth[monthKey]
				if !ok {
					counts = &ApprovalCounts{}
					stats.ApprovalsByMonth[monthKey] = counts
				}
				counts.Add(seg)
				stats.GrandTotals.Get(seg).ApprovedByApproval++
			}
		}
	}

	for _, refund := range data.Refunds {
		if dates.FinancialYear(refund.InitiatedDate) != fy {
			continue
		}
		stats.RefundsByMonth[dates.MonthKey(refund.InitiatedDate)]++
		stats.TotalRefunds++
	}

	return stats
}

// TotalReceived sums received registrations across segments.
func (s *Statistics) TotalReceived() int {
	return s.GrandTotals.Entities.Received + s.GrandTotals.TMEntities.Received + s.GrandTotals.TMS.Received
}

// TotalPending sums currently pending registrations across segments.
func (s *Statistics) TotalPending() int {
	return s.GrandTotals.Entities.Pending + s.GrandTotals.TMEntities.Pending + s.GrandTotals.TMS.Pending
}

// TotalApproved sums approvals, bucketed by approval date, across segments.
func (s *Statistics) TotalApproved() int {
	return s.GrandTotals.Entities.ApprovedByApproval + s.GrandTotals.TMEntities.ApprovedByApproval + s.GrandTotals.TMS.ApprovedByApproval
}

// ApprovalRate returns approvals as a percentage of received registrations.
func (s *Statistics) ApprovalRate() float64 {
	received := s.TotalReceived()
	if received == 0 {
		return 0
	}
	return float64(s.TotalApproved()) / float64(received) * 100
}

// MonthKeys returns the twelve month keys of the statistics' financial
// year in April-to-March order.
func (s *Statistics) MonthKeys() []string {
	parts := strings.SplitN(s.FinancialYear, "-", 2)
	if len(parts) != 2 {
		return nil
	}
	firstYear, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}

	keys := make([]string, 0, 12)
	for m := 4; m <= 12; m++ {
		keys = append(keys, fmt.Sprintf("%d-%02d", firstYear, m))
	}
	for m := 1; m <= 3; m++ {
		keys = append(keys, fmt.Sprintf("%d-%02d", firstYear+1, m))
	}
	return keys
}

// DailyStatistics breaks the current month down by day, covering the first
// of the month through yesterday.
type DailyStatistics struct {
	Daily          map[string]*SegmentCounters
	ApprovalsByDay map[string]*ApprovalCounts
	MonthKey       string
	Days           []string
}

// CalculateDaily builds the day-wise breakdown for the month containing
// now. Only days strictly before today are reported; partial data from the
// current day would distort the trend.
func CalculateDaily(data *Dataset, now time.Time) *DailyStatistics {
	monthKey := dates.MonthKey(now)
	currentDay := now.Day()

	daily := &DailyStatistics{
		MonthKey:       monthKey,
		Daily:          make(map[string]*SegmentCounters),
		ApprovalsByDay: make(map[string]*ApprovalCounts),
	}

	for d := 1; d < currentDay; d++ {
		dateKey := fmt.Sprintf("%s-%02d", monthKey, d)
		daily.Days = append(daily.Days, dateKey)
		daily.Daily[dateKey] = &SegmentCounters{}
		daily.ApprovalsByDay[dateKey] = &ApprovalCounts{}
	}

	for _, seg := range Segments() {
		for _, record := range data.BySegment(seg) {
			if record.SubmissionDate != nil && dates.MonthKey(*record.SubmissionDate) == monthKey &&
				record.SubmissionDate.Day() < currentDay {
				counters := daily.Daily[dates.DateKey(*record.SubmissionDate)].Get(seg)

				counters.Received++
				if record.IsPending() {
					counters.Pending++
				}
				if record.IsApproved() {
					if record.Within24h {
						counters.Within24h++
					}
					if record.After24h {
						counters.After24h++
					}
				}
			}

			if record.ApprovalDate != nil && record.IsApproved() &&
				dates.MonthKey(*record.ApprovalDate) == monthKey &&
				record.ApprovalDate.Day() < currentDay {
				daily.ApprovalsByDay[dates.DateKey(*record.ApprovalDate)].Add(seg)
			}
		}
	}

	return daily
}
