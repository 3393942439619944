package kyc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckasturi/sift/internal/model"
)

func date(y int, m time.Month, d, hour int) *time.Time {
	t := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculate(t *testing.T) {
	now := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)

	data := &Dataset{
		Entities: []model.TransactionRecord{
			{
				RegistrationID: "E1",
				SubmissionDate: date(2024, time.June, 1, 9),
				ApprovalDate:   date(2024, time.June, 1, 18),
				Status:         model.StatusApproved,
				Within24h:      true,
			},
			{
				RegistrationID: "E2",
				SubmissionDate: date(2024, time.June, 2, 9),
				ApprovalDate:   date(2024, time.July, 5, 9),
				Status:         model.StatusApproved,
				After24h:       true,
			},
			{
				RegistrationID: "E3",
				SubmissionDate: date(2024, time.June, 3, 9),
				Status:         model.StatusPending,
			},
			{
				// Previous financial year, counts toward nothing.
				RegistrationID: "E4",
				SubmissionDate: date(2024, time.February, 1, 9),
				ApprovalDate:   date(2024, time.February, 2, 9),
				Status:         model.StatusApproved,
				Within24h:      true,
			},
		},
		TMS: []model.TransactionRecord{
			{
				RegistrationID: "T1",
				SubmissionDate: date(2024, time.June, 1, 9),
				Status:         model.StatusSuspended,
			},
		},
		Refunds: []model.RefundRecord{
			{RegistrationID: "R1", InitiatedDate: *date(2024, time.June, 10, 0)},
			{RegistrationID: "R2", InitiatedDate: *date(2024, time.January, 10, 0)},
		},
	}

	stats := Calculate(data, now)

	assert.Equal(t, "2024-2025", stats.FinancialYear)

	june := stats.Monthly["2024-06"]
	require.NotNil(t, june)
	assert.Equal(t, 3, june.Entities.Received)
	assert.Equal(t, 1, june.Entities.Within24h)
	assert.Equal(t, 1, june.Entities.After24h, "timing buckets by submission month even when approved later")
	assert.Equal(t, 2, june.Entities.ApprovedBySubmission)
	assert.Equal(t, 1, june.Entities.Pending)
	assert.Equal(t, 1, june.TMS.Received)
	assert.Equal(t, 0, june.TMS.Pending, "suspended is not pending")

	// Approval series buckets by approval month, independent of submission.
	require.NotNil(t, stats.ApprovalsByMonth["2024-06"])
	assert.Equal(t, 1, stats.ApprovalsByMonth["2024-06"].Entities)
	require.NotNil(t, stats.ApprovalsByMonth["2024-07"])
	assert.Equal(t, 1, stats.ApprovalsByMonth["2024-07"].Entities)

	// Prior-FY record is absent everywhere, including grand totals.
	assert.Equal(t, 3, stats.GrandTotals.Entities.Received)
	assert.Equal(t, 2, stats.GrandTotals.Entities.ApprovedByApproval)
	assert.Nil(t, stats.Monthly["2024-02"])

	// Refunds are FY-scoped too.
	assert.Equal(t, 1, stats.TotalRefunds)
	assert.Equal(t, 1, stats.RefundsByMonth["2024-06"])

	assert.Equal(t, 4, stats.TotalReceived())
	assert.Equal(t, 1, stats.TotalPending())
	assert.Equal(t, 2, stats.TotalApproved())
	assert.InDelta(t, 50.0, stats.ApprovalRate(), 0.001)
}

func TestCalculateEmptyDataset(t *testing.T) {
	stats := Calculate(&Dataset{}, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	assert.Empty(t, stats.Monthly)
	assert.Equal(t, 0, stats.TotalReceived())
	assert.Equal(t, 0.0, stats.ApprovalRate())
}

func TestCalculateIdempotent(t *testing.T) {
	now := time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)
	data := &Dataset{
		Entities: []model.TransactionRecord{
			{
				RegistrationID: "E1",
				SubmissionDate: date(2024, time.June, 1, 9),
				ApprovalDate:   date(2024, time.June, 1, 18),
				Status:         model.StatusApproved,
				Within24h:      true,
			},
		},
	}

	first := Calculate(data, now)
	second := Calculate(data, now)
	assert.Equal(t, first, second)
}

func TestMonthKeys(t *testing.T) {
	stats := &Statistics{FinancialYear: "2024-2025"}

	keys := stats.MonthKeys()
	require.Len(t, keys, 12)
	assert.Equal(t, "2024-04", keys[0])
	assert.Equal(t, "2024-12", keys[8])
	assert.Equal(t, "2025-01", keys[9])
	assert.Equal(t, "2025-03", keys[11])
}

func TestCalculateDaily(t *testing.T) {
	now := time.Date(2024, time.August, 10, 12, 0, 0, 0, time.UTC)

	data := &Dataset{
		Entities: []model.TransactionRecord{
			{
				RegistrationID: "E1",
				SubmissionDate: date(2024, time.August, 5, 9),
				ApprovalDate:   date(2024, time.August, 5, 15),
				Status:         model.StatusApproved,
				Within24h:      true,
			},
			{
				// Today: excluded from the day-wise view.
				RegistrationID: "E2",
				SubmissionDate: date(2024, time.August, 10, 9),
				Status:         model.StatusPending,
			},
			{
				// Previous month: excluded.
				RegistrationID: "E3",
				SubmissionDate: date(2024, time.July, 5, 9),
				Status:         model.StatusPending,
			},
		},
	}

	daily := CalculateDaily(data, now)

	assert.Equal(t, "2024-08", daily.MonthKey)
	require.Len(t, daily.Days, 9)
	assert.Equal(t, "2024-08-01", daily.Days[0])
	assert.Equal(t, "2024-08-09", daily.Days[8])

	day5 := daily.Daily["2024-08-05"]
	require.NotNil(t, day5)
	assert.Equal(t, 1, day5.Entities.Received)
	assert.Equal(t, 1, day5.Entities.Within24h)
	assert.Equal(t, 1, daily.ApprovalsByDay["2024-08-05"].Entities)

	// Empty days exist with zero counters.
	require.NotNil(t, daily.Daily["2024-08-02"])
	assert.Equal(t, 0, daily.Daily["2024-08-02"].Entities.Received)

	_, hasToday := daily.Daily["2024-08-10"]
	assert.False(t, hasToday)
}
