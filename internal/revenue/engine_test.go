package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

func testLookups() *Lookups {
	return BuildLookups(
		[]ingest.RawRecord{
			{"Entity ID": "E100", "Application Submitted Date": "15-03-2024"},
		},
		[]ingest.RawRecord{
			{"Entity ID": "E200", "Requested Date": "10-06-2023"},
		},
		[]ingest.RawRecord{
			{"Entity ID": "T100", "Application Submitted Date": "01-08-2024", "Function": "Delivery Services"},
			{"Entity ID": "T200", "Application Submitted Date": "01-08-2023", "Function": "Standard"},
			{"Entity ID": "T300", "Application Submitted Date": "01-08-2024"},
		},
	)
}

func TestBuildLookupsEngine(t *testing.T) {
	l := testLookups()

	require.Contains(t, l.Entities, "E100")
	assert.Equal(t, 2024, l.Entities["E100"].ApplicationDate.Year())

	// TM-entity rows land in the entity map, requested date as fallback.
	require.Contains(t, l.Entities, "E200")
	assert.Equal(t, 2023, l.Entities["E200"].ApplicationDate.Year())

	require.Contains(t, l.Telemarketers, "T100")
	assert.Equal(t, "Delivery Services", l.Telemarketers["T100"].FunctionType)
}

func TestClassifyAccountEngine(t *testing.T) {
	assert.Equal(t, model.AccountTMDelivery, ClassifyAccount("Delivery"))
	assert.Equal(t, model.AccountTMDelivery, ClassifyAccount("delivery partner"))
	assert.Equal(t, model.AccountTMS, ClassifyAccount("Standard"))
	assert.Equal(t, model.AccountTMS, ClassifyAccount(""))
}

func TestProcess(t *testing.T) {
	e := NewEngine(testLookups())
	w := Window{
		From: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
	}

	rows := []ingest.RawRecord{
		// Entity match, application this year: new Entity.
		{"Entity ID": "E100", "Paid On": "05-08-2024", "Amount Paid": "5900"},
		// Entity match, application last year: renewal.
		{"Entity ID": "E200", "Paid On": "05-08-2024", "Amount Paid": "5900"},
		// TM-only match with delivery function: TM-D with deposit.
		{"Telemarketer ID": "T100", "Paid On": "06-08-2024", "Amount Paid": "55900"},
		// TM-only match, standard function: TMS, never Entity.
		{"Telemarketer ID": "T200", "Paid On": "06-08-2024", "Amount Paid": "5900"},
		// No match anywhere: defaults to new Entity.
		{"Entity ID": "E999", "Paid On": "07-08-2024", "Amount Paid": "5900"},
		// Zero amount: fee exemption regardless of mapping.
		{"Entity ID": "E100", "Paid On": "07-08-2024", "Amount Paid": "0"},
		// Outside the window.
		{"Entity ID": "E100", "Paid On": "05-09-2024", "Amount Paid": "5900"},
		// Unparseable paid date.
		{"Entity ID": "E100", "Paid On": "pending", "Amount Paid": "5900"},
		// Missing paid date.
		{"Entity ID": "E100", "Amount Paid": "5900"},
	}

	payments := e.Process(rows, w)
	require.Len(t, payments, 6)

	assert.Equal(t, model.AccountEntity, payments[0].AccountType)
	assert.True(t, payments[0].IsNew)
	assert.Equal(t, "5900", payments[0].Revenue.String())
	assert.True(t, payments[0].Deposit.IsZero())

	assert.Equal(t, model.AccountEntity, payments[1].AccountType)
	assert.False(t, payments[1].IsNew, "2023 application paid in 2024 is a renewal")

	assert.Equal(t, model.AccountTMDelivery, payments[2].AccountType)
	assert.Equal(t, "5900", payments[2].Revenue.String())
	assert.Equal(t, "50000", payments[2].Deposit.String())

	assert.Equal(t, model.AccountTMS, payments[3].AccountType)
	assert.False(t, payments[3].IsNew)

	assert.Equal(t, model.AccountEntity, payments[4].AccountType)
	assert.True(t, payments[4].IsNew)
	assert.Nil(t, payments[4].ApplicationDate)

	assert.Equal(t, model.AccountFeeExemption, payments[5].AccountType)
	assert.True(t, payments[5].IsFeeExemption)
	assert.True(t, payments[5].Revenue.IsZero())
	assert.True(t, payments[5].Deposit.IsZero())
}

func TestBuildReport(t *testing.T) {
	e := NewEngine(testLookups())
	w := Window{
		From: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC),
	}

	payments := e.Process([]ingest.RawRecord{
		{"Entity ID": "E100", "Paid On": "05-08-2024", "Amount Paid": "5900"},
		{"Entity ID": "E200", "Paid On": "05-08-2024", "Amount Paid": "5900"},
		{"Telemarketer ID": "T100", "Paid On": "06-08-2024", "Amount Paid": "55900"},
		{"Entity ID": "E100", "Paid On": "07-08-2024", "Amount Paid": "0"},
	}, w)

	report := BuildReport(payments)

	entity := report.Lines[model.AccountEntity]
	assert.Equal(t, 1, entity.NewCount)
	assert.Equal(t, 1, entity.RenewCount)
	assert.Equal(t, "11800", entity.NetRevenue().String())

	tmd := report.Lines[model.AccountTMDelivery]
	assert.Equal(t, 1, tmd.NewCount)
	assert.Equal(t, "5900", tmd.NetRevenue().String(), "deposit excluded from net revenue")
	assert.Equal(t, "50000", tmd.Deposit.String())

	exemption := report.Lines[model.AccountFeeExemption]
	assert.Equal(t, 1, exemption.Total())
	assert.True(t, exemption.NetRevenue().IsZero())

	total := report.GrandTotal()
	assert.Equal(t, 4, total.Total())
	assert.Equal(t, "17700", total.NetRevenue().String())
	assert.Equal(t, "50000", total.Deposit.String())
}

func TestCurrentMonthWindow(t *testing.T) {
	now := time.Date(2024, time.August, 10, 15, 30, 0, 0, time.UTC)
	w := CurrentMonthWindow(now)

	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2024, time.August, 9, 0, 0, 0, 0, time.UTC), w.To)

	assert.True(t, w.Contains(time.Date(2024, time.August, 9, 23, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC)), "today excluded")
	assert.False(t, w.Contains(time.Date(2024, time.July, 31, 0, 0, 0, 0, time.UTC)))
}

func TestMirrorWindows(t *testing.T) {
	now := time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC)

	ly := PriorYearWindow(now)
	assert.Equal(t, time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC), ly.From)
	assert.Equal(t, time.Date(2023, time.August, 9, 0, 0, 0, 0, time.UTC), ly.To)

	lm := PriorMonthWindow(now)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), lm.From)
	assert.Equal(t, time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC), lm.To)
}

func TestDaywise(t *testing.T) {
	now := time.Date(2024, time.August, 10, 0, 0, 0, 0, time.UTC)

	payments := []model.Payment{
		{PaidDate: time.Date(2024, time.August, 9, 0, 0, 0, 0, time.UTC), IsNew: true, Revenue: model.RegistrationFee},
		{PaidDate: time.Date(2024, time.August, 9, 0, 0, 0, 0, time.UTC), IsFeeExemption: true},
		{PaidDate: time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC), Revenue: model.RegistrationFee},
		// Before the five-day range.
		{PaidDate: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), IsNew: true, Revenue: model.RegistrationFee},
	}

	days, buckets := Daywise(payments, now)
	require.Equal(t, []string{"2024-08-05", "2024-08-06", "2024-08-07", "2024-08-08", "2024-08-09"}, days)

	day9 := buckets["2024-08-09"]
	assert.Equal(t, 1, day9.New)
	assert.Equal(t, 1, day9.FeeExemption)
	assert.Equal(t, "5900", day9.NetRevenue().String())

	day5 := buckets["2024-08-05"]
	assert.Equal(t, 1, day5.Renewal)
	assert.Equal(t, "5900", day5.NetRevenue().String())

	assert.Equal(t, 0, buckets["2024-08-07"].New+buckets["2024-08-07"].Renewal)
}

func TestDeltaPercent(t *testing.T) {
	assert.Equal(t, 50, DeltaPercent(15, 10))
	assert.Equal(t, -50, DeltaPercent(5, 10))
	assert.Equal(t, 0, DeltaPercent(10, 10))
	assert.Equal(t, 100, DeltaPercent(5, 0))
	assert.Equal(t, 0, DeltaPercent(0, 0))
}

func TestCompare(t *testing.T) {
	current := []model.Payment{
		{IsNew: true}, {IsNew: true}, {IsNew: false},
	}
	prior := []model.Payment{
		{IsNew: true}, {IsNew: false}, {IsNew: false},
	}

	c := Compare(current, prior)
	assert.Equal(t, PeriodCounts{New: 2, Renewal: 1, Total: 3}, c.Current)
	assert.Equal(t, PeriodCounts{New: 1, Renewal: 2, Total: 3}, c.Prior)
	assert.Equal(t, 100, c.NewDelta)
	assert.Equal(t, -50, c.RenewalDelta)
	assert.Equal(t, 0, c.TotalDelta)
}
