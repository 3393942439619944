package revenue

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ckasturi/sift/internal/dates"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

// Window is an inclusive date range. Both ends are date-only; payment
// timestamps are truncated before comparison.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether the date falls inside the window.
func (w Window) Contains(t time.Time) bool {
	d := dateOnly(t)
	return !d.Before(w.From) && !d.After(w.To)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentMonthWindow covers the first of the current month through
// yesterday. The current day is always excluded: its payments are still
// settling.
func CurrentMonthWindow(now time.Time) Window {
	return Window{
		From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		To:   dateOnly(now).AddDate(0, 0, -1),
	}
}

// PriorYearWindow mirrors the current month-to-date window onto the same
// month last year, for like-for-like comparison.
func PriorYearWindow(now time.Time) Window {
	endDay := dateOnly(now).AddDate(0, 0, -1).Day()
	return Window{
		From: time.Date(now.Year()-1, now.Month(), 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(now.Year()-1, now.Month(), endDay, 0, 0, 0, 0, time.UTC),
	}
}

// PriorMonthWindow mirrors the current month-to-date window onto the
// previous month.
func PriorMonthWindow(now time.Time) Window {
	endDay := dateOnly(now).AddDate(0, 0, -1).Day()
	firstOfPrior := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Window{
		From: firstOfPrior,
		To:   time.Date(firstOfPrior.Year(), firstOfPrior.Month(), endDay, 0, 0, 0, 0, time.UTC),
	}
}

// Engine joins payment rows against reference lookups and aggregates them.
type Engine struct {
	lookups *Lookups
}

// NewEngine returns an Engine using the given reference lookups.
func NewEngine(lookups *Lookups) *Engine {
	return &Engine{lookups: lookups}
}

// Process joins every payment row inside the window against the reference
// lookups. Entity lookups win over telemarketer lookups; payments matching
// neither default to the Entity account type with no application date. A
// zero amount overrides the account type to Fee Exemption. Rows without a
// parseable paid date are skipped.
func (e *Engine) Process(rows []ingest.RawRecord, w Window) []model.Payment {
	payments := make([]model.Payment, 0, len(rows))

	for _, row := range rows {
		paidStr := row.Lookup(ingest.PaidDateColumns...)
		if paidStr == "" {
			continue
		}
		paid, ok := dates.ParseFlexible(paidStr)
		if !ok {
			continue
		}
		if !w.Contains(paid) {
			continue
		}

		p := model.Payment{
			PaidDate:       paid,
			EntityID:       row.Lookup(ingest.EntityIDColumns...),
			TelemarketerID: row.Lookup(ingest.TelemarketerIDColumns...),
			Amount:         ingest.ParseAmount(row.Lookup(ingest.AmountColumns...)),
			AccountType:    model.AccountEntity,
		}

		if entry, found := e.lookups.Entities[p.EntityID]; p.EntityID != "" && found {
			p.ApplicationDate = entry.ApplicationDate
		} else if entry, found := e.lookups.Telemarketers[p.TelemarketerID]; p.TelemarketerID != "" && found {
			p.ApplicationDate = entry.ApplicationDate
			p.FunctionType = entry.FunctionType
			p.AccountType = ClassifyAccount(entry.FunctionType)
		}

		if p.Amount.IsZero() {
			p.IsFeeExemption = true
			p.AccountType = model.AccountFeeExemption
		}

		// New versus renewal: a payment in the same calendar year as the
		// application is a new registration. Unmatched payments default
		// to new.
		p.IsNew = p.ApplicationDate == nil || p.ApplicationDate.Year() == paid.Year()

		if !p.IsFeeExemption {
			switch p.AccountType {
			case model.AccountEntity, model.AccountTMS:
				p.Revenue = model.RegistrationFee
			case model.AccountTMDelivery:
				p.Revenue = model.RegistrationFee
				p.Deposit = model.SecurityDeposit
			}
		}

		payments = append(payments, p)
	}

	return payments
}

// AccountTypes returns the report's account types in display order.
func AccountTypes() []model.AccountType {
	return []model.AccountType{
		model.AccountEntity,
		model.AccountTMS,
		model.AccountTMDelivery,
		model.AccountFeeExemption,
	}
}

// Report is the per-account-type revenue rollup.
type Report struct {
	Lines map[model.AccountType]*model.RevenueLine
}

// BuildReport aggregates payments into one line per account type. Every
// account type gets a line even with no payments.
func BuildReport(payments []model.Payment) *Report {
	report := &Report{Lines: make(map[model.AccountType]*model.RevenueLine)}
	for _, at := range AccountTypes() {
		report.Lines[at] = &model.RevenueLine{AccountType: at}
	}

	for _, p := range payments {
		line := report.Lines[p.AccountType]
		if line == nil {
			continue
		}
		if p.IsNew {
			line.NewCount++
			line.NewRevenue = line.NewRevenue.Add(p.Revenue)
		} else {
			line.RenewCount++
			line.RenewRev = line.RenewRev.Add(p.Revenue)
		}
		line.Deposit = line.Deposit.Add(p.Deposit)
	}

	return report
}

// GrandTotal sums every line into one.
func (r *Report) GrandTotal() model.RevenueLine {
	total := model.RevenueLine{AccountType: "Total"}
	for _, at := range AccountTypes() {
		line := r.Lines[at]
		total.NewCount += line.NewCount
		total.RenewCount += line.RenewCount
		total.NewRevenue = total.NewRevenue.Add(line.NewRevenue)
		total.RenewRev = total.RenewRev.Add(line.RenewRev)
		total.Deposit = total.Deposit.Add(line.Deposit)
	}
	return total
}

// DayRevenue is the revenue rollup for a single day. Fee exemptions are
// counted on their own, outside the new and renewal columns.
type DayRevenue struct {
	New          int
	Renewal      int
	FeeExemption int
	Refunds      int
	NewRev       decimal.Decimal
	RenewalRev   decimal.Decimal
	Deposit      decimal.Decimal
}

// NetRevenue is new plus renewal revenue, deposit excluded.
func (d *DayRevenue) NetRevenue() decimal.Decimal {
	return d.NewRev.Add(d.RenewalRev)
}

// Daywise buckets payments into the last five days ending yesterday. The
// returned keys are in chronological order and every day is present, with
// zeros where nothing happened.
func Daywise(payments []model.Payment, now time.Time) ([]string, map[string]*DayRevenue) {
	yesterday := dateOnly(now).AddDate(0, 0, -1)

	days := make([]string, 0, 5)
	buckets := make(map[string]*DayRevenue, 5)
	for i := 4; i >= 0; i-- {
		key := dates.DateKey(yesterday.AddDate(0, 0, -i))
		days = append(days, key)
		buckets[key] = &DayRevenue{}
	}

	for _, p := range payments {
		bucket, ok := buckets[dates.DateKey(p.PaidDate)]
		if !ok {
			continue
		}
		switch {
		case p.IsFeeExemption:
			bucket.FeeExemption++
		case p.IsNew:
			bucket.New++
			bucket.NewRev = bucket.NewRev.Add(p.Revenue)
		default:
			bucket.Renewal++
			bucket.RenewalRev = bucket.RenewalRev.Add(p.Revenue)
		}
		bucket.Deposit = bucket.Deposit.Add(p.Deposit)
	}

	return days, buckets
}

// PeriodCounts summarizes one comparison period.
type PeriodCounts struct {
	New     int
	Renewal int
	Total   int
}

// Comparison holds the current period against a prior period with
// percentage deltas.
type Comparison struct {
	Current      PeriodCounts
	Prior        PeriodCounts
	NewDelta     int
	RenewalDelta int
	TotalDelta   int
}

// Compare counts new and renewal payments in each period and computes the
// deltas.
func Compare(current, prior []model.Payment) Comparison {
	cur := countPeriod(current)
	pri := countPeriod(prior)
	return Comparison{
		Current:      cur,
		Prior:        pri,
		NewDelta:     DeltaPercent(cur.New, pri.New),
		RenewalDelta: DeltaPercent(cur.Renewal, pri.Renewal),
		TotalDelta:   DeltaPercent(cur.Total, pri.Total),
	}
}

func countPeriod(payments []model.Payment) PeriodCounts {
	var c PeriodCounts
	for _, p := range payments {
		if p.IsNew {
			c.New++
		} else {
			c.Renewal++
		}
	}
	c.Total = c.New + c.Renewal
	return c
}

// DeltaPercent returns the rounded percentage change from prior to current.
// With no prior baseline the delta is 100 when anything happened and 0
// otherwise.
func DeltaPercent(current, prior int) int {
	if prior != 0 {
		return int(math.Round(float64(current-prior) / math.Abs(float64(prior)) * 100))
	}
	if current > 0 {
		return 100
	}
	return 0
}
