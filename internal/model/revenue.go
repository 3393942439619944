package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType identifies which registrant bucket a payment belongs to.
type AccountType string

// Account types.
const (
	AccountEntity       AccountType = "Entity"
	AccountTMS          AccountType = "TMS"
	AccountTMDelivery   AccountType = "TM-D"
	AccountFeeExemption AccountType = "Fee Exemption"
)

// Per-transaction revenue constants. These are fixed fees in the registry's
// currency unit, not derived from the payment amount.
var (
	RegistrationFee = decimal.NewFromInt(5900)
	SecurityDeposit = decimal.NewFromInt(50000)
)

// Payment is a payment-sheet row joined against the reference lookups.
type Payment struct {
	PaidDate        time.Time
	ApplicationDate *time.Time
	EntityID        string
	TelemarketerID  string
	FunctionType    string
	AccountType     AccountType
	Amount          decimal.Decimal
	Revenue         decimal.Decimal
	Deposit         decimal.Decimal
	IsNew           bool
	IsFeeExemption  bool
}

// RevenueLine aggregates payments for one account type. Net revenue is
// new revenue plus renewal revenue; the security deposit is tracked but
// excluded from net revenue.
type RevenueLine struct {
	AccountType AccountType
	NewCount    int
	RenewCount  int
	NewRevenue  decimal.Decimal
	RenewRev    decimal.Decimal
	Deposit     decimal.Decimal
}

// NetRevenue returns new revenue plus renewal revenue, deposit excluded.
func (l RevenueLine) NetRevenue() decimal.Decimal {
	return l.NewRevenue.Add(l.RenewRev)
}

// Total returns the combined transaction count.
func (l RevenueLine) Total() int {
	return l.NewCount + l.RenewCount
}
