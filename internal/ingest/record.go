// Package ingest reads exported CSV and XLSX files into raw records keyed
// by their header row. Exports come from several upstream portals, so
// column names vary; callers resolve values through synonym lists.
package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRecord is one data row keyed by header name.
type RawRecord map[string]string

// Lookup returns the first non-empty value among the candidate column
// names. Exact header matches are tried first, then a case-insensitive
// pass, matching how operators name columns inconsistently across exports.
func (r RawRecord) Lookup(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	for _, name := range names {
		lower := strings.ToLower(name)
		for k, v := range r {
			if strings.ToLower(k) == lower && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}

// Synonym lists for the columns the engines join on.
var (
	EntityIDColumns = []string{
		"Entity ID", "EntityID", "Entity Id", "entityId", "entityid", "ENTITYID",
	}
	TelemarketerIDColumns = []string{
		"Telemarketer ID", "TelemarketerID", "TM ID", "TMID", "TelemarketerId", "telemarketerId",
	}
	PaidDateColumns = []string{
		"Paid On", "PaidOn", "Paid Date", "PaymentDate", "Date", "payment_date",
	}
	AmountColumns = []string{
		"Amount Paid", "AmountPaid", "Amount", "Revenue", "PaymentAmount", "amount",
	}
	ApplicationDateColumns = []string{
		"ApplicationSubmittedDate", "Application Submitted Date", "SubmissionDate",
		"ApplicationDate", "application_date", "SubmittedDate",
		"Application Submission Date", "AppSubmissionDate", "App Submitted Date",
	}
	RequestedDateColumns = []string{
		"Requested Date", "RequestedDate", "RequestDate", "RequestedOn",
		"RegistrationDate", "Date",
	}
	FunctionTypeColumns = []string{
		"Function", "FunctionType", "Type", "Function Type", "function", "function_type",
	}
)

// ParseAmount converts a currency cell into a decimal. Currency symbols and
// thousands separators are stripped; unparseable cells count as zero rather
// than failing the row.
func ParseAmount(value string) decimal.Decimal {
	cleaned := strings.NewReplacer("₹", "", "$", "", ",", "").Replace(value)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
