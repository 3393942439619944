// Package revenue joins payment-sheet rows against registration reference
// data and rolls the result up into the monthly revenue report.
package revenue

import (
	"strings"

	"github.com/ckasturi/sift/internal/dates"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

// Lookups holds the reference maps the payment join resolves against.
// Entity lookups come from the entity and TM-entity sheets, telemarketer
// lookups from the TM sheet. When the same ID appears in multiple reference
// rows the later row wins.
type Lookups struct {
	Entities      map[string]model.LookupEntry
	Telemarketers map[string]model.LookupEntry
}

// BuildLookups builds the reference maps from the raw reference sheets.
// The application date prefers the submitted-date columns and falls back to
// the requested-date columns; unparseable dates leave the entry dateless
// rather than dropping it.
func BuildLookups(entityRows, tmEntityRows, tmRows []ingest.RawRecord) *Lookups {
	l := &Lookups{
		Entities:      make(map[string]model.LookupEntry),
		Telemarketers: make(map[string]model.LookupEntry),
	}

	for _, row := range entityRows {
		addEntry(l.Entities, row, ingest.EntityIDColumns, false)
	}
	for _, row := range tmEntityRows {
		addEntry(l.Entities, row, ingest.EntityIDColumns, false)
	}
	for _, row := range tmRows {
		addEntry(l.Telemarketers, row, ingest.TelemarketerIDColumns, true)
	}

	return l
}

func addEntry(m map[string]model.LookupEntry, row ingest.RawRecord, idColumns []string, withFunction bool) {
	id := row.Lookup(idColumns...)
	if id == "" {
		return
	}

	entry := model.LookupEntry{}

	dateStr := row.Lookup(ingest.ApplicationDateColumns...)
	if dateStr == "" {
		dateStr = row.Lookup(ingest.RequestedDateColumns...)
	}
	if t, ok := dates.ParseFlexible(dateStr); ok {
		entry.ApplicationDate = &t
	}

	if withFunction {
		entry.FunctionType = row.Lookup(ingest.FunctionTypeColumns...)
	}

	m[id] = entry
}

// ClassifyAccount maps a telemarketer function type onto an account type.
// Anything mentioning delivery is a delivery telemarketer, the rest are
// standard telemarketers.
func ClassifyAccount(functionType string) model.AccountType {
	if strings.Contains(strings.ToLower(functionType), "delivery") {
		return model.AccountTMDelivery
	}
	return model.AccountTMS
}
