package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

func TestBuildLookups(t *testing.T) {
	entityRows := []ingest.RawRecord{
		{"Entity ID": "E100", "Application Submitted Date": "15-03-2023"},
		{"Entity ID": "", "Application Submitted Date": "01-01-2023"}, // no id, dropped
	}
	tmEntityRows := []ingest.RawRecord{
		{"Entity ID": "E200", "Requested Date": "10-06-2024"},
	}
	tmRows := []ingest.RawRecord{
		{"Telemarketer ID": "TM1", "Function": "Delivery", "Application Submitted Date": "05-01-2024"},
		{"Telemarketer ID": "TM2", "Function": "Aggregator"},
	}

	l := BuildLookups(entityRows, tmEntityRows, tmRows)

	require.Len(t, l.Entities, 2)
	require.Len(t, l.Telemarketers, 2)

	e100 := l.Entities["E100"]
	require.NotNil(t, e100.ApplicationDate)
	assert.Equal(t, time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), *e100.ApplicationDate)

	// TM-entity rows land in the entity map, with the requested-date
	// fallback when no submitted date is present.
	e200 := l.Entities["E200"]
	require.NotNil(t, e200.ApplicationDate)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), *e200.ApplicationDate)

	tm1 := l.Telemarketers["TM1"]
	assert.Equal(t, "Delivery", tm1.FunctionType)
	require.NotNil(t, tm1.ApplicationDate)

	// Missing dates keep the entry, just without an application date.
	tm2 := l.Telemarketers["TM2"]
	assert.Nil(t, tm2.ApplicationDate)
	assert.Equal(t, "Aggregator", tm2.FunctionType)
}

func TestBuildLookupsLastRowWins(t *testing.T) {
	rows := []ingest.RawRecord{
		{"Entity ID": "E1", "Application Submitted Date": "01-01-2023"},
		{"Entity ID": "E1", "Application Submitted Date": "01-01-2024"},
	}

	l := BuildLookups(rows, nil, nil)

	require.Len(t, l.Entities, 1)
	require.NotNil(t, l.Entities["E1"].ApplicationDate)
	assert.Equal(t, 2024, l.Entities["E1"].ApplicationDate.Year())
}

func TestClassifyAccount(t *testing.T) {
	tests := []struct {
		name         string
		functionType string
		want         model.AccountType
	}{
		{name: "delivery telemarketer", functionType: "Delivery TM", want: model.AccountTMDelivery},
		{name: "case insensitive", functionType: "VOICE DELIVERY", want: model.AccountTMDelivery},
		{name: "standard telemarketer", functionType: "Aggregator", want: model.AccountTMS},
		{name: "empty function", functionType: "", want: model.AccountTMS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAccount(tt.functionType))
		})
	}
}
