package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckasturi/sift/internal/common"
	"github.com/ckasturi/sift/internal/ingest"
)

func TestProcessBulk(t *testing.T) {
	c := NewDefault()
	date := time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC)
	agents := []string{"Priya", "Rahul"}

	rows := []ingest.RawRecord{
		{
			"TEMPLATE MESSAGE": "Your OTP is {#var#}. Do not share with anyone.",
			"ENTITY":           "Acme Bank",
		},
		{
			"Template Message": "Flat 50% off today only! Hurry, {name} awaits.",
			"Entity Name":      "MegaMart - Fashion",
		},
		{
			// No message column: skipped.
			"ENTITY": "Ghost Corp",
		},
	}

	processed, summary, err := c.ProcessBulk(rows, agents, date)
	require.NoError(t, err)
	require.Len(t, processed, 2)

	first := processed[0]
	assert.Equal(t, "Transactional", first.Result.Label)
	assert.Equal(t, FormatOK, first.VariableFormat)
	assert.Equal(t, "2024-08-15", first.ClassifiedOn)
	assert.Contains(t, agents, first.Agent)

	second := processed[1]
	assert.Equal(t, "{name}", second.VariableFormat)

	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.BadFormat)
	assert.Equal(t, 2, summary.HighConfidence+summary.MedConfidence+summary.LowConfidence)
	assert.GreaterOrEqual(t, summary.AvgConfidence, 25.0)
	assert.LessOrEqual(t, summary.AvgConfidence, 95.0)
}

func TestProcessBulkNoTemplates(t *testing.T) {
	c := NewDefault()

	_, _, err := c.ProcessBulk([]ingest.RawRecord{{"ENTITY": "x"}}, nil, time.Now())
	assert.ErrorIs(t, err, common.ErrNoTemplates)
}

func TestProcessBulkDefaultAgents(t *testing.T) {
	c := NewDefault()

	processed, _, err := c.ProcessBulk([]ingest.RawRecord{
		{"MESSAGE": "Your OTP is 123456. Do not share with anyone."},
	}, nil, time.Now())
	require.NoError(t, err)
	assert.Contains(t, DefaultAgents, processed[0].Agent)
}

func TestAssignAgent(t *testing.T) {
	agents := []string{"A", "B", "C"}

	// Deterministic for the same entity.
	first := AssignAgent("Acme Corp", agents)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AssignAgent("Acme Corp", agents))
	}

	// Principal prefix is ignored, the brand decides.
	assert.Equal(t, AssignAgent("Brand", agents), AssignAgent("Principal - Brand", agents))

	assert.Equal(t, "Unassigned", AssignAgent("", agents))
	assert.Equal(t, "Unassigned", AssignAgent("Acme", nil))
}
