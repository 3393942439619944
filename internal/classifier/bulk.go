package classifier

import (
	"strconv"
	"strings"
	"time"

	"github.com/ckasturi/sift/internal/common"
	"github.com/ckasturi/sift/internal/ingest"
	"github.com/ckasturi/sift/internal/model"
)

// Column synonyms for the bulk template sheets.
var (
	messageColumns = []string{
		"TEMPLATE MESSAGE", "Template_Content", "MESSAGE", "template_message",
		"Content", "Template Message",
	}
	entityColumns = []string{
		"ENTITY", "Entity_Name", "BRAND", "entity", "Entity Name",
	}
)

// DefaultAgents is used when no agent names are configured.
var DefaultAgents = []string{"Agent1", "Agent2", "Agent3", "Agent4"}

// ProcessedTemplate is one bulk row after classification.
type ProcessedTemplate struct {
	Row            ingest.RawRecord
	Message        string
	Entity         string
	Result         model.ClassificationResult
	VariableFormat string
	Agent          string
	ClassifiedOn   string
}

// BulkSummary aggregates one bulk run.
type BulkSummary struct {
	ByLabel        map[string]int
	ByAgent        map[string]int
	Processed      int
	Review         int
	BadFormat      int
	HighConfidence int
	MedConfidence  int
	LowConfidence  int
	AvgConfidence  float64
}

// ProcessBulk classifies every row that has a template message, checks its
// placeholder format, and assigns an agent by entity name. Rows without a
// message column are skipped; if nothing is classifiable the run fails.
func (c *Classifier) ProcessBulk(rows []ingest.RawRecord, agents []string, date time.Time) ([]ProcessedTemplate, *BulkSummary, error) {
	if len(agents) == 0 {
		agents = DefaultAgents
	}

	classifiedOn := date.Format("2006-01-02")
	summary := &BulkSummary{
		ByLabel: make(map[string]int),
		ByAgent: make(map[string]int),
	}
	processed := make([]ProcessedTemplate, 0, len(rows))

	for i, row := range rows {
		message := row.Lookup(messageColumns...)
		if message == "" {
			continue
		}

		entity := row.Lookup(entityColumns...)
		if entity == "" {
			entity = "Entity_" + strconv.Itoa(i+1)
		}

		result := c.Classify(message)
		t := ProcessedTemplate{
			Row:            row,
			Message:        message,
			Entity:         entity,
			Result:         result,
			VariableFormat: FirstInvalidPlaceholder(message),
			Agent:          AssignAgent(entity, agents),
			ClassifiedOn:   classifiedOn,
		}
		processed = append(processed, t)

		summary.Processed++
		summary.ByLabel[result.Label]++
		summary.ByAgent[t.Agent]++
		if result.NeedsReview() {
			summary.Review++
		}
		if t.VariableFormat != FormatOK {
			summary.BadFormat++
		}
		switch {
		case result.Confidence >= 80:
			summary.HighConfidence++
		case result.Confidence >= 60:
			summary.MedConfidence++
		default:
			summary.LowConfidence++
		}
		summary.AvgConfidence += float64(result.Confidence)

		if c.OnProgress != nil {
			c.OnProgress(i+1, len(rows))
		}
	}

	if len(processed) == 0 {
		return nil, nil, common.ErrNoTemplates
	}
	summary.AvgConfidence /= float64(summary.Processed)

	return processed, summary, nil
}

// AssignAgent deterministically maps an entity name onto one of the agents.
// Names like "Principal - Brand" hash on the brand part, so all templates
// of one brand land with the same agent.
func AssignAgent(entityName string, agents []string) string {
	if entityName == "" || len(agents) == 0 {
		return "Unassigned"
	}

	name := entityName
	if idx := strings.Index(name, " - "); idx >= 0 {
		name = name[idx+3:]
	}

	var hash int32
	for _, r := range name {
		hash = hash<<5 - hash + int32(r)
	}

	n := int64(hash)
	if n < 0 {
		n = -n
	}
	return agents[n%int64(len(agents))]
}
