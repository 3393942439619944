// Package classifier scores SMS template text against the keyword rule set
// and assigns a category with a confidence percentage.
package classifier

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ckasturi/sift/internal/model"
	"github.com/ckasturi/sift/internal/rules"
)

// Confidence floors applied after the base calculation. A floor raises
// the confidence when the winning category carries an unambiguous signal.
var (
	digitRunRe    = regexp.MustCompile(`\b\d{4,6}\b`)
	otpCueRe      = regexp.MustCompile(`(?i)(?:OTP|code|PIN)`)
	txnOutcomeRe  = regexp.MustCompile(`(?i)(?:transaction|payment|debit|credit).*(?:successful|failed)`)
	urgencyCueRe  = regexp.MustCompile(`(?i)(?:limited time|hurry|grab|don't miss|exclusive)`)
	promoAmountRe = regexp.MustCompile(`(?i)(?:free|discount|cashback|offer).*(?:\d+%|upto|up to)`)
)

// Classifier assigns categories to template text using a compiled rule set.
type Classifier struct {
	rules *rules.Set

	// OnProgress, when set, is called after each bulk row with the number
	// of rows handled so far and the total.
	OnProgress func(done, total int)
}

// New returns a Classifier backed by the given rule set.
func New(set *rules.Set) *Classifier {
	return &Classifier{rules: set}
}

// NewDefault returns a Classifier backed by the built-in rules.
func NewDefault() *Classifier {
	return New(rules.Default())
}

// Classify scores the content against every category and returns the winner
// with its confidence and the evidence that produced the score. Content that
// is empty, too weakly matched, or random gets the review label.
func (c *Classifier) Classify(content string) model.ClassificationResult {
	if strings.TrimSpace(content) == "" {
		return model.ClassificationResult{
			Label:      string(model.CategoryServiceImplicit) + model.ReviewSuffix,
			Confidence: 30,
		}
	}

	text := strings.ToLower(strings.TrimSpace(content))

	if IsRandom(text, c.rules.Keywords()) {
		return model.ClassificationResult{
			Label:      string(model.CategoryServiceImplicit) + model.ReviewSuffix,
			Confidence: 25,
			Evidence:   []string{"Random text detected - manual review required"},
		}
	}

	ruleList := c.rules.Rules()
	scores := make([]float64, len(ruleList))
	evidence := make([][]string, len(ruleList))

	for i := range ruleList {
		r := &ruleList[i]
		var score float64

		for _, kw := range r.Primary {
			if strings.Contains(text, strings.ToLower(kw)) {
				score += r.Weight
				evidence[i] = append(evidence[i], fmt.Sprintf("Primary: %s (+%s)", kw, formatWeight(r.Weight)))
			}
		}
		for _, kw := range r.Secondary {
			if strings.Contains(text, strings.ToLower(kw)) {
				w := r.Weight * 0.5
				score += w
				evidence[i] = append(evidence[i], fmt.Sprintf("Secondary: %s (+%s)", kw, formatWeight(w)))
			}
		}
		for p := 0; p < r.PatternCount(); p++ {
			if r.MatchPattern(p, content) {
				bonus := r.Weight * 1.5
				score += bonus
				evidence[i] = append(evidence[i], fmt.Sprintf("Pattern match (+%s)", formatWeight(bonus)))
			}
		}

		scores[i] = score
	}

	// Ties go to the earlier category in rule order.
	winner := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[winner] {
			winner = i
		}
	}
	maxScore := scores[winner]

	if maxScore <= 2 {
		return model.ClassificationResult{
			Label:      string(model.CategoryServiceImplicit) + model.ReviewSuffix,
			Confidence: 30,
			Evidence:   []string{"Low confidence classification - manual review recommended"},
		}
	}

	sorted := append([]float64(nil), scores...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	margin := sorted[0] - sorted[1]

	confidence := math.Min(95, math.Max(30, maxScore*15+margin*10+25))
	if maxScore > 5 {
		confidence = math.Min(95, confidence+10)
	}
	if margin > 3 {
		confidence = math.Min(95, confidence+10)
	}

	category := ruleList[winner].Category
	switch category {
	case model.CategoryTransactional:
		if digitRunRe.MatchString(content) && otpCueRe.MatchString(content) {
			confidence = math.Max(confidence, 85)
		}
		if txnOutcomeRe.MatchString(content) {
			confidence = math.Max(confidence, 80)
		}
	case model.CategoryServiceExplicit:
		if urgencyCueRe.MatchString(content) {
			confidence = math.Max(confidence, 75)
		}
		if promoAmountRe.MatchString(content) {
			confidence = math.Max(confidence, 80)
		}
	}

	label := string(category)
	if confidence < 70 {
		label += model.ReviewSuffix
	}

	return model.ClassificationResult{
		Label:      label,
		Confidence: int(math.Round(confidence)),
		Evidence:   evidence[winner],
	}
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
