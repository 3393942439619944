// Package rules defines the keyword rule set used for template
// classification. The keyword lists, pattern lists, and weights were tuned
// against labeled production exports; treat them as data, not code to
// refactor.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ckasturi/sift/internal/model"
)

// Rule describes how one category is scored: primary keywords count the
// full weight, secondary keywords half, and pattern matches one and a half
// times the weight.
type Rule struct {
	Category        model.Category
	Primary         []string
	Secondary       []string
	Patterns        []string
	Weight          float64
	ConfidenceBoost float64
}

// CompiledRule is a Rule with its patterns compiled.
type CompiledRule struct {
	compiled []*regexp.Regexp
	Rule
}

// MatchPattern reports whether pattern i matches the text.
func (r *CompiledRule) MatchPattern(i int, text string) bool {
	return r.compiled[i].MatchString(text)
}

// PatternCount returns the number of compiled patterns.
func (r *CompiledRule) PatternCount() int {
	return len(r.compiled)
}

// Set holds compiled rules in a stable category order. The order doubles as
// the tie-break: under equal scores the earlier category wins.
type Set struct {
	rules    []CompiledRule
	keywords []string
}

// NewSet compiles the given rules. Patterns are made case-insensitive by
// default, matching how the source templates are matched.
func NewSet(rules []Rule) (*Set, error) {
	compiled := make([]CompiledRule, 0, len(rules))
	var keywords []string

	for _, r := range rules {
		cr := CompiledRule{Rule: r}
		for _, p := range r.Patterns {
			if !strings.HasPrefix(p, "(?i)") {
				p = "(?i)" + p
			}
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("failed to compile pattern %q for %s: %w", p, r.Category, err)
			}
			cr.compiled = append(cr.compiled, re)
		}
		compiled = append(compiled, cr)

		for _, kw := range r.Primary {
			keywords = append(keywords, strings.ToLower(kw))
		}
		for _, kw := range r.Secondary {
			keywords = append(keywords, strings.ToLower(kw))
		}
	}

	return &Set{rules: compiled, keywords: keywords}, nil
}

// Rules returns the compiled rules in category order.
func (s *Set) Rules() []CompiledRule {
	return s.rules
}

// Keywords returns every primary and secondary keyword across all
// categories, lowercased. Used by the random-text detector.
func (s *Set) Keywords() []string {
	return s.keywords
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the shared rule set built from DefaultRules. The default
// patterns are covered by tests, so compilation cannot fail at runtime.
func Default() *Set {
	defaultOnce.Do(func() {
		s, err := NewSet(DefaultRules())
		if err != nil {
			panic(fmt.Sprintf("rules: default rule set does not compile: %v", err))
		}
		defaultSet = s
	})
	return defaultSet
}
