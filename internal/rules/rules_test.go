package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ckasturi/sift/internal/model"
)

func TestNewSetCompilesPatterns(t *testing.T) {
	set, err := NewSet([]Rule{
		{
			Category: model.CategoryTransactional,
			Primary:  []string{"OTP"},
			Secondary: []string{
				"do not share",
			},
			Patterns: []string{`\b\d{4,6}\b`},
			Weight:   5,
		},
	})
	require.NoError(t, err)

	rules := set.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, 1, rules[0].PatternCount())
	assert.True(t, rules[0].MatchPattern(0, "code 123456"))
	assert.False(t, rules[0].MatchPattern(0, "no digits here"))
}

func TestNewSetRejectsBadPattern(t *testing.T) {
	_, err := NewSet([]Rule{
		{Category: model.CategoryTransactional, Patterns: []string{`(unclosed`}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile pattern")
}

func TestPatternsCaseInsensitive(t *testing.T) {
	set, err := NewSet([]Rule{
		{Category: model.CategoryServiceExplicit, Patterns: []string{`limited time`}},
	})
	require.NoError(t, err)

	assert.True(t, set.Rules()[0].MatchPattern(0, "LIMITED TIME offer"))
}

func TestKeywordsLowercased(t *testing.T) {
	set, err := NewSet([]Rule{
		{
			Category:  model.CategoryTransactional,
			Primary:   []string{"OTP"},
			Secondary: []string{"Do Not Share"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"otp", "do not share"}, set.Keywords())
}

func TestDefaultRulesCompile(t *testing.T) {
	set := Default()

	rules := set.Rules()
	require.Len(t, rules, 3)
	// Category order is the classification tie-break.
	assert.Equal(t, model.CategoryTransactional, rules[0].Category)
	assert.Equal(t, model.CategoryServiceImplicit, rules[1].Category)
	assert.Equal(t, model.CategoryServiceExplicit, rules[2].Category)

	assert.NotEmpty(t, set.Keywords())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
