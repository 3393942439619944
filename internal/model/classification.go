// Package model defines the core domain models used throughout the application.
package model

// Category identifies a template classification category.
type Category string

// Template categories.
const (
	CategoryTransactional   Category = "Transactional"
	CategoryServiceImplicit Category = "Service-Implicit"
	CategoryServiceExplicit Category = "Service-Explicit"
)

// ReviewSuffix is appended to a category label when the classification
// confidence is too low to trust without a human look.
const ReviewSuffix = " (Review)"

// ClassificationResult represents a template after classification.
type ClassificationResult struct {
	// Label is the category name, possibly suffixed with ReviewSuffix.
	Label string
	// Evidence lists the keyword and pattern matches that contributed to
	// the winning score, with their point values.
	Evidence []string
	// Confidence is 0-100.
	Confidence int
}

// NeedsReview reports whether the result was flagged for manual review.
func (r ClassificationResult) NeedsReview() bool {
	return len(r.Label) > len(ReviewSuffix) &&
		r.Label[len(r.Label)-len(ReviewSuffix):] == ReviewSuffix
}

// Category strips any review suffix and returns the bare category.
func (r ClassificationResult) Category() Category {
	if r.NeedsReview() {
		return Category(r.Label[:len(r.Label)-len(ReviewSuffix)])
	}
	return Category(r.Label)
}
