package classifier

import (
	"regexp"
	"strings"
)

// FormatOK is returned by FirstInvalidPlaceholder when every placeholder in
// the template uses the canonical {#var#} token.
const FormatOK = "OK"

var (
	canonicalVarRe = regexp.MustCompile(`(?i)^\{#var#\}$`)
	containsVarRe  = regexp.MustCompile(`(?i)\{#var#\}`)

	curlySpanRe       = regexp.MustCompile(`\{[^}]*\}`)
	squareSpanRe      = regexp.MustCompile(`\[[^\]]*\]`)
	angleSpanRe       = regexp.MustCompile(`<[^>]*>`)
	multiBraceSpanRe  = regexp.MustCompile(`\{+[^}]*\}`)
	doubleQuoteSpanRe = regexp.MustCompile(`"[^"]*"`)
	singleQuoteSpanRe = regexp.MustCompile(`'[^']*'`)
	upperAngleSpanRe  = regexp.MustCompile(`<[A-Z_\-\s]+>`)

	tagNameRe   = regexp.MustCompile(`^</?\s*([a-zA-Z0-9-:]+)`)
	htmlLikeRe  = regexp.MustCompile(`(?i)^</?[a-z][a-z0-9]*[^<>]*>$`)
	upperOnlyRe = regexp.MustCompile(`^[A-Z_]+$`)
	blankRe     = regexp.MustCompile(`^\s*$`)
)

// htmlTags lists the tag names allowed to appear verbatim in templates.
var htmlTags = map[string]bool{
	"br": true, "img": true, "a": true, "div": true, "span": true, "p": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true,
	"ul": true, "li": true, "ol": true, "table": true, "tr": true, "td": true,
	"th": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "meta": true, "link": true, "script": true, "style": true,
	"header": true, "footer": true, "section": true, "article": true,
	"nav": true, "main": true, "form": true, "label": true, "input": true,
	"button": true, "select": true, "option": true, "textarea": true,
}

// Quoted strings exempt from placeholder checks.
var (
	validCouponCodes  = []string{"GOFREE", "B329", "OFFER400", "SAVE20", "FREE50", "DEAL100"}
	validBusinessTerm = []string{"YES", "NO", "APPROVED", "DECLINED", "PENDING", "ACTIVE"}
)

// FirstInvalidPlaceholder scans the template for bracketed or quoted spans
// that look like variable placeholders but do not use the canonical {#var#}
// token. It returns the first offending span, or FormatOK when the template
// is clean. The passes run in a fixed order so the same template always
// reports the same offender.
func FirstInvalidPlaceholder(content string) string {
	if strings.TrimSpace(content) == "" {
		return FormatOK
	}

	for _, span := range curlySpanRe.FindAllString(content, -1) {
		if !canonicalVarRe.MatchString(span) {
			return span
		}
	}

	for _, span := range squareSpanRe.FindAllString(content, -1) {
		if containsVarRe.MatchString(span) {
			continue
		}
		return span
	}

	for _, span := range angleSpanRe.FindAllString(content, -1) {
		if m := tagNameRe.FindStringSubmatch(span); m != nil && htmlTags[strings.ToLower(m[1])] {
			continue
		}
		if strings.Contains(span, "http") || strings.Contains(span, "www.") {
			continue
		}
		if containsVarRe.MatchString(span) {
			continue
		}
		return span
	}

	// Nested braces like {{#var#}} are tolerated, but the inner token must
	// be lowercase #var# exactly.
	for _, span := range multiBraceSpanRe.FindAllString(content, -1) {
		if !strings.Contains(span, "#var#") {
			return span
		}
	}

	for _, span := range doubleQuoteSpanRe.FindAllString(content, -1) {
		inner := span[1 : len(span)-1]
		if matchesAnyFold(inner, validCouponCodes) || matchesAnyFold(inner, validBusinessTerm) {
			continue
		}
		if containsVarRe.MatchString(inner) {
			continue
		}
		if strings.Contains(inner, "#") ||
			strings.Contains(inner, "var") ||
			strings.Contains(inner, "VAR") ||
			strings.Contains(inner, "OTP") ||
			strings.Contains(inner, "relationship_manager") ||
			upperOnlyRe.MatchString(inner) ||
			len(inner) <= 3 ||
			blankRe.MatchString(inner) {
			return span
		}
	}

	for _, span := range singleQuoteSpanRe.FindAllString(content, -1) {
		inner := span[1 : len(span)-1]
		if containsVarRe.MatchString(inner) {
			continue
		}
		if strings.Contains(inner, "var") ||
			strings.Contains(inner, "VAR") ||
			strings.Contains(inner, "#") ||
			upperOnlyRe.MatchString(inner) {
			return span
		}
	}

	for _, span := range upperAngleSpanRe.FindAllString(content, -1) {
		if htmlLikeRe.MatchString(span) {
			continue
		}
		if containsVarRe.MatchString(span) {
			continue
		}
		return span
	}

	return FormatOK
}

func matchesAnyFold(s string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
