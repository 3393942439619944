// Package dates parses the mixed date formats found in exported
// spreadsheets and maps dates onto the April-to-March financial year.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel serial numbers in this range cover years the exports can plausibly
// contain. Anything outside is treated as a plain number, not a date.
const (
	serialMin = 25000
	serialMax = 50000
)

var (
	dayMonthYearTimeRe = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})\s*(\d{1,2}):(\d{1,2})`)
	dayMonthYearRe     = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
)

// Fallback layouts tried in order after the explicit formats.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseSerial converts an Excel day serial to a date. The conversion anchors
// on 1900-01-01 with a two-day correction, matching how the exports were
// produced. Serials outside the plausible range are rejected.
func ParseSerial(serial float64) (time.Time, bool) {
	if serial <= serialMin || serial >= serialMax {
		return time.Time{}, false
	}
	epoch := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	return epoch.Add(time.Duration((serial - 2) * 24 * float64(time.Hour))), true
}

// ParseFlexible parses a date from the formats seen in real exports:
// Excel serial numbers, DD-MM-YYYY with an optional HH:MM time, and a
// handful of common layouts as fallback. Dates in or before 1900 are
// rejected, they come from zero-valued cells.
func ParseFlexible(value string) (time.Time, bool) {
	str := strings.TrimSpace(value)
	if str == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(str, 64); err == nil {
		return ParseSerial(serial)
	}

	if m := dayMonthYearTimeRe.FindStringSubmatch(str); m != nil {
		if t, ok := buildDate(m[3], m[2], m[1], m[4], m[5]); ok {
			return t, true
		}
	}
	if m := dayMonthYearRe.FindStringSubmatch(str); m != nil {
		if t, ok := buildDate(m[3], m[2], m[1], "0", "0"); ok {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, str); err == nil && t.Year() > 1900 {
			return t, true
		}
	}

	return time.Time{}, false
}

func buildDate(year, month, day, hour, minute string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)

	if y <= 1900 || mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, h, mi, 0, 0, time.UTC), true
}

// FinancialYear returns the April-to-March financial year containing the
// date, formatted as "2024-2025".
func FinancialYear(t time.Time) string {
	year := t.Year()
	if t.Month() >= time.April {
		return fmt.Sprintf("%d-%d", year, year+1)
	}
	return fmt.Sprintf("%d-%d", year-1, year)
}

// MonthKey formats a date as "YYYY-MM" for monthly bucketing.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DateKey formats a date as "YYYY-MM-DD" for daily bucketing.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Display formats a date as "DD-MM-YYYY" for human-facing output.
func Display(t time.Time) string {
	return t.Format("02-01-2006")
}

// MonthLabel turns a "YYYY-MM" key into a short display name like
// "Apr 2024". Unparseable keys are returned as-is.
func MonthLabel(monthKey string) string {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("Jan 2006")
}
