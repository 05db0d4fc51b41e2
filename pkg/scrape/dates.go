package scrape

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	relativeRe = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week|month)s?\s+ago`)

	// embeddedDateRe finds a date inside larger text: numeric (1/2/2025,
	// 01-02-25), ISO (2025-01-02) or written out (January 2, 2025)
	embeddedDateRe = regexp.MustCompile(`(?i)(\d{4}-\d{2}-\d{2})|(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})|((January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})`)
)

// parseDate resolves a timestamp string to a time, handling both absolute
// dates (any common format) and relative ones ("2 days ago") against now.
// Returns nil when nothing parseable is found.
func parseDate(s string, now time.Time) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if m := relativeRe.FindStringSubmatch(s); m != nil {
		return resolveRelative(m, now)
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return &t
	}
	return nil
}

// extractDate finds a date embedded in larger text, changelog entries
// routinely bury the date inside the heading
func extractDate(text string, now time.Time) *time.Time {
	if m := relativeRe.FindStringSubmatch(text); m != nil {
		return resolveRelative(m, now)
	}

	match := embeddedDateRe.FindString(text)
	if match == "" {
		return nil
	}
	if t, err := dateparse.ParseAny(match); err == nil {
		return &t
	}
	return nil
}

func resolveRelative(m []string, now time.Time) *time.Time {
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var t time.Time
	switch strings.ToLower(m[2]) {
	case "minute":
		t = now.Add(-time.Duration(n) * time.Minute)
	case "hour":
		t = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = now.AddDate(0, 0, -n)
	case "week":
		t = now.AddDate(0, 0, -n*7)
	case "month":
		t = now.AddDate(0, -n, 0)
	default:
		return nil
	}
	return &t
}
