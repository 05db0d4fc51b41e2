package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/umputun/trackscope/pkg/browser"
)

// changelogSelector is a single grouped selector so overlapping matches
// dedupe at the DOM level, mirroring one querySelectorAll pass
const changelogSelector = `article, .changelog-entry, .release, [class*="changelog"], [class*="release"], h2, h3`

// fallbackSelector is used when no dated entries exist at all, headings
// alone are too noisy to return undated
const fallbackSelector = `article, .changelog-entry, .release, [class*="changelog"]`

// fallbackEntries is how many undated entries to return when the page has
// no recognizable dates, a provisional list beats nothing
const fallbackEntries = 5

// Entry is one changelog item before it is attributed to a company
type Entry struct {
	Title       string
	Link        string
	Published   *time.Time
	Description string
}

// ChangelogResult is the outcome of one changelog scrape
type ChangelogResult struct {
	Entries []Entry
	Err     string
}

// ChangelogScraper extracts dated release entries from changelog pages
type ChangelogScraper struct {
	nowFn func() time.Time
}

// NewChangelogScraper creates a changelog scraper
func NewChangelogScraper() *ChangelogScraper {
	return &ChangelogScraper{nowFn: time.Now}
}

// Scrape extracts entries within the recency window. Dates are matched
// inside the element text against several formats. When no dated entries
// are found at all the first few entries are returned undated.
func (s *ChangelogScraper) Scrape(ctx context.Context, page browser.Page, changelogURL string, daysBack int) ChangelogResult {
	if _, err := page.Goto(ctx, changelogURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: renderTimeout}); err != nil {
		return ChangelogResult{Entries: []Entry{}, Err: "scrape changelog: " + err.Error()}
	}

	elements, err := page.Evaluate(ctx, browser.Query{Selectors: []string{changelogSelector}, MaxElements: 100})
	if err != nil {
		return ChangelogResult{Entries: []Entry{}, Err: "scrape changelog: " + err.Error()}
	}

	now := s.nowFn()
	cutoff := now.AddDate(0, 0, -daysBack)

	entries := make([]Entry, 0, maxItems)
	for _, el := range elements {
		text := strings.TrimSpace(el.Text)
		if len([]rune(text)) <= minTitleLen {
			continue
		}

		published := extractDate(text, now)
		if published == nil && el.Timestamp != "" {
			published = parseDate(el.Timestamp, now)
		}
		if published == nil || published.Before(cutoff) {
			continue
		}

		entries = append(entries, Entry{
			Title:       truncate(text, maxTitleLen),
			Link:        entryLink(el, changelogURL),
			Published:   published,
			Description: truncate(text, maxDescriptionLen),
		})
		if len(entries) >= maxItems {
			break
		}
	}

	if len(entries) > 0 {
		return ChangelogResult{Entries: entries}
	}

	// nothing dated on the whole page, return the first few entries as-is
	elements, err = page.Evaluate(ctx, browser.Query{Selectors: []string{fallbackSelector}, MaxElements: fallbackEntries})
	if err != nil {
		return ChangelogResult{Entries: []Entry{}, Err: "scrape changelog: " + err.Error()}
	}

	for _, el := range elements {
		text := strings.TrimSpace(el.Text)
		if len([]rune(text)) <= minTitleLen {
			continue
		}
		entries = append(entries, Entry{
			Title:       truncate(text, maxTitleLen),
			Link:        entryLink(el, changelogURL),
			Description: truncate(text, maxDescriptionLen),
		})
	}

	return ChangelogResult{Entries: entries}
}

// entryLink falls back to the page URL when the entry has no anchor, an
// update with a page-level link still beats one with no link at all
func entryLink(el browser.Element, pageURL string) string {
	if el.Link != "" {
		return el.Link
	}
	return pageURL
}
