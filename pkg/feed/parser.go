// Package feed fetches and parses RSS/Atom feeds and discovers feed URLs
// from blog homepages. Expected failures (malformed XML, timeouts, missing
// feeds) are returned as values inside results, never as panics, so one
// broken source cannot abort a pipeline run.
package feed

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
)

const (
	// maxItems bounds downstream processing and prompt size
	maxItems = 10

	// maxTitleLen and maxDescriptionLen truncate noisy feed content
	maxTitleLen       = 200
	maxDescriptionLen = 300

	// fetchTimeout bounds one feed navigation
	fetchTimeout = 10 * time.Second
)

// Result is the outcome of one feed fetch. Err holds the diagnostic for
// expected failures, Posts may be empty with an empty Err when the feed
// simply has nothing recent.
type Result struct {
	Posts []domain.Post
	Err   string
}

// Parser converts raw feed content into posts
type Parser struct {
	sanitizer *bluemonday.Policy
	nowFn     func() time.Time
}

// NewParser creates a feed parser
func NewParser() *Parser {
	return &Parser{
		sanitizer: bluemonday.StrictPolicy(),
		nowFn:     time.Now,
	}
}

// ParseFeed parses raw RSS or Atom content and keeps items inside the
// recency window. Items without a parseable publish date are kept, unknown
// age means possibly recent. At most 10 items are returned.
func (p *Parser) ParseFeed(content string, daysBack int) Result {
	parser := gofeed.NewParser()
	parsed, err := parser.ParseString(content)
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "parse feed: " + err.Error()}
	}

	cutoff := p.nowFn().AddDate(0, 0, -daysBack)

	posts := make([]domain.Post, 0, maxItems)
	for _, item := range parsed.Items {
		if item.Title == "" || item.Link == "" {
			continue
		}

		published := itemPublished(item)
		if published != nil && published.Before(cutoff) {
			continue
		}

		posts = append(posts, domain.Post{
			Title:       truncate(strings.TrimSpace(item.Title), maxTitleLen),
			Link:        strings.TrimSpace(item.Link),
			Published:   published,
			Source:      domain.SourceBlogRSS,
			Description: p.cleanDescription(item.Description),
		})

		if len(posts) >= maxItems {
			break
		}
	}

	return Result{Posts: posts}
}

// Fetch navigates to the feed URL and parses the raw response text
func (p *Parser) Fetch(ctx context.Context, page browser.Page, feedURL string, daysBack int) Result {
	resp, err := page.Goto(ctx, feedURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: fetchTimeout})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "fetch feed: " + err.Error()}
	}
	if resp.Status() != http.StatusOK {
		return Result{Posts: []domain.Post{}, Err: fmt.Sprintf("fetch feed: unexpected status %d", resp.Status())}
	}

	return p.ParseFeed(resp.Text(), daysBack)
}

// cleanDescription strips markup from a feed description and truncates it
func (p *Parser) cleanDescription(desc string) string {
	if desc == "" {
		return ""
	}
	clean := html.UnescapeString(p.sanitizer.Sanitize(desc))
	return truncate(strings.TrimSpace(clean), maxDescriptionLen)
}

// itemPublished prefers the published time, falls back to updated (Atom
// feeds often carry only updated)
func itemPublished(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
