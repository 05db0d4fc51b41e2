// Package scrape contains the DOM-facing source adapters: generic blog
// pages, social profiles, changelog pages and news search results. All
// adapters share one contract: expected failures (timeouts, login walls,
// pages that parse to nothing) come back as an error string inside the
// result, never as a panic, so a single broken source cannot take down a
// pipeline run.
package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
)

const (
	// maxItems bounds every adapter's output
	maxItems = 10

	// minTitleLen filters out navigation links and other noise that
	// matches post selectors
	minTitleLen = 10

	maxTitleLen       = 200
	maxDescriptionLen = 300

	// renderTimeout is for full page loads, the heaviest navigation
	renderTimeout = 15 * time.Second
)

// Result is the outcome of one scrape attempt
type Result struct {
	Posts []domain.Post
	Err   string
}

// blogSelectors are common post containers tried in order of confidence,
// the first selector yielding any elements wins
var blogSelectors = []string{
	"article",
	".post",
	".blog-post",
	`[class*="post"]`,
	`[class*="article"]`,
	"h2 a",
	"h3 a",
}

// BlogScraper extracts posts from generic blog homepages
type BlogScraper struct {
	nowFn func() time.Time
}

// NewBlogScraper creates a blog scraper
func NewBlogScraper() *BlogScraper {
	return &BlogScraper{nowFn: time.Now}
}

// Scrape loads the blog page and extracts recent-looking posts. Posts
// without a parseable date are included, the date is often rendered
// somewhere the selectors can't reach.
func (s *BlogScraper) Scrape(ctx context.Context, page browser.Page, blogURL string, daysBack int) Result {
	if _, err := page.Goto(ctx, blogURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: renderTimeout}); err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape blog: " + err.Error()}
	}

	elements, err := page.Evaluate(ctx, browser.Query{Selectors: blogSelectors, FirstMatch: true, MaxElements: 50})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape blog: " + err.Error()}
	}

	cutoff := s.nowFn().AddDate(0, 0, -daysBack)

	posts := make([]domain.Post, 0, maxItems)
	for _, el := range elements {
		title := strings.TrimSpace(el.Text)
		if el.Link == "" || len([]rune(title)) <= minTitleLen {
			continue
		}

		published := parseDate(el.Timestamp, s.nowFn())
		if published != nil && published.Before(cutoff) {
			continue
		}

		posts = append(posts, domain.Post{
			Title:     truncate(title, maxTitleLen),
			Link:      el.Link,
			Published: published,
			Source:    domain.SourceBlogScrape,
		})
		if len(posts) >= maxItems {
			break
		}
	}

	return Result{Posts: posts}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
