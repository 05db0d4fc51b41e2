// Package pipeline orchestrates collection runs: it owns the browser
// lifecycle, walks tracked entities sequentially and assembles normalized
// records from the feed and scrape adapters.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/feed"
	"github.com/umputun/trackscope/pkg/scrape"
)

//go:generate moq -out mocks/feed_fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/feed_discoverer.go -pkg mocks -skip-ensure -fmt goimports . FeedDiscoverer
//go:generate moq -out mocks/blog_scraper.go -pkg mocks -skip-ensure -fmt goimports . BlogScraper
//go:generate moq -out mocks/social_scraper.go -pkg mocks -skip-ensure -fmt goimports . SocialScraper
//go:generate moq -out mocks/changelog_scraper.go -pkg mocks -skip-ensure -fmt goimports . ChangelogScraper
//go:generate moq -out mocks/news_searcher.go -pkg mocks -skip-ensure -fmt goimports . NewsSearcher

// FeedFetcher retrieves and parses an RSS or Atom feed
type FeedFetcher interface {
	Fetch(ctx context.Context, page browser.Page, feedURL string, daysBack int) feed.Result
}

// FeedDiscoverer locates a feed URL for a site, empty string when none found
type FeedDiscoverer interface {
	Discover(ctx context.Context, page browser.Page, blogURL string) string
}

// BlogScraper extracts posts from a blog index page
type BlogScraper interface {
	Scrape(ctx context.Context, page browser.Page, blogURL string, daysBack int) scrape.Result
}

// SocialScraper extracts posts from public social profiles
type SocialScraper interface {
	ScrapeLinkedIn(ctx context.Context, page browser.Page, profileURL string, daysBack int) scrape.Result
	ScrapeTwitter(ctx context.Context, page browser.Page, handle string, daysBack int) scrape.Result
}

// ChangelogScraper extracts release entries from a changelog page
type ChangelogScraper interface {
	Scrape(ctx context.Context, page browser.Page, changelogURL string, daysBack int) scrape.ChangelogResult
}

// NewsSearcher finds recent press mentions for a company
type NewsSearcher interface {
	Search(ctx context.Context, page browser.Page, company string, daysBack int) scrape.NewsResult
}

// RunContext carries per-run identity and pacing. Injected so tests can
// collapse delays and pin the clock.
type RunContext struct {
	RunID       string
	UserDataDir string
	UserAgent   string
	NoSandbox   bool
	StepDelay   time.Duration // pause between source fetches within one entity
	EntityDelay time.Duration // pause between entities
	NowFn       func() time.Time
}

func (rc RunContext) now() time.Time {
	if rc.NowFn != nil {
		return rc.NowFn()
	}
	return time.Now()
}

// stepLimiter builds a politeness limiter for intra-entity steps. A zero
// delay yields an unlimited limiter so tests run instantly.
func (rc RunContext) stepLimiter() *rate.Limiter {
	return delayLimiter(rc.StepDelay)
}

func (rc RunContext) entityLimiter() *rate.Limiter {
	return delayLimiter(rc.EntityDelay)
}

func delayLimiter(d time.Duration) *rate.Limiter {
	if d <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	// burst 1 with an immediately consumed token paces every subsequent
	// Wait by d
	return rate.NewLimiter(rate.Every(d), 1)
}
