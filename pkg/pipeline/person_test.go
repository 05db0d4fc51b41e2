package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/umputun/trackscope/pkg/browser"
	bmocks "github.com/umputun/trackscope/pkg/browser/mocks"
	"github.com/umputun/trackscope/pkg/domain"
	"github.com/umputun/trackscope/pkg/feed"
	"github.com/umputun/trackscope/pkg/pipeline/mocks"
	"github.com/umputun/trackscope/pkg/scrape"
)

func TestPersonOrchestrator_Collect(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	page := &bmocks.PageMock{}

	ptr := func(t time.Time) *time.Time { return &t }

	t.Run("feed success skips blog scrape", func(t *testing.T) {
		feeds := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				return feed.Result{Posts: []domain.Post{
					{Title: "from the feed", Link: "https://example.com/a", Published: ptr(now.AddDate(0, 0, -2)), Source: domain.SourceBlogRSS},
				}}
			},
		}
		blog := &mocks.BlogScraperMock{}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: blog, Social: &mocks.SocialScraperMock{}, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", Blog: "https://example.com", RSSFeed: "https://example.com/rss"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		require.Len(t, activity.Posts, 1)
		assert.Equal(t, domain.SourceBlogRSS, activity.Posts[0].Source)
		assert.Empty(t, blog.ScrapeCalls())
		assert.Empty(t, activity.Errors)
	})

	t.Run("empty feed falls back to blog scrape", func(t *testing.T) {
		feeds := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				return feed.Result{Posts: []domain.Post{}}
			},
		}
		blog := &mocks.BlogScraperMock{
			ScrapeFunc: func(ctx context.Context, p browser.Page, blogURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{
					{Title: "scraped from the blog page", Link: "https://example.com/b", Source: domain.SourceBlogScrape},
				}}
			},
		}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: blog, Social: &mocks.SocialScraperMock{}, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", Blog: "https://example.com", RSSFeed: "https://example.com/rss"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		require.Len(t, activity.Posts, 1)
		assert.Equal(t, domain.SourceBlogScrape, activity.Posts[0].Source)
		require.Len(t, blog.ScrapeCalls(), 1)
		assert.Equal(t, "https://example.com", blog.ScrapeCalls()[0].BlogURL)
	})

	t.Run("no feed configured goes straight to blog", func(t *testing.T) {
		feeds := &mocks.FeedFetcherMock{}
		blog := &mocks.BlogScraperMock{
			ScrapeFunc: func(ctx context.Context, p browser.Page, blogURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{}}
			},
		}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: blog, Social: &mocks.SocialScraperMock{}, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", Blog: "https://example.com"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		assert.Empty(t, activity.Posts)
		assert.Empty(t, feeds.FetchCalls())
		assert.Len(t, blog.ScrapeCalls(), 1)
	})

	t.Run("social sources additive on top of feed", func(t *testing.T) {
		feeds := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				return feed.Result{Posts: []domain.Post{
					{Title: "post", Link: "https://example.com/a", Published: ptr(now.AddDate(0, 0, -1)), Source: domain.SourceBlogRSS},
				}}
			},
		}
		social := &mocks.SocialScraperMock{
			ScrapeLinkedInFunc: func(ctx context.Context, p browser.Page, profileURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{
					{Title: "li post", Link: "https://linkedin.com/posts/1", Published: ptr(now.AddDate(0, 0, -3)), Source: domain.SourceLinkedIn},
				}}
			},
			ScrapeTwitterFunc: func(ctx context.Context, p browser.Page, handle string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{
					{Title: "tweet", Link: "https://twitter.com/jane/status/1", Published: ptr(now.AddDate(0, 0, -2)), Source: domain.SourceTwitter},
				}}
			},
		}
		blog := &mocks.BlogScraperMock{}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: blog, Social: social, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", Blog: "https://example.com", RSSFeed: "https://example.com/rss", LinkedIn: "https://linkedin.com/in/jane", Twitter: "jane"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		require.Len(t, activity.Posts, 3)
		// feed delivered, so the blog page was never touched but social still ran
		assert.Empty(t, blog.ScrapeCalls())
		assert.Equal(t, "jane", social.ScrapeTwitterCalls()[0].Handle)
		// newest first
		assert.Equal(t, "post", activity.Posts[0].Title)
		assert.Equal(t, "tweet", activity.Posts[1].Title)
		assert.Equal(t, "li post", activity.Posts[2].Title)
	})

	t.Run("source failures accumulate without aborting", func(t *testing.T) {
		feeds := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				return feed.Result{Posts: []domain.Post{}, Err: "fetch feed: unexpected status 500"}
			},
		}
		blog := &mocks.BlogScraperMock{
			ScrapeFunc: func(ctx context.Context, p browser.Page, blogURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{}}
			},
		}
		social := &mocks.SocialScraperMock{
			ScrapeLinkedInFunc: func(ctx context.Context, p browser.Page, profileURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{}, Err: "LinkedIn login required (public scraping limited)"}
			},
		}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: blog, Social: social, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", Blog: "https://example.com", RSSFeed: "https://example.com/rss", LinkedIn: "https://linkedin.com/in/jane"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		assert.Empty(t, activity.Posts)
		require.Len(t, activity.Errors, 2)
		assert.Contains(t, activity.Errors[0], "unexpected status 500")
		assert.Contains(t, activity.Errors[1], "login required")
	})

	t.Run("stale duplicate cannot shadow fresh copy", func(t *testing.T) {
		stale := ptr(now.AddDate(0, 0, -40))
		fresh := ptr(now.AddDate(0, 0, -5))
		feeds := &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				return feed.Result{Posts: []domain.Post{
					{Title: "old copy", Link: "https://example.com/same", Published: stale, Source: domain.SourceBlogRSS},
					{Title: "fresh copy", Link: "https://example.com/same", Published: fresh, Source: domain.SourceBlogRSS},
				}}
			},
		}

		orch := &PersonOrchestrator{Feeds: feeds, Blog: &mocks.BlogScraperMock{}, Social: &mocks.SocialScraperMock{}, Limiter: rate.NewLimiter(rate.Inf, 1)}
		person := domain.Person{Name: "Jane", RSSFeed: "https://example.com/rss"}

		activity := orch.Collect(context.Background(), page, person, 30, now)
		require.Len(t, activity.Posts, 1)
		assert.Equal(t, "fresh copy", activity.Posts[0].Title)
	})
}
