package pipeline

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
	"github.com/umputun/trackscope/pkg/transform"
)

// PersonOrchestrator collects activity for one person across their
// configured sources. The RSS feed is authoritative for blog content, the
// blog page is scraped only when the feed produced nothing. Social sources
// are always additive.
type PersonOrchestrator struct {
	Feeds   FeedFetcher
	Blog    BlogScraper
	Social  SocialScraper
	Limiter *rate.Limiter
}

// Collect runs every configured source for the person and returns the
// normalized activity. Source failures land in Errors, they never abort
// the remaining sources.
func (o *PersonOrchestrator) Collect(ctx context.Context, page browser.Page, person domain.Person, daysBack int, now time.Time) domain.PersonActivity {
	activity := domain.PersonActivity{Name: person.Name, Posts: []domain.Post{}, Errors: []string{}}

	if person.RSSFeed != "" {
		if err := o.Limiter.Wait(ctx); err != nil {
			activity.Errors = append(activity.Errors, err.Error())
			return activity
		}
		res := o.Feeds.Fetch(ctx, page, person.RSSFeed, daysBack)
		activity.Posts = append(activity.Posts, res.Posts...)
		if res.Err != "" {
			activity.Errors = append(activity.Errors, res.Err)
		}
		log.Printf("[DEBUG] rss for %s: %d posts", person.Name, len(res.Posts))
	}

	// the blog page is a fallback, skip it when the feed already delivered
	if len(activity.Posts) == 0 && person.Blog != "" {
		if err := o.Limiter.Wait(ctx); err != nil {
			activity.Errors = append(activity.Errors, err.Error())
			return activity
		}
		res := o.Blog.Scrape(ctx, page, person.Blog, daysBack)
		activity.Posts = append(activity.Posts, res.Posts...)
		if res.Err != "" {
			activity.Errors = append(activity.Errors, res.Err)
		}
		log.Printf("[DEBUG] blog scrape for %s: %d posts", person.Name, len(res.Posts))
	}

	if person.LinkedIn != "" {
		if err := o.Limiter.Wait(ctx); err != nil {
			activity.Errors = append(activity.Errors, err.Error())
			return activity
		}
		res := o.Social.ScrapeLinkedIn(ctx, page, person.LinkedIn, daysBack)
		activity.Posts = append(activity.Posts, res.Posts...)
		if res.Err != "" {
			activity.Errors = append(activity.Errors, res.Err)
		}
	}

	if person.Twitter != "" {
		if err := o.Limiter.Wait(ctx); err != nil {
			activity.Errors = append(activity.Errors, err.Error())
			return activity
		}
		res := o.Social.ScrapeTwitter(ctx, page, person.Twitter, daysBack)
		activity.Posts = append(activity.Posts, res.Posts...)
		if res.Err != "" {
			activity.Errors = append(activity.Errors, res.Err)
		}
	}

	activity.Posts = normalize(activity.Posts, daysBack, now)
	return activity
}

// normalize applies the record pipeline in its fixed order, the window
// filter runs before dedup so a stale duplicate cannot shadow a fresh one
func normalize[T transform.Record](recs []T, daysBack int, now time.Time) []T {
	recs = transform.FilterByDate(recs, daysBack, now)
	recs = transform.Dedupe(recs)
	return transform.SortByDate(recs)
}
