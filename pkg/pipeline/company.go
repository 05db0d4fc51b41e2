package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
)

// CompanyOrchestrator collects updates for one company. Blog URLs go
// through feed discovery and are skipped when no feed is advertised,
// scraping arbitrary corporate blogs produces too much navigation noise
// to be worth it. Changelog URLs are always scraped.
type CompanyOrchestrator struct {
	Discovery  FeedDiscoverer
	Feeds      FeedFetcher
	Changelogs ChangelogScraper
	Limiter    *rate.Limiter
}

// Collect runs every configured source for the company and returns the
// normalized updates
func (o *CompanyOrchestrator) Collect(ctx context.Context, page browser.Page, company domain.Company, daysBack int, now time.Time) domain.CompanyUpdates {
	updates := domain.CompanyUpdates{Name: company.Name, Updates: []domain.UpdateItem{}, Errors: []string{}}

	for _, blogURL := range company.Blogs {
		if err := o.Limiter.Wait(ctx); err != nil {
			updates.Errors = append(updates.Errors, err.Error())
			return updates
		}

		feedURL := o.Discovery.Discover(ctx, page, blogURL)
		if feedURL == "" {
			updates.Errors = append(updates.Errors, fmt.Sprintf("no feed found for %s", blogURL))
			continue
		}

		res := o.Feeds.Fetch(ctx, page, feedURL, daysBack)
		if res.Err != "" {
			updates.Errors = append(updates.Errors, res.Err)
		}
		for _, post := range res.Posts {
			updates.Updates = append(updates.Updates, domain.UpdateItem{
				Title:       post.Title,
				Link:        post.Link,
				Published:   post.Published,
				Source:      domain.SourceBlog,
				SourceURL:   blogURL,
				Description: post.Description,
				Company:     company.Name,
				Category:    company.Category,
			})
		}
		log.Printf("[DEBUG] blog feed for %s (%s): %d updates", company.Name, blogURL, len(res.Posts))
	}

	for _, changelogURL := range company.Changelogs {
		if err := o.Limiter.Wait(ctx); err != nil {
			updates.Errors = append(updates.Errors, err.Error())
			return updates
		}

		res := o.Changelogs.Scrape(ctx, page, changelogURL, daysBack)
		if res.Err != "" {
			updates.Errors = append(updates.Errors, res.Err)
		}
		for _, entry := range res.Entries {
			updates.Updates = append(updates.Updates, domain.UpdateItem{
				Title:       entry.Title,
				Link:        entry.Link,
				Published:   entry.Published,
				Source:      domain.SourceChangelog,
				SourceURL:   changelogURL,
				Description: entry.Description,
				Company:     company.Name,
				Category:    company.Category,
			})
		}
		log.Printf("[DEBUG] changelog for %s (%s): %d entries", company.Name, changelogURL, len(res.Entries))
	}

	updates.Updates = normalize(updates.Updates, daysBack, now)
	return updates
}
