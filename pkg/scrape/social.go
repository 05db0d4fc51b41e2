package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
)

const (
	// twitterTimeout is shorter than the generic render timeout, twitter
	// either loads quickly or shows the login wall
	twitterTimeout = 8 * time.Second

	maxTweetLen  = 280
	maxTweets    = 20
	minSocialLen = 20
	minTweetLen  = 10
)

var linkedinSelectors = []string{
	".feed-shared-update-v2",
	".occludable-update",
	`[data-urn*="activity"]`,
}

var twitterSelectors = []string{
	`[data-testid="tweet"]`,
	`article[data-testid="tweet"]`,
}

// SocialScraper extracts posts from LinkedIn and Twitter/X profiles.
// Both platforms hide most content behind authentication, a detected
// login wall is a permanent limitation reported as an error string, not
// a transient fault.
type SocialScraper struct {
	nowFn func() time.Time
}

// NewSocialScraper creates a social profile scraper
func NewSocialScraper() *SocialScraper {
	return &SocialScraper{nowFn: time.Now}
}

// ScrapeLinkedIn extracts recent posts from a public LinkedIn profile.
// Undated posts are excluded, social timestamps are normally always
// present so a missing one means the element wasn't really a post.
func (s *SocialScraper) ScrapeLinkedIn(ctx context.Context, page browser.Page, profileURL string, daysBack int) Result {
	resp, err := page.Goto(ctx, profileURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: renderTimeout})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape linkedin: " + err.Error()}
	}

	if strings.Contains(resp.Text(), "Sign in") || strings.Contains(resp.Text(), "Join LinkedIn") {
		return Result{Posts: []domain.Post{}, Err: "LinkedIn login required (public scraping limited)"}
	}

	elements, err := page.Evaluate(ctx, browser.Query{Selectors: linkedinSelectors, FirstMatch: true, MaxElements: 50})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape linkedin: " + err.Error()}
	}
	if len(elements) == 0 {
		// no post containers on an otherwise loaded page is the wall too
		return Result{Posts: []domain.Post{}, Err: "LinkedIn login required (public scraping limited)"}
	}

	return Result{Posts: s.collect(elements, daysBack, domain.SourceLinkedIn, maxTitleLen, minSocialLen, maxItems)}
}

// ScrapeTwitter extracts recent tweets for a handle (without @)
func (s *SocialScraper) ScrapeTwitter(ctx context.Context, page browser.Page, handle string, daysBack int) Result {
	profileURL := "https://twitter.com/" + handle

	resp, err := page.Goto(ctx, profileURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: twitterTimeout})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape twitter: " + err.Error()}
	}

	if strings.Contains(resp.Text(), "Sign in to Twitter") || strings.Contains(resp.Text(), "Create account") {
		return Result{Posts: []domain.Post{}, Err: "Twitter login required (public scraping limited)"}
	}

	elements, err := page.Evaluate(ctx, browser.Query{Selectors: twitterSelectors, FirstMatch: true, MaxElements: 50})
	if err != nil {
		return Result{Posts: []domain.Post{}, Err: "scrape twitter: " + err.Error()}
	}
	if len(elements) == 0 {
		return Result{Posts: []domain.Post{}, Err: "Twitter login required (public scraping limited)"}
	}

	return Result{Posts: s.collect(elements, daysBack, domain.SourceTwitter, maxTweetLen, minTweetLen, maxTweets)}
}

// collect applies the strict social date policy: no parseable timestamp
// means the element is dropped
func (s *SocialScraper) collect(elements []browser.Element, daysBack int, source domain.Source, titleLimit, minLen, limit int) []domain.Post {
	cutoff := s.nowFn().AddDate(0, 0, -daysBack)

	posts := make([]domain.Post, 0, len(elements))
	for _, el := range elements {
		text := strings.TrimSpace(el.Text)
		if el.Link == "" || len([]rune(text)) <= minLen {
			continue
		}

		published := parseDate(el.Timestamp, s.nowFn())
		if published == nil || published.Before(cutoff) {
			continue
		}

		posts = append(posts, domain.Post{
			Title:     truncate(text, titleLimit),
			Link:      el.Link,
			Published: published,
			Source:    source,
		})
		if len(posts) >= limit {
			break
		}
	}
	return posts
}
