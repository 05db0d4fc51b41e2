package scrape

import (
	"context"
	"net/url"
	"strings"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
)

// news search constants
const (
	maxMentions    = 10
	minNewsTitle   = 15
	newsSelector   = `div[data-ved] a[href^="http"]`
	newsSearchBase = "https://www.google.com/search"
)

// NewsResult is the outcome of one news search for a company
type NewsResult struct {
	Mentions []domain.NewsMention
	Err      string
}

// NewsSearcher finds recent press mentions through a news search engine.
// Results are best-effort, the result markup changes without notice and
// outlet attribution is not always separable from the headline block.
type NewsSearcher struct{}

// NewNewsSearcher creates a news searcher
func NewNewsSearcher() *NewsSearcher {
	return &NewsSearcher{}
}

// Search queries news results for the company name restricted to the
// recency window and extracts headline links
func (s *NewsSearcher) Search(ctx context.Context, page browser.Page, company string, daysBack int) NewsResult {
	q := url.Values{}
	q.Set("q", company)
	q.Set("tbm", "nws")
	q.Set("tbs", recencyParam(daysBack))
	searchURL := newsSearchBase + "?" + q.Encode()

	if _, err := page.Goto(ctx, searchURL, browser.GotoOptions{WaitUntil: "networkidle", Timeout: renderTimeout}); err != nil {
		return NewsResult{Mentions: []domain.NewsMention{}, Err: "search news: " + err.Error()}
	}

	elements, err := page.Evaluate(ctx, browser.Query{Selectors: []string{newsSelector}, MaxElements: 50})
	if err != nil {
		return NewsResult{Mentions: []domain.NewsMention{}, Err: "search news: " + err.Error()}
	}

	mentions := make([]domain.NewsMention, 0, maxMentions)
	seen := map[string]struct{}{}
	for _, el := range elements {
		title := strings.TrimSpace(el.Text)
		if len([]rune(title)) < minNewsTitle || el.Link == "" {
			continue
		}
		if strings.Contains(el.Link, "google.com") {
			continue
		}
		if _, ok := seen[el.Link]; ok {
			continue
		}
		seen[el.Link] = struct{}{}

		mentions = append(mentions, domain.NewsMention{
			Company: company,
			Title:   truncate(title, maxTitleLen),
			Link:    el.Link,
			Outlet:  outletFromLink(el.Link),
		})
		if len(mentions) >= maxMentions {
			break
		}
	}

	return NewsResult{Mentions: mentions}
}

// recencyParam maps the window to the search engine's time restriction
func recencyParam(daysBack int) string {
	switch {
	case daysBack <= 1:
		return "qdr:d"
	case daysBack <= 7:
		return "qdr:w"
	case daysBack <= 31:
		return "qdr:m"
	default:
		return "qdr:y"
	}
}

// outletFromLink derives the publisher name from the article host, the
// search result block does not expose the outlet separately
func outletFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
