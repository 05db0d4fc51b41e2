// Package content pulls readable article text out of web pages. It is
// used to backfill descriptions for posts whose feed or scrape produced
// none, the digest reads much better with a summary per item.
package content

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/time/rate"

	"github.com/umputun/trackscope/pkg/domain"
)

// maxDescriptionLen matches the normalized record description budget
const maxDescriptionLen = 300

// HTTPExtractor extracts article content from URLs using trafilatura
type HTTPExtractor struct {
	timeout   time.Duration
	userAgent string
	client    *http.Client
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(timeout time.Duration, userAgent string) *HTTPExtractor {
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Trackscope/1.0)"
	}
	return &HTTPExtractor{
		timeout:   timeout,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Extract retrieves and extracts text content from the given URL
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid URL: %s", urlStr)
	}

	// create request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)
	addBrowserHeaders(req)

	// fetch content
	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	// configure trafilatura options
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	// extract content
	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return "", fmt.Errorf("extract content from %s: %w", urlStr, err)
	}

	if result == nil {
		return "", fmt.Errorf("no content extracted from %s", urlStr)
	}

	// get main content
	content := result.ContentText
	if content == "" {
		return "", fmt.Errorf("no text content extracted from %s", urlStr)
	}

	// clean up content
	content = strings.TrimSpace(content)

	return content, nil
}

// Enricher backfills post descriptions from the linked articles. Failures
// leave the post as-is, enrichment is strictly best-effort.
type Enricher struct {
	extractor *HTTPExtractor
	limiter   *rate.Limiter
	minLen    int
}

// NewEnricher creates an enricher with the given pacing between fetches
func NewEnricher(extractor *HTTPExtractor, rateLimit time.Duration, minLen int) *Enricher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(rateLimit), 1)
	}
	return &Enricher{extractor: extractor, limiter: limiter, minLen: minLen}
}

// EnrichPosts fills in missing descriptions in place and returns the slice
func (e *Enricher) EnrichPosts(ctx context.Context, posts []domain.Post) []domain.Post {
	for i := range posts {
		if posts[i].Description != "" || posts[i].Link == "" {
			continue
		}
		if err := e.limiter.Wait(ctx); err != nil {
			return posts
		}

		text, err := e.extractor.Extract(ctx, posts[i].Link)
		if err != nil {
			log.Printf("[DEBUG] enrich %s: %v", posts[i].Link, err)
			continue
		}
		if len(text) < e.minLen {
			continue
		}
		posts[i].Description = truncate(text, maxDescriptionLen)
	}
	return posts
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
