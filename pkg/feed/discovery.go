package feed

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/umputun/trackscope/pkg/browser"
)

// commonFeedPaths are conventional feed locations probed in order when the
// homepage does not advertise a feed
var commonFeedPaths = []string{
	"/feed",
	"/feed.xml",
	"/rss",
	"/rss.xml",
	"/atom.xml",
	"/index.xml",
	"/feed/",
	"/rss/",
}

// probeTimeout bounds each conventional-path probe, probes are the
// lightest navigation we do
const probeTimeout = 5 * time.Second

// Discoverer finds a feed URL for a blog homepage
type Discoverer struct{}

// NewDiscoverer creates a feed discoverer
func NewDiscoverer() *Discoverer { return &Discoverer{} }

// Discover returns the feed URL advertised by the blog page, or the first
// conventional path that responds like a feed. Returns empty string when
// nothing is found, probe failures mean "path doesn't exist" and are never
// surfaced as errors.
func (d *Discoverer) Discover(ctx context.Context, page browser.Page, blogURL string) string {
	resp, err := page.Goto(ctx, blogURL, browser.GotoOptions{WaitUntil: "domcontentloaded", Timeout: fetchTimeout})
	if err != nil {
		log.Printf("[DEBUG] feed discovery: can't load %s: %v", blogURL, err)
		return ""
	}

	if advertised := feedLinkFromHTML(resp.Text(), blogURL); advertised != "" {
		return advertised
	}

	// no advertised feed, probe conventional paths
	for _, path := range commonFeedPaths {
		probeURL := resolveURL(blogURL, path)
		if probeURL == "" {
			continue
		}

		resp, err := page.Goto(ctx, probeURL, browser.GotoOptions{WaitUntil: "domcontentloaded", Timeout: probeTimeout})
		if err != nil || resp.Status() != http.StatusOK {
			continue
		}
		if looksLikeFeed(resp) {
			return probeURL
		}
	}

	return ""
}

// feedLinkFromHTML scans the page markup for a <link> tag advertising a
// feed type, then for anchors pointing at feed-ish paths
func feedLinkFromHTML(content, baseURL string) string {
	var anchorHit string

	tokenizer := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()
		switch token.Data {
		case "link":
			var href, linkType string
			for _, attr := range token.Attr {
				switch attr.Key {
				case "href":
					href = attr.Val
				case "type":
					linkType = strings.ToLower(attr.Val)
				}
			}
			if href != "" && (strings.Contains(linkType, "rss") || strings.Contains(linkType, "atom") || strings.Contains(linkType, "xml")) {
				return resolveURL(baseURL, href)
			}
		case "a":
			if anchorHit != "" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key != "href" {
					continue
				}
				lower := strings.ToLower(attr.Val)
				if strings.Contains(lower, "feed") || strings.Contains(lower, "rss") || strings.Contains(lower, "atom") {
					anchorHit = resolveURL(baseURL, attr.Val)
				}
			}
		}
	}

	return anchorHit
}

// looksLikeFeed checks the response content type and leading content
// signature for feed markers
func looksLikeFeed(resp *browser.Response) bool {
	contentType := strings.ToLower(resp.Header("Content-Type"))
	if strings.Contains(contentType, "xml") || strings.Contains(contentType, "rss") || strings.Contains(contentType, "atom") {
		return true
	}

	head := strings.TrimSpace(resp.Text())
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<?xml") || strings.HasPrefix(head, "<rss") || strings.HasPrefix(head, "<feed")
}

func resolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}
