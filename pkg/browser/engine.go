package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// maxBodySize caps how much of a response we read, pages beyond this are
// truncated rather than rejected
const maxBodySize = 5 * 1024 * 1024

// dateSelector finds timestamp elements near a post container
const dateSelector = "time, .date, [class*=\"date\"], [datetime]"

// HTTPEngine is a lightweight engine that fetches pages over plain HTTP
// and evaluates queries against the static DOM. It cannot run scripts,
// which is enough for feeds, server-rendered blogs and changelogs.
type HTTPEngine struct{}

// NewHTTPEngine creates an HTTP-backed engine
func NewHTTPEngine() *HTTPEngine { return &HTTPEngine{} }

// Launch prepares a shared HTTP client with a cookie jar. The user-data
// directory is created if configured so heavier engines and this one
// behave the same way for the coordinator's cleanup path.
func (e *HTTPEngine) Launch(_ context.Context, opts LaunchOptions) (Browser, error) {
	if opts.UserDataDir != "" {
		if err := os.MkdirAll(opts.UserDataDir, 0o700); err != nil {
			return nil, fmt.Errorf("create user data dir %s: %w", opts.UserDataDir, err)
		}
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "Mozilla/5.0 (compatible; Trackscope/1.0)"
	}

	return &httpBrowser{
		client:    &http.Client{Jar: jar},
		userAgent: userAgent,
	}, nil
}

type httpBrowser struct {
	client    *http.Client
	userAgent string
	closed    bool
	mu        sync.Mutex
}

// NewPage returns a page bound to the shared client
func (b *httpBrowser) NewPage(_ context.Context) (Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, fmt.Errorf("browser is closed")
	}
	return &httpPage{client: b.client, userAgent: b.userAgent}, nil
}

// Close marks the browser closed and drops idle connections
func (b *httpBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.client.CloseIdleConnections()
	return nil
}

// httpPage holds the last loaded document for Evaluate calls
type httpPage struct {
	client    *http.Client
	userAgent string
	doc       *goquery.Document
	base      *url.URL
}

// Goto fetches the URL and parses the document. The per-navigation timeout
// from opts bounds the whole request.
func (p *httpPage) Goto(ctx context.Context, pageURL string, opts GotoOptions) (*Response, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", pageURL, err)
	}

	// parse eagerly so Evaluate never does I/O; a non-HTML body still
	// parses into a text-only document which queries simply won't match
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse document from %s: %w", pageURL, err)
	}
	p.doc = doc

	// final URL after redirects is the base for link resolution
	p.base = resp.Request.URL

	return NewResponse(resp.StatusCode, resp.Header, string(body)), nil
}

// Evaluate runs the query against the last loaded document
func (p *httpPage) Evaluate(_ context.Context, q Query) ([]Element, error) {
	if p.doc == nil {
		return nil, fmt.Errorf("no document loaded, call Goto first")
	}

	var elements []Element
	for _, selector := range q.Selectors {
		sel := p.doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if q.MaxElements > 0 && len(elements) >= q.MaxElements {
				return false
			}
			elements = append(elements, p.extractElement(s))
			return true
		})

		if q.FirstMatch && len(elements) > 0 {
			break
		}
		if q.MaxElements > 0 && len(elements) >= q.MaxElements {
			break
		}
	}

	return elements, nil
}

// Close releases the parsed document
func (p *httpPage) Close() error {
	p.doc = nil
	p.base = nil
	return nil
}

// extractElement pulls text, link and the nearest timestamp out of a
// matched node, mirroring what a DOM-side evaluate callback would do
func (p *httpPage) extractElement(s *goquery.Selection) Element {
	el := Element{Text: strings.TrimSpace(s.Text())}

	if htmlStr, err := goquery.OuterHtml(s); err == nil {
		el.HTML = htmlStr
	}

	// link: the node itself when it is an anchor, else its first descendant anchor
	anchor := s
	if !s.Is("a") {
		anchor = s.Find("a").First()
	}
	if href, ok := anchor.Attr("href"); ok {
		el.Link = p.absoluteURL(href)
		if el.Text == "" {
			el.Text = strings.TrimSpace(anchor.Text())
		}
	}

	// timestamp: datetime attribute on the node, a date-ish descendant, or
	// a date-ish element in the closest post-like ancestor
	if dt, ok := s.Attr("datetime"); ok {
		el.Timestamp = dt
		return el
	}
	dateEl := s.Find(dateSelector).First()
	if dateEl.Length() == 0 {
		if parent := s.Closest("article, .post, [class*=\"post\"]"); parent.Length() > 0 {
			dateEl = parent.Find(dateSelector).First()
		} else if parent := s.Parent(); parent.Length() > 0 {
			dateEl = parent.Find(dateSelector).First()
		}
	}
	if dateEl.Length() > 0 {
		if dt, ok := dateEl.Attr("datetime"); ok && dt != "" {
			el.Timestamp = dt
		} else {
			el.Timestamp = strings.TrimSpace(dateEl.Text())
		}
	}

	return el
}

func (p *httpPage) absoluteURL(href string) string {
	if p.base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.base.ResolveReference(ref).String()
}
