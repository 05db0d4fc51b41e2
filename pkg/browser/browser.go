// Package browser defines the narrow page-navigation capability consumed by
// all source adapters, plus an HTTP-backed engine implementing it. Adapters
// depend only on the interfaces here, so any automation engine (or a test
// double) can be substituted without touching extraction logic.
package browser

import (
	"context"
	"net/http"
	"time"
)

//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine
//go:generate moq -out mocks/browser.go -pkg mocks -skip-ensure -fmt goimports . Browser
//go:generate moq -out mocks/page.go -pkg mocks -skip-ensure -fmt goimports . Page

// Engine launches browser instances
type Engine interface {
	Launch(ctx context.Context, opts LaunchOptions) (Browser, error)
}

// Browser owns pages. One browser is shared across a pipeline run, each
// entity gets a dedicated page created and closed around its processing.
type Browser interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page performs navigation and structured DOM queries against the most
// recently loaded document.
type Page interface {
	Goto(ctx context.Context, url string, opts GotoOptions) (*Response, error)
	Evaluate(ctx context.Context, q Query) ([]Element, error)
	Close() error
}

// LaunchOptions configures a browser launch. UserDataDir points at a
// per-run scratch directory the engine may use for profile state, the
// caller owns its cleanup. NoSandbox is honored by engines that run real
// browser processes in restricted environments.
type LaunchOptions struct {
	UserDataDir string
	UserAgent   string
	NoSandbox   bool
}

// GotoOptions controls one navigation. WaitUntil is advisory for engines
// that render pages ("domcontentloaded", "networkidle"), every navigation
// carries its own timeout.
type GotoOptions struct {
	WaitUntil string
	Timeout   time.Duration
}

// Query asks the loaded page for structured records. Selectors are tried
// in order, with FirstMatch set the first selector yielding any elements
// wins and the rest are skipped.
type Query struct {
	Selectors   []string
	FirstMatch  bool
	MaxElements int
}

// Element is one structured record extracted from the page. The engine
// resolves links to absolute URLs and pulls the nearest timestamp
// (datetime attribute or date-ish sibling text) so adapters never touch
// DOM mechanics.
type Element struct {
	Text      string
	Link      string
	Timestamp string
	HTML      string
}

// Response holds the result of a navigation
type Response struct {
	status int
	header http.Header
	body   string
}

// NewResponse creates a response, exported for engine implementations and tests
func NewResponse(status int, header http.Header, body string) *Response {
	return &Response{status: status, header: header, body: body}
}

// Status returns the HTTP status code
func (r *Response) Status() int { return r.status }

// Text returns the raw response body
func (r *Response) Text() string { return r.body }

// Header returns a response header value, empty when absent
func (r *Response) Header(name string) string {
	if r.header == nil {
		return ""
	}
	return r.header.Get(name)
}
