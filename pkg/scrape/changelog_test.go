package scrape

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/browser/mocks"
)

func TestChangelogScraper_Scrape(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	newScraper := func() *ChangelogScraper {
		s := NewChangelogScraper()
		s.nowFn = func() time.Time { return now }
		return s
	}

	t.Run("dated entries inside window", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "v2.4.0 - 2025-06-12 - faster exports and new webhooks", Link: "https://example.com/changelog#v240"},
					{Text: "v2.0.0 - 2024-11-01 - breaking API changes", Link: "https://example.com/changelog#v200"},
				}, nil
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		assert.Empty(t, res.Err)
		require.Len(t, res.Entries, 1)
		assert.Contains(t, res.Entries[0].Title, "v2.4.0")
		require.NotNil(t, res.Entries[0].Published)
		assert.Equal(t, 12, res.Entries[0].Published.Day())
		assert.Len(t, page.EvaluateCalls(), 1)
	})

	t.Run("date embedded in heading text", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "June 10, 2025 release: improved search relevance"},
				}, nil
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		require.Len(t, res.Entries, 1)
		require.NotNil(t, res.Entries[0].Published)
		assert.Equal(t, time.June, res.Entries[0].Published.Month())
	})

	t.Run("entry without anchor gets page link", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "2025-06-11 shipped the long awaited dark theme"},
				}, nil
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		require.Len(t, res.Entries, 1)
		assert.Equal(t, "https://example.com/changelog", res.Entries[0].Link)
	})

	t.Run("fallback to undated entries when nothing dated", func(t *testing.T) {
		calls := 0
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				calls++
				if calls == 1 {
					return []browser.Element{
						{Text: "Improved billing flows with no date anywhere"},
					}, nil
				}
				return []browser.Element{
					{Text: "Improved billing flows with no date anywhere", Link: "https://example.com/changelog#billing"},
					{Text: "Another undated entry about performance work"},
				}, nil
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		assert.Empty(t, res.Err)
		require.Len(t, res.Entries, 2)
		assert.Nil(t, res.Entries[0].Published)
		assert.Equal(t, 2, calls)
	})

	t.Run("stale entries do not trigger fallback content", func(t *testing.T) {
		// everything is dated but out of window, the fallback query also
		// returns the same stale entries so the result is their undated form
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "v1.0.0 - 2023-01-01 - the very first release"},
				}, nil
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		require.Len(t, res.Entries, 1)
		assert.Nil(t, res.Entries[0].Published)
	})

	t.Run("navigation failure", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return nil, errors.New("net::ERR_TIMED_OUT")
			},
		}

		res := newScraper().Scrape(context.Background(), page, "https://example.com/changelog", 30)
		assert.Empty(t, res.Entries)
		assert.Contains(t, res.Err, "scrape changelog")
	})
}
