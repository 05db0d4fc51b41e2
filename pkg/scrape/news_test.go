package scrape

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/browser/mocks"
)

func TestNewsSearcher_Search(t *testing.T) {
	t.Run("builds search url with recency restriction", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return nil, nil
			},
		}

		res := NewNewsSearcher().Search(context.Background(), page, "Acme Robotics", 7)
		assert.Empty(t, res.Err)
		require.Len(t, page.GotoCalls(), 1)
		url := page.GotoCalls()[0].URL
		assert.Contains(t, url, "q=Acme+Robotics")
		assert.Contains(t, url, "tbm=nws")
		assert.Contains(t, url, "qdr%3Aw")
	})

	t.Run("extracts headline links with outlet from host", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "Acme Robotics raises series C to expand factory automation", Link: "https://www.techpress.example/acme-series-c"},
					{Text: "More results", Link: "https://www.google.com/search?q=next"},
				}, nil
			},
		}

		res := NewNewsSearcher().Search(context.Background(), page, "Acme Robotics", 7)
		require.Len(t, res.Mentions, 1)
		assert.Equal(t, "Acme Robotics", res.Mentions[0].Company)
		assert.Equal(t, "techpress.example", res.Mentions[0].Outlet)
		assert.Equal(t, "https://www.techpress.example/acme-series-c", res.Mentions[0].Link)
	})

	t.Run("dedupes repeated links and caps result", func(t *testing.T) {
		elements := make([]browser.Element, 0, 30)
		for i := 0; i < 15; i++ {
			link := "https://news.example/story-" + string(rune('a'+i))
			// every story appears twice in the result markup
			elements = append(elements,
				browser.Element{Text: "A headline long enough to pass the length gate", Link: link},
				browser.Element{Text: "A headline long enough to pass the length gate", Link: link},
			)
		}
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return elements, nil
			},
		}

		res := NewNewsSearcher().Search(context.Background(), page, "Acme", 7)
		assert.Len(t, res.Mentions, maxMentions)
	})

	t.Run("short snippets skipped", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return browser.NewResponse(http.StatusOK, http.Header{}, ""), nil
			},
			EvaluateFunc: func(ctx context.Context, q browser.Query) ([]browser.Element, error) {
				return []browser.Element{
					{Text: "Next page", Link: "https://news.example/page2"},
				}, nil
			},
		}

		res := NewNewsSearcher().Search(context.Background(), page, "Acme", 7)
		assert.Empty(t, res.Mentions)
	})

	t.Run("navigation failure", func(t *testing.T) {
		page := &mocks.PageMock{
			GotoFunc: func(ctx context.Context, url string, opts browser.GotoOptions) (*browser.Response, error) {
				return nil, errors.New("net::ERR_NAME_NOT_RESOLVED")
			},
		}

		res := NewNewsSearcher().Search(context.Background(), page, "Acme", 7)
		assert.Empty(t, res.Mentions)
		assert.Contains(t, res.Err, "search news")
	})
}
