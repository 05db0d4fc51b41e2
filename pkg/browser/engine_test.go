package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEngine_Launch(t *testing.T) {
	t.Run("creates user data dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "profile")
		b, err := NewHTTPEngine().Launch(context.Background(), LaunchOptions{UserDataDir: dir})
		require.NoError(t, err)
		defer b.Close()

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("closed browser refuses new pages", func(t *testing.T) {
		b, err := NewHTTPEngine().Launch(context.Background(), LaunchOptions{})
		require.NoError(t, err)
		require.NoError(t, b.Close())

		_, err = b.NewPage(context.Background())
		require.Error(t, err)
	})
}

func TestHTTPPage_Goto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><h1>hello</h1></body></html>`))
	}))
	defer srv.Close()

	b, err := NewHTTPEngine().Launch(context.Background(), LaunchOptions{})
	require.NoError(t, err)
	defer b.Close()

	page, err := b.NewPage(context.Background())
	require.NoError(t, err)
	defer page.Close()

	resp, err := page.Goto(context.Background(), srv.URL, GotoOptions{Timeout: 5 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status())
	assert.Contains(t, resp.Text(), "hello")
	assert.Contains(t, resp.Header("Content-Type"), "text/html")
}

func TestHTTPPage_GotoTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	b, err := NewHTTPEngine().Launch(context.Background(), LaunchOptions{})
	require.NoError(t, err)
	defer b.Close()

	page, err := b.NewPage(context.Background())
	require.NoError(t, err)
	defer page.Close()

	_, err = page.Goto(context.Background(), srv.URL, GotoOptions{Timeout: 50 * time.Millisecond})
	require.Error(t, err)
}

func TestHTTPPage_Evaluate(t *testing.T) {
	pageHTML := `<html><body>
		<article class="post">
			<h2><a href="/posts/first">First Post Title</a></h2>
			<time datetime="2025-06-10T00:00:00Z">June 10, 2025</time>
		</article>
		<article class="post">
			<h2><a href="https://other.example.com/second">Second Post Title</a></h2>
			<span class="date">June 1, 2025</span>
		</article>
		<div class="unrelated">noise</div>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	b, err := NewHTTPEngine().Launch(context.Background(), LaunchOptions{})
	require.NoError(t, err)
	defer b.Close()

	page, err := b.NewPage(context.Background())
	require.NoError(t, err)
	defer page.Close()

	_, err = page.Goto(context.Background(), srv.URL, GotoOptions{Timeout: 5 * time.Second})
	require.NoError(t, err)

	t.Run("first matching selector wins", func(t *testing.T) {
		elements, err := page.Evaluate(context.Background(), Query{
			Selectors:  []string{".missing", "article", "h2 a"},
			FirstMatch: true,
		})
		require.NoError(t, err)
		require.Len(t, elements, 2)

		assert.Contains(t, elements[0].Text, "First Post Title")
		assert.Equal(t, srv.URL+"/posts/first", elements[0].Link, "relative link resolved against page URL")
		assert.Equal(t, "2025-06-10T00:00:00Z", elements[0].Timestamp)

		assert.Equal(t, "https://other.example.com/second", elements[1].Link)
		assert.Equal(t, "June 1, 2025", elements[1].Timestamp, "text date picked up when no datetime attr")
	})

	t.Run("anchor element extracts own href", func(t *testing.T) {
		elements, err := page.Evaluate(context.Background(), Query{Selectors: []string{"h2 a"}, FirstMatch: true})
		require.NoError(t, err)
		require.Len(t, elements, 2)
		assert.Equal(t, "First Post Title", elements[0].Text)
		assert.Equal(t, srv.URL+"/posts/first", elements[0].Link)
	})

	t.Run("max elements respected", func(t *testing.T) {
		elements, err := page.Evaluate(context.Background(), Query{Selectors: []string{"article"}, MaxElements: 1})
		require.NoError(t, err)
		assert.Len(t, elements, 1)
	})

	t.Run("evaluate before goto fails", func(t *testing.T) {
		fresh, err := b.NewPage(context.Background())
		require.NoError(t, err)
		defer fresh.Close()

		_, err = fresh.Evaluate(context.Background(), Query{Selectors: []string{"article"}})
		require.Error(t, err)
	})
}
