package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/trackscope/pkg/browser"
	bmocks "github.com/umputun/trackscope/pkg/browser/mocks"
	"github.com/umputun/trackscope/pkg/domain"
	"github.com/umputun/trackscope/pkg/feed"
	"github.com/umputun/trackscope/pkg/pipeline/mocks"
	"github.com/umputun/trackscope/pkg/scrape"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const peopleDoc = `# People

## Jane Doe
- Blog: https://jane.example
- RSS Feed: https://jane.example/rss

## John Roe
- Blog: https://john.example
`

const companiesDoc = `# Companies

## Acme
**Category:** Robotics
**Primary sources:**
- https://acme.example/blog
- https://acme.example/changelog
`

// stubEnv wires a full mocked browser stack plus adapter mocks that
// return fixed results, individual tests override what they care about
type stubEnv struct {
	engine  *bmocks.EngineMock
	browser *bmocks.BrowserMock
	page    *bmocks.PageMock
	coord   *Coordinator
}

func newStubEnv(t *testing.T) *stubEnv {
	t.Helper()
	env := &stubEnv{}
	env.page = &bmocks.PageMock{CloseFunc: func() error { return nil }}
	env.browser = &bmocks.BrowserMock{
		NewPageFunc: func(ctx context.Context) (browser.Page, error) { return env.page, nil },
		CloseFunc:   func() error { return nil },
	}
	env.engine = &bmocks.EngineMock{
		LaunchFunc: func(ctx context.Context, opts browser.LaunchOptions) (browser.Browser, error) {
			return env.browser, nil
		},
	}

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	env.coord = &Coordinator{
		Engine: env.engine,
		Feeds: &mocks.FeedFetcherMock{
			FetchFunc: func(ctx context.Context, p browser.Page, feedURL string, daysBack int) feed.Result {
				pub := now.AddDate(0, 0, -2)
				return feed.Result{Posts: []domain.Post{
					{Title: "recent post", Link: feedURL + "/post", Published: &pub, Source: domain.SourceBlogRSS},
				}}
			},
		},
		Discovery: &mocks.FeedDiscovererMock{
			DiscoverFunc: func(ctx context.Context, p browser.Page, blogURL string) string { return blogURL + "/rss" },
		},
		Blog: &mocks.BlogScraperMock{
			ScrapeFunc: func(ctx context.Context, p browser.Page, blogURL string, daysBack int) scrape.Result {
				return scrape.Result{Posts: []domain.Post{}}
			},
		},
		Social: &mocks.SocialScraperMock{},
		Changelogs: &mocks.ChangelogScraperMock{
			ScrapeFunc: func(ctx context.Context, p browser.Page, changelogURL string, daysBack int) scrape.ChangelogResult {
				return scrape.ChangelogResult{Entries: []scrape.Entry{}}
			},
		},
		News: &mocks.NewsSearcherMock{
			SearchFunc: func(ctx context.Context, p browser.Page, company string, daysBack int) scrape.NewsResult {
				return scrape.NewsResult{Mentions: []domain.NewsMention{
					{Company: company, Title: "mention headline about " + company, Link: "https://news.example/" + company},
				}}
			},
		},
		Run: RunContext{RunID: "test-run", NowFn: func() time.Time { return now }},
	}
	return env
}

func TestCoordinator_Validation(t *testing.T) {
	env := newStubEnv(t)
	file := writeTempFile(t, "people.md", peopleDoc)

	t.Run("negative days back", func(t *testing.T) {
		_, err := env.coord.PeopleActivity(context.Background(), Request{File: file, DaysBack: -3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "days back must be at least 1")
		assert.Empty(t, env.engine.LaunchCalls())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := env.coord.PeopleActivity(context.Background(), Request{File: file, Format: "yaml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
		assert.Empty(t, env.engine.LaunchCalls())
	})

	t.Run("missing entities file", func(t *testing.T) {
		_, err := env.coord.PeopleActivity(context.Background(), Request{File: "/nonexistent/people.md"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entities file")
		assert.Empty(t, env.engine.LaunchCalls())
	})
}

func TestCoordinator_PeopleActivity(t *testing.T) {
	t.Run("collects per person and renders json", func(t *testing.T) {
		env := newStubEnv(t)
		file := writeTempFile(t, "people.md", peopleDoc)

		res, err := env.coord.PeopleActivity(context.Background(), Request{File: file})
		require.NoError(t, err)
		require.Len(t, res.Activities, 2)
		assert.Equal(t, "Jane Doe", res.Activities[0].Name)
		assert.Equal(t, "John Roe", res.Activities[1].Name)
		// Jane has a feed so she gets the stub post, John's blog scrape is empty
		require.Len(t, res.Activities[0].Posts, 1)
		assert.Empty(t, res.Activities[1].Posts)
		assert.Contains(t, res.Output, `"recent post"`)

		// one page per entity, browser closed exactly once
		assert.Len(t, env.browser.NewPageCalls(), 2)
		assert.Len(t, env.page.CloseCalls(), 2)
		assert.Len(t, env.browser.CloseCalls(), 1)
	})

	t.Run("markdown output", func(t *testing.T) {
		env := newStubEnv(t)
		file := writeTempFile(t, "people.md", peopleDoc)

		res, err := env.coord.PeopleActivity(context.Background(), Request{File: file, Format: "markdown"})
		require.NoError(t, err)
		assert.Contains(t, res.Output, "Jane Doe")
		assert.Contains(t, res.Output, "recent post")
	})

	t.Run("user data dir removed after run", func(t *testing.T) {
		env := newStubEnv(t)
		file := writeTempFile(t, "people.md", peopleDoc)
		dataDir := filepath.Join(t.TempDir(), "profile")
		require.NoError(t, os.MkdirAll(dataDir, 0o700))
		env.coord.Run.UserDataDir = dataDir

		_, err := env.coord.PeopleActivity(context.Background(), Request{File: file})
		require.NoError(t, err)
		_, statErr := os.Stat(dataDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("launch failure is fatal with a hint", func(t *testing.T) {
		env := newStubEnv(t)
		env.engine.LaunchFunc = func(ctx context.Context, opts browser.LaunchOptions) (browser.Browser, error) {
			return nil, errors.New("no display")
		}
		file := writeTempFile(t, "people.md", peopleDoc)

		_, err := env.coord.PeopleActivity(context.Background(), Request{File: file})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "launch browser")
		assert.Contains(t, err.Error(), "browser runtime is installed")
	})

	t.Run("page failure skips entity but run continues", func(t *testing.T) {
		env := newStubEnv(t)
		calls := 0
		env.browser.NewPageFunc = func(ctx context.Context) (browser.Page, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("target crashed")
			}
			return env.page, nil
		}
		file := writeTempFile(t, "people.md", peopleDoc)

		res, err := env.coord.PeopleActivity(context.Background(), Request{File: file})
		require.NoError(t, err)
		require.Len(t, res.Activities, 1)
		assert.Equal(t, "John Roe", res.Activities[0].Name)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "new page")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		env := newStubEnv(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		file := writeTempFile(t, "people.md", peopleDoc)

		_, err := env.coord.PeopleActivity(ctx, Request{File: file})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		// cleanup still ran
		assert.Len(t, env.browser.CloseCalls(), 1)
	})
}

func TestCoordinator_CompanyUpdates(t *testing.T) {
	env := newStubEnv(t)
	file := writeTempFile(t, "companies.md", companiesDoc)

	res, err := env.coord.CompanyUpdates(context.Background(), Request{File: file})
	require.NoError(t, err)
	require.Len(t, res.Companies, 1)
	assert.Equal(t, "Acme", res.Companies[0].Name)
	// blog produced the stub post, changelog stub is empty
	require.Len(t, res.Companies[0].Updates, 1)
	assert.Equal(t, domain.SourceBlog, res.Companies[0].Updates[0].Source)
	assert.Equal(t, "Robotics", res.Companies[0].Updates[0].Category)
}

func TestCoordinator_ConcurrentSessionDirs(t *testing.T) {
	env := newStubEnv(t)
	peopleFile := writeTempFile(t, "people.md", peopleDoc)
	companiesFile := writeTempFile(t, "companies.md", companiesDoc)
	dataDir := filepath.Join(t.TempDir(), "profile")
	env.coord.Run.UserDataDir = dataDir

	var mu sync.Mutex
	var sessionDirs []string
	env.engine.LaunchFunc = func(ctx context.Context, opts browser.LaunchOptions) (browser.Browser, error) {
		mu.Lock()
		sessionDirs = append(sessionDirs, opts.UserDataDir)
		mu.Unlock()
		return env.browser, nil
	}

	// park the company pipeline inside its browser session
	entered := make(chan struct{})
	release := make(chan struct{})
	env.coord.Discovery = &mocks.FeedDiscovererMock{
		DiscoverFunc: func(ctx context.Context, p browser.Page, blogURL string) string {
			close(entered)
			<-release
			return ""
		},
	}

	companiesDone := make(chan error, 1)
	go func() {
		_, err := env.coord.CompanyUpdates(context.Background(), Request{File: companiesFile})
		companiesDone <- err
	}()
	<-entered

	_, err := env.coord.PeopleActivity(context.Background(), Request{File: peopleFile})
	require.NoError(t, err)

	mu.Lock()
	dirs := append([]string{}, sessionDirs...)
	mu.Unlock()
	require.Len(t, dirs, 2)
	assert.NotEqual(t, dirs[0], dirs[1])

	// the parked pipeline's profile must survive the sibling's teardown
	_, statErr := os.Stat(dirs[0])
	require.NoError(t, statErr)

	close(release)
	require.NoError(t, <-companiesDone)

	// last finished session takes the shared parent with it
	_, statErr = os.Stat(dataDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCoordinator_CompanyNews(t *testing.T) {
	env := newStubEnv(t)
	file := writeTempFile(t, "companies.md", companiesDoc)

	res, err := env.coord.CompanyNews(context.Background(), Request{File: file})
	require.NoError(t, err)
	require.Len(t, res.Mentions, 1)
	assert.Equal(t, "Acme", res.Mentions[0].Company)
	assert.Equal(t, "Robotics", res.Mentions[0].Category)
}

func TestCoordinator_FindFeeds(t *testing.T) {
	env := newStubEnv(t)
	file := writeTempFile(t, "people.md", peopleDoc)

	res, err := env.coord.FindFeeds(context.Background(), Request{File: file})
	require.NoError(t, err)
	// Jane already has a feed configured, only John is a candidate
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "John Roe", res.Findings[0].Name)
	assert.Equal(t, "https://john.example/rss", res.Findings[0].Feed)
	assert.Contains(t, res.Output, "John Roe")
}
