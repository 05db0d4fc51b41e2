package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/domain"
	"github.com/umputun/trackscope/pkg/entity"
	"github.com/umputun/trackscope/pkg/feed"
	"github.com/umputun/trackscope/pkg/scrape"
	"github.com/umputun/trackscope/pkg/transform"
)

// default recency windows per pipeline, people publish slower than
// changelogs and news churns fastest
const (
	DefaultPeopleDays    = 30
	DefaultCompaniesDays = 14
	DefaultNewsDays      = 7
)

// Request is the validated input of one pipeline run. Zero DaysBack and
// empty Format take the pipeline's defaults.
type Request struct {
	File     string
	DaysBack int
	Format   string // json or markdown
}

func (r Request) withDefaults(days int) Request {
	if r.DaysBack == 0 {
		r.DaysBack = days
	}
	if r.Format == "" {
		r.Format = "json"
	}
	return r
}

// validate rejects bad inputs before any network activity
func (r Request) validate() error {
	if r.DaysBack < 1 {
		return fmt.Errorf("days back must be at least 1, got %d", r.DaysBack)
	}
	if r.Format != "json" && r.Format != "markdown" {
		return fmt.Errorf("unsupported format %q, use json or markdown", r.Format)
	}
	if _, err := os.Stat(r.File); err != nil {
		return fmt.Errorf("entities file: %w", err)
	}
	return nil
}

// PeopleResult is the outcome of a people activity run
type PeopleResult struct {
	Activities []domain.PersonActivity `json:"activities"`
	Errors     []string                `json:"errors,omitempty"`
	Output     string                  `json:"-"`
}

// CompaniesResult is the outcome of a company updates run
type CompaniesResult struct {
	Companies []domain.CompanyUpdates `json:"companies"`
	Errors    []string                `json:"errors,omitempty"`
	Output    string                  `json:"-"`
}

// NewsReport is the outcome of a company news run
type NewsReport struct {
	Mentions []domain.NewsMention `json:"mentions"`
	Errors   []string             `json:"errors,omitempty"`
	Output   string               `json:"-"`
}

// Finding pairs a person's blog with the feed discovered for it
type Finding struct {
	Name string `json:"name"`
	Blog string `json:"blog"`
	Feed string `json:"feed,omitempty"`
}

// FeedsResult is the outcome of a feed discovery run
type FeedsResult struct {
	Findings []Finding `json:"findings"`
	Errors   []string  `json:"errors,omitempty"`
	Output   string    `json:"-"`
}

// Coordinator owns the browser lifecycle and runs the collection
// pipelines over parsed entities. All adapters are injected.
type Coordinator struct {
	Engine     browser.Engine
	Feeds      FeedFetcher
	Discovery  FeedDiscoverer
	Blog       BlogScraper
	Social     SocialScraper
	Changelogs ChangelogScraper
	News       NewsSearcher
	Run        RunContext
}

// NewCoordinator wires the coordinator with the production adapters
func NewCoordinator(engine browser.Engine, rc RunContext) *Coordinator {
	return &Coordinator{
		Engine:     engine,
		Feeds:      feed.NewParser(),
		Discovery:  feed.NewDiscoverer(),
		Blog:       scrape.NewBlogScraper(),
		Social:     scrape.NewSocialScraper(),
		Changelogs: scrape.NewChangelogScraper(),
		News:       scrape.NewNewsSearcher(),
		Run:        rc,
	}
}

// PeopleActivity collects recent activity for every person in the file
func (c *Coordinator) PeopleActivity(ctx context.Context, req Request) (*PeopleResult, error) {
	req = req.withDefaults(DefaultPeopleDays)
	if err := req.validate(); err != nil {
		return nil, err
	}

	people, err := entity.ParsePeopleFile(req.File)
	if err != nil {
		return nil, fmt.Errorf("parse people: %w", err)
	}
	log.Printf("[INFO] run %s: people activity, %d people, %d days back", c.Run.RunID, len(people), req.DaysBack)

	res := &PeopleResult{Activities: []domain.PersonActivity{}}
	orch := &PersonOrchestrator{Feeds: c.Feeds, Blog: c.Blog, Social: c.Social, Limiter: c.Run.stepLimiter()}

	err = c.withBrowser(ctx, func(b browser.Browser) error {
		return c.eachEntity(ctx, b, len(people), &res.Errors, func(i int, page browser.Page) {
			res.Activities = append(res.Activities, orch.Collect(ctx, page, people[i], req.DaysBack, c.Run.now()))
		})
	})
	if err != nil {
		return nil, err
	}

	if res.Output, err = renderOutput(req.Format, res, func() string { return transform.PeopleMarkdown(res.Activities) }); err != nil {
		return nil, err
	}
	return res, nil
}

// CompanyUpdates collects product and engineering updates for every
// company in the file
func (c *Coordinator) CompanyUpdates(ctx context.Context, req Request) (*CompaniesResult, error) {
	req = req.withDefaults(DefaultCompaniesDays)
	if err := req.validate(); err != nil {
		return nil, err
	}

	companies, err := entity.ParseCompaniesFile(req.File)
	if err != nil {
		return nil, fmt.Errorf("parse companies: %w", err)
	}
	log.Printf("[INFO] run %s: company updates, %d companies, %d days back", c.Run.RunID, len(companies), req.DaysBack)

	res := &CompaniesResult{Companies: []domain.CompanyUpdates{}}
	orch := &CompanyOrchestrator{Discovery: c.Discovery, Feeds: c.Feeds, Changelogs: c.Changelogs, Limiter: c.Run.stepLimiter()}

	err = c.withBrowser(ctx, func(b browser.Browser) error {
		return c.eachEntity(ctx, b, len(companies), &res.Errors, func(i int, page browser.Page) {
			res.Companies = append(res.Companies, orch.Collect(ctx, page, companies[i], req.DaysBack, c.Run.now()))
		})
	})
	if err != nil {
		return nil, err
	}

	if res.Output, err = renderOutput(req.Format, res, func() string { return transform.CompanyMarkdown(flattenUpdates(res.Companies)) }); err != nil {
		return nil, err
	}
	return res, nil
}

// CompanyNews searches recent press mentions for every company in the file
func (c *Coordinator) CompanyNews(ctx context.Context, req Request) (*NewsReport, error) {
	req = req.withDefaults(DefaultNewsDays)
	if err := req.validate(); err != nil {
		return nil, err
	}

	companies, err := entity.ParseCompaniesFile(req.File)
	if err != nil {
		return nil, fmt.Errorf("parse companies: %w", err)
	}
	log.Printf("[INFO] run %s: company news, %d companies, %d days back", c.Run.RunID, len(companies), req.DaysBack)

	res := &NewsReport{Mentions: []domain.NewsMention{}}
	limiter := c.Run.stepLimiter()

	err = c.withBrowser(ctx, func(b browser.Browser) error {
		return c.eachEntity(ctx, b, len(companies), &res.Errors, func(i int, page browser.Page) {
			if werr := limiter.Wait(ctx); werr != nil {
				res.Errors = append(res.Errors, werr.Error())
				return
			}
			sr := c.News.Search(ctx, page, companies[i].Name, req.DaysBack)
			if sr.Err != "" {
				res.Errors = append(res.Errors, sr.Err)
			}
			for _, m := range sr.Mentions {
				m.Category = companies[i].Category
				res.Mentions = append(res.Mentions, m)
			}
		})
	})
	if err != nil {
		return nil, err
	}

	if res.Output, err = renderOutput(req.Format, res, func() string { return transform.NewsMarkdown(res.Mentions) }); err != nil {
		return nil, err
	}
	return res, nil
}

// FindFeeds reports discoverable feeds for people who have a blog
// configured but no feed URL yet
func (c *Coordinator) FindFeeds(ctx context.Context, req Request) (*FeedsResult, error) {
	req = req.withDefaults(DefaultPeopleDays)
	if err := req.validate(); err != nil {
		return nil, err
	}

	people, err := entity.ParsePeopleFile(req.File)
	if err != nil {
		return nil, fmt.Errorf("parse people: %w", err)
	}

	candidates := make([]domain.Person, 0, len(people))
	for _, p := range people {
		if p.Blog != "" && p.RSSFeed == "" {
			candidates = append(candidates, p)
		}
	}
	log.Printf("[INFO] run %s: feed discovery, %d candidates of %d people", c.Run.RunID, len(candidates), len(people))

	res := &FeedsResult{Findings: []Finding{}}
	limiter := c.Run.stepLimiter()

	err = c.withBrowser(ctx, func(b browser.Browser) error {
		return c.eachEntity(ctx, b, len(candidates), &res.Errors, func(i int, page browser.Page) {
			if werr := limiter.Wait(ctx); werr != nil {
				res.Errors = append(res.Errors, werr.Error())
				return
			}
			found := c.Discovery.Discover(ctx, page, candidates[i].Blog)
			res.Findings = append(res.Findings, Finding{Name: candidates[i].Name, Blog: candidates[i].Blog, Feed: found})
		})
	})
	if err != nil {
		return nil, err
	}

	if res.Output, err = renderOutput(req.Format, res, func() string { return findingsMarkdown(res.Findings) }); err != nil {
		return nil, err
	}
	return res, nil
}

// withBrowser launches the engine, runs fn and unconditionally tears the
// browser and its scratch profile down. Each invocation gets its own
// session dir under the run's user-data dir, pipelines of one run may
// execute concurrently and must not remove each other's live profiles.
func (c *Coordinator) withBrowser(ctx context.Context, fn func(b browser.Browser) error) error {
	var sessionDir string
	if c.Run.UserDataDir != "" {
		if err := os.MkdirAll(c.Run.UserDataDir, 0o700); err != nil {
			return fmt.Errorf("create user data dir %s: %w", c.Run.UserDataDir, err)
		}
		var err error
		if sessionDir, err = os.MkdirTemp(c.Run.UserDataDir, "session-"); err != nil {
			return fmt.Errorf("create session profile dir: %w", err)
		}
	}

	opts := browser.LaunchOptions{UserDataDir: sessionDir, UserAgent: c.Run.UserAgent, NoSandbox: c.Run.NoSandbox}
	b, err := c.Engine.Launch(ctx, opts)
	if err != nil {
		if sessionDir != "" {
			_ = os.RemoveAll(sessionDir)
		}
		return fmt.Errorf("launch browser (check the browser runtime is installed and the profile dir is writable): %w", err)
	}
	defer func() {
		if cerr := b.Close(); cerr != nil {
			log.Printf("[WARN] close browser: %v", cerr)
		}
		if sessionDir != "" {
			if rerr := os.RemoveAll(sessionDir); rerr != nil {
				log.Printf("[WARN] remove session profile dir %s: %v", sessionDir, rerr)
			}
			// the shared parent goes away with the last finished session
			_ = os.Remove(c.Run.UserDataDir)
		}
	}()
	return fn(b)
}

// eachEntity walks entities in file order with the inter-entity delay,
// giving each one a fresh page. Page failures are recorded and skipped,
// a context cancellation stops the walk.
func (c *Coordinator) eachEntity(ctx context.Context, b browser.Browser, n int, errs *[]string, fn func(i int, page browser.Page)) error {
	limiter := c.Run.entityLimiter()
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		page, err := b.NewPage(ctx)
		if err != nil {
			*errs = append(*errs, fmt.Sprintf("new page: %v", err))
			continue
		}
		fn(i, page)
		if err := page.Close(); err != nil {
			log.Printf("[WARN] close page: %v", err)
		}
	}
	return nil
}

// renderOutput produces the requested representation of a result
func renderOutput(format string, v any, markdown func() string) (string, error) {
	if format == "markdown" {
		return markdown(), nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal output: %w", err)
	}
	return string(data), nil
}

func flattenUpdates(companies []domain.CompanyUpdates) []domain.UpdateItem {
	items := make([]domain.UpdateItem, 0, len(companies))
	for _, c := range companies {
		items = append(items, c.Updates...)
	}
	return items
}

func findingsMarkdown(findings []Finding) string {
	out := "# Feed Discovery\n\n"
	for _, f := range findings {
		if f.Feed == "" {
			out += fmt.Sprintf("- %s: no feed found for %s\n", f.Name, f.Blog)
			continue
		}
		out += fmt.Sprintf("- %s: %s\n", f.Name, f.Feed)
	}
	return out
}
