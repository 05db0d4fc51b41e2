// Package scheduler runs full collection and digest cycles, once on
// demand from the CLI or periodically in server mode.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/trackscope/pkg/domain"
	"github.com/umputun/trackscope/pkg/llm"
	"github.com/umputun/trackscope/pkg/pipeline"
	"github.com/umputun/trackscope/pkg/repository"
	"github.com/umputun/trackscope/pkg/transform"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector
//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/digest_store.go -pkg mocks -skip-ensure -fmt goimports . DigestStore
//go:generate moq -out mocks/synthesizer.go -pkg mocks -skip-ensure -fmt goimports . Synthesizer

// Collector runs the collection pipelines
type Collector interface {
	PeopleActivity(ctx context.Context, req pipeline.Request) (*pipeline.PeopleResult, error)
	CompanyUpdates(ctx context.Context, req pipeline.Request) (*pipeline.CompaniesResult, error)
	CompanyNews(ctx context.Context, req pipeline.Request) (*pipeline.NewsReport, error)
}

// ItemStore persists collected items and recalls recently stored links
type ItemStore interface {
	SaveItems(ctx context.Context, items []repository.Item) error
	RecentLinks(ctx context.Context, since time.Time) ([]string, error)
}

// DigestStore persists synthesized digests
type DigestStore interface {
	SaveDigest(ctx context.Context, d repository.Digest) error
}

// Synthesizer produces the digest text from formatted briefs
type Synthesizer interface {
	Synthesize(ctx context.Context, req llm.SynthesizeRequest) (string, error)
}

// Runner executes one collection and digest cycle. The three pipelines
// run concurrently, each with its own browser.
type Runner struct {
	Collector   Collector
	Items       ItemStore
	Digests     DigestStore
	Synth       Synthesizer
	PeopleFile  string
	CompanyFile string
	Model       string
	DaysBack    int // 0 takes per-pipeline defaults
	ContextDays int
	NowFn       func() time.Time
}

func (r *Runner) now() time.Time {
	if r.NowFn != nil {
		return r.NowFn()
	}
	return time.Now()
}

// RunDigest collects everything, stores the items and synthesizes one
// digest for the day. Links stored by earlier runs within the context
// window are passed to the synthesizer as already covered.
func (r *Runner) RunDigest(ctx context.Context) (string, error) {
	now := r.now()
	runID := now.Format("20060102-150405")

	covered, err := r.Items.RecentLinks(ctx, now.AddDate(0, 0, -r.ContextDays))
	if err != nil {
		return "", fmt.Errorf("recent links: %w", err)
	}

	var people *pipeline.PeopleResult
	var companies *pipeline.CompaniesResult
	var news *pipeline.NewsReport

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		people, err = r.Collector.PeopleActivity(gctx, pipeline.Request{File: r.PeopleFile, DaysBack: r.DaysBack})
		return err
	})
	g.Go(func() (err error) {
		companies, err = r.Collector.CompanyUpdates(gctx, pipeline.Request{File: r.CompanyFile, DaysBack: r.DaysBack})
		return err
	})
	g.Go(func() (err error) {
		news, err = r.Collector.CompanyNews(gctx, pipeline.Request{File: r.CompanyFile, DaysBack: r.DaysBack})
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("collect: %w", err)
	}

	items := repository.ItemsFromActivities(runID, people.Activities)
	items = append(items, repository.ItemsFromUpdates(runID, companies.Companies)...)
	items = append(items, repository.ItemsFromMentions(runID, news.Mentions)...)
	if err := r.Items.SaveItems(ctx, items); err != nil {
		return "", fmt.Errorf("save collected items: %w", err)
	}
	lgr.Printf("[INFO] run %s: stored %d items", runID, len(items))

	digest, err := r.Synth.Synthesize(ctx, llm.SynthesizeRequest{
		Date:         now,
		PeopleBrief:  transform.PeopleMarkdown(people.Activities),
		CompanyBrief: transform.CompanyMarkdown(flattenUpdates(companies.Companies)),
		NewsBrief:    transform.NewsMarkdown(news.Mentions),
		CoveredLinks: covered,
	})
	if err != nil {
		return "", fmt.Errorf("synthesize digest: %w", err)
	}

	rec := repository.Digest{Date: now.Format("2006-01-02"), Content: digest, Model: r.Model}
	if err := r.Digests.SaveDigest(ctx, rec); err != nil {
		return "", fmt.Errorf("save digest: %w", err)
	}
	return digest, nil
}

func flattenUpdates(companies []domain.CompanyUpdates) []domain.UpdateItem {
	var updates []domain.UpdateItem
	for _, c := range companies {
		updates = append(updates, c.Updates...)
	}
	return updates
}
