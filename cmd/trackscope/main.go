package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/trackscope/pkg/browser"
	"github.com/umputun/trackscope/pkg/config"
	"github.com/umputun/trackscope/pkg/content"
	"github.com/umputun/trackscope/pkg/llm"
	"github.com/umputun/trackscope/pkg/pipeline"
	"github.com/umputun/trackscope/pkg/repository"
	"github.com/umputun/trackscope/pkg/scheduler"
	"github.com/umputun/trackscope/server"
)

// Opts with all CLI options. The first positional argument selects the
// command: people, companies, news, feeds, digest or server.
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	File   string `long:"file" env:"FILE" description:"entities file, overrides the configured one"`
	Days   int    `short:"d" long:"days" env:"DAYS" description:"recency window in days, 0 takes the command default"`
	Format string `long:"format" env:"FORMAT" default:"json" choice:"json" choice:"markdown" description:"output format"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"write result to file instead of stdout"`
	NoSave bool   `long:"no-save" description:"don't persist collected items"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] people|companies|news|feeds|digest|server"
	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	command := "server"
	if len(args) > 0 {
		command = args[0]
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err = run(ctx, opts, command)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %s failed: %v", command, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts, command string) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var secrets []string
	if cfg.Digest.APIKey != "" {
		secrets = append(secrets, cfg.Digest.APIKey)
	}
	setupLog(opts.Debug, secrets...)
	if opts.NoColor {
		color.NoColor = true
	}
	log.Printf("[INFO] starting trackscope %s, version %s", command, revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			log.Printf("[WARN] close database: %v", cerr)
		}
	}()

	app := &application{cfg: cfg, repos: repos, opts: opts}

	if command == "server" {
		if cfg.Digest.Every > 0 {
			runner, rerr := app.digestRunner()
			if rerr != nil {
				return rerr
			}
			sched := scheduler.NewScheduler(runner, cfg.Digest.Every)
			sched.Start(ctx)
			defer sched.Stop()
		}
		srv := server.New(cfg, repos.Item, repos.Digest, revision, opts.Debug)
		return srv.Run(ctx)
	}

	switch command {
	case "people":
		return app.runPeople(ctx)
	case "companies":
		return app.runCompanies(ctx)
	case "news":
		return app.runNews(ctx)
	case "feeds":
		return app.runFeeds(ctx)
	case "digest":
		return app.runDigest(ctx)
	default:
		return fmt.Errorf("unknown command %q, use people, companies, news, feeds, digest or server", command)
	}
}

// application bundles the pieces collection commands share
type application struct {
	cfg   *config.Config
	repos *repository.Repositories
	opts  Opts
}

// coordinator builds the collection coordinator with a scratch browser
// profile, removed by the coordinator after the run
func (a *application) coordinator() (*pipeline.Coordinator, error) {
	profileDir, err := os.MkdirTemp("", "trackscope-profile-")
	if err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	rc := pipeline.RunContext{
		RunID:       time.Now().Format("20060102-150405"),
		UserDataDir: profileDir,
		UserAgent:   a.cfg.Collect.UserAgent,
		NoSandbox:   a.cfg.Collect.NoSandbox,
		StepDelay:   a.cfg.Collect.StepDelay,
		EntityDelay: a.cfg.Collect.EntityDelay,
	}
	return pipeline.NewCoordinator(browser.NewHTTPEngine(), rc), nil
}

func (a *application) request(defaultFile string) pipeline.Request {
	file := a.opts.File
	if file == "" {
		file = defaultFile
	}
	return pipeline.Request{File: file, DaysBack: a.opts.Days, Format: a.opts.Format}
}

func (a *application) runPeople(ctx context.Context) error {
	coord, err := a.coordinator()
	if err != nil {
		return err
	}

	res, err := coord.PeopleActivity(ctx, a.request(a.cfg.Collect.PeopleFile))
	if err != nil {
		return err
	}

	if a.cfg.Extraction.Enabled {
		enricher := a.enricher()
		for i := range res.Activities {
			res.Activities[i].Posts = enricher.EnrichPosts(ctx, res.Activities[i].Posts)
		}
	}

	if !a.opts.NoSave {
		if err := a.repos.Item.SaveItems(ctx, repository.ItemsFromActivities(coord.Run.RunID, res.Activities)); err != nil {
			return fmt.Errorf("save people items: %w", err)
		}
	}
	return a.emit(res.Output)
}

func (a *application) runCompanies(ctx context.Context) error {
	coord, err := a.coordinator()
	if err != nil {
		return err
	}

	res, err := coord.CompanyUpdates(ctx, a.request(a.cfg.Collect.CompanyFile))
	if err != nil {
		return err
	}

	if !a.opts.NoSave {
		if err := a.repos.Item.SaveItems(ctx, repository.ItemsFromUpdates(coord.Run.RunID, res.Companies)); err != nil {
			return fmt.Errorf("save company items: %w", err)
		}
	}
	return a.emit(res.Output)
}

func (a *application) runNews(ctx context.Context) error {
	coord, err := a.coordinator()
	if err != nil {
		return err
	}

	res, err := coord.CompanyNews(ctx, a.request(a.cfg.Collect.CompanyFile))
	if err != nil {
		return err
	}

	if !a.opts.NoSave {
		if err := a.repos.Item.SaveItems(ctx, repository.ItemsFromMentions(coord.Run.RunID, res.Mentions)); err != nil {
			return fmt.Errorf("save news items: %w", err)
		}
	}
	return a.emit(res.Output)
}

func (a *application) runFeeds(ctx context.Context) error {
	coord, err := a.coordinator()
	if err != nil {
		return err
	}

	res, err := coord.FindFeeds(ctx, a.request(a.cfg.Collect.PeopleFile))
	if err != nil {
		return err
	}
	return a.emit(res.Output)
}

// runDigest runs all three collection pipelines and synthesizes a digest
// from the results
func (a *application) runDigest(ctx context.Context) error {
	runner, err := a.digestRunner()
	if err != nil {
		return err
	}
	digest, err := runner.RunDigest(ctx)
	if err != nil {
		return err
	}
	return a.emit(digest)
}

// digestRunner builds the full collection and synthesis cycle
func (a *application) digestRunner() (*scheduler.Runner, error) {
	coord, err := a.coordinator()
	if err != nil {
		return nil, err
	}

	peopleFile, companyFile := a.cfg.Collect.PeopleFile, a.cfg.Collect.CompanyFile
	if a.opts.File != "" {
		peopleFile, companyFile = a.opts.File, a.opts.File
	}

	return &scheduler.Runner{
		Collector:   coord,
		Items:       a.repos.Item,
		Digests:     a.repos.Digest,
		Synth:       llm.NewSynthesizer(a.cfg.Digest),
		PeopleFile:  peopleFile,
		CompanyFile: companyFile,
		Model:       a.cfg.Digest.Model,
		DaysBack:    a.opts.Days,
		ContextDays: a.cfg.Digest.ContextDays,
	}, nil
}

func (a *application) enricher() *content.Enricher {
	extractor := content.NewHTTPExtractor(a.cfg.Extraction.Timeout, a.cfg.Extraction.UserAgent)
	return content.NewEnricher(extractor, a.cfg.Extraction.RateLimit, a.cfg.Extraction.MinTextLength)
}

// emit writes the result to the output file or stdout
func (a *application) emit(out string) error {
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if a.opts.Output != "" {
		if err := os.WriteFile(a.opts.Output, []byte(out), 0o600); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Printf("[INFO] result written to %s", a.opts.Output)
		return nil
	}
	fmt.Print(out)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
