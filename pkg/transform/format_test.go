package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/trackscope/pkg/domain"
)

func TestPeopleMarkdown(t *testing.T) {
	published := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	activities := []domain.PersonActivity{
		{
			Name: "Jane Doe",
			Posts: []domain.Post{
				{Title: "Thoughts on agents", Link: "https://jane.dev/agents", Published: &published, Source: domain.SourceBlogRSS},
				{Title: "A tweet", Link: "https://twitter.com/jane/status/1", Source: domain.SourceTwitter},
			},
			Errors: []string{},
		},
		{
			Name:   "John Silent",
			Posts:  []domain.Post{},
			Errors: []string{"LinkedIn error: LinkedIn login required (public scraping limited)"},
		},
	}

	out := PeopleMarkdown(activities)

	assert.Contains(t, out, "## Active People (1)")
	assert.Contains(t, out, "### Jane Doe")
	assert.Contains(t, out, "**From blog_rss:**")
	assert.Contains(t, out, "**From twitter:**")
	assert.Contains(t, out, "(2025-06-10)")
	assert.Contains(t, out, "(No date)")
	assert.Contains(t, out, "## Inactive People (1)")
	assert.Contains(t, out, "- John Silent")
	assert.Contains(t, out, "Errors: LinkedIn error")
}

func TestCompanyMarkdown(t *testing.T) {
	published := time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC)

	updates := []domain.UpdateItem{
		{
			Title:       "v2.1 released",
			Link:        "https://acme.dev/changelog#v21",
			Published:   &published,
			Source:      domain.SourceChangelog,
			SourceURL:   "https://acme.dev/changelog",
			Description: "Bug fixes and a new API",
			Company:     "Acme",
			Category:    "Infrastructure",
		},
		{
			Title:     "Intro post",
			Link:      "https://acme.dev/blog/intro",
			Source:    domain.SourceBlog,
			SourceURL: "https://acme.dev/blog",
			Company:   "Acme",
			Category:  "Infrastructure",
		},
		{
			Title:     "Other co news",
			Link:      "https://other.io/news/1",
			Source:    domain.SourceBlog,
			SourceURL: "https://other.io/news",
			Company:   "Other",
		},
	}

	out := CompanyMarkdown(updates)

	assert.Contains(t, out, "## Acme")
	assert.Contains(t, out, "*Category: Infrastructure*")
	assert.Contains(t, out, "### v2.1 released")
	assert.Contains(t, out, "**Published:** 2025-06-12T09:30:00Z")
	assert.Contains(t, out, "**Source:** changelog (https://acme.dev/changelog)")
	assert.Contains(t, out, "**Summary:** Bug fixes and a new API")
	assert.Contains(t, out, "## Other")
	// undated item has no published line
	assert.NotContains(t, out, "**Published:** \n")
}

func TestNewsMarkdown(t *testing.T) {
	mentions := []domain.NewsMention{
		{Company: "Acme", Category: "Infrastructure", Title: "Acme raises round", Link: "https://news.example.com/1", Outlet: "TechWire", Date: "2 days ago"},
		{Company: "Acme", Title: "Acme ships feature", Link: "https://news.example.com/2"},
	}

	out := NewsMarkdown(mentions)
	assert.Contains(t, out, "# Recent News Mentions")
	assert.Contains(t, out, "## Acme")
	assert.Contains(t, out, "**Source:** TechWire")
	assert.Contains(t, out, "**Date:** 2 days ago")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 60))
	long := "this title is definitely longer than ten characters total"
	assert.Equal(t, "this title...", truncate(long, 10))
}
