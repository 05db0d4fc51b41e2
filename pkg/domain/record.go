package domain

import "time"

// Source identifies which adapter produced a record
type Source string

// source tags, stable values consumed by the digest synthesizer
const (
	SourceBlogRSS    Source = "blog_rss"
	SourceBlogScrape Source = "blog_scrape"
	SourceLinkedIn   Source = "linkedin"
	SourceTwitter    Source = "twitter"
	SourceBlog       Source = "blog"
	SourceChangelog  Source = "changelog"
)

// Post is a single piece of activity attributed to a person.
// Link is the identity used for deduplication, a nil Published means
// the publish time could not be determined.
type Post struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Published   *time.Time `json:"published"`
	Source      Source     `json:"source"`
	Description string     `json:"description,omitempty"`
}

// Key returns the deduplication identity of the post
func (p Post) Key() string { return p.Link }

// PublishedAt returns the publish time, nil when unknown
func (p Post) PublishedAt() *time.Time { return p.Published }

// UpdateItem is a single piece of activity attributed to a company.
// It carries the specific source URL that produced it plus company
// metadata propagated for grouping.
type UpdateItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Published   *time.Time `json:"published"`
	Source      Source     `json:"source"`
	SourceURL   string     `json:"sourceUrl"`
	Description string     `json:"description,omitempty"`
	Company     string     `json:"company"`
	Category    string     `json:"category,omitempty"`
}

// Key returns the deduplication identity of the update
func (u UpdateItem) Key() string { return u.Link }

// PublishedAt returns the publish time, nil when unknown
func (u UpdateItem) PublishedAt() *time.Time { return u.Published }

// NewsMention is a search-engine result mentioning a company. Dates come
// back as raw strings ("2 days ago", "14 Mar 2025") and are kept verbatim,
// news search is best-effort and not part of the normalized record flow.
type NewsMention struct {
	Company  string `json:"company"`
	Category string `json:"category,omitempty"`
	Title    string `json:"title"`
	Link     string `json:"link"`
	Outlet   string `json:"source,omitempty"`
	Date     string `json:"date,omitempty"`
}

// PersonActivity aggregates everything collected for one person in a run.
// Errors accumulates adapter failures, an empty list with no posts means
// the person was checked and nothing was found.
type PersonActivity struct {
	Name   string   `json:"name"`
	Posts  []Post   `json:"posts"`
	Errors []string `json:"errors"`
}

// CompanyUpdates aggregates everything collected for one company in a run
type CompanyUpdates struct {
	Name    string       `json:"name"`
	Updates []UpdateItem `json:"updates"`
	Errors  []string     `json:"errors"`
}
