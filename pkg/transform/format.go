package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/trackscope/pkg/domain"
)

// PeopleMarkdown renders per-person activity as a markdown report with
// active people first, grouped by source, followed by the inactive list
// with any accumulated errors.
func PeopleMarkdown(activities []domain.PersonActivity) string {
	var sb strings.Builder
	sb.WriteString("# People Activity Report\n\n")

	active := make([]domain.PersonActivity, 0, len(activities))
	inactive := make([]domain.PersonActivity, 0, len(activities))
	for _, a := range activities {
		if len(a.Posts) > 0 {
			active = append(active, a)
			continue
		}
		inactive = append(inactive, a)
	}

	fmt.Fprintf(&sb, "## Active People (%d)\n\n", len(active))
	for _, a := range active {
		fmt.Fprintf(&sb, "### %s\n", a.Name)
		fmt.Fprintf(&sb, "**Posts:** %d\n", len(a.Posts))

		// group by source, preserving first-seen source order
		order := []domain.Source{}
		bySource := map[domain.Source][]domain.Post{}
		for _, p := range a.Posts {
			if _, ok := bySource[p.Source]; !ok {
				order = append(order, p.Source)
			}
			bySource[p.Source] = append(bySource[p.Source], p)
		}

		for _, src := range order {
			fmt.Fprintf(&sb, "\n**From %s:**\n", src)
			posts := bySource[src]
			if len(posts) > 5 {
				posts = posts[:5]
			}
			for _, p := range posts {
				fmt.Fprintf(&sb, "- [%s](%s) (%s)\n", truncate(p.Title, 60), p.Link, dateLabel(p.Published))
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n## Inactive People (%d)\n\n", len(inactive))
	for _, a := range inactive {
		fmt.Fprintf(&sb, "- %s\n", a.Name)
		if len(a.Errors) > 0 {
			fmt.Fprintf(&sb, "  - Errors: %s\n", strings.Join(a.Errors, "; "))
		}
	}

	return sb.String()
}

// CompanyMarkdown renders company updates grouped by company, one heading
// per company with a nested heading per item.
func CompanyMarkdown(updates []domain.UpdateItem) string {
	var sb strings.Builder
	sb.WriteString("# Recent Company Updates\n\n")

	order := []string{}
	byCompany := map[string][]domain.UpdateItem{}
	for _, u := range updates {
		if _, ok := byCompany[u.Company]; !ok {
			order = append(order, u.Company)
		}
		byCompany[u.Company] = append(byCompany[u.Company], u)
	}

	for _, name := range order {
		fmt.Fprintf(&sb, "## %s\n", name)
		items := byCompany[name]
		if items[0].Category != "" {
			fmt.Fprintf(&sb, "*Category: %s*\n\n", items[0].Category)
		}

		for _, u := range items {
			fmt.Fprintf(&sb, "### %s\n", u.Title)
			fmt.Fprintf(&sb, "**Link:** %s\n", u.Link)
			if u.Published != nil {
				fmt.Fprintf(&sb, "**Published:** %s\n", u.Published.Format(time.RFC3339))
			}
			fmt.Fprintf(&sb, "**Source:** %s (%s)\n", u.Source, u.SourceURL)
			if u.Description != "" {
				fmt.Fprintf(&sb, "**Summary:** %s\n", u.Description)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// NewsMarkdown renders news mentions grouped by company
func NewsMarkdown(mentions []domain.NewsMention) string {
	var sb strings.Builder
	sb.WriteString("# Recent News Mentions\n\n")

	order := []string{}
	byCompany := map[string][]domain.NewsMention{}
	for _, m := range mentions {
		if _, ok := byCompany[m.Company]; !ok {
			order = append(order, m.Company)
		}
		byCompany[m.Company] = append(byCompany[m.Company], m)
	}

	for _, name := range order {
		fmt.Fprintf(&sb, "## %s\n", name)
		items := byCompany[name]
		if items[0].Category != "" {
			fmt.Fprintf(&sb, "*Category: %s*\n\n", items[0].Category)
		}
		for _, m := range items {
			fmt.Fprintf(&sb, "### %s\n", m.Title)
			fmt.Fprintf(&sb, "**Link:** %s\n", m.Link)
			if m.Outlet != "" {
				fmt.Fprintf(&sb, "**Source:** %s\n", m.Outlet)
			}
			if m.Date != "" {
				fmt.Fprintf(&sb, "**Date:** %s\n", m.Date)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func dateLabel(t *time.Time) string {
	if t == nil {
		return "No date"
	}
	return t.Format("2006-01-02")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
