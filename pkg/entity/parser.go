// Package entity parses the human-maintained markdown documents listing
// tracked people and companies. Parsing is deliberately structural and
// heuristic: sections split on "## " headings, fields found by label
// substring, URLs classified by substring. Ambiguous source URLs default
// to the blog list, downstream consumers depend on that categorization.
package entity

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/umputun/trackscope/pkg/domain"
)

var (
	urlRe      = regexp.MustCompile(`https?://[^\s\)]+`)
	handleRe   = regexp.MustCompile(`@\w+`)
	categoryRe = regexp.MustCompile(`\*\*Category:\*\* (.+)`)
)

// ParsePeopleFile reads and parses a people.md document
func ParsePeopleFile(path string) ([]domain.Person, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read people file: %w", err)
	}
	return ParsePeople(string(content)), nil
}

// ParsePeople extracts person records from markdown content. A missing
// label yields an empty field, never an error.
func ParsePeople(content string) []domain.Person {
	var people []domain.Person

	sections := strings.Split(content, "\n## ")
	for _, section := range sections[1:] {
		lines := strings.Split(section, "\n")
		person := domain.Person{Name: strings.TrimSpace(lines[0])}

		for _, line := range lines {
			switch {
			case strings.Contains(line, "Blog:") || strings.Contains(line, "blog:"):
				if u := firstURL(line); u != "" {
					person.Blog = u
				}
			case strings.Contains(line, "RSS Feed:") || strings.Contains(line, "rss feed:") || strings.Contains(line, "RSS:"):
				if u := firstURL(line); u != "" {
					person.RSSFeed = u
				}
			case strings.Contains(line, "LinkedIn:"):
				if u := firstURL(line); u != "" {
					person.LinkedIn = u
				}
			case strings.Contains(line, "Twitter/X:") || strings.Contains(line, "Twitter:"):
				if h := handleRe.FindString(line); h != "" {
					person.Twitter = strings.TrimPrefix(h, "@")
				}
			}
		}

		people = append(people, person)
	}

	return people
}

// ParseCompaniesFile reads and parses a companies.md document
func ParseCompaniesFile(path string) ([]domain.Company, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read companies file: %w", err)
	}
	return ParseCompanies(string(content)), nil
}

// ParseCompanies extracts company records from markdown content. Companies
// with no blog and no changelog URLs are dropped, they produce no signal.
func ParseCompanies(content string) []domain.Company {
	var companies []domain.Company

	sections := strings.Split(content, "\n## ")
	for _, section := range sections[1:] {
		lines := strings.Split(section, "\n")
		company := domain.Company{Name: strings.TrimSpace(lines[0])}

		if m := categoryRe.FindStringSubmatch(section); m != nil {
			company.Category = strings.TrimSpace(m[1])
		}

		inSources := false
		for _, line := range lines {
			if strings.Contains(line, "**Primary sources:**") {
				inSources = true
				continue
			}
			if !inSources {
				continue
			}
			if strings.TrimSpace(line) == "" && len(company.Blogs) > 0 {
				break
			}
			if strings.HasPrefix(line, "---") {
				break
			}

			for _, u := range urlRe.FindAllString(line, -1) {
				classifySourceURL(&company, cleanURL(u))
			}
			if h := handleRe.FindString(line); h != "" && !strings.Contains(line, "http") {
				company.Twitter = "https://twitter.com/" + strings.TrimPrefix(h, "@")
			}
		}

		if company.HasSources() {
			companies = append(companies, company)
		}
	}

	return companies
}

// classifySourceURL routes a primary-source URL into the blog, changelog
// or twitter slot. The precedence is load-bearing: changelog markers are
// checked before the generic default so "docs/changelog" lands in
// changelogs, and anything ambiguous falls back to the blog list.
func classifySourceURL(c *domain.Company, u string) {
	switch {
	case strings.Contains(u, "changelog") || strings.Contains(u, "release-notes"):
		c.Changelogs = append(c.Changelogs, u)
	case strings.Contains(u, "twitter.com") || strings.Contains(u, "x.com"):
		c.Twitter = u
	case strings.Contains(u, "blog") || strings.Contains(u, "news") || strings.Contains(u, "updates"):
		c.Blogs = append(c.Blogs, u)
	case !strings.Contains(u, "docs"):
		c.Blogs = append(c.Blogs, u)
	}
}

func firstURL(line string) string {
	return cleanURL(urlRe.FindString(line))
}

func cleanURL(u string) string {
	u = strings.TrimSuffix(u, ",")
	return strings.TrimSuffix(u, ")")
}
