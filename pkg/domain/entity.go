package domain

// Person represents a tracked individual with their monitored sources.
// All fields except Name are optional, an empty string means the source
// is not configured.
type Person struct {
	Name     string
	Blog     string
	RSSFeed  string
	LinkedIn string
	Twitter  string // handle without the @ prefix
}

// Company represents a tracked company with its monitored sources.
type Company struct {
	Name       string
	Category   string
	Blogs      []string
	Changelogs []string
	Twitter    string // full profile URL
}

// HasSources reports whether the company has at least one blog or changelog URL.
// Companies without sources produce no signal and are dropped during parsing.
func (c Company) HasSources() bool {
	return len(c.Blogs) > 0 || len(c.Changelogs) > 0
}
