package repository

import (
	"github.com/umputun/trackscope/pkg/domain"
)

// ItemsFromActivities flattens people activity into storable items
func ItemsFromActivities(runID string, activities []domain.PersonActivity) []Item {
	var items []Item
	for _, act := range activities {
		for _, p := range act.Posts {
			items = append(items, Item{
				RunID:       runID,
				Kind:        KindPeople,
				Entity:      act.Name,
				Title:       p.Title,
				Link:        p.Link,
				Published:   p.Published,
				Source:      string(p.Source),
				Description: p.Description,
			})
		}
	}
	return items
}

// ItemsFromUpdates flattens company updates into storable items
func ItemsFromUpdates(runID string, companies []domain.CompanyUpdates) []Item {
	var items []Item
	for _, c := range companies {
		for _, u := range c.Updates {
			items = append(items, Item{
				RunID:       runID,
				Kind:        KindCompanies,
				Entity:      c.Name,
				Category:    u.Category,
				Title:       u.Title,
				Link:        u.Link,
				Published:   u.Published,
				Source:      string(u.Source),
				SourceURL:   u.SourceURL,
				Description: u.Description,
			})
		}
	}
	return items
}

// ItemsFromMentions converts news mentions into storable items
func ItemsFromMentions(runID string, mentions []domain.NewsMention) []Item {
	var items []Item
	for _, m := range mentions {
		items = append(items, Item{
			RunID:    runID,
			Kind:     KindNews,
			Entity:   m.Company,
			Category: m.Category,
			Title:    m.Title,
			Link:     m.Link,
			Source:   m.Outlet,
		})
	}
	return items
}
