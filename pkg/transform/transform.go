// Package transform provides pure functions applied to collected records:
// date-window filtering, link deduplication and recency sorting. All
// functions return new slices and never mutate their input. Orchestrators
// apply them in a fixed order: filter, then dedupe, then sort. The order
// matters because filtering first discards out-of-window duplicates before
// occurrence order decides which copy survives deduplication.
package transform

import (
	"sort"
	"time"
)

// Record is the common shape of Post and UpdateItem needed by transforms
type Record interface {
	Key() string
	PublishedAt() *time.Time
}

// FilterByDate keeps records published within the last daysBack days of now.
// Records without a publish time are kept, an undated item is assumed
// possibly-recent. The cutoff boundary is inclusive.
func FilterByDate[T Record](recs []T, daysBack int, now time.Time) []T {
	cutoff := now.AddDate(0, 0, -daysBack)

	result := make([]T, 0, len(recs))
	for _, r := range recs {
		if p := r.PublishedAt(); p != nil && p.Before(cutoff) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// Dedupe removes records with repeated keys, keeping the first occurrence
// in input order. Differing titles or sources do not matter, the link is
// the identity.
func Dedupe[T Record](recs []T) []T {
	seen := make(map[string]struct{}, len(recs))
	result := make([]T, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		result = append(result, r)
	}
	return result
}

// SortByDate orders records most recent first. Records without a publish
// time sort after all dated records and keep their relative input order.
func SortByDate[T Record](recs []T) []T {
	result := make([]T, len(recs))
	copy(result, recs)

	sort.SliceStable(result, func(i, j int) bool {
		pi, pj := result[i].PublishedAt(), result[j].PublishedAt()
		switch {
		case pi == nil && pj == nil:
			return false
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})
	return result
}
