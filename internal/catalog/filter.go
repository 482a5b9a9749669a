// Package catalog holds the pure snapshot filters behind the destination and
// guide listings. Filtering is a function of (snapshot, criteria) only, so
// it can be recomputed on every input change without touching the store.
package catalog

import (
	"strings"

	"travelindia-backend/internal/models"
)

// FilterDestinations narrows a destination snapshot by category and search
// query, preserving the snapshot's order. The category must match exactly
// unless it is "all" (or empty); the query matches case-insensitively as a
// substring of name, city or state.
func FilterDestinations(items []models.Destination, query string, category models.DestinationCategory) []models.Destination {
	filtered := make([]models.Destination, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, d := range items {
		if category != "" && category != models.CategoryAll && d.Category != category {
			continue
		}
		if q != "" && !containsFold(q, d.Name, d.City, d.State) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered
}

// FilterGuides narrows a guide snapshot by search query, preserving the
// snapshot's order. The query matches case-insensitively as a substring of
// the guide's name, any specialization or any language.
func FilterGuides(items []models.GuideWithProfile, query string) []models.GuideWithProfile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	filtered := make([]models.GuideWithProfile, 0, len(items))
	for _, g := range items {
		fields := append([]string{g.FullName}, g.Specialization...)
		fields = append(fields, g.Languages...)
		if containsFold(q, fields...) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// containsFold reports whether any field contains the already-lowercased
// query as a substring, ignoring case.
func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
