package catalog

import (
	"reflect"
	"testing"

	"travelindia-backend/internal/models"
)

func destinationSnapshot() []models.Destination {
	return []models.Destination{
		{ID: "d1", Name: "Taj Mahal", City: "Agra", State: "Uttar Pradesh", Category: models.CategoryHeritage, Rating: 4.9},
		{ID: "d2", Name: "Backwaters of Alleppey", City: "Alappuzha", State: "Kerala", Category: models.CategoryNature, Rating: 4.8},
		{ID: "d3", Name: "Golden Temple", City: "Amritsar", State: "Punjab", Category: models.CategorySpiritual, Rating: 4.8},
		{ID: "d4", Name: "Jaipur City Palace", City: "Jaipur", State: "Rajasthan", Category: models.CategoryHeritage, Rating: 4.7},
		{ID: "d5", Name: "Palolem Beach", City: "Canacona", State: "Goa", Category: models.CategoryBeach, Rating: 4.6},
	}
}

func ids(items []models.Destination) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.ID
	}
	return out
}

func TestFilterDestinationsByCategory(t *testing.T) {
	snapshot := destinationSnapshot()

	categories := []models.DestinationCategory{
		models.CategoryHeritage, models.CategoryNature, models.CategoryAdventure,
		models.CategorySpiritual, models.CategoryBeach,
	}

	for _, category := range categories {
		got := FilterDestinations(snapshot, "", category)

		want := []string{}
		for _, d := range snapshot {
			if d.Category == category {
				want = append(want, d.ID)
			}
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("category %q: got %v, want %v", category, ids(got), want)
		}
	}
}

func TestFilterDestinationsAllCategoryReturnsEverything(t *testing.T) {
	snapshot := destinationSnapshot()

	for _, category := range []models.DestinationCategory{models.CategoryAll, ""} {
		got := FilterDestinations(snapshot, "", category)
		if !reflect.DeepEqual(ids(got), ids(snapshot)) {
			t.Errorf("category %q: got %v, want full snapshot in order", category, ids(got))
		}
	}
}

func TestFilterDestinationsQueryIsCaseInsensitive(t *testing.T) {
	snapshot := destinationSnapshot()

	for _, query := range []string{"taj", "TAJ", "tAj"} {
		got := FilterDestinations(snapshot, query, models.CategoryAll)
		if len(got) != 1 || got[0].ID != "d1" {
			t.Fatalf("query %q: got %v, want [d1]", query, ids(got))
		}
	}
}

func TestFilterDestinationsMatchesCityAndState(t *testing.T) {
	snapshot := destinationSnapshot()

	byCity := FilterDestinations(snapshot, "amritsar", models.CategoryAll)
	if len(byCity) != 1 || byCity[0].ID != "d3" {
		t.Errorf("city query: got %v, want [d3]", ids(byCity))
	}

	byState := FilterDestinations(snapshot, "kerala", models.CategoryAll)
	if len(byState) != 1 || byState[0].ID != "d2" {
		t.Errorf("state query: got %v, want [d2]", ids(byState))
	}
}

func TestFilterDestinationsResultsAreASubset(t *testing.T) {
	snapshot := destinationSnapshot()
	inSnapshot := map[string]bool{}
	for _, d := range snapshot {
		inSnapshot[d.ID] = true
	}

	for _, query := range []string{"a", "temple", "beach", "zzz", ""} {
		got := FilterDestinations(snapshot, query, models.CategoryAll)
		if len(got) > len(snapshot) {
			t.Fatalf("query %q: result larger than snapshot", query)
		}
		for _, d := range got {
			if !inSnapshot[d.ID] {
				t.Errorf("query %q: result %s not in snapshot", query, d.ID)
			}
		}
	}
}

func TestFilterDestinationsCombinesQueryAndCategory(t *testing.T) {
	snapshot := destinationSnapshot()

	got := FilterDestinations(snapshot, "ja", models.CategoryHeritage)
	// "ja" matches Taj Mahal and Jaipur City Palace, both heritage.
	if !reflect.DeepEqual(ids(got), []string{"d1", "d4"}) {
		t.Errorf("got %v, want [d1 d4]", ids(got))
	}

	got = FilterDestinations(snapshot, "ja", models.CategoryBeach)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", ids(got))
	}
}

func TestFilterDestinationsEmptyResultIsEmptySlice(t *testing.T) {
	got := FilterDestinations(destinationSnapshot(), "nowhere", models.CategoryAll)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func guideSnapshot() []models.GuideWithProfile {
	return []models.GuideWithProfile{
		{Guide: models.Guide{ID: "g1", Specialization: []string{"heritage", "spiritual"}, Languages: []string{"English", "Hindi", "Malayalam"}, Rating: 4.9}, FullName: "Priya Nair"},
		{Guide: models.Guide{ID: "g2", Specialization: []string{"adventure", "nature"}, Languages: []string{"English", "Hindi"}, Rating: 4.6}, FullName: "Arjun Mehta"},
		{Guide: models.Guide{ID: "g3", Specialization: []string{"heritage", "beach"}, Languages: []string{"English", "Konkani", "French"}, Rating: 4.8}, FullName: "Kavita Iyer"},
	}
}

func guideIDs(items []models.GuideWithProfile) []string {
	out := make([]string, len(items))
	for i, g := range items {
		out[i] = g.ID
	}
	return out
}

func TestFilterGuidesByName(t *testing.T) {
	got := FilterGuides(guideSnapshot(), "priya")
	if !reflect.DeepEqual(guideIDs(got), []string{"g1"}) {
		t.Errorf("got %v, want [g1]", guideIDs(got))
	}
}

func TestFilterGuidesBySpecializationAndLanguage(t *testing.T) {
	bySpec := FilterGuides(guideSnapshot(), "HERITAGE")
	if !reflect.DeepEqual(guideIDs(bySpec), []string{"g1", "g3"}) {
		t.Errorf("specialization query: got %v, want [g1 g3]", guideIDs(bySpec))
	}

	byLang := FilterGuides(guideSnapshot(), "french")
	if !reflect.DeepEqual(guideIDs(byLang), []string{"g3"}) {
		t.Errorf("language query: got %v, want [g3]", guideIDs(byLang))
	}
}

func TestFilterGuidesEmptyQueryReturnsSnapshot(t *testing.T) {
	snapshot := guideSnapshot()
	got := FilterGuides(snapshot, "")
	if !reflect.DeepEqual(guideIDs(got), guideIDs(snapshot)) {
		t.Errorf("got %v, want full snapshot in order", guideIDs(got))
	}
}
