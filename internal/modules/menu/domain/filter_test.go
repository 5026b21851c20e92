package domain

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

var testCategories = []MenuCategory{
	{ID: "cat-mains", Name: "Traditional Mains", DisplayOrder: 1},
	{ID: "cat-veg", Name: "Vegetarian", DisplayOrder: 2},
	{ID: "cat-drinks", Name: "Beverages", DisplayOrder: 3},
}

var testItems = []MenuItem{
	{ID: "item-1", Name: "Doro Wot", Description: "Chicken stew simmered in berbere", Price: 18.99, IsSpicy: true, Ingredients: []string{"chicken", "berbere", "onion"}, CategoryID: "cat-mains", DisplayOrder: 1},
	{ID: "item-2", Name: "Vegetarian Combo", Description: "A tour of our lentil and vegetable dishes", Price: 15.99, IsVegetarian: true, Ingredients: []string{"lentils", "cabbage", "injera"}, CategoryID: "cat-veg", DisplayOrder: 1},
	{ID: "item-3", Name: "Misir Wot", Description: "Red lentils in spiced sauce", Price: 13.50, IsVegetarian: true, IsSpicy: true, Ingredients: []string{"lentils", "berbere"}, CategoryID: "cat-veg", DisplayOrder: 2},
	{ID: "item-4", Name: "Ethiopian Coffee", Description: "Traditional coffee ceremony", Price: 4.99, IsVegetarian: true, Ingredients: []string{"coffee beans"}, CategoryID: "cat-drinks", DisplayOrder: 1},
}

func TestFilterSearchTerm(t *testing.T) {
	cases := []struct {
		name     string
		search   string
		expected []string
	}{
		{name: "matches name", search: "coffee", expected: []string{"item-4"}},
		{name: "matches description", search: "ceremony", expected: []string{"item-4"}},
		{name: "matches ingredient", search: "berbere", expected: []string{"item-1", "item-3"}},
		{name: "case insensitive", search: "DORO", expected: []string{"item-1"}},
		{name: "no match", search: "xyz", expected: nil},
		{name: "empty matches all", search: "", expected: []string{"item-1", "item-2", "item-3", "item-4"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			groups := Filter(testItems, testCategories, Criteria{Search: tc.search})
			var got []string
			for _, g := range groups {
				for _, item := range g.Items {
					got = append(got, item.ID)
				}
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestFilterCategory(t *testing.T) {
	groups := Filter(testItems, testCategories, Criteria{CategoryID: "cat-veg"})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Category.ID != "cat-veg" {
		t.Fatalf("unexpected category: %s", groups[0].Category.ID)
	}
	if len(groups[0].Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(groups[0].Items))
	}
}

func TestFilterDietaryFlagsCombine(t *testing.T) {
	groups := Filter(testItems, testCategories, Criteria{VegetarianOnly: true, SpicyOnly: true})
	count := 0
	for _, g := range groups {
		for _, item := range g.Items {
			count++
			if !item.IsVegetarian || !item.IsSpicy {
				t.Fatalf("item %s does not satisfy both flags", item.ID)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 item, got %d", count)
	}
}

func TestFilterDropsEmptyCategoriesAndOrdersByDisplayOrder(t *testing.T) {
	shuffled := []MenuCategory{testCategories[2], testCategories[0], testCategories[1]}
	groups := Filter(testItems, shuffled, Criteria{Search: "lentils"})
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	groups = Filter(testItems, shuffled, Criteria{})
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	for i := 1; i < len(groups); i++ {
		if groups[i-1].Category.DisplayOrder > groups[i].Category.DisplayOrder {
			t.Fatalf("categories out of display order at %d", i)
		}
	}
}

func TestFilterPreservesItemOrderWithinCategory(t *testing.T) {
	groups := Filter(testItems, testCategories, Criteria{CategoryID: "cat-veg"})
	ids := []string{groups[0].Items[0].ID, groups[0].Items[1].ID}
	if !reflect.DeepEqual(ids, []string{"item-2", "item-3"}) {
		t.Fatalf("unexpected item order: %v", ids)
	}
}

func TestFilterIdempotent(t *testing.T) {
	criteria := Criteria{Search: "wot", SpicyOnly: true}
	first := Filter(testItems, testCategories, criteria)
	second := Filter(testItems, testCategories, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical results on repeated runs")
	}
}

// Randomized property check: every output item belongs to the input set and
// satisfies all active predicates, and nothing satisfying them is dropped.
func TestFilterPropertyRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{"coffee", "lentil", "beef", "injera", "honey", "berbere"}

	for round := 0; round < 50; round++ {
		categories := make([]MenuCategory, 3)
		for i := range categories {
			categories[i] = MenuCategory{
				ID:           fmt.Sprintf("cat-%d", i),
				Name:         fmt.Sprintf("Category %d", i),
				DisplayOrder: rng.Intn(10),
			}
		}

		items := make([]MenuItem, rng.Intn(20))
		for i := range items {
			items[i] = MenuItem{
				ID:           fmt.Sprintf("item-%d", i),
				Name:         words[rng.Intn(len(words))] + " dish",
				Description:  words[rng.Intn(len(words))],
				Ingredients:  []string{words[rng.Intn(len(words))]},
				IsVegetarian: rng.Intn(2) == 0,
				IsSpicy:      rng.Intn(2) == 0,
				CategoryID:   categories[rng.Intn(len(categories))].ID,
			}
		}

		criteria := Criteria{
			Search:         words[rng.Intn(len(words))],
			VegetarianOnly: rng.Intn(2) == 0,
			SpicyOnly:      rng.Intn(2) == 0,
		}
		if rng.Intn(2) == 0 {
			criteria.CategoryID = categories[rng.Intn(len(categories))].ID
		}

		byID := make(map[string]MenuItem, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}

		seen := make(map[string]bool)
		for _, group := range Filter(items, categories, criteria) {
			for _, item := range group.Items {
				if _, ok := byID[item.ID]; !ok {
					t.Fatalf("round %d: item %s not in input set", round, item.ID)
				}
				if !criteria.Matches(item) {
					t.Fatalf("round %d: item %s fails active predicates", round, item.ID)
				}
				if seen[item.ID] {
					t.Fatalf("round %d: item %s appears twice", round, item.ID)
				}
				seen[item.ID] = true
			}
		}

		for _, item := range items {
			if criteria.Matches(item) && !seen[item.ID] {
				t.Fatalf("round %d: matching item %s was dropped", round, item.ID)
			}
		}
	}
}
