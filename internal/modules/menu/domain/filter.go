package domain

import (
	"sort"
	"strings"
)

// Criteria is the set of filter predicates applied to the item catalog. Zero
// values deactivate the corresponding predicate.
type Criteria struct {
	Search         string
	CategoryID     string
	VegetarianOnly bool
	SpicyOnly      bool
}

// CategoryGroup is one rendered menu section: a category plus the items that
// survived filtering, in their source order.
type CategoryGroup struct {
	Category MenuCategory `json:"category"`
	Items    []MenuItem   `json:"items"`
}

// Matches reports whether the item satisfies every active predicate. The
// search term matches case-insensitively against name, description, or any
// ingredient; an empty term matches everything.
func (c Criteria) Matches(item MenuItem) bool {
	if c.CategoryID != "" && item.CategoryID != c.CategoryID {
		return false
	}
	if c.VegetarianOnly && !item.IsVegetarian {
		return false
	}
	if c.SpicyOnly && !item.IsSpicy {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(c.Search))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, ingredient := range item.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), term) {
			return true
		}
	}
	return false
}

// Filter derives the grouped menu view: items satisfying all active predicates,
// grouped by category in ascending display order, with empty groups dropped.
// Items keep their relative order from the source fetch. Pure function; calling
// it again with the same inputs yields the same result.
func Filter(items []MenuItem, categories []MenuCategory, criteria Criteria) []CategoryGroup {
	matched := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if criteria.Matches(item) {
			matched = append(matched, item)
		}
	}

	ordered := make([]MenuCategory, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	groups := make([]CategoryGroup, 0, len(ordered))
	for _, category := range ordered {
		group := CategoryGroup{Category: category}
		for _, item := range matched {
			if item.CategoryID == category.ID {
				group.Items = append(group.Items, item)
			}
		}
		if len(group.Items) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
