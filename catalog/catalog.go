// Package catalog derives the category set shown in the filter bar
// from its three sources: the fixed built-in list, categories implied
// by existing projects, and admin-created custom categories.
package catalog

import (
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

// Derive builds the ordered category set. Order is deterministic:
// the "all" pseudo-category, the built-ins in declaration order,
// project-implied categories in project list order, then custom
// categories not already discovered. Keys dedup first-writer-wins, so
// built-ins can never be shadowed by project or custom data. Pure: no
// error conditions, recompute whenever either input changes.
func Derive(projects []models.Project, custom []models.CustomCategory) []models.Category {
	seen := make(map[string]struct{}, len(models.BuiltinCategories)+len(projects)+len(custom)+1)
	result := make([]models.Category, 0, len(models.BuiltinCategories)+len(custom)+1)

	add := func(c models.Category) {
		if _, ok := seen[c.Value]; ok {
			return
		}
		seen[c.Value] = struct{}{}
		result = append(result, c)
	}

	add(models.AllCategory)
	for _, c := range models.BuiltinCategories {
		add(c)
	}

	for _, p := range projects {
		add(models.Category{
			Value:   p.CategoryValue,
			LabelEn: p.CategoryEn,
			LabelAr: p.CategoryAr,
			Icon:    models.DefaultCategoryIcon,
		})
	}

	for _, c := range custom {
		labelAr := c.LabelAr
		if labelAr == "" {
			labelAr = c.LabelEn
		}
		add(models.Category{
			Value:   c.Value,
			LabelEn: c.LabelEn,
			LabelAr: labelAr,
			Icon:    models.DefaultCategoryIcon,
		})
	}

	return result
}

// Filter returns the projects in the given category. The "all" key
// selects everything. Filtering by an unknown or since-deleted key
// yields an empty list, which the grid renders as its no-results
// state; it is not an error.
func Filter(projects []models.Project, categoryValue string) []models.Project {
	if categoryValue == models.CategoryAll {
		return projects
	}

	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.CategoryValue == categoryValue {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Counts returns the number of projects per category key. The "all"
// entry counts every project.
func Counts(projects []models.Project) map[string]int {
	counts := make(map[string]int, len(projects)+1)
	counts[models.CategoryAll] = len(projects)
	for _, p := range projects {
		counts[p.CategoryValue]++
	}
	return counts
}

// Known reports whether a key is present in the derived set built from
// the given inputs. The admin flow uses it as the uniqueness
// precondition for new custom categories.
func Known(projects []models.Project, custom []models.CustomCategory, value string) bool {
	if models.IsBuiltinCategory(value) {
		return true
	}
	for _, p := range projects {
		if p.CategoryValue == value {
			return true
		}
	}
	for _, c := range custom {
		if c.Value == value {
			return true
		}
	}
	return false
}
