package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

func projectWithCategory(value, labelEn, labelAr string) models.Project {
	return models.Project{
		ID:            uuid.New(),
		Title:         "Title",
		TitleAr:       "عنوان",
		CategoryValue: value,
		CategoryEn:    labelEn,
		CategoryAr:    labelAr,
	}
}

func TestDerive_EmptyInputs(t *testing.T) {
	categories := Derive(nil, nil)

	// "all" first, then the five built-ins
	require.Len(t, categories, 6)
	assert.Equal(t, models.CategoryAll, categories[0].Value)
	assert.Equal(t, "LayoutGrid", categories[0].Icon)
	assert.Equal(t, "ecommerce", categories[1].Value)
	assert.Equal(t, "realestate", categories[5].Value)
}

func TestDerive_AllFirstAndKeysUnique(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("ecommerce", "E-Commerce", "التجارة الإلكترونية"),
		projectWithCategory("gaming", "Gaming", "الألعاب"),
		projectWithCategory("gaming", "Gaming", "الألعاب"),
	}
	custom := []models.CustomCategory{
		{Value: "gaming", LabelEn: "Gaming"},
		{Value: "travel", LabelEn: "Travel", LabelAr: "السفر"},
	}

	categories := Derive(projects, custom)

	assert.Equal(t, models.CategoryAll, categories[0].Value)

	seen := map[string]int{}
	for _, c := range categories {
		seen[c.Value]++
	}
	for value, count := range seen {
		assert.Equal(t, 1, count, "key %q appears more than once", value)
	}
}

func TestDerive_BuiltinsNeverOverridden(t *testing.T) {
	// Conflicting labels on project and custom data must not shadow
	// the built-in entry.
	projects := []models.Project{
		projectWithCategory("corporate", "Shadowed Corporate", "ظل"),
	}
	custom := []models.CustomCategory{
		{Value: "healthcare", LabelEn: "Shadowed Healthcare"},
	}

	categories := Derive(projects, custom)

	for _, c := range categories {
		switch c.Value {
		case "corporate":
			assert.Equal(t, "Corporate", c.LabelEn)
			assert.Equal(t, "Building2", c.Icon)
		case "healthcare":
			assert.Equal(t, "Healthcare", c.LabelEn)
			assert.Equal(t, "Heart", c.Icon)
		}
	}
}

func TestDerive_Ordering(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("gaming", "Gaming", "الألعاب"),
		projectWithCategory("education", "Education", "التعليم"),
	}
	custom := []models.CustomCategory{
		{Value: "education", LabelEn: "Education"}, // already discovered via project
		{Value: "travel", LabelEn: "Travel", LabelAr: "السفر"},
	}

	categories := Derive(projects, custom)

	var order []string
	for _, c := range categories {
		order = append(order, c.Value)
	}
	assert.Equal(t, []string{"all", "ecommerce", "corporate", "healthcare", "food", "realestate", "gaming", "education", "travel"}, order)
}

func TestDerive_ProjectImpliedUsesOwnLabelsAndDefaultIcon(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("gaming", "Gaming", "الألعاب"),
	}

	categories := Derive(projects, nil)

	last := categories[len(categories)-1]
	assert.Equal(t, "gaming", last.Value)
	assert.Equal(t, "Gaming", last.LabelEn)
	assert.Equal(t, "الألعاب", last.LabelAr)
	assert.Equal(t, models.DefaultCategoryIcon, last.Icon)
}

func TestDerive_CustomCategoryArabicFallsBackToEnglish(t *testing.T) {
	custom := []models.CustomCategory{
		{Value: "travel", LabelEn: "Travel"},
	}

	categories := Derive(nil, custom)

	last := categories[len(categories)-1]
	assert.Equal(t, "Travel", last.LabelAr)
}

func TestFilter_UnknownKeyYieldsEmptyNotError(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("ecommerce", "E-Commerce", "التجارة الإلكترونية"),
	}

	filtered := Filter(projects, "nonexistent")
	assert.Empty(t, filtered)
}

func TestFilter_AllSelectsEverything(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("ecommerce", "E-Commerce", "التجارة الإلكترونية"),
		projectWithCategory("gaming", "Gaming", "الألعاب"),
	}

	assert.Len(t, Filter(projects, models.CategoryAll), 2)
	assert.Len(t, Filter(projects, "gaming"), 1)
}

func TestCounts(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("ecommerce", "E-Commerce", "التجارة الإلكترونية"),
		projectWithCategory("ecommerce", "E-Commerce", "التجارة الإلكترونية"),
		projectWithCategory("gaming", "Gaming", "الألعاب"),
	}

	counts := Counts(projects)
	assert.Equal(t, 3, counts[models.CategoryAll])
	assert.Equal(t, 2, counts["ecommerce"])
	assert.Equal(t, 1, counts["gaming"])
	assert.Zero(t, counts["corporate"])
}

func TestKnown(t *testing.T) {
	projects := []models.Project{
		projectWithCategory("gaming", "Gaming", "الألعاب"),
	}
	custom := []models.CustomCategory{
		{Value: "travel", LabelEn: "Travel"},
	}

	assert.True(t, Known(nil, nil, "all"))
	assert.True(t, Known(nil, nil, "corporate"))
	assert.True(t, Known(projects, custom, "gaming"))
	assert.True(t, Known(projects, custom, "travel"))
	assert.False(t, Known(projects, custom, "education"))
}
