package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCategoryKey(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Real Estate", "realestate"},
		{"real estate", "realestate"},
		{"  GAMING  ", "gaming"},
		{"Food & Beverage", "food&beverage"},
		{"Mobile\tApps", "mobileapps"},
		{"one two three", "onetwothree"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveCategoryKey(tc.label), tc.label)
	}
}

func TestIsBuiltinCategory(t *testing.T) {
	for _, value := range []string{"all", "ecommerce", "corporate", "healthcare", "food", "realestate"} {
		assert.True(t, IsBuiltinCategory(value), value)
	}
	assert.False(t, IsBuiltinCategory("gaming"))
	assert.False(t, IsBuiltinCategory(""))
	assert.False(t, IsBuiltinCategory("Ecommerce"), "keys are case-sensitive lowercase")
}

func TestBuiltinCategoryIcons(t *testing.T) {
	icons := map[string]string{}
	for _, c := range BuiltinCategories {
		icons[c.Value] = c.Icon
	}
	assert.Equal(t, map[string]string{
		"ecommerce":  "ShoppingCart",
		"corporate":  "Building2",
		"healthcare": "Heart",
		"food":       "Utensils",
		"realestate": "Home",
	}, icons)
	assert.Equal(t, "LayoutGrid", AllCategory.Icon)
}

func TestProjectTheme(t *testing.T) {
	var p Project
	assert.Nil(t, p.Theme())

	p.SetTheme(ColorTheme{Primary: DefaultPrimaryColor, Secondary: DefaultSecondaryColor, Accent: DefaultAccentColor})
	theme := p.Theme()
	assert.NotNil(t, theme)
	assert.Equal(t, "#178aa0", theme.Primary)
}

func TestProjectMatchesQuery(t *testing.T) {
	p := Project{
		Title:      "Corporate Site",
		TitleAr:    "موقع شركة",
		CategoryEn: "Corporate",
		CategoryAr: "الشركات",
	}

	assert.True(t, p.MatchesQuery(""))
	assert.True(t, p.MatchesQuery("  corporate "))
	assert.True(t, p.MatchesQuery("شركة"))
	assert.False(t, p.MatchesQuery("gaming"))
}
