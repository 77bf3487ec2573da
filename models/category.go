package models

import (
	"strings"

	"github.com/google/uuid"
)

// CustomCategory is an admin-created category stored in the
// customCategories collection. Built-in categories are never persisted.
type CustomCategory struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Value   string    `json:"value" gorm:"type:text;not null;index"`
	LabelEn string    `json:"labelEn" gorm:"type:text;not null"`
	LabelAr string    `json:"labelAr" gorm:"type:text"`
}

// TableName keeps the table aligned with the collection name the
// clients subscribe to.
func (CustomCategory) TableName() string { return "custom_categories" }

// Category is one entry of the derived category set shown in the
// filter bar. It merges built-in, project-implied and custom sources.
type Category struct {
	Value   string `json:"value"`
	LabelEn string `json:"labelEn"`
	LabelAr string `json:"labelAr"`
	Icon    string `json:"icon"`
}

// CategoryAll is the pseudo-category selecting every project.
const CategoryAll = "all"

// DefaultCategoryIcon is used for any category without a dedicated
// icon token, including all custom categories.
const DefaultCategoryIcon = "Folder"

// BuiltinCategories is the fixed category list, in display order.
// The "all" pseudo-category is not part of it; Derive prepends it.
var BuiltinCategories = []Category{
	{Value: "ecommerce", LabelEn: "E-Commerce", LabelAr: "التجارة الإلكترونية", Icon: "ShoppingCart"},
	{Value: "corporate", LabelEn: "Corporate", LabelAr: "الشركات", Icon: "Building2"},
	{Value: "healthcare", LabelEn: "Healthcare", LabelAr: "الرعاية الصحية", Icon: "Heart"},
	{Value: "food", LabelEn: "Food & Beverage", LabelAr: "الطعام والمشروبات", Icon: "Utensils"},
	{Value: "realestate", LabelEn: "Real Estate", LabelAr: "العقارات", Icon: "Home"},
}

// AllCategory is the count-all pseudo-category heading the filter bar.
var AllCategory = Category{
	Value:   CategoryAll,
	LabelEn: "All Projects",
	LabelAr: "جميع المشاريع",
	Icon:    "LayoutGrid",
}

// IsBuiltinCategory reports whether value names a built-in category.
// The "all" pseudo-category counts as built-in: it can never be
// shadowed or recreated either.
func IsBuiltinCategory(value string) bool {
	if value == CategoryAll {
		return true
	}
	for _, c := range BuiltinCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// DeriveCategoryKey derives a category key from its English label:
// lowercased with all whitespace stripped, so "Real Estate" and
// "real estate" both map to "realestate".
func DeriveCategoryKey(labelEn string) string {
	return strings.Join(strings.Fields(strings.ToLower(labelEn)), "")
}
