package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ColorTheme is the optional per-project color override used for card
// borders, gradients and accents.
type ColorTheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Default theme colors offered by the add-project form.
const (
	DefaultPrimaryColor   = "#178aa0"
	DefaultSecondaryColor = "#0f6a7a"
	DefaultAccentColor    = "#5fb8c7"
)

// DefaultProjectImage is substituted when a project is created without
// an image URL.
const DefaultProjectImage = "https://images.unsplash.com/photo-1677469684112-5dfb3aa4d3df?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"

// Project is a portfolio entry. The category labels are copied onto
// the project at creation time, not normalized: a project stays
// displayable even after its custom category is deleted.
type Project struct {
	ID            uuid.UUID                       `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string                          `json:"title" gorm:"type:text;not null"`
	TitleAr       string                          `json:"titleAr" gorm:"type:text;not null"`
	CategoryValue string                          `json:"categoryValue" gorm:"type:text;not null;index"`
	CategoryEn    string                          `json:"categoryEn" gorm:"type:text;not null"`
	CategoryAr    string                          `json:"categoryAr" gorm:"type:text;not null"`
	Description   string                          `json:"description" gorm:"type:text;not null"`
	DescriptionAr string                          `json:"descriptionAr" gorm:"type:text;not null"`
	Image         string                          `json:"image" gorm:"type:text;not null"`
	Link          string                          `json:"link,omitempty" gorm:"type:text"`
	CustomColors  *datatypes.JSONType[ColorTheme] `json:"customColors,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time                       `json:"createdAt"`
	UpdatedAt     time.Time                       `json:"updatedAt"`
}

// Theme returns the project's color override, or nil when the project
// uses the site-wide palette.
func (p *Project) Theme() *ColorTheme {
	if p.CustomColors == nil {
		return nil
	}
	theme := p.CustomColors.Data()
	return &theme
}

// SetTheme stores a color override on the project.
func (p *Project) SetTheme(theme ColorTheme) {
	wrapped := datatypes.NewJSONType(theme)
	p.CustomColors = &wrapped
}

// MatchesQuery reports whether the project matches a free-text search
// over either language's title or category label.
func (p *Project) MatchesQuery(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range []string{p.Title, p.TitleAr, p.CategoryEn, p.CategoryAr} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
