package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
)

type CategoryRepo struct {
	db  *gorm.DB
	hub *store.Hub
}

func NewCategoryRepo(db *gorm.DB, hub *store.Hub) *CategoryRepo {
	return &CategoryRepo{db: db, hub: hub}
}

func (r *CategoryRepo) model() any {
	return &models.CustomCategory{}
}

// FindAll returns all custom categories.
func (r *CategoryRepo) FindAll() ([]models.CustomCategory, error) {
	var categories []models.CustomCategory
	err := r.db.Find(&categories).Error
	return categories, err
}

// FindByValue returns every document whose key matches value. Keys are
// expected to be unique among custom categories, but the store does
// not enforce it, so the result is a slice.
func (r *CategoryRepo) FindByValue(value string) ([]models.CustomCategory, error) {
	var categories []models.CustomCategory
	err := r.db.Where("value = ?", value).Find(&categories).Error
	return categories, err
}

// Add inserts a new custom category. Uniqueness against the derived
// category set is the admin flow's precondition, not enforced here.
func (r *CategoryRepo) Add(category *models.CustomCategory) error {
	if err := r.db.Create(category).Error; err != nil {
		return err
	}
	r.hub.Notify(store.CollectionCustomCategories)
	return nil
}

// DeleteByValue removes every document whose key matches value, not
// just the first. If the keyed query fails it falls back to a full
// collection scan and deletes matches individually; keyed queries
// against a freshly-changed schema can transiently fail.
func (r *CategoryRepo) DeleteByValue(value string) error {
	matches, err := r.FindByValue(value)
	if err != nil {
		log.Warn().Err(err).Str("value", value).Msg("keyed category query failed, falling back to full scan")
		return r.deleteByScan(value)
	}

	for _, match := range matches {
		if err := r.db.Delete(&models.CustomCategory{}, "id = ?", match.ID).Error; err != nil {
			return err
		}
	}

	r.hub.Notify(store.CollectionCustomCategories)
	return nil
}

func (r *CategoryRepo) deleteByScan(value string) error {
	all, err := r.FindAll()
	if err != nil {
		return err
	}

	for _, category := range all {
		if category.Value != value {
			continue
		}
		if err := r.db.Delete(&models.CustomCategory{}, "id = ?", category.ID).Error; err != nil {
			return err
		}
	}

	r.hub.Notify(store.CollectionCustomCategories)
	return nil
}
