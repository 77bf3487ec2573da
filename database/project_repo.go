package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
)

type ProjectRepo struct {
	db  *gorm.DB
	hub *store.Hub
}

func NewProjectRepo(db *gorm.DB, hub *store.Hub) *ProjectRepo {
	return &ProjectRepo{db: db, hub: hub}
}

func (r *ProjectRepo) model() any {
	return &models.Project{}
}

// FindAll returns all projects, oldest first so the grid order is
// stable across snapshots.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at asc").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or ErrNotFound.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. The store assigns the id; creation and
// update stamps are set here.
func (r *ProjectRepo) Add(project *models.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	if err := r.db.Create(project).Error; err != nil {
		return err
	}
	r.hub.Notify(store.CollectionProjects)
	return nil
}

// Update replaces the full document and stamps a new update time.
// Partial patches are not supported; every field is resent.
func (r *ProjectRepo) Update(project *models.Project) error {
	project.UpdatedAt = time.Now().UTC()
	if err := r.db.Save(project).Error; err != nil {
		return err
	}
	r.hub.Notify(store.CollectionProjects)
	return nil
}

// Delete removes a project by id. Hard delete, no tombstone. Deleting
// an id that is already gone is not an error: a stale confirm click
// after a concurrent delete must stay a no-op.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return err
	}
	r.hub.Notify(store.CollectionProjects)
	return nil
}
