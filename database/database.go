package database

import (
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo  *ProjectRepo
	categoryRepo *CategoryRepo
}

// New initializes a new Database struct with each repository using a
// shared GORM database instance. Every repo publishes to the hub after
// a successful write so live feeds pick the change up.
func New(db *gorm.DB, hub *store.Hub) Database {
	return Database{
		projectRepo:  NewProjectRepo(db, hub),
		categoryRepo: NewCategoryRepo(db, hub),
	}
}

// Migrate creates or updates the two collection tables.
func (d Database) Migrate(db *gorm.DB) error {
	return db.AutoMigrate(d.projectRepo.model(), d.categoryRepo.model())
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}
