package admin

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MaVoid-Team/MaVoid-Portfolio/catalog"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

// ProjectStore is the slice of the projects collection the flow needs.
type ProjectStore interface {
	FindAll() ([]models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// CategoryStore is the slice of the customCategories collection the
// flow needs.
type CategoryStore interface {
	FindAll() ([]models.CustomCategory, error)
	Add(category *models.CustomCategory) error
	DeleteByValue(value string) error
}

// ProjectInput carries the add/edit form fields. The store assigns the
// id on create; timestamps are stamped by the repository.
type ProjectInput struct {
	Title         string             `json:"title"`
	TitleAr       string             `json:"titleAr"`
	CategoryValue string             `json:"categoryValue"`
	CategoryEn    string             `json:"categoryEn"`
	CategoryAr    string             `json:"categoryAr"`
	Description   string             `json:"description"`
	DescriptionAr string             `json:"descriptionAr"`
	Image         string             `json:"image"`
	Link          string             `json:"link"`
	CustomColors  *models.ColorTheme `json:"customColors"`
}

// Flow performs the gated mutations. It never updates local list state
// itself: the live subscription is the single source of truth for list
// contents, so callers see a mutation only once the store's change
// notification lands.
type Flow struct {
	projects   ProjectStore
	categories CategoryStore

	defaultImage string
	logger       zerolog.Logger
}

func NewFlow(projects ProjectStore, categories CategoryStore, defaultImage string, logger zerolog.Logger) *Flow {
	if defaultImage == "" {
		defaultImage = models.DefaultProjectImage
	}
	return &Flow{
		projects:     projects,
		categories:   categories,
		defaultImage: defaultImage,
		logger:       logger.With().Str("component", "admin-flow").Logger(),
	}
}

// validate checks the required fields of the add/edit form.
func (f *Flow) validate(input ProjectInput) error {
	for _, field := range []struct{ name, value string }{
		{"title", input.Title},
		{"titleAr", input.TitleAr},
		{"description", input.Description},
		{"descriptionAr", input.DescriptionAr},
		{"categoryValue", input.CategoryValue},
	} {
		if strings.TrimSpace(field.value) == "" {
			return errs.NewValidationError(field.name+" is required", field.name)
		}
	}
	return nil
}

func (f *Flow) apply(project *models.Project, input ProjectInput) {
	project.Title = strings.TrimSpace(input.Title)
	project.TitleAr = strings.TrimSpace(input.TitleAr)
	project.CategoryValue = input.CategoryValue
	project.CategoryEn = input.CategoryEn
	project.CategoryAr = input.CategoryAr
	project.Description = strings.TrimSpace(input.Description)
	project.DescriptionAr = strings.TrimSpace(input.DescriptionAr)
	project.Image = input.Image
	project.Link = strings.TrimSpace(input.Link)
	if input.CustomColors != nil {
		project.SetTheme(*input.CustomColors)
	} else {
		project.CustomColors = nil
	}
}

// CreateProject validates the form, substitutes the default image when
// none was supplied, and submits to the store. On failure the caller
// keeps the form state intact for retry; nothing is lost.
func (f *Flow) CreateProject(input ProjectInput) (*models.Project, error) {
	if err := f.validate(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Image) == "" {
		input.Image = f.defaultImage
	}

	var project models.Project
	f.apply(&project, input)
	if err := f.projects.Add(&project); err != nil {
		f.logger.Error().Err(err).Str("title", project.Title).Msg("project create failed")
		return nil, errs.NewStoreError("create", "projects", err)
	}
	return &project, nil
}

// UpdateProject is a full-document replace: every field is resent even
// if unchanged, and a new update timestamp is stamped.
func (f *Flow) UpdateProject(id uuid.UUID, input ProjectInput) (*models.Project, error) {
	if err := f.validate(input); err != nil {
		return nil, err
	}

	existing, err := f.projects.FindByID(id)
	if err != nil {
		return nil, errs.NewStoreError("find", "projects", err)
	}
	if strings.TrimSpace(input.Image) == "" {
		input.Image = f.defaultImage
	}

	f.apply(existing, input)
	if err := f.projects.Update(existing); err != nil {
		f.logger.Error().Err(err).Str("projectID", id.String()).Msg("project update failed")
		return nil, errs.NewStoreError("update", "projects", err)
	}
	return existing, nil
}

// DeleteProject removes a project. Deleting an id that is already gone
// succeeds quietly: the second click of a stale confirm must not
// throw. The list only reflects the deletion once the change
// notification arrives; there is no optimistic removal.
func (f *Flow) DeleteProject(id uuid.UUID) error {
	if err := f.projects.Delete(id); err != nil {
		f.logger.Error().Err(err).Str("projectID", id.String()).Msg("project delete failed")
		return errs.NewStoreError("delete", "projects", err)
	}
	return nil
}

// CreateCategory derives the key from the English label and checks
// uniqueness against the union of built-in, known custom and
// project-implied categories. On collision it aborts locally without a
// store round-trip: a warn log only, no user-visible error. That
// silence matches the shipped behavior and is deliberately preserved.
func (f *Flow) CreateCategory(labelEn, labelAr string) (*models.CustomCategory, error) {
	labelEn = strings.TrimSpace(labelEn)
	labelAr = strings.TrimSpace(labelAr)
	if labelEn == "" || labelAr == "" {
		return nil, errs.NewValidationError("both category labels are required", "labelEn")
	}

	value := models.DeriveCategoryKey(labelEn)

	projects, err := f.projects.FindAll()
	if err != nil {
		return nil, errs.NewStoreError("list", "projects", err)
	}
	custom, err := f.categories.FindAll()
	if err != nil {
		return nil, errs.NewStoreError("list", "customCategories", err)
	}

	if catalog.Known(projects, custom, value) {
		f.logger.Warn().Str("value", value).Msg("category already exists")
		return nil, errs.ErrCategoryExists
	}

	category := &models.CustomCategory{
		Value:   value,
		LabelEn: labelEn,
		LabelAr: labelAr,
	}
	if err := f.categories.Add(category); err != nil {
		f.logger.Error().Err(err).Str("value", value).Msg("category create failed")
		return nil, errs.NewStoreError("create", "customCategories", err)
	}
	return category, nil
}

// DeleteCategory removes every custom category document whose key
// matches the value. Built-ins are never deletable. Deletion does not
// cascade: projects keep their own copy of the labels and stay
// displayable with an orphaned key.
func (f *Flow) DeleteCategory(value string) error {
	if models.IsBuiltinCategory(value) {
		return errs.ErrCategoryIsBuiltin
	}
	if err := f.categories.DeleteByValue(value); err != nil {
		f.logger.Error().Err(err).Str("value", value).Msg("category delete failed")
		return errs.NewStoreError("delete", "customCategories", err)
	}
	return nil
}
