package admin

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

type fakeProjectStore struct {
	projects []models.Project
	addErr   error
}

func (f *fakeProjectStore) FindAll() ([]models.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			copied := f.projects[i]
			return &copied, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if f.addErr != nil {
		return f.addErr
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectStore) Update(project *models.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == project.ID {
			f.projects[i] = *project
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	kept := f.projects[:0]
	for _, p := range f.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.projects = kept
	return nil
}

type fakeCategoryStore struct {
	categories []models.CustomCategory
	addCalls   int
}

func (f *fakeCategoryStore) FindAll() ([]models.CustomCategory, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) Add(category *models.CustomCategory) error {
	f.addCalls++
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryStore) DeleteByValue(value string) error {
	kept := f.categories[:0]
	for _, c := range f.categories {
		if c.Value != value {
			kept = append(kept, c)
		}
	}
	f.categories = kept
	return nil
}

func newTestFlow(projects *fakeProjectStore, categories *fakeCategoryStore) *Flow {
	return NewFlow(projects, categories, "", zerolog.Nop())
}

func validInput() ProjectInput {
	return ProjectInput{
		Title:         "Shop",
		TitleAr:       "متجر",
		CategoryValue: "ecommerce",
		CategoryEn:    "E-commerce",
		CategoryAr:    "تجارة إلكترونية",
		Description:   "An online shop",
		DescriptionAr: "متجر إلكتروني",
		Image:         "https://example.com/shop.png",
	}
}

func TestFlow_CreateProjectRequiresBilingualFields(t *testing.T) {
	for _, field := range []string{"title", "titleAr", "description", "descriptionAr", "categoryValue"} {
		t.Run(field, func(t *testing.T) {
			store := &fakeProjectStore{}
			flow := newTestFlow(store, &fakeCategoryStore{})

			input := validInput()
			switch field {
			case "title":
				input.Title = "  "
			case "titleAr":
				input.TitleAr = ""
			case "description":
				input.Description = ""
			case "descriptionAr":
				input.DescriptionAr = ""
			case "categoryValue":
				input.CategoryValue = ""
			}

			_, err := flow.CreateProject(input)
			require.Error(t, err)

			var apiErr *errs.ApiErr
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, field, apiErr.Field)
			assert.Empty(t, store.projects, "invalid input must not reach the store")
		})
	}
}

func TestFlow_CreateProjectSubstitutesDefaultImage(t *testing.T) {
	store := &fakeProjectStore{}
	flow := newTestFlow(store, &fakeCategoryStore{})

	input := validInput()
	input.Image = "   "

	project, err := flow.CreateProject(input)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProjectImage, project.Image)
}

func TestFlow_CreateProjectKeepsSuppliedImage(t *testing.T) {
	flow := newTestFlow(&fakeProjectStore{}, &fakeCategoryStore{})

	project, err := flow.CreateProject(validInput())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/shop.png", project.Image)
}

func TestFlow_CreateProjectStoreFailureKeepsInputRetryable(t *testing.T) {
	store := &fakeProjectStore{addErr: errors.New("connection reset")}
	flow := newTestFlow(store, &fakeCategoryStore{})

	_, err := flow.CreateProject(validInput())
	require.Error(t, err)

	var storeErr *errs.StoreErr
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "projects", storeErr.Collection)

	// Same input succeeds once the store recovers.
	store.addErr = nil
	_, err = flow.CreateProject(validInput())
	assert.NoError(t, err)
}

func TestFlow_UpdateProjectIsFullReplace(t *testing.T) {
	existing := models.Project{
		ID:            uuid.New(),
		Title:         "Old",
		TitleAr:       "قديم",
		CategoryValue: "corporate",
		CategoryEn:    "Corporate",
		CategoryAr:    "شركات",
		Description:   "old desc",
		DescriptionAr: "وصف قديم",
		Image:         "https://example.com/old.png",
		Link:          "https://old.example.com",
	}
	existing.SetTheme(models.ColorTheme{Primary: "#111111"})

	store := &fakeProjectStore{projects: []models.Project{existing}}
	flow := newTestFlow(store, &fakeCategoryStore{})

	input := validInput()
	// Link and colors omitted from the form: the replace clears them.
	updated, err := flow.UpdateProject(existing.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Shop", updated.Title)
	assert.Equal(t, "ecommerce", updated.CategoryValue)
	assert.Empty(t, updated.Link)
	assert.Nil(t, updated.Theme())
	assert.Equal(t, "Shop", store.projects[0].Title, "replacement is persisted")
}

func TestFlow_UpdateMissingProject(t *testing.T) {
	flow := newTestFlow(&fakeProjectStore{}, &fakeCategoryStore{})

	_, err := flow.UpdateProject(uuid.New(), validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFlow_DeleteAbsentProjectSucceedsQuietly(t *testing.T) {
	flow := newTestFlow(&fakeProjectStore{}, &fakeCategoryStore{})

	assert.NoError(t, flow.DeleteProject(uuid.New()))
}

func TestFlow_CreateCategoryDerivesKeyFromEnglishLabel(t *testing.T) {
	categories := &fakeCategoryStore{}
	flow := newTestFlow(&fakeProjectStore{}, categories)

	category, err := flow.CreateCategory("Real Estate", "عقارات جديدة")
	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, errs.ErrCategoryExists, "realestate collides with a built-in")

	category, err = flow.CreateCategory("Mobile Apps", "تطبيقات الجوال")
	require.NoError(t, err)
	assert.Equal(t, "mobileapps", category.Value)
	assert.Equal(t, "Mobile Apps", category.LabelEn)
}

func TestFlow_CreateCategoryCollisionIsSilentAndWritesNothing(t *testing.T) {
	categories := &fakeCategoryStore{categories: []models.CustomCategory{
		{Value: "gaming", LabelEn: "Gaming", LabelAr: "ألعاب"},
	}}
	flow := newTestFlow(&fakeProjectStore{}, categories)

	// Whitespace and case differences still collide on the derived key.
	_, err := flow.CreateCategory(" GAMING ", "ألعاب")
	assert.ErrorIs(t, err, errs.ErrCategoryExists)
	assert.Zero(t, categories.addCalls, "conflict aborts before the store")
	assert.Len(t, categories.categories, 1)
}

func TestFlow_CreateCategoryCollidesWithProjectImpliedKey(t *testing.T) {
	store := &fakeProjectStore{projects: []models.Project{{
		ID:            uuid.New(),
		CategoryValue: "travel",
		CategoryEn:    "Travel",
		CategoryAr:    "سفر",
	}}}
	flow := newTestFlow(store, &fakeCategoryStore{})

	_, err := flow.CreateCategory("Travel", "سفر")
	assert.ErrorIs(t, err, errs.ErrCategoryExists)
}

func TestFlow_CreateCategoryRequiresBothLabels(t *testing.T) {
	flow := newTestFlow(&fakeProjectStore{}, &fakeCategoryStore{})

	_, err := flow.CreateCategory("Gaming", "  ")
	require.Error(t, err)

	var apiErr *errs.ApiErr
	assert.ErrorAs(t, err, &apiErr)
}

func TestFlow_DeleteCategoryRefusesBuiltins(t *testing.T) {
	flow := newTestFlow(&fakeProjectStore{}, &fakeCategoryStore{})

	for _, value := range []string{"all", "ecommerce", "corporate", "healthcare", "food", "realestate"} {
		assert.ErrorIs(t, flow.DeleteCategory(value), errs.ErrCategoryIsBuiltin, value)
	}
}

func TestFlow_DeleteCategoryDoesNotCascadeToProjects(t *testing.T) {
	projectID := uuid.New()
	store := &fakeProjectStore{projects: []models.Project{{
		ID:            projectID,
		CategoryValue: "gaming",
		CategoryEn:    "Gaming",
		CategoryAr:    "ألعاب",
	}}}
	categories := &fakeCategoryStore{categories: []models.CustomCategory{
		{Value: "gaming", LabelEn: "Gaming", LabelAr: "ألعاب"},
	}}
	flow := newTestFlow(store, categories)

	require.NoError(t, flow.DeleteCategory("gaming"))
	assert.Empty(t, categories.categories)
	assert.Equal(t, "gaming", store.projects[0].CategoryValue, "projects keep their copied labels")
}
