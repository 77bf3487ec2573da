package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
	"github.com/MaVoid-Team/MaVoid-Portfolio/viewstate"
)

type viewHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	hub          *store.Hub
	locales      *i18n.Provider
}

func newViewHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo, hub *store.Hub, locales *i18n.Provider) viewHandler {
	logger := log.With().Str("handlerName", "viewHandler").Logger()

	return viewHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
		locales:      locales,
	}
}

// ViewModel is the reconciled home view: the address bar, the filter
// bar, the grid and the detail view all derived from one snapshot.
type ViewModel struct {
	Locale           string            `json:"locale"`
	Dir              string            `json:"dir"`
	SelectedCategory string            `json:"selectedCategory"`
	Categories       []models.Category `json:"categories"`
	Counts           map[string]int    `json:"counts"`
	Projects         []models.Project  `json:"projects"`
	ViewedProject    *models.Project   `json:"viewedProject,omitempty"`
	DetailOpen       bool              `json:"detailOpen"`
	CanonicalQuery   string            `json:"canonicalQuery"`
	EmptyState       *EmptyState       `json:"emptyState,omitempty"`
}

// EmptyState is the defined no-results rendering for an empty filter.
type EmptyState struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h viewHandler) buildViewModel(ctrl *viewstate.Controller, locale i18n.Locale) ViewModel {
	snap := ctrl.Snapshot()

	vm := ViewModel{
		Locale:           string(locale),
		Dir:              i18n.Dir(locale),
		SelectedCategory: snap.SelectedCategory,
		Categories:       snap.Categories,
		Counts:           snap.Counts,
		Projects:         snap.Projects,
		ViewedProject:    snap.ViewedProject,
		DetailOpen:       snap.DetailOpen,
		CanonicalQuery:   snap.Query.Encode(),
	}
	if len(snap.Projects) == 0 {
		vm.EmptyState = &EmptyState{
			Title:       i18n.Resolve(locale, "noProjects", nil),
			Description: i18n.Resolve(locale, "noProjectsDesc", nil),
		}
	}
	if vm.Projects == nil {
		vm.Projects = []models.Project{}
	}
	return vm
}

// newController builds a per-request controller over the current
// collection contents. Read failures degrade to empty lists; the view
// renders its empty state, it never crashes.
func (h viewHandler) newController(r *http.Request) *viewstate.Controller {
	ctrl := viewstate.New(h.logger)

	projects, err := h.projectRepo.FindAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list projects for view")
		projects = nil
	}
	custom, err := h.categoryRepo.FindAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list custom categories for view")
		custom = nil
	}

	ctrl.SetProjects(projects)
	ctrl.SetCustomCategories(custom)
	ctrl.URLChanged(r.URL.Query())
	return ctrl
}

// getView resolves the URL contract once: the `project` parameter
// opens the detail view when the id resolves, and an unknown id leaves
// it closed with a 200, never a 404.
func (h viewHandler) getView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)
		ctrl := h.newController(r)
		h.responder.WriteJSON(w, h.buildViewModel(ctrl, locale))
	}
}

// streamView is the live home view: a per-connection controller fed by
// both collection subscriptions, re-reconciled and pushed on every
// change. A deep link to an id the list does not contain yet resolves
// automatically once a later snapshot carries it. Both subscriptions
// are torn down with the connection.
func (h viewHandler) streamView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)

		ctrl := viewstate.New(h.logger)
		ctrl.URLChanged(r.URL.Query())

		render := make(chan struct{}, 8)
		wake := func() {
			select {
			case render <- struct{}{}:
			default:
			}
		}

		ctx := sse.Context()
		cancelProjects := store.Feed(ctx, h.hub, store.CollectionProjects,
			func(_ context.Context) ([]models.Project, error) { return h.projectRepo.FindAll() },
			func(projects []models.Project) { ctrl.SetProjects(projects); wake() },
			nil)
		defer cancelProjects()

		cancelCategories := store.Feed(ctx, h.hub, store.CollectionCustomCategories,
			func(_ context.Context) ([]models.CustomCategory, error) { return h.categoryRepo.FindAll() },
			func(custom []models.CustomCategory) { ctrl.SetCustomCategories(custom); wake() },
			nil)
		defer cancelCategories()

		keepAlive := time.NewTicker(25 * time.Second)
		defer keepAlive.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				_ = sse.PatchSignals([]byte(`{}`))
			case <-render:
				if err := sse.MarshalAndPatchSignals(map[string]any{"view": h.buildViewModel(ctrl, locale)}); err != nil {
					return
				}
			}
		}
	}
}
