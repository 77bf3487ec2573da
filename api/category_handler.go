package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/catalog"
	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	flow         *admin.Flow
	locales      *i18n.Provider
}

func newCategoryHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo, flow *admin.Flow, locales *i18n.Provider) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		flow:         flow,
		locales:      locales,
	}
}

// CategorySet is the derived category response: the ordered set plus
// per-category project counts.
type CategorySet struct {
	Categories []models.Category `json:"categories"`
	Counts     map[string]int    `json:"counts"`
}

// getCategories returns the derived category set: built-ins first,
// then project-implied, then custom, deduplicated by key. Read
// failures degrade to the built-in-only set.
func (h categoryHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to list projects for category derivation")
			projects = nil
		}
		custom, err := h.categoryRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to list custom categories")
			custom = nil
		}

		h.responder.WriteJSON(w, CategorySet{
			Categories: catalog.Derive(projects, custom),
			Counts:     catalog.Counts(projects),
		})
	}
}

type createCategoryRequest struct {
	LabelEn string `json:"labelEn"`
	LabelAr string `json:"labelAr"`
}

// createCategory creates a custom category nested in the add-project
// flow. A key collision aborts locally without a store write and
// without a user-visible error: the response is an empty 204, matching
// the shipped behavior.
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		category, err := h.flow.CreateCategory(req.LabelEn, req.LabelAr)
		if errors.Is(err, errs.ErrCategoryExists) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes every custom category document matching the
// key. Projects referencing the key keep their own label copies. The
// success body names the first built-in as fallbackCategory: a form
// whose selected category was just deleted resets its selection to
// it.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := chi.URLParam(r, "categoryValue")
		if value == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing categoryValue"))
			return
		}

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)

		if err := h.flow.DeleteCategory(value); err != nil {
			if errors.Is(err, errs.ErrCategoryIsBuiltin) {
				h.responder.WriteError(w, errs.NewForbiddenError("built-in categories cannot be deleted"))
				return
			}
			h.responder.WriteError(w, errs.NewInternalError(i18n.Resolve(locale, "categoryDeleteError", nil)))
			return
		}

		h.responder.WriteNotification(w, http.StatusOK,
			i18n.Resolve(locale, "categoryDeletedSuccess", nil),
			map[string]any{"fallbackCategory": models.BuiltinCategories[0].Value})
	}
}
