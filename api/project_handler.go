package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

type projectHandler struct {
	responder     Responder
	logger        zerolog.Logger
	projectRepo   *database.ProjectRepo
	flow          *admin.Flow
	deleteConfirm *admin.DeleteConfirm
	locales       *i18n.Provider
}

func newProjectHandler(projectRepo *database.ProjectRepo, flow *admin.Flow, locales *i18n.Provider) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		projectRepo:   projectRepo,
		flow:          flow,
		deleteConfirm: admin.NewDeleteConfirm(),
		locales:       locales,
	}
}

// ProjectCollection represents the full projects list
type ProjectCollection struct {
	Projects []models.Project `json:"projects"`
	Total    int              `json:"total"`
}

// getAllProjects retrieves all projects. Read failures degrade to an
// empty list rather than an error response.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to list projects")
			projects = nil
		}

		if projects == nil {
			projects = []models.Project{}
		}
		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, findErr := h.projectRepo.FindByID(projectID)
		if findErr != nil {
			if errs.IsNotFound(findErr) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, errs.NewStoreError("find", "projects", findErr))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project through the admin flow.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input admin.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, err := h.flow.CreateProject(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.logger.Info().
			Str("projectID", project.ID.String()).
			Str("intent", string(ctxIntent(r.Context()))).
			Msg("project created")

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)
		h.responder.WriteNotification(w, http.StatusCreated,
			i18n.Resolve(locale, "projectCreatedSuccess", nil),
			map[string]any{
				"project":     project,
				"description": i18n.Resolve(locale, "projectAddedDescription", map[string]string{"title": project.Title}),
			})
	}
}

// updateProject replaces a project document in full.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input admin.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project, flowErr := h.flow.UpdateProject(projectID, input)
		if flowErr != nil {
			h.responder.WriteError(w, flowErr)
			return
		}

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)
		h.responder.WriteNotification(w, http.StatusOK,
			i18n.Resolve(locale, "projectUpdatedSuccess", nil),
			map[string]any{"project": project})
	}
}

// deleteProject is the two-step confirm: the first call arms the
// confirmation for that row, the second executes it. Arming a
// different row disarms the previous one. A confirm for an id that was
// deleted concurrently still succeeds quietly.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		id := projectID.String()

		if !h.deleteConfirm.Confirm(id) {
			h.deleteConfirm.Arm(id)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusAccepted)
			h.responder.WriteJSON(w, map[string]any{
				"status":  "armed",
				"armedId": id,
			})
			return
		}

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)
		if err := h.flow.DeleteProject(projectID); err != nil {
			h.responder.WriteError(w, errs.NewInternalError(i18n.Resolve(locale, "projectDeletedError", nil)))
			return
		}

		h.responder.WriteNotification(w, http.StatusOK,
			i18n.Resolve(locale, "projectDeletedSuccess", nil), nil)
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
