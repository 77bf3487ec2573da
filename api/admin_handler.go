package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
)

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	gate        *admin.Gate
	issuer      tokenIssuer
	projectRepo *database.ProjectRepo
	locales     *i18n.Provider
}

func newAdminHandler(gate *admin.Gate, issuer tokenIssuer, projectRepo *database.ProjectRepo, locales *i18n.Provider) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		gate:        gate,
		issuer:      issuer,
		projectRepo: projectRepo,
		locales:     locales,
	}
}

type verifyRequest struct {
	Passkey string `json:"passkey"`
	Intent  string `json:"intent"`
}

// verifyPasskey checks the shared secret for one of the two admin
// intents. On match it returns a short-lived token unlocking exactly
// that intent. On mismatch it returns the transient error contract:
// the inline message plus how long until it auto-clears; retries are
// unlimited without reloading the form.
func (h adminHandler) verifyPasskey() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		intent := admin.Intent(req.Intent)
		if intent != admin.IntentAdd && intent != admin.IntentEdit {
			h.responder.WriteError(w, errs.NewBadRequestError("intent must be add or edit"))
			return
		}

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)

		unlocked, ok := h.gate.Verify(req.Passkey, intent)
		if !ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			h.responder.WriteJSON(w, map[string]any{
				"status":        "error",
				"error":         i18n.Resolve(locale, "passkeyModal.errorMessage", nil),
				"clearsAfterMs": admin.ErrorClearDelay.Milliseconds(),
			})
			return
		}

		token, err := h.issuer.Issue(unlocked)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue admin token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue admin token"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"intent": string(unlocked),
			"token":  token,
		})
	}
}

// adminOverview is the admin landing view: the project total plus the
// localized panel strings.
func (h adminHandler) adminOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to list projects for admin overview")
			projects = nil
		}

		locale := requestLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.locales)
		h.responder.WriteJSON(w, map[string]any{
			"totalProjects": len(projects),
			"gateErrored":   h.gate.Errored(),
			"dir":           i18n.Dir(locale),
			"strings": map[string]string{
				"adminPanel":     i18n.Resolve(locale, "adminPanel", nil),
				"manageProjects": i18n.Resolve(locale, "manageProjects", nil),
				"addNewProject":  i18n.Resolve(locale, "addNewProject", nil),
				"editProjects":   i18n.Resolve(locale, "editProjects", nil),
				"totalProjects":  i18n.Resolve(locale, "totalProjects", nil),
				"backToHome":     i18n.Resolve(locale, "backToHome", nil),
			},
		})
	}
}

type localeRequest struct {
	Locale string `json:"locale"`
}

// setLocale is the explicit user toggle for the process-wide locale.
func (h adminHandler) setLocale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req localeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		h.locales.SetLocale(i18n.Locale(req.Locale))
		h.responder.WriteJSON(w, map[string]any{
			"locale": string(h.locales.Locale()),
			"dir":    h.locales.Dir(),
		})
	}
}

// getLocale reports the persisted locale and its directionality.
func (h adminHandler) getLocale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := h.locales.Locale()
		h.responder.WriteJSON(w, map[string]any{
			"locale":       string(locale),
			"dir":          i18n.Dir(locale),
			"languageName": i18n.LanguageNames[locale],
		})
	}
}
