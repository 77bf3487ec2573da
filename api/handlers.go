package api

import (
	"github.com/rs/zerolog/log"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, hub *store.Hub, locales *i18n.Provider, passkey, defaultImage, tokenSecret string) *routeHandlers {
	gate := admin.NewGate(passkey, log.Logger)
	flow := admin.NewFlow(db.ProjectRepo(), db.CategoryRepo(), defaultImage, log.Logger)
	issuer := newTokenIssuer(tokenSecret)

	return &routeHandlers{
		projectHandler:  newProjectHandler(db.ProjectRepo(), flow, locales),
		categoryHandler: newCategoryHandler(db.ProjectRepo(), db.CategoryRepo(), flow, locales),
		adminHandler:    newAdminHandler(gate, issuer, db.ProjectRepo(), locales),
		viewHandler:     newViewHandler(db.ProjectRepo(), db.CategoryRepo(), hub, locales),
		feedHandler:     newFeedHandler(db.ProjectRepo(), db.CategoryRepo(), hub),
		issuer:          issuer,
	}
}
