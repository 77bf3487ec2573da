package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/MaVoid-Team/MaVoid-Portfolio/database"
	"github.com/MaVoid-Team/MaVoid-Portfolio/errs"
	"github.com/MaVoid-Team/MaVoid-Portfolio/store"
)

type feedHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	hub          *store.Hub
}

func newFeedHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo, hub *store.Hub) feedHandler {
	logger := log.With().Str("handlerName", "feedHandler").Logger()

	return feedHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
	}
}

// streamCollection pushes the full contents of one collection over
// SSE: an immediate snapshot on connect, then a fresh one after every
// change signal. No incremental patches; subscribers replace their
// list wholesale. The hub subscription lives exactly as long as the
// connection.
func (h feedHandler) streamCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection := chi.URLParam(r, "collection")

		var list func() (any, error)
		switch collection {
		case store.CollectionProjects:
			list = func() (any, error) { return h.projectRepo.FindAll() }
		case store.CollectionCustomCategories:
			list = func() (any, error) { return h.categoryRepo.FindAll() }
		default:
			h.responder.WriteError(w, errs.NewNotFoundError("unknown collection"))
			return
		}

		sse := datastar.NewSSE(w, r)

		signals, cancel := h.hub.Subscribe(collection)
		defer cancel()

		push := func() {
			docs, err := list()
			if err != nil {
				// Read failures degrade to an empty snapshot; the
				// subscription stays up.
				h.logger.Error().Err(err).Str("collection", collection).Msg("snapshot list failed")
				docs = []any{}
			}
			_ = sse.MarshalAndPatchSignals(map[string]any{collection: docs})
		}
		push()

		keepAlive := time.NewTicker(25 * time.Second)
		defer keepAlive.Stop()

		for {
			select {
			case <-sse.Context().Done():
				return
			case <-h.hub.Done():
				return
			case <-keepAlive.C:
				_ = sse.PatchSignals([]byte(`{}`))
			case <-signals:
				push()
			}
		}
	}
}
