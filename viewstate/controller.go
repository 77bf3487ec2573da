// Package viewstate keeps the browser address bar, the in-memory
// selection and the live project list mutually consistent. All inputs,
// whether "the URL says X" or "the user clicked Y", funnel through one
// reconciliation step, so the agreement invariant between the
// `project` query parameter and the open detail view holds after every
// event.
package viewstate

import (
	"net/url"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MaVoid-Team/MaVoid-Portfolio/catalog"
	"github.com/MaVoid-Team/MaVoid-Portfolio/models"
)

// ProjectParam is the only query parameter the application recognizes
// for deep links: its value is a project id, its presence opens the
// detail view once the id resolves, its absence closes it.
const ProjectParam = "project"

// Navigator observes canonical URL changes produced by user-initiated
// open and close, mirroring the synthesized navigation event of a
// browser client. External navigation (URLChanged) is not echoed back.
type Navigator func(query url.Values)

// Snapshot is the controller's externally visible state after a
// reconciliation pass.
type Snapshot struct {
	SelectedCategory string
	Projects         []models.Project // filtered by the selected category
	AllProjects      []models.Project
	Categories       []models.Category
	Counts           map[string]int
	ViewedProject    *models.Project // nil when the detail view is closed
	DetailOpen       bool
	Query            url.Values // canonical query for the address bar
}

// Controller owns the three coupled axes of the home view: the category
// filter, the live project list, and the detail view driven by the
// bidirectional URL binding.
type Controller struct {
	mu sync.Mutex

	selectedCategory string
	projects         []models.Project
	custom           []models.CustomCategory

	// requestedID is the project id the URL (or the last user action)
	// asks for. The open detail view is always derived from it against
	// the current list, never stored separately: a deep link to an id
	// the list does not contain yet stays pending and resolves on a
	// later list update without further user action.
	requestedID string

	navigate Navigator
	logger   zerolog.Logger
}

func New(logger zerolog.Logger) *Controller {
	return &Controller{
		selectedCategory: models.CategoryAll,
		logger:           logger.With().Str("component", "viewstate").Logger(),
	}
}

// OnNavigate registers the navigation observer. Pass nil to clear.
func (c *Controller) OnNavigate(fn Navigator) {
	c.mu.Lock()
	c.navigate = fn
	c.mu.Unlock()
}

// SetCategory selects the category filter. The key is not validated
// against existence: selecting a since-deleted category yields an
// empty filtered list, which renders as the defined no-results state.
func (c *Controller) SetCategory(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		value = models.CategoryAll
	}
	c.selectedCategory = value
}

// SetProjects replaces the live project list wholesale, as pushed by
// the collection feed, and re-resolves the requested detail view. No
// incremental merge: full replacement also absorbs adds, updates and
// deletes made by other sessions.
func (c *Controller) SetProjects(projects []models.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = projects
}

// SetCustomCategories replaces the custom category list wholesale.
func (c *Controller) SetCustomCategories(custom []models.CustomCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = custom
}

// OpenProject is the user-initiated open: set the in-memory selection,
// push the id onto the URL, and notify the navigation observer so
// every observer of URL state reconciles without a reload.
func (c *Controller) OpenProject(id string) {
	c.mu.Lock()
	c.requestedID = id
	navigate, query := c.navigate, c.canonicalQuery()
	c.mu.Unlock()

	if navigate != nil {
		navigate(query)
	}
}

// CloseProject is the user-initiated close: clear the selection, strip
// the query parameter, notify the navigation observer.
func (c *Controller) CloseProject() {
	c.mu.Lock()
	c.requestedID = ""
	navigate, query := c.navigate, c.canonicalQuery()
	c.mu.Unlock()

	if navigate != nil {
		navigate(query)
	}
}

// URLChanged handles external navigation: browser back/forward or a
// `project` parameter already present at load. The id is resolved
// against the current list on the next Snapshot; if the list has not
// loaded it yet, the lookup is retried on every list update. A
// `category` parameter is accepted as request input, but it is not
// part of the canonical address-bar state and is never emitted back.
func (c *Controller) URLChanged(query url.Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestedID = query.Get(ProjectParam)
	if category := query.Get("category"); category != "" {
		c.selectedCategory = category
	}
}

// Snapshot reconciles and returns the current view state. The
// invariant holds on every return: DetailOpen and ViewedProject agree
// with the requested id as resolved against the current list, and
// Query reflects exactly the requested id.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var viewed *models.Project
	if c.requestedID != "" {
		for i := range c.projects {
			if c.projects[i].ID.String() == c.requestedID {
				viewed = &c.projects[i]
				break
			}
		}
		if viewed == nil {
			// Deleted concurrently, or the list has not loaded the id
			// yet. The detail view stays closed; not an error.
			c.logger.Debug().Str("projectID", c.requestedID).Msg("requested project not in current list")
		}
	}

	return Snapshot{
		SelectedCategory: c.selectedCategory,
		Projects:         catalog.Filter(c.projects, c.selectedCategory),
		AllProjects:      c.projects,
		Categories:       catalog.Derive(c.projects, c.custom),
		Counts:           catalog.Counts(c.projects),
		ViewedProject:    viewed,
		DetailOpen:       viewed != nil,
		Query:            c.canonicalQuery(),
	}
}

// canonicalQuery builds the address-bar query for the current state.
// The address bar carries exactly one parameter, the project id; the
// category filter is in-memory selection and never appears in it.
// Callers must hold c.mu.
func (c *Controller) canonicalQuery() url.Values {
	query := url.Values{}
	if c.requestedID != "" {
		query.Set(ProjectParam, c.requestedID)
	}
	return query
}
