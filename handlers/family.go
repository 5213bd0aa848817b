package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"github.com/camden-git/familytree/database"
	"github.com/camden-git/familytree/genealogy"
	"github.com/camden-git/familytree/logger"
	"github.com/camden-git/familytree/models"
	"github.com/camden-git/familytree/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Logger.Errorw("error encoding JSON response", logger.FieldError, err)
		}
	}
}

// FamilyHandler serves read-only queries over one built family tree.
type FamilyHandler struct {
	Service         *services.FamilyService
	DefaultMaxDepth int
}

// PersonResponse is a person with its derived fields.
type PersonResponse struct {
	*models.Person
	Depth       int    `json:"depth"`
	DisplayName string `json:"display_name,omitempty"`
}

func (fh *FamilyHandler) personResponse(p *models.Person) PersonResponse {
	resp := PersonResponse{Person: p, Depth: p.Depth()}
	if fh.Service.HasLineage() {
		resp.DisplayName = fh.Service.DisplayName(p)
	}
	return resp
}

func (fh *FamilyHandler) personResponses(persons []*models.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, fh.personResponse(p))
	}
	return out
}

// writeQueryError maps the genealogy error categories onto HTTP statuses.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, genealogy.ErrRootNotFound):
		WriteAPIError(w, http.StatusNotFound, CodeRootNotFound, err.Error())
	case errors.Is(err, genealogy.ErrQuery):
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidQuery, err.Error())
	default:
		logger.Logger.Errorw("unexpected query failure", logger.FieldError, err)
		WriteAPIError(w, http.StatusInternalServerError, CodeInternal, "Failed to query family tree")
	}
}

// Health reports the loaded session.
func (fh *FamilyHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fh.Service.Stats())
}

func (fh *FamilyHandler) ListRoots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fh.personResponses(fh.Service.Roots()))
}

func (fh *FamilyHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	order := r.URL.Query().Get("sort")
	if order == "" {
		order = database.DefaultSortOrder
	}
	if !database.IsValidSortOrder(order) {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidParameter, "Invalid sort order: "+order)
		return
	}
	persons := database.SortPersons(fh.Service.Family().Persons(), order)
	writeJSON(w, http.StatusOK, fh.personResponses(persons))
}

func (fh *FamilyHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "person_id")
	personID, err := strconv.Atoi(idStr)
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidParameter, "Invalid person ID format")
		return
	}
	person, ok := fh.Service.Person(personID)
	if !ok {
		WriteAPIError(w, http.StatusNotFound, CodePersonNotFound, "Person not found")
		return
	}
	writeJSON(w, http.StatusOK, fh.personResponse(person))
}

// GetSubtree returns the node/edge projection. Without a root selector the first
// root is used, and without max_depth the configured default applies.
func (fh *FamilyHandler) GetSubtree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts []genealogy.Option

	for _, param := range []struct {
		name  string
		apply func(int) genealogy.Option
	}{
		{"root_id", genealogy.WithRootID},
		{"max_depth", genealogy.WithMaxDepth},
		{"gen_min", genealogy.WithGenMin},
		{"gen_max", genealogy.WithGenMax},
	} {
		raw := q.Get(param.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			WriteAPIError(w, http.StatusBadRequest, CodeInvalidParameter, "Invalid integer for "+param.name+": "+raw)
			return
		}
		opts = append(opts, param.apply(v))
	}
	if wbs := q.Get("root_wbs"); wbs != "" {
		opts = append(opts, genealogy.WithRootWBS(wbs))
	}

	if q.Get("root_id") == "" && q.Get("root_wbs") == "" {
		root, err := fh.Service.DefaultRoot()
		if err != nil {
			writeQueryError(w, err)
			return
		}
		opts = append(opts, genealogy.WithRootID(root.ID))
		if q.Get("max_depth") == "" {
			opts = append(opts, genealogy.WithMaxDepth(fh.DefaultMaxDepth))
		}
	}

	payload, err := fh.Service.SubtreePayload(opts...)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (fh *FamilyHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fh.Service.MigrationTimeline())
}
