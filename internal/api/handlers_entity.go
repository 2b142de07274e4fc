package api

import (
	"net/http"
	"strings"
)

// handleEntityDetail returns one entity with its health records and
// related entities.
// GET /api/entities/{id}?year=
func (r *Router) handleEntityDetail(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	ent, err := r.entities.GetByID(req.Context(), id)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}
	if ent == nil {
		writeError(w, http.StatusNotFound, "entity not found")
		return
	}

	var year *int
	if y := intQuery(req, "year", 0); y != 0 {
		year = &y
	}

	records, err := r.health.RecordsByLocation(req.Context(), ent.ID, year)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	related, err := r.entities.Related(req.Context(), ent.ID, intQuery(req, "limit", 10))
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entity":           ent,
		"health_records":   records,
		"related_entities": related,
	})
}

// handleEntityYears lists the years with health data for an entity.
// GET /api/entities/{id}/years
func (r *Router) handleEntityYears(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")

	years, err := r.health.AvailableYears(req.Context(), id)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"years": years})
}

// handleRelated lists entities connected to the given one.
// GET /api/entity/related?entityId=&limit=
func (r *Router) handleRelated(w http.ResponseWriter, req *http.Request) {
	id := req.URL.Query().Get("entityId")
	if id == "" {
		writeError(w, http.StatusBadRequest, "entityId parameter is required")
		return
	}

	limit := intQuery(req, "limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	related, err := r.entities.Related(req.Context(), id, limit)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"related": related})
}

// handleEntityInfo serves the aggregate info box view. The wildcard
// segment carries full entity URIs.
// GET /api/entity/{id...}
func (r *Router) handleEntityInfo(w http.ResponseWriter, req *http.Request) {
	id := req.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "entity id is required")
		return
	}
	// Path cleaning collapses the scheme's double slash when the URI
	// arrives unencoded.
	for _, scheme := range []string{"http", "https"} {
		if strings.HasPrefix(id, scheme+":/") && !strings.HasPrefix(id, scheme+"://") {
			id = scheme + "://" + strings.TrimPrefix(id, scheme+":/")
			break
		}
	}

	info, err := r.entities.Info(req.Context(), id)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}
	if info == nil {
		writeError(w, http.StatusNotFound, "entity not found")
		return
	}

	writeJSON(w, http.StatusOK, info)
}
