package api

import (
	"net/http"
	"strings"
)

// handleSearch runs a paginated entity search.
// GET /api/search?query=&type=&page=&pageSize=
func (r *Router) handleSearch(w http.ResponseWriter, req *http.Request) {
	text := strings.TrimSpace(req.URL.Query().Get("query"))
	if text == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	entityType := req.URL.Query().Get("type")
	switch entityType {
	case "", "country", "region", "organization":
	default:
		writeError(w, http.StatusBadRequest, "unknown entity type: "+entityType)
		return
	}

	page := intQuery(req, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := intQuery(req, "pageSize", 20)
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	results, total, err := r.entities.Search(req.Context(), text, entityType, page, pageSize)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results":  results,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

// handleSuggestions serves typeahead suggestions. Short inputs return
// an empty list without querying the store.
// GET /api/search/suggestions?query=&limit=
func (r *Router) handleSuggestions(w http.ResponseWriter, req *http.Request) {
	text := strings.TrimSpace(req.URL.Query().Get("query"))

	limit := intQuery(req, "limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	suggestions, err := r.entities.Suggestions(req.Context(), text, limit)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
