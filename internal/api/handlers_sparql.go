package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// maxQueryLength bounds raw query bodies before they reach the store.
const maxQueryLength = 10000

// handleQuery executes a read-only query against the triple store.
// POST /api/sparql/query
func (r *Router) handleQuery(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query := strings.TrimSpace(body.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if len(query) > maxQueryLength {
		writeError(w, http.StatusBadRequest, "query too long")
		return
	}

	// An absent or zero limit passes the query through untouched; the
	// client's own LIMIT clause, if any, stands.
	limit := body.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	result, err := r.queries.Execute(req.Context(), query, limit)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleValidate probes the store with the query to check its syntax.
// POST /api/sparql/validate
func (r *Router) handleValidate(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	query := strings.TrimSpace(body.Query)
	if query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	valid, message, err := r.queries.Validate(req.Context(), query)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}

	resp := map[string]any{"valid": valid}
	if message != "" {
		resp["message"] = message
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSamples lists ready-to-run example queries.
// GET /api/sparql/samples
func (r *Router) handleSamples(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"samples": r.queries.Samples()})
}
