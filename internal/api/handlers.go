package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ayuwidi/gaung/internal/sparql"
	"github.com/ayuwidi/gaung/internal/version"
)

func (r *Router) handleHealthCheck(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
		"commit":  version.Commit,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// writeStoreError maps gateway errors onto HTTP statuses: rejected
// queries are the client's fault, everything else is an upstream failure.
func (r *Router) writeStoreError(w http.ResponseWriter, req *http.Request, err error) {
	var rejected *sparql.ErrQueryRejected
	if errors.As(err, &rejected) {
		writeError(w, http.StatusBadRequest, rejected.Message)
		return
	}

	var unavailable *sparql.ErrStoreUnavailable
	if errors.As(err, &unavailable) {
		r.logger.Error("triple store unavailable", "endpoint", unavailable.Endpoint, "error", unavailable.Cause)
		writeError(w, http.StatusBadGateway, "knowledge graph store unavailable")
		return
	}

	r.logger.Error("request failed", "path", req.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
	}
}

// intQuery extracts an integer query parameter with a default value.
func intQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
