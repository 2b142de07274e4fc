package api

import (
	"net/http"
	"strings"
)

// handleMapCountries serves the static marker table for the map view.
// GET /api/map/countries
func (r *Router) handleMapCountries(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"countries": r.geo.Coordinates()})
}

// handleMapCountry resolves a map marker to its graph entity.
// GET /api/map/countries/{iso3Code}
func (r *Router) handleMapCountry(w http.ResponseWriter, req *http.Request) {
	code := strings.ToUpper(req.PathValue("iso3Code"))
	if len(code) != 3 {
		writeError(w, http.StatusBadRequest, "iso3Code must be a 3-letter code")
		return
	}

	ent, err := r.geo.CountryByISO3(req.Context(), code)
	if err != nil {
		r.writeStoreError(w, req, err)
		return
	}
	if ent == nil {
		writeError(w, http.StatusNotFound, "country not found")
		return
	}

	writeJSON(w, http.StatusOK, ent)
}
