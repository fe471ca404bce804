package handlers

import (
	"net/http"

	"github.com/ukydev/car-maintenance/internal/catalog"
)

// Catalog handles GET /api/catalog.
func Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Export())
}

// CatalogNotes handles GET /api/catalog/notes?item=<name>.
func CatalogNotes(w http.ResponseWriter, r *http.Request) {
	item := r.URL.Query().Get("item")
	if item == "" {
		writeError(w, http.StatusBadRequest, "item is required")
		return
	}
	category := catalog.LookupCategory(item)
	writeJSON(w, http.StatusOK, map[string]any{
		"item":          item,
		"category":      category,
		"category_name": catalog.CategoryName(category),
		"common_notes":  catalog.LookupCommonNotes(item),
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
