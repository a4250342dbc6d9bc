package handler

import (
	"net/http"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

// GetMetricCatalog expose le catalogue des métriques notées, pour que
// les clients rendent libellés et catégories sans les coder en dur
func GetMetricCatalog(w http.ResponseWriter, r *http.Request) {
	keys := catalog.Keys()

	entries := make([]catalog.Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, catalog.Lookup(key))
	}

	utils.Success(w, entries)
}
