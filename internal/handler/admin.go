package handler

import (
	"net/http"

	"github.com/GolfGuruApp/SwingAI-backend/internal/middleware"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

// RecomputeAdjustments recalcule et publie les facteurs d'ajustement à
// partir de tout le feedback accumulé. Réservé aux administrateurs.
func RecomputeAdjustments(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if !user.IsAdmin {
		utils.ErrorSimple(w, http.StatusForbidden, "admin access required")
		return
	}

	factors, err := Pipe.RecomputeAdjustments(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to recompute adjustments", err)
		return
	}

	utils.Success(w, factors)
}
