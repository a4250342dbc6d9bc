package handler

import (
	"errors"
	"net/http"

	"github.com/GolfGuruApp/SwingAI-backend/internal/middleware"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/store"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
	"github.com/gorilla/mux"
)

type feedbackRequest struct {
	TargetMetric string        `json:"targetMetric"`
	Verdict      model.Verdict `json:"verdict"`
}

// SubmitFeedback enregistre l'avis de l'utilisateur sur un score.
// Un seul avis par cible et par swing: renvoyer change d'avis.
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	swingID := mux.Vars(r)["id"]

	var req feedbackRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.TargetMetric == "" {
		req.TargetMetric = model.TargetOverall
	}

	// Le feedback ne porte que sur ses propres swings
	swing, err := store.GetSwingByID(r.Context(), swingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "swing not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "failed to load swing", err)
		return
	}
	if swing.UserID != user.ID {
		utils.ErrorSimple(w, http.StatusForbidden, "feedback is limited to your own swings")
		return
	}

	fb := &model.Feedback{
		SwingID:            swingID,
		UserID:             user.ID,
		TargetMetric:       req.TargetMetric,
		Verdict:            req.Verdict,
		SkillLevelSnapshot: user.SkillLevel,
	}

	if err := store.UpsertFeedback(r.Context(), fb); err != nil {
		utils.Error(w, http.StatusBadRequest, "failed to save feedback", err)
		return
	}

	utils.Success(w, fb)
}

// GetAdjustments expose les facteurs d'ajustement courants
func GetAdjustments(w http.ResponseWriter, r *http.Request) {
	factors, err := store.GetAdjustmentFactors(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load adjustment factors", err)
		return
	}
	if factors == nil {
		utils.Success(w, map[string]interface{}{"published": false})
		return
	}
	utils.Success(w, factors)
}
