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

// GetProfile retourne le profil de l'utilisateur courant avec son état
// d'onboarding
func GetProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	utils.Success(w, map[string]interface{}{
		"user":       user,
		"onboarding": user.Onboarding(),
	})
}

// UpdateProfile mise à jour partielle du profil
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var update store.UserUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	updated, err := store.UpdateUser(r.Context(), user.ID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "user not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, "failed to update profile", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":       updated,
		"onboarding": updated.Onboarding(),
	})
}

// GetClubs retourne le sac de l'utilisateur courant
func GetClubs(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	clubs, err := store.ListClubs(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load clubs", err)
		return
	}

	utils.Success(w, clubs)
}

type replaceClubsRequest struct {
	Clubs      []model.Club `json:"clubs"`
	UseDefault bool         `json:"useDefault,omitempty"`
}

// ReplaceClubs remplace le sac en entier. Avec useDefault, le sac
// standard de 13 clubs est installé à la place de la liste fournie.
func ReplaceClubs(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req replaceClubsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	clubs := req.Clubs
	if req.UseDefault {
		clubs = store.DefaultClubBag()
	}
	if len(clubs) == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "club list cannot be empty")
		return
	}

	saved, err := store.ReplaceClubs(r.Context(), user.ID, clubs)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "failed to save clubs", err)
		return
	}

	utils.Success(w, saved)
}

// GetClub retourne un club précis du sac
func GetClub(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	clubID := mux.Vars(r)["id"]

	club, err := store.GetClub(r.Context(), user.ID, clubID)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "club not found")
		return
	}

	utils.Success(w, club)
}

// GetUserStats retourne les statistiques agrégées de l'utilisateur
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	stats, err := store.GetStats(r.Context(), user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load stats", err)
		return
	}

	utils.Success(w, stats)
}
