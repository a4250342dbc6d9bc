package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GolfGuruApp/SwingAI-backend/internal/middleware"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/pipeline"
	"github.com/GolfGuruApp/SwingAI-backend/internal/store"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
	"github.com/gorilla/mux"
)

type analyzeJSONRequest struct {
	Video    model.VideoInput    `json:"video"`
	Metadata model.SwingMetadata `json:"metadata"`
}

// AnalyzeSwing lance l'analyse d'un swing. Deux formats d'entrée:
//   - multipart/form-data: champ "video" (fichier) + champ "metadata" (JSON)
//   - application/json: lien vidéo hébergé + métadonnées
//
// La route est accessible sans authentification: l'analyse est alors
// retournée sans être stockée.
func AnalyzeSwing(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var video model.VideoInput
	var meta model.SwingMetadata

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(pipeline.MaxVideoSize + 1<<20); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		file, header, err := r.FormFile("video")
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "missing video file", err)
			return
		}
		defer file.Close()

		if raw := r.FormValue("metadata"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &meta); err != nil {
				utils.Error(w, http.StatusBadRequest, "invalid metadata", err)
				return
			}
		}

		video = model.VideoInput{
			Kind:     model.VideoKindFile,
			FileName: header.Filename,
			Size:     header.Size,
			Content:  file,
		}
	} else {
		var req analyzeJSONRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid request body", err)
			return
		}
		video = req.Video
		meta = req.Metadata
		if video.Kind == "" && video.HostedURL != "" {
			video.Kind = model.VideoKindHosted
		}
	}

	analysis, err := Pipe.AnalyzeAndSave(r.Context(), user, video, meta)
	if err != nil {
		// Les pannes de stockage sont transitoires: le client peut réessayer
		if errors.Is(err, pipeline.ErrBlobUnavailable) {
			utils.ErrorRetryable(w, http.StatusBadGateway, "video storage unavailable", err)
			return
		}
		if errors.Is(err, pipeline.ErrStoreUnavailable) {
			utils.ErrorRetryable(w, http.StatusInternalServerError, "could not persist the analysis", err)
			return
		}
		utils.Error(w, http.StatusBadRequest, "analysis failed", err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Data: analysis})
}

// GetSwing retourne une analyse avec ses scores ajustés
func GetSwing(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	swingID := mux.Vars(r)["id"]

	analysis, err := store.GetSwingByID(r.Context(), swingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "swing not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "failed to load swing", err)
		return
	}

	if !middleware.IsOwnerOrAdmin(r.Context(), analysis.UserID) {
		utils.ErrorSimple(w, http.StatusForbidden, "access denied")
		return
	}

	adjusted, err := Pipe.AdjustedView(r.Context(), analysis, user.SkillLevel)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to adjust scores", err)
		return
	}

	utils.Success(w, adjusted)
}

// GetUserSwings liste les analyses de l'utilisateur courant, les plus
// récentes d'abord. ?self=true restreint aux swings de l'utilisateur
// lui-même.
func GetUserSwings(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	selfOnly := r.URL.Query().Get("self") == "true"

	swings, err := store.ListSwingsByUser(r.Context(), user.ID, selfOnly)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load swings", err)
		return
	}

	utils.Success(w, swings)
}

// GetUserSwingsByClub liste les analyses de l'utilisateur pour un club
func GetUserSwingsByClub(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	clubID := mux.Vars(r)["clubId"]

	swings, err := store.ListSwingsByUserAndClub(r.Context(), user.ID, clubID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to load swings", err)
		return
	}

	utils.Success(w, swings)
}

// DeleteSwing supprime une analyse et sa vidéo. Idempotent: supprimer
// un swing déjà absent répond comme un succès.
func DeleteSwing(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	swingID := mux.Vars(r)["id"]

	err := Pipe.DeleteSwing(r.Context(), user, swingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Message(w, "swing deleted")
			return
		}
		if errors.Is(err, store.ErrUnauthorized) {
			utils.ErrorSimple(w, http.StatusForbidden, "access denied")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "failed to delete swing", err)
		return
	}

	utils.Message(w, "swing deleted")
}
