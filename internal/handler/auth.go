package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/GolfGuruApp/SwingAI-backend/internal/store"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup crée un compte email/mot de passe. Le profil démarre en
// onboarding: le client doit encore envoyer niveau et sac de clubs.
func Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and password (8 chars min) are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to process password", err)
		return
	}

	user, err := store.CreateUser(r.Context(), req.Name, req.Email, string(hash), "email")
	if err != nil {
		utils.Error(w, http.StatusConflict, "account already exists", err)
		return
	}

	ip, agent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(r.Context(), user.ID, ip, agent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"user":       user,
			"token":      token,
			"needsSetup": !user.SetupCompleted,
		},
	})
}

// Login authentifie par email/mot de passe et ouvre une session
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, hash, err := store.FindUserByEmailWithPassword(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "login failed", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, agent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(r.Context(), user.ID, ip, agent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":       user,
		"token":      token,
		"needsSetup": !user.SetupCompleted,
	})
}

// Logout invalide la session courante
func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusInternalServerError, "logout failed", err)
		return
	}

	utils.Message(w, "logged out")
}
