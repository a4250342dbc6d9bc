package middleware

import (
	"context"
	"net/http"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/store"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// AuthMiddleware exige un token de session valide. Les routes protégées
// répondent 401 sans profil authentifié.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.GetToken(r)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "authentication required")
			return
		}

		userID, err := utils.ValidateSession(r.Context(), token)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		user, err := store.GetUserByID(r.Context(), userID)
		if err != nil {
			utils.ErrorSimple(w, http.StatusUnauthorized, "user not found")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attache le profil s'il y a un token valide, sinon laisse
// passer en anonyme. L'analyse de swing fonctionne dans les deux cas.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, err := utils.GetToken(r); err == nil {
			if userID, err := utils.ValidateSession(r.Context(), token); err == nil {
				if user, err := store.GetUserByID(r.Context(), userID); err == nil {
					ctx := context.WithValue(r.Context(), userContextKey, user)
					r = r.WithContext(ctx)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retourne le profil attaché par le middleware, ou nil
func GetUserFromContext(ctx context.Context) *model.UserProfile {
	user, _ := ctx.Value(userContextKey).(*model.UserProfile)
	return user
}

// IsOwnerOrAdmin vrai si l'utilisateur courant possède la ressource ou
// est administrateur
func IsOwnerOrAdmin(ctx context.Context, ownerID string) bool {
	user := GetUserFromContext(ctx)
	if user == nil {
		return false
	}
	return user.ID == ownerID || user.IsAdmin
}
