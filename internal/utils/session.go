package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	"github.com/google/uuid"
)

// sessionDuration durée de vie d'un token de session
const sessionDuration = 24 * time.Hour

// CreateSession génère un token opaque et l'enregistre pour l'utilisateur
func CreateSession(ctx context.Context, userID, ipAddress, userAgent string) (string, error) {
	token := uuid.New().String()

	_, err := database.DB.Exec(ctx, `
		INSERT INTO sessions(user_id, token, ip_address, user_agent, expires_at)
		VALUES($1, $2, $3, $4, $5)
	`, userID, token, ipAddress, userAgent, time.Now().Add(sessionDuration))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return token, nil
}

// ValidateSession retourne l'id de l'utilisateur si le token est actif
func ValidateSession(ctx context.Context, token string) (string, error) {
	var userID string
	err := database.DB.QueryRow(ctx, `
		SELECT user_id FROM sessions
		WHERE token = $1 AND is_active AND expires_at > NOW() AND deleted_at IS NULL
	`, token).Scan(&userID)
	if err != nil {
		return "", fmt.Errorf("invalid session")
	}
	return userID, nil
}

// InvalidateSession désactive le token (logout). Soft delete, on garde la
// trace pour l'audit.
func InvalidateSession(ctx context.Context, token string) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE sessions SET is_active = FALSE, deleted_at = NOW()
		WHERE token = $1
	`, token)
	if err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}
