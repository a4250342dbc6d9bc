package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/stats"
)

// RecomputeStats recalcule intégralement les statistiques d'un
// utilisateur depuis ses swings "self" et met en cache le résultat sur le
// profil. Le recalcul est une fonction pure de l'ensemble courant: deux
// recalculs concurrents convergent vers le même état final.
func RecomputeStats(ctx context.Context, userID string) (model.UserStats, error) {
	swings, err := ListSwingsByUser(ctx, userID, true)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("load self swings: %w", err)
	}

	computed := stats.Compute(swings, time.Now())

	encoded, err := json.Marshal(computed)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("encode stats: %w", err)
	}

	_, err = database.DB.Exec(ctx, `
		UPDATE users SET stats = $1, stats_updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`, encoded, userID)
	if err != nil {
		return model.UserStats{}, fmt.Errorf("cache stats: %w", err)
	}

	return computed, nil
}

// GetStats retourne les statistiques en cache, en recalculant à la
// demande si rien n'est encore caché
func GetStats(ctx context.Context, userID string) (model.UserStats, error) {
	user, err := GetUserByID(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}
	if user.Stats != nil {
		return *user.Stats, nil
	}
	return RecomputeStats(ctx, userID)
}
