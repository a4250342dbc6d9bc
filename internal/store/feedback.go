package store

import (
	"context"
	"fmt"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/scanner"
)

// UpsertFeedback enregistre un avis. Une seconde écriture du même
// utilisateur pour la même cible du même swing écrase la première.
func UpsertFeedback(ctx context.Context, f *model.Feedback) error {
	if !f.Verdict.Valid() {
		return fmt.Errorf("unknown verdict %q", f.Verdict)
	}
	if f.TargetMetric != model.TargetOverall && !catalog.Has(f.TargetMetric) {
		return fmt.Errorf("unknown feedback target %q", f.TargetMetric)
	}

	err := database.DB.QueryRow(ctx, `
		INSERT INTO feedback(swing_id, user_id, target_metric, verdict, skill_level_snapshot)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (swing_id, user_id, target_metric)
		DO UPDATE SET
			verdict = EXCLUDED.verdict,
			skill_level_snapshot = EXCLUDED.skill_level_snapshot,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, f.SwingID, f.UserID, f.TargetMetric, f.Verdict, nullIfEmpty(string(f.SkillLevelSnapshot)),
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	return nil
}

// ListAllFeedback scanne tout le feedback pour l'agrégation (admin)
func ListAllFeedback(ctx context.Context) ([]model.Feedback, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, swing_id, user_id, target_metric, verdict,
		       skill_level_snapshot, created_at, updated_at
		FROM feedback
	`)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	var items []model.Feedback
	for rows.Next() {
		f, err := scanner.ScanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}
