// Package store persiste les documents du domaine dans Postgres.
// Les règles de propriété sont appliquées ici: toute lecture filtrée et
// toute mutation vérifient le user_id du document.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	"github.com/GolfGuruApp/SwingAI-backend/internal/logger"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// swingColumns ordre canonique des colonnes, aligné sur scanner.ScanSwingAnalysis
const swingColumns = `
	id, user_id, video_ref, is_hosted_video, hosted_video_id,
	analyzed_at, recorded_at, overall_score, metrics, recommendations,
	club_id, club_name, club_type, club_external,
	outcome, swing_ownership, pro_golfer_name, source_is_fallback,
	created_at, updated_at`

// validateSwingForWrite applique les invariants de schéma avant écriture
func validateSwingForWrite(a *model.SwingAnalysis) error {
	if !a.SwingOwnership.Valid() {
		return fmt.Errorf("unknown swing ownership %q", a.SwingOwnership)
	}
	if a.OverallScore < 0 || a.OverallScore > 100 || math.IsNaN(a.OverallScore) {
		return fmt.Errorf("overall score out of range")
	}
	for key, score := range a.Metrics {
		if !catalog.Has(key) {
			return fmt.Errorf("unknown metric key %q", key)
		}
		if score < 0 || score > 100 || math.IsNaN(score) || math.IsInf(score, 0) {
			return fmt.Errorf("metric %q out of range", key)
		}
	}
	for _, key := range catalog.Keys() {
		if _, ok := a.Metrics[key]; !ok {
			return fmt.Errorf("missing metric key %q", key)
		}
	}
	// videoRef non nul seulement pour un swing self ou une vidéo hébergée
	if a.VideoRef != nil && a.SwingOwnership != model.OwnershipSelf && !a.IsHostedVideo {
		return fmt.Errorf("video ref not allowed for non-self file swing")
	}
	if a.Outcome != nil && !a.Outcome.Valid() {
		return fmt.Errorf("unknown outcome %q", *a.Outcome)
	}
	return nil
}

// SaveSwing insère une analyse. L'id et le user_id doivent être posés.
func SaveSwing(ctx context.Context, a *model.SwingAnalysis) error {
	if err := validateSwingForWrite(a); err != nil {
		return err
	}

	metricsJSON, err := json.Marshal(a.Metrics)
	if err != nil {
		return fmt.Errorf("encode metrics: %w", err)
	}

	err = database.DB.QueryRow(ctx, `
		INSERT INTO swings(
			id, user_id, video_ref, is_hosted_video, hosted_video_id,
			analyzed_at, recorded_at, overall_score, metrics, recommendations,
			club_id, club_name, club_type, club_external,
			outcome, swing_ownership, pro_golfer_name, source_is_fallback,
			created_at, updated_at
		) VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,NOW(),NOW())
		RETURNING created_at, updated_at
	`,
		a.ID, a.UserID, a.VideoRef, a.IsHostedVideo, nullIfEmpty(a.HostedVideoID),
		a.AnalysisTimestamp, a.RecordedTimestamp, a.OverallScore, metricsJSON, a.Recommendations,
		a.ClubID, nullIfEmpty(a.ClubName), nullIfEmpty(a.ClubType), a.ClubExternal,
		outcomeValue(a.Outcome), a.SwingOwnership, a.ProGolferName, a.SourceIsFallback,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return fmt.Errorf("insert swing: %w", err)
	}
	return nil
}

// GetSwingByID récupère une analyse par son identifiant
func GetSwingByID(ctx context.Context, swingID string) (*model.SwingAnalysis, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+swingColumns+` FROM swings WHERE id = $1`, swingID)

	a, err := scanner.ScanSwingAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListSwingsByUser liste les analyses d'un utilisateur, triées par date
// de swing décroissante (id croissant en cas d'égalité). selfOnly filtre
// la liste "mes swings".
func ListSwingsByUser(ctx context.Context, userID string, selfOnly bool) ([]model.SwingAnalysis, error) {
	query := `SELECT ` + swingColumns + ` FROM swings WHERE user_id = $1`
	if selfOnly {
		query += ` AND swing_ownership = 'self'`
	}
	query += ` ORDER BY recorded_at DESC, id ASC`

	rows, err := database.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query swings: %w", err)
	}
	defer rows.Close()

	return collectSwings(rows)
}

// ListSwingsByUserAndClub liste les analyses d'un utilisateur pour un club
func ListSwingsByUserAndClub(ctx context.Context, userID, clubID string) ([]model.SwingAnalysis, error) {
	rows, err := database.DB.Query(ctx,
		`SELECT `+swingColumns+` FROM swings
		 WHERE user_id = $1 AND club_id = $2
		 ORDER BY recorded_at DESC, id ASC`,
		userID, clubID)
	if err != nil {
		return nil, fmt.Errorf("query swings by club: %w", err)
	}
	defer rows.Close()

	return collectSwings(rows)
}

// collectSwings scanne les lignes; un document corrompu est loggé et
// masqué des listings plutôt que de faire échouer la lecture
func collectSwings(rows pgx.Rows) ([]model.SwingAnalysis, error) {
	var swings []model.SwingAnalysis
	for rows.Next() {
		a, err := scanner.ScanSwingAnalysis(rows)
		if err != nil {
			logger.Warning("hiding unreadable swing row: %v", err)
			continue
		}
		swings = append(swings, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return swings, nil
}

// DeleteSwing supprime une analyse après vérification de propriété.
// Renvoie ErrUnauthorized sans muter si le document appartient à un autre
// utilisateur; un identifiant déjà supprimé n'est pas une erreur.
func DeleteSwing(ctx context.Context, swingID, userID string) error {
	var ownerID string
	err := database.DB.QueryRow(ctx,
		`SELECT user_id FROM swings WHERE id = $1`, swingID,
	).Scan(&ownerID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Déjà supprimé: l'opération est idempotente
			return nil
		}
		return fmt.Errorf("read swing owner: %w", err)
	}

	if ownerID != userID {
		return ErrUnauthorized
	}

	_, err = database.DB.Exec(ctx, `DELETE FROM swings WHERE id = $1`, swingID)
	if err != nil {
		return fmt.Errorf("delete swing: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func outcomeValue(o *model.ShotOutcome) *string {
	if o == nil {
		return nil
	}
	s := string(*o)
	return &s
}
