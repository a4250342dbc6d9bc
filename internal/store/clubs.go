package store

import (
	"context"
	"fmt"

	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/scanner"
)

// DefaultClubBag sac par défaut quand l'utilisateur ne personnalise pas:
// 13 clubs du driver au putter, confiance 5, distances conventionnelles.
func DefaultClubBag() []model.Club {
	return []model.Club{
		{Name: "Driver", Type: model.ClubWood, Confidence: 5, Distance: 230},
		{Name: "3 Wood", Type: model.ClubWood, Confidence: 5, Distance: 215},
		{Name: "5 Wood", Type: model.ClubWood, Confidence: 5, Distance: 200},
		{Name: "4 Hybrid", Type: model.ClubHybrid, Confidence: 5, Distance: 190},
		{Name: "5 Iron", Type: model.ClubIron, Confidence: 5, Distance: 180},
		{Name: "6 Iron", Type: model.ClubIron, Confidence: 5, Distance: 170},
		{Name: "7 Iron", Type: model.ClubIron, Confidence: 5, Distance: 160},
		{Name: "8 Iron", Type: model.ClubIron, Confidence: 5, Distance: 150},
		{Name: "9 Iron", Type: model.ClubIron, Confidence: 5, Distance: 140},
		{Name: "Pitching Wedge", Type: model.ClubWedge, Confidence: 5, Distance: 130},
		{Name: "Sand Wedge", Type: model.ClubWedge, Confidence: 5, Distance: 100},
		{Name: "Lob Wedge", Type: model.ClubWedge, Confidence: 5, Distance: 80},
		{Name: "Putter", Type: model.ClubPutter, Confidence: 5, Distance: 0},
	}
}

// ListClubs liste le sac d'un utilisateur dans l'ordre d'insertion
func ListClubs(ctx context.Context, userID string) ([]model.Club, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, name, type, confidence, distance, created_at, updated_at
		FROM clubs WHERE user_id = $1
		ORDER BY position ASC, created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query clubs: %w", err)
	}
	defer rows.Close()

	var clubs []model.Club
	for rows.Next() {
		c, err := scanner.ScanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// ReplaceClubs remplace l'intégralité du sac d'un utilisateur.
// Il n'y a pas de patch par club: dernier écrivain gagnant. La
// suppression d'un club ne touche pas les analyses existantes, qui
// gardent leurs champs dénormalisés.
func ReplaceClubs(ctx context.Context, userID string, clubs []model.Club) ([]model.Club, error) {
	for i := range clubs {
		if err := clubs[i].Validate(); err != nil {
			return nil, fmt.Errorf("club %d: %w", i, err)
		}
	}

	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin club replacement: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM clubs WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("clear club bag: %w", err)
	}

	for i, c := range clubs {
		err := tx.QueryRow(ctx, `
			INSERT INTO clubs(user_id, name, type, confidence, distance, position)
			VALUES($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, userID, c.Name, c.Type, c.Confidence, c.Distance, i).Scan(&clubs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("insert club %q: %w", c.Name, err)
		}
		clubs[i].UserID = userID
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit club replacement: %w", err)
	}

	// Un sac non vide peut débloquer la fin de l'onboarding
	if len(clubs) > 0 {
		if err := SyncSetupCompleted(ctx, userID); err != nil {
			return nil, err
		}
	}

	return clubs, nil
}

// GetClub récupère un club du sac d'un utilisateur
func GetClub(ctx context.Context, userID, clubID string) (*model.Club, error) {
	row := database.DB.QueryRow(ctx, `
		SELECT id, user_id, name, type, confidence, distance, created_at, updated_at
		FROM clubs WHERE id = $1 AND user_id = $2
	`, clubID, userID)

	c, err := scanner.ScanClub(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}
