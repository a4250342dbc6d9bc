package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/jackc/pgx/v5"
)

// adjustmentDocID document singleton des facteurs courants
const adjustmentDocID = "current"

// SaveAdjustmentFactors publie les facteurs courants (admin uniquement,
// vérifié par l'appelant). Le document est global et lisible par tous.
func SaveAdjustmentFactors(ctx context.Context, f *model.AdjustmentFactors, adminID string) error {
	encoded, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode adjustment factors: %w", err)
	}

	_, err = database.DB.Exec(ctx, `
		INSERT INTO adjustments(id, factors, generated_at, generated_by)
		VALUES($1, $2, NOW(), $3)
		ON CONFLICT (id)
		DO UPDATE SET factors = EXCLUDED.factors,
		              generated_at = NOW(),
		              generated_by = EXCLUDED.generated_by
	`, adjustmentDocID, encoded, adminID)
	if err != nil {
		return fmt.Errorf("save adjustment factors: %w", err)
	}
	return nil
}

// GetAdjustmentFactors lit les facteurs courants. Aucun document publié
// n'est pas une erreur: la vue ajustée est alors identique à la brute.
func GetAdjustmentFactors(ctx context.Context) (*model.AdjustmentFactors, error) {
	var encoded []byte
	err := database.DB.QueryRow(ctx,
		`SELECT factors FROM adjustments WHERE id = $1`, adjustmentDocID,
	).Scan(&encoded)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read adjustment factors: %w", err)
	}

	var factors model.AdjustmentFactors
	if err := json.Unmarshal(encoded, &factors); err != nil {
		return nil, fmt.Errorf("decode adjustment factors: %w", err)
	}
	return &factors, nil
}
