package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/scanner"
	"github.com/jackc/pgx/v5"
)

// userColumns ordre canonique, aligné sur scanner.ScanUserProfile
const userColumns = `
	id, name, email, avatar, provider,
	skill_level, setup_completed, is_admin,
	allow_historical_swings, default_swing_date, stats,
	join_date, created_at, updated_at`

// CreateUser crée un profil. Le parcours d'inscription démarre toujours
// avec setup_completed = false: l'onboarding doit encore persister un sac
// de clubs et un niveau de jeu.
func CreateUser(ctx context.Context, name, email, passwordHash, provider string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx, `
		INSERT INTO users(name, email, password_hash, provider, setup_completed)
		VALUES($1, $2, $3, $4, FALSE)
		RETURNING `+userColumns,
		name, email, passwordHash, provider)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUserByID récupère un profil avec son sac de clubs
func GetUserByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND deleted_at IS NULL`,
		userID)

	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	clubs, err := ListClubs(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Clubs = clubs

	return user, nil
}

// FindUserByEmailWithPassword récupère un profil et son hash pour le login
func FindUserByEmailWithPassword(ctx context.Context, email string) (*model.UserProfile, string, error) {
	var hash string
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+`, COALESCE(password_hash, '')
		 FROM users WHERE email = $1 AND deleted_at IS NULL`,
		email)

	// Réutilise le scan standard en ajoutant la colonne du hash
	user, err := scanner.ScanUserProfile(scanAppend{inner: row, extra: &hash})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return user, hash, nil
}

// scanAppend ajoute une destination de scan à la fin de la liste
type scanAppend struct {
	inner scanner.RowScanner
	extra interface{}
}

func (s scanAppend) Scan(dest ...interface{}) error {
	return s.inner.Scan(append(dest, s.extra)...)
}

// UserUpdate champs modifiables d'un profil
type UserUpdate struct {
	Name                  *string           `json:"name,omitempty"`
	Avatar                *string           `json:"avatar,omitempty"`
	SkillLevel            *model.SkillLevel `json:"skillLevel,omitempty"`
	AllowHistoricalSwings *bool             `json:"allowHistoricalSwings,omitempty"`
	DefaultSwingDate      *string           `json:"defaultSwingDate,omitempty"` // RFC 3339, "" pour effacer
}

// UpdateUser applique une mise à jour partielle du profil puis
// resynchronise l'état d'onboarding
func UpdateUser(ctx context.Context, userID string, u UserUpdate) (*model.UserProfile, error) {
	if u.SkillLevel != nil && !u.SkillLevel.Valid() {
		return nil, fmt.Errorf("unknown skill level %q", *u.SkillLevel)
	}

	query := `UPDATE users SET updated_at = NOW()`
	args := []interface{}{}
	argCount := 1

	appendSet := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argCount)
		args = append(args, value)
		argCount++
	}

	if u.Name != nil {
		appendSet("name", *u.Name)
	}
	if u.Avatar != nil {
		appendSet("avatar", *u.Avatar)
	}
	if u.SkillLevel != nil {
		appendSet("skill_level", string(*u.SkillLevel))
	}
	if u.AllowHistoricalSwings != nil {
		appendSet("allow_historical_swings", *u.AllowHistoricalSwings)
	}
	if u.DefaultSwingDate != nil {
		if *u.DefaultSwingDate == "" {
			query += ", default_swing_date = NULL"
		} else {
			appendSet("default_swing_date", *u.DefaultSwingDate)
		}
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", argCount)
	args = append(args, userID)

	res, err := database.DB.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if err := SyncSetupCompleted(ctx, userID); err != nil {
		return nil, err
	}

	return GetUserByID(ctx, userID)
}

// SyncSetupCompleted bascule setup_completed à vrai dès qu'un sac non
// vide ET un niveau de jeu ont été persistés. Jamais rebasculé à faux.
func SyncSetupCompleted(ctx context.Context, userID string) error {
	_, err := database.DB.Exec(ctx, `
		UPDATE users SET setup_completed = TRUE, updated_at = NOW()
		WHERE id = $1
		  AND setup_completed = FALSE
		  AND skill_level IS NOT NULL
		  AND EXISTS (SELECT 1 FROM clubs WHERE user_id = $1)
	`, userID)
	if err != nil {
		return fmt.Errorf("sync setup state: %w", err)
	}
	return nil
}
