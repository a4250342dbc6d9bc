// Package scanner convertit les lignes SQL en modèles.
// Les colonnes doivent être sélectionnées dans l'ordre canonique défini
// par les requêtes du package store.
package scanner

import (
	"database/sql"
	"encoding/json"
	"fmt"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

// RowScanner abstraction commune à pgx.Row et pgx.Rows
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile
func ScanUserProfile(row RowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var avatar, provider, skillLevel sql.NullString
	var defaultSwingDate sql.NullTime
	var statsJSON []byte

	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &avatar, &provider,
		&skillLevel, &user.SetupCompleted, &user.IsAdmin,
		&user.AllowHistoricalSwings, &defaultSwingDate, &statsJSON,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Avatar = utils.NullStringToString(avatar)
	user.Provider = utils.NullStringToString(provider)
	user.SkillLevel = model.SkillLevel(utils.NullStringToString(skillLevel))
	user.DefaultSwingDate = utils.NullTimeToPointer(defaultSwingDate)

	if len(statsJSON) > 0 {
		var stats model.UserStats
		if err := json.Unmarshal(statsJSON, &stats); err == nil {
			user.Stats = &stats
		}
	}

	return &user, nil
}

// ScanClub scanne une ligne SQL vers un Club
func ScanClub(row RowScanner) (*model.Club, error) {
	var c model.Club
	var clubType string

	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &clubType, &c.Confidence, &c.Distance,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Type = model.ClubType(clubType)
	return &c, nil
}

// ScanSwingAnalysis scanne une ligne SQL vers une SwingAnalysis
func ScanSwingAnalysis(row RowScanner) (*model.SwingAnalysis, error) {
	var a model.SwingAnalysis
	var videoRef, hostedVideoID, clubID, clubName, clubType, outcome, proGolferName sql.NullString
	var metricsJSON []byte

	err := row.Scan(
		&a.ID, &a.UserID, &videoRef, &a.IsHostedVideo, &hostedVideoID,
		&a.AnalysisTimestamp, &a.RecordedTimestamp,
		&a.OverallScore, &metricsJSON, &a.Recommendations,
		&clubID, &clubName, &clubType, &a.ClubExternal,
		&outcome, &a.SwingOwnership, &proGolferName, &a.SourceIsFallback,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.VideoRef = utils.NullStringToPointer(videoRef)
	a.HostedVideoID = utils.NullStringToString(hostedVideoID)
	a.ClubID = utils.NullStringToPointer(clubID)
	a.ClubName = utils.NullStringToString(clubName)
	a.ClubType = utils.NullStringToString(clubType)
	a.ProGolferName = utils.NullStringToPointer(proGolferName)

	if outcome.Valid {
		o := model.ShotOutcome(outcome.String)
		a.Outcome = &o
	}

	if err := json.Unmarshal(metricsJSON, &a.Metrics); err != nil {
		return nil, fmt.Errorf("corrupt metrics payload for swing %s: %w", a.ID, err)
	}

	return &a, nil
}

// ScanFeedback scanne une ligne SQL vers un Feedback
func ScanFeedback(row RowScanner) (*model.Feedback, error) {
	var f model.Feedback
	var skillSnapshot sql.NullString

	err := row.Scan(
		&f.ID, &f.SwingID, &f.UserID, &f.TargetMetric, &f.Verdict,
		&skillSnapshot, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.SkillLevelSnapshot = model.SkillLevel(utils.NullStringToString(skillSnapshot))
	return &f, nil
}
