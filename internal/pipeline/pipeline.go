package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/GolfGuruApp/SwingAI-backend/internal/adjustment"
	"github.com/GolfGuruApp/SwingAI-backend/internal/feedback"
	"github.com/GolfGuruApp/SwingAI-backend/internal/logger"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
	"github.com/google/uuid"
)

// MaxVideoSize taille maximale acceptée pour un fichier vidéo
const MaxVideoSize = 10 << 20 // 10 MB

// Pannes transitoires des effets de stockage: le client peut réessayer
// la même requête sans modification.
var (
	ErrBlobUnavailable  = errors.New("video storage unavailable")
	ErrStoreUnavailable = errors.New("swing persistence unavailable")
)

// Producer produit une analyse à partir d'une vidéo et de ses métadonnées
type Producer interface {
	Produce(ctx context.Context, video model.VideoInput, meta model.SwingMetadata) (*model.SwingAnalysis, error)
}

// BlobStore stockage distant des fichiers vidéo
type BlobStore interface {
	UploadSwingVideo(ctx context.Context, file io.Reader, userID, swingID string) (string, error)
	DeleteSwingVideo(ctx context.Context, swingID string) error
}

// SwingStore persistance des analyses
type SwingStore interface {
	SaveSwing(ctx context.Context, a *model.SwingAnalysis) error
	GetSwingByID(ctx context.Context, swingID string) (*model.SwingAnalysis, error)
	DeleteSwing(ctx context.Context, swingID, userID string) error
}

// StatsStore recalcul des statistiques après chaque écriture
type StatsStore interface {
	RecomputeStats(ctx context.Context, userID string) (model.UserStats, error)
}

// FeedbackStore lecture du feedback brut pour l'agrégation
type FeedbackStore interface {
	ListAllFeedback(ctx context.Context) ([]model.Feedback, error)
}

// AdjustmentStore document des facteurs d'ajustement courants
type AdjustmentStore interface {
	SaveAdjustmentFactors(ctx context.Context, f *model.AdjustmentFactors, adminID string) error
	GetAdjustmentFactors(ctx context.Context) (*model.AdjustmentFactors, error)
}

// Pipeline orchestre analyse, stockage vidéo, persistance et stats.
// Chaque effet passe par une interface pour rester testable sans réseau
// ni base.
type Pipeline struct {
	producer    Producer
	blobs       BlobStore
	swings      SwingStore
	stats       StatsStore
	feedback    FeedbackStore
	adjustments AdjustmentStore
	newID       func() string
}

func New(producer Producer, blobs BlobStore, swings SwingStore, stats StatsStore, fb FeedbackStore, adj AdjustmentStore) *Pipeline {
	return &Pipeline{
		producer:    producer,
		blobs:       blobs,
		swings:      swings,
		stats:       stats,
		feedback:    fb,
		adjustments: adj,
		newID:       func() string { return uuid.New().String() },
	}
}

// videoExtensions formats de fichiers acceptés
var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".webm": true, ".m4v": true,
}

func validateVideo(video model.VideoInput) error {
	switch video.Kind {
	case model.VideoKindFile:
		if video.Content == nil {
			return fmt.Errorf("missing video content")
		}
		if video.Size > MaxVideoSize {
			return fmt.Errorf("video exceeds maximum size of %d bytes", MaxVideoSize)
		}
		ext := strings.ToLower(filepath.Ext(video.FileName))
		if !videoExtensions[ext] {
			return fmt.Errorf("unsupported video format %q", ext)
		}
	case model.VideoKindHosted:
		if _, err := utils.ParseHostedVideoID(video.HostedURL); err != nil {
			return fmt.Errorf("invalid hosted video url: %w", err)
		}
	default:
		return fmt.Errorf("unknown video input kind %q", video.Kind)
	}
	return nil
}

// AnalyzeAndSave exécute le parcours complet d'une analyse.
//
// Sans utilisateur authentifié, l'analyse est produite et retournée mais
// rien n'est stocké (IsLocalOnly). Avec utilisateur, le stockage dépend
// de la possession: seul un swing "self" avec fichier part chez le
// fournisseur vidéo; une vidéo hébergée est référencée par son URL embed
// canonique; un fichier non-self n'est pas conservé.
func (p *Pipeline) AnalyzeAndSave(ctx context.Context, user *model.UserProfile, video model.VideoInput, meta model.SwingMetadata) (*model.SwingAnalysis, error) {
	if err := validateVideo(video); err != nil {
		return nil, err
	}

	if meta.SwingOwnership == "" {
		meta.SwingOwnership = model.OwnershipSelf
	}
	if !meta.SwingOwnership.Valid() {
		return nil, fmt.Errorf("unknown swing ownership %q", meta.SwingOwnership)
	}
	if user != nil {
		if meta.SkillLevelHint == "" {
			meta.SkillLevelHint = user.SkillLevel
		}
		// Politique de datation du profil
		if !user.AllowHistoricalSwings {
			meta.RecordedTimestamp = nil
		} else if meta.RecordedTimestamp == nil && user.DefaultSwingDate != nil {
			meta.RecordedTimestamp = user.DefaultSwingDate
		}
	}

	analysis, err := p.producer.Produce(ctx, video, meta)
	if err != nil {
		return nil, err
	}
	analysis.ID = p.newID()

	if user == nil {
		analysis.IsLocalOnly = true
		return analysis, nil
	}
	analysis.UserID = user.ID

	// Un club hors du sac du propriétaire est marqué externe; un club du
	// sac impose ses champs dénormalisés.
	if analysis.ClubID != nil {
		analysis.ClubExternal = true
		for _, c := range user.Clubs {
			if c.ID == *analysis.ClubID {
				analysis.ClubExternal = false
				analysis.ClubName = c.Name
				analysis.ClubType = string(c.Type)
				break
			}
		}
	}

	switch {
	case video.Kind == model.VideoKindHosted:
		id, err := utils.ParseHostedVideoID(video.HostedURL)
		if err != nil {
			return nil, fmt.Errorf("invalid hosted video url: %w", err)
		}
		embed := utils.HostedEmbedURL(id)
		analysis.VideoRef = &embed
		analysis.IsHostedVideo = true
		analysis.HostedVideoID = id

	case meta.SwingOwnership == model.OwnershipSelf:
		ref, err := p.blobs.UploadSwingVideo(ctx, video.Content, user.ID, analysis.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: upload swing video: %v", ErrBlobUnavailable, err)
		}
		analysis.VideoRef = &ref

	default:
		// Fichier non-self: on garde l'analyse, pas la vidéo
		analysis.VideoRef = nil
	}

	if err := p.swings.SaveSwing(ctx, analysis); err != nil {
		return nil, fmt.Errorf("%w: save swing: %v", ErrStoreUnavailable, err)
	}

	// Le recalcul des stats n'est jamais bloquant pour l'analyse
	if meta.SwingOwnership == model.OwnershipSelf {
		if _, err := p.stats.RecomputeStats(ctx, user.ID); err != nil {
			logger.Warning("stats recompute failed for user %s: %v", user.ID, err)
		}
	}

	return analysis, nil
}

// DeleteSwing supprime une analyse et, au mieux, sa vidéo distante. La
// suppression du blob est best-effort: l'enregistrement part même si le
// fournisseur vidéo échoue.
func (p *Pipeline) DeleteSwing(ctx context.Context, user *model.UserProfile, swingID string) error {
	existing, err := p.swings.GetSwingByID(ctx, swingID)
	if err != nil {
		return err
	}

	if err := p.swings.DeleteSwing(ctx, swingID, user.ID); err != nil {
		return err
	}

	if existing.VideoRef != nil && !existing.IsHostedVideo {
		if err := p.blobs.DeleteSwingVideo(ctx, swingID); err != nil {
			logger.Warning("blob delete failed for swing %s: %v", swingID, err)
		}
	}

	if existing.SwingOwnership == model.OwnershipSelf {
		if _, err := p.stats.RecomputeStats(ctx, existing.UserID); err != nil {
			logger.Warning("stats recompute failed for user %s: %v", existing.UserID, err)
		}
	}

	return nil
}

// AdjustedView retourne l'analyse enrichie des scores ajustés selon les
// facteurs courants et le niveau de l'observateur
func (p *Pipeline) AdjustedView(ctx context.Context, a *model.SwingAnalysis, skill model.SkillLevel) (*model.SwingAnalysis, error) {
	factors, err := p.adjustments.GetAdjustmentFactors(ctx)
	if err != nil {
		return nil, err
	}
	if factors != nil {
		adjustment.Apply(a, factors, skill)
	}
	return a, nil
}

// RecomputeAdjustments agrège tout le feedback et publie un nouveau
// document de facteurs
func (p *Pipeline) RecomputeAdjustments(ctx context.Context, adminID string) (*model.AdjustmentFactors, error) {
	items, err := p.feedback.ListAllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	summary := feedback.Aggregate(items)
	factors := adjustment.ComputeFactors(summary)

	if err := p.adjustments.SaveAdjustmentFactors(ctx, &factors, adminID); err != nil {
		return nil, err
	}

	logger.Success("adjustment factors recomputed from %d feedback items", len(items))
	return &factors, nil
}
