// Package analysis produit des enregistrements d'analyse de swing
// normalisés. Le modèle distant est une boîte noire; quand il est
// indisponible ou que sa sortie est invalide, un générateur déterministe
// local prend le relais pour toujours rendre un enregistrement conforme.
package analysis

import (
	"context"
	"math"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	"github.com/GolfGuruApp/SwingAI-backend/internal/logger"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/services/llm"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

// ModelClient abstraction du client du modèle distant
type ModelClient interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Producer produit une SwingAnalysis depuis une vidéo et ses métadonnées
type Producer struct {
	client ModelClient
	now    func() time.Time
}

// Option personnalise le producteur
type Option func(*Producer)

// WithClock remplace l'horloge (tests)
func WithClock(now func() time.Time) Option {
	return func(p *Producer) { p.now = now }
}

// NewProducer construit un producteur. Un client nil signifie qu'aucun
// modèle n'est configuré: toutes les analyses seront des fallbacks.
func NewProducer(client ModelClient, opts ...Option) *Producer {
	p := &Producer{client: client, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// modelPayload forme attendue de la réponse du modèle
type modelPayload struct {
	OverallScore    float64            `json:"overallScore"`
	Metrics         map[string]float64 `json:"metrics"`
	Recommendations []string           `json:"recommendations"`
}

// Produce retourne toujours un enregistrement conforme au schéma. Les
// pannes du fournisseur (réseau, timeout, sortie inexploitable) basculent
// silencieusement sur le fallback; seule une requête mal formée (4xx)
// est remontée à l'appelant.
func (p *Producer) Produce(ctx context.Context, video model.VideoInput, meta model.SwingMetadata) (*model.SwingAnalysis, error) {
	raw, err := p.fromModel(ctx, video, meta)
	if err != nil {
		if llm.IsBadRequest(err) {
			return nil, err
		}
		logger.Warning("model unavailable, using fallback analysis: %v", err)
		raw = Fallback(video, meta)
	}

	p.finalize(raw, video, meta)
	return raw, nil
}

func (p *Producer) fromModel(ctx context.Context, video model.VideoInput, meta model.SwingMetadata) (*model.SwingAnalysis, error) {
	if p.client == nil {
		return nil, errModelNotConfigured
	}

	content, err := p.client.CompleteJSON(ctx, systemPrompt(), userPrompt(video, meta))
	if err != nil {
		return nil, err
	}

	var payload modelPayload
	if err := llm.DecodeJSON(content, &payload); err != nil {
		return nil, err
	}

	return normalize(payload)
}

// normalize valide la sortie du modèle contre le schéma: toutes les clés
// du catalogue présentes, scores numériques bornés à [0,100], conseils
// non vides. Les clés hors catalogue sont écartées.
func normalize(payload modelPayload) (*model.SwingAnalysis, error) {
	metrics := make(map[string]float64, catalog.Count())
	for _, key := range catalog.Keys() {
		score, ok := payload.Metrics[key]
		if !ok {
			return nil, &invalidPayloadError{reason: "missing metric " + key}
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, &invalidPayloadError{reason: "non-finite score for " + key}
		}
		metrics[key] = clampScore(score)
	}

	if math.IsNaN(payload.OverallScore) || math.IsInf(payload.OverallScore, 0) {
		return nil, &invalidPayloadError{reason: "non-finite overall score"}
	}

	recs := make([]string, 0, len(payload.Recommendations))
	for _, r := range payload.Recommendations {
		if r != "" {
			recs = append(recs, r)
		}
	}
	if len(recs) == 0 {
		return nil, &invalidPayloadError{reason: "no recommendations"}
	}

	return &model.SwingAnalysis{
		OverallScore:    clampScore(payload.OverallScore),
		Metrics:         metrics,
		Recommendations: recs,
	}, nil
}

// finalize estampille les champs communs au modèle et au fallback
func (p *Producer) finalize(a *model.SwingAnalysis, video model.VideoInput, meta model.SwingMetadata) {
	now := p.now().UTC()
	a.AnalysisTimestamp = now

	if meta.RecordedTimestamp != nil && !meta.RecordedTimestamp.IsZero() {
		a.RecordedTimestamp = meta.RecordedTimestamp.UTC()
	} else {
		a.RecordedTimestamp = now
	}

	a.SwingOwnership = meta.SwingOwnership
	if a.SwingOwnership == "" {
		a.SwingOwnership = model.OwnershipSelf
	}
	if a.SwingOwnership == model.OwnershipPro {
		a.ProGolferName = meta.ProGolferName
	}

	a.ClubID = meta.ClubID
	a.ClubName = meta.ClubName
	a.ClubType = meta.ClubType
	a.Outcome = meta.Outcome

	if video.Kind == model.VideoKindHosted {
		if id, err := utils.ParseHostedVideoID(video.HostedURL); err == nil {
			a.IsHostedVideo = true
			a.HostedVideoID = id
		}
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
