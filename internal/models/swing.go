package model

import (
	"io"
	"time"
)

// SwingOwnership indique qui a exécuté le swing analysé
type SwingOwnership string

const (
	OwnershipSelf  SwingOwnership = "self"
	OwnershipOther SwingOwnership = "other"
	OwnershipPro   SwingOwnership = "pro"
)

func (o SwingOwnership) Valid() bool {
	switch o {
	case OwnershipSelf, OwnershipOther, OwnershipPro:
		return true
	}
	return false
}

// ShotOutcome résultat du coup (valeur réseau)
type ShotOutcome string

const (
	OutcomeStraight ShotOutcome = "straight"
	OutcomeFade     ShotOutcome = "fade"
	OutcomeDraw     ShotOutcome = "draw"
	OutcomePush     ShotOutcome = "push"
	OutcomePull     ShotOutcome = "pull"
	OutcomeThin     ShotOutcome = "thin"
	OutcomeFat      ShotOutcome = "fat"
	OutcomeShank    ShotOutcome = "shank"
)

var outcomeLabels = map[ShotOutcome]string{
	OutcomeStraight: "Straight",
	OutcomeFade:     "Fade/Slice",
	OutcomeDraw:     "Draw/Hook",
	OutcomePush:     "Push",
	OutcomePull:     "Pull",
	OutcomeThin:     "Thin/Topped",
	OutcomeFat:      "Fat/Chunked",
	OutcomeShank:    "Shank",
}

func (o ShotOutcome) Valid() bool {
	_, ok := outcomeLabels[o]
	return ok
}

// Label libellé affichable du résultat
func (o ShotOutcome) Label() string {
	if l, ok := outcomeLabels[o]; ok {
		return l
	}
	return string(o)
}

// SwingAnalysis une analyse de swing persistée
type SwingAnalysis struct {
	ID     string `json:"id,omitempty"`
	UserID string `json:"userId"`

	VideoRef      *string `json:"videoRef"`
	IsHostedVideo bool    `json:"isHostedVideo"`
	HostedVideoID string  `json:"hostedVideoId,omitempty"`

	AnalysisTimestamp time.Time `json:"analysisTimestamp"`
	RecordedTimestamp time.Time `json:"recordedTimestamp"`

	OverallScore    float64            `json:"overallScore"`
	Metrics         map[string]float64 `json:"metrics"`
	Recommendations []string           `json:"recommendations"`

	ClubID       *string `json:"clubId,omitempty"`
	ClubName     string  `json:"clubName,omitempty"`
	ClubType     string  `json:"clubType,omitempty"`
	ClubExternal bool    `json:"clubExternal,omitempty"` // club fourni hors du sac du propriétaire

	Outcome        *ShotOutcome   `json:"outcome,omitempty"`
	SwingOwnership SwingOwnership `json:"swingOwnership"`
	ProGolferName  *string        `json:"proGolferName,omitempty"`

	SourceIsFallback bool `json:"_sourceIsFallback"`

	// Champs dérivés en lecture, jamais persistés
	AdjustedOverallScore *float64           `json:"adjustedOverallScore,omitempty"`
	AdjustedMetrics      map[string]float64 `json:"adjustedMetrics,omitempty"`

	// IsLocalOnly: analyse produite sans utilisateur authentifié, rien n'est stocké
	IsLocalOnly bool `json:"isLocalOnly,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// VideoKind variante d'entrée vidéo
type VideoKind string

const (
	VideoKindFile   VideoKind = "file"
	VideoKindHosted VideoKind = "hostedVideo"
)

// VideoInput entrée vidéo taguée: fichier uploadé ou lien hébergé
type VideoInput struct {
	Kind VideoKind `json:"kind"`

	// Variante fichier
	FileName string    `json:"fileName,omitempty"`
	Size     int64     `json:"size,omitempty"`
	Content  io.Reader `json:"-"`

	// Variante hébergée
	HostedURL string `json:"hostedUrl,omitempty"`
}

// SwingMetadata métadonnées structurées accompagnant une vidéo
type SwingMetadata struct {
	SwingOwnership    SwingOwnership `json:"swingOwnership"`
	ProGolferName     *string        `json:"proGolferName,omitempty"`
	ClubID            *string        `json:"clubId,omitempty"`
	ClubName          string         `json:"clubName,omitempty"`
	ClubType          string         `json:"clubType,omitempty"`
	Outcome           *ShotOutcome   `json:"outcome,omitempty"`
	RecordedTimestamp *time.Time     `json:"recordedTimestamp,omitempty"`
	SkillLevelHint    SkillLevel     `json:"skillLevelHint,omitempty"`
}
