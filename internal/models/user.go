package model

import (
	"time"
)

// SkillLevel niveau de jeu déclaré par l'utilisateur
type SkillLevel string

const (
	SkillPro      SkillLevel = "pro"
	SkillAdvanced SkillLevel = "advanced"
	SkillAmateur  SkillLevel = "amateur"
	SkillBeginner SkillLevel = "beginner"
)

// SkillLevels liste des niveaux valides, du plus fort au plus faible
var SkillLevels = []SkillLevel{SkillPro, SkillAdvanced, SkillAmateur, SkillBeginner}

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillPro, SkillAdvanced, SkillAmateur, SkillBeginner:
		return true
	}
	return false
}

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID             string     `json:"id,omitempty"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Avatar         string     `json:"avatar,omitempty"`
	SkillLevel     SkillLevel `json:"skillLevel,omitempty"`
	SetupCompleted bool       `json:"setupCompleted"`
	IsAdmin        bool       `json:"isAdmin"`
	Provider       string     `json:"provider,omitempty"` // email, google, apple

	// Politique de datation des swings
	AllowHistoricalSwings bool       `json:"allowHistoricalSwings"`
	DefaultSwingDate      *time.Time `json:"defaultSwingDate,omitempty"`

	Clubs []Club     `json:"clubs,omitempty"`
	Stats *UserStats `json:"stats,omitempty"`

	JoinDate time.Time `json:"joinDate,omitempty"`
	DateFields
}

// OnboardingState état du parcours d'inscription
type OnboardingState string

const (
	OnboardingUnauthenticated OnboardingState = "unauthenticated"
	OnboardingSetupPending    OnboardingState = "authenticated_setup_pending"
	OnboardingReady           OnboardingState = "authenticated_ready"
)

// Onboarding retourne l'état courant du parcours pour ce profil
func (u *UserProfile) Onboarding() OnboardingState {
	if u == nil || u.ID == "" {
		return OnboardingUnauthenticated
	}
	if !u.SetupCompleted {
		return OnboardingSetupPending
	}
	return OnboardingReady
}
