package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClubValidate(t *testing.T) {
	valid := Club{Name: "7 Iron", Type: ClubIron, Confidence: 6, Distance: 160}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		club Club
	}{
		{"missing name", Club{Type: ClubIron, Confidence: 5}},
		{"unknown type", Club{Name: "Mystery", Type: ClubType("Laser"), Confidence: 5}},
		{"confidence too low", Club{Name: "Driver", Type: ClubWood, Confidence: 0}},
		{"confidence too high", Club{Name: "Driver", Type: ClubWood, Confidence: 11}},
		{"negative distance", Club{Name: "Driver", Type: ClubWood, Confidence: 5, Distance: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.club.Validate())
		})
	}
}

func TestOnboardingState(t *testing.T) {
	var nobody *UserProfile
	assert.Equal(t, OnboardingUnauthenticated, nobody.Onboarding())
	assert.Equal(t, OnboardingUnauthenticated, (&UserProfile{}).Onboarding())

	pending := &UserProfile{ID: "u1"}
	assert.Equal(t, OnboardingSetupPending, pending.Onboarding())

	ready := &UserProfile{ID: "u1", SetupCompleted: true}
	assert.Equal(t, OnboardingReady, ready.Onboarding())
}

func TestShotOutcomeLabels(t *testing.T) {
	assert.Equal(t, "Fade/Slice", OutcomeFade.Label())
	assert.Equal(t, "Straight", OutcomeStraight.Label())
	// Une valeur inconnue retombe sur sa forme brute
	assert.Equal(t, "worm-burner", ShotOutcome("worm-burner").Label())
	assert.False(t, ShotOutcome("worm-burner").Valid())
}

func TestSwingOwnershipValid(t *testing.T) {
	assert.True(t, OwnershipSelf.Valid())
	assert.True(t, OwnershipPro.Valid())
	assert.False(t, SwingOwnership("caddy").Valid())
}
