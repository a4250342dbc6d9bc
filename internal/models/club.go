package model

import (
	"fmt"
	"time"
)

// ClubType famille d'un club de golf
type ClubType string

const (
	ClubWood   ClubType = "Wood"
	ClubIron   ClubType = "Iron"
	ClubWedge  ClubType = "Wedge"
	ClubHybrid ClubType = "Hybrid"
	ClubPutter ClubType = "Putter"
	ClubOther  ClubType = "Other"
)

func (t ClubType) Valid() bool {
	switch t {
	case ClubWood, ClubIron, ClubWedge, ClubHybrid, ClubPutter, ClubOther:
		return true
	}
	return false
}

// Club un club dans le sac d'un utilisateur
type Club struct {
	ID         string   `json:"id,omitempty"`
	UserID     string   `json:"userId,omitempty"`
	Name       string   `json:"name"`
	Type       ClubType `json:"type"`
	Confidence int      `json:"confidence"` // 1..10
	Distance   int      `json:"distance"`   // yards, >= 0

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Validate vérifie les bornes d'un club avant écriture
func (c *Club) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if !c.Type.Valid() {
		return fmt.Errorf("unknown club type %q", c.Type)
	}
	if c.Confidence < 1 || c.Confidence > 10 {
		return fmt.Errorf("club confidence must be between 1 and 10")
	}
	if c.Distance < 0 {
		return fmt.Errorf("club distance must be positive")
	}
	return nil
}
