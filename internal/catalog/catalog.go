// Package catalog est le registre fixe des métriques d'analyse de swing.
// L'UI et l'agrégation s'accordent sur cet univers de clés; tout le reste
// du code passe par ici pour savoir quelles métriques existent.
package catalog

import "sort"

// Category catégorie d'affichage d'une métrique
type Category string

const (
	CategoryMental  Category = "Mental"
	CategorySetup   Category = "Setup"
	CategoryClub    Category = "Club"
	CategoryBody    Category = "Body"
	CategoryGeneral Category = "General"
)

// Entry description statique d'une métrique
type Entry struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Difficulty  int      `json:"difficulty"` // 1..5
	Weight      float64  `json:"weight"`     // informatif, part uniforme
}

var entries = map[string]Entry{
	"grip": {
		Key: "grip", Title: "Grip",
		Description: "Hand placement and pressure on the club",
		Category:    CategorySetup, Difficulty: 2,
	},
	"stance": {
		Key: "stance", Title: "Stance",
		Description: "Foot width and weight distribution at address",
		Category:    CategorySetup, Difficulty: 1,
	},
	"posture": {
		Key: "posture", Title: "Posture",
		Description: "Spine angle and athletic position at address",
		Category:    CategorySetup, Difficulty: 2,
	},
	"alignment": {
		Key: "alignment", Title: "Alignment",
		Description: "Body and clubface orientation relative to the target line",
		Category:    CategorySetup, Difficulty: 2,
	},
	"backswing": {
		Key: "backswing", Title: "Backswing",
		Description: "Takeaway path, wrist set and top position",
		Category:    CategoryBody, Difficulty: 3,
	},
	"hipRotation": {
		Key: "hipRotation", Title: "Hip Rotation",
		Description: "Hip turn in the backswing and clearing through impact",
		Category:    CategoryBody, Difficulty: 4,
	},
	"weightTransfer": {
		Key: "weightTransfer", Title: "Weight Transfer",
		Description: "Pressure shift from trail to lead side through the swing",
		Category:    CategoryBody, Difficulty: 4,
	},
	"followThrough": {
		Key: "followThrough", Title: "Follow Through",
		Description: "Extension and balanced finish after impact",
		Category:    CategoryBody, Difficulty: 3,
	},
	"clubPath": {
		Key: "clubPath", Title: "Club Path",
		Description: "Swing plane and club direction through the hitting zone",
		Category:    CategoryClub, Difficulty: 5,
	},
	"tempo": {
		Key: "tempo", Title: "Tempo",
		Description: "Rhythm and transition timing of the whole motion",
		Category:    CategoryClub, Difficulty: 3,
	},
	"impactPosition": {
		Key: "impactPosition", Title: "Impact Position",
		Description: "Hands, shaft lean and low point at the moment of contact",
		Category:    CategoryClub, Difficulty: 5,
	},
	"focus": {
		Key: "focus", Title: "Focus",
		Description: "Commitment to the shot and target awareness",
		Category:    CategoryMental, Difficulty: 2,
	},
	"preShotRoutine": {
		Key: "preShotRoutine", Title: "Pre-Shot Routine",
		Description: "Consistency of the preparation before the swing",
		Category:    CategoryMental, Difficulty: 1,
	},
}

func init() {
	// Part uniforme pour toutes les métriques
	w := 1.0 / float64(len(entries))
	for k, e := range entries {
		e.Weight = w
		entries[k] = e
	}
}

// Keys retourne les clés du catalogue, triées
func Keys() []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has indique si la clé appartient au catalogue
func Has(key string) bool {
	_, ok := entries[key]
	return ok
}

// Count nombre de métriques du catalogue
func Count() int {
	return len(entries)
}

// Lookup retourne l'entrée d'une clé. Une clé inconnue est résolue en une
// entrée synthétique de catégorie "General".
func Lookup(key string) Entry {
	if e, ok := entries[key]; ok {
		return e
	}
	return Entry{
		Key:         key,
		Title:       key,
		Description: "Swing metric",
		Category:    CategoryGeneral,
		Difficulty:  3,
		Weight:      1.0 / float64(len(entries)),
	}
}

// CategoryColor couleur d'affichage d'une catégorie
func CategoryColor(c Category) string {
	switch c {
	case CategoryMental:
		return "#8b5cf6"
	case CategorySetup:
		return "#3b82f6"
	case CategoryClub:
		return "#f59e0b"
	case CategoryBody:
		return "#10b981"
	default:
		return "#6b7280"
	}
}

// ScoreColor couleur d'un score (seuils 80/60)
func ScoreColor(score float64) string {
	switch {
	case score >= 80:
		return "#22c55e"
	case score >= 60:
		return "#eab308"
	default:
		return "#ef4444"
	}
}
