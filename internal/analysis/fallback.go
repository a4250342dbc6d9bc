package analysis

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
)

var errModelNotConfigured = errors.New("analysis model not configured")

type invalidPayloadError struct {
	reason string
}

func (e *invalidPayloadError) Error() string {
	return "invalid model payload: " + e.reason
}

// recTemplates conseil type par métrique faible
var recTemplates = map[string]string{
	"grip":           "Check your grip pressure: hold the club like you would a small bird, firm but relaxed.",
	"stance":         "Widen your stance to shoulder width and keep your weight on the balls of your feet.",
	"posture":        "Bend from the hips, not the waist, and keep your spine angle through the swing.",
	"alignment":      "Lay a club on the ground along your toe line to check your alignment at address.",
	"backswing":      "Slow down your takeaway and let your wrists set naturally at the top.",
	"hipRotation":    "Start the downswing with your hips: feel your belt buckle turn toward the target.",
	"weightTransfer": "Finish with 90% of your weight on your lead foot, trail heel off the ground.",
	"followThrough":  "Swing through the ball, not at it, and hold a balanced finish for two seconds.",
	"clubPath":       "Practice with an alignment stick outside the ball to shallow your club path.",
	"tempo":          "Count a 3-to-1 rhythm: three beats back, one beat down.",
	"impactPosition": "Work on forward shaft lean at impact: hands ahead of the clubhead.",
	"focus":          "Pick the smallest possible target and commit to it before you step in.",
	"preShotRoutine": "Build a repeatable routine: same number of looks and waggles on every swing.",
}

// fingerprint empreinte déterministe des entrées
func fingerprint(video model.VideoInput, meta model.SwingMetadata) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d|%s|%s|%s",
		video.Kind, video.FileName, video.Size, video.HostedURL,
		meta.SwingOwnership, meta.ClubName)
	if meta.RecordedTimestamp != nil {
		fmt.Fprintf(h, "|%d", meta.RecordedTimestamp.Unix())
	}
	return int64(h.Sum64())
}

// Fallback produit une analyse pseudo-aléatoire déterministe, seedée par
// une empreinte des entrées. Même schéma et mêmes bornes que le modèle.
func Fallback(video model.VideoInput, meta model.SwingMetadata) *model.SwingAnalysis {
	rng := rand.New(rand.NewSource(fingerprint(video, meta)))

	metrics := make(map[string]float64, catalog.Count())
	for _, key := range catalog.Keys() {
		metrics[key] = float64(40 + rng.Intn(56)) // 40..95
	}
	overall := float64(45 + rng.Intn(46)) // 45..90, indépendant des métriques

	// Conseils ciblés sur les métriques les plus faibles
	keys := catalog.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if metrics[keys[i]] != metrics[keys[j]] {
			return metrics[keys[i]] < metrics[keys[j]]
		}
		return keys[i] < keys[j]
	})
	recs := make([]string, 0, 3)
	for _, key := range keys[:3] {
		recs = append(recs, recTemplates[key])
	}

	return &model.SwingAnalysis{
		OverallScore:     overall,
		Metrics:          metrics,
		Recommendations:  recs,
		SourceIsFallback: true,
	}
}
