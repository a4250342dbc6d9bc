package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
)

// systemPrompt gabarit fixe: le modèle doit émettre un objet machine-lisible
// avec exactement les clés du catalogue, un score global et des conseils.
const systemPromptTemplate = `You are a professional golf swing coach. You evaluate a golf swing from the video and metadata supplied by the user.

Respond with a single JSON object and nothing else, with exactly this shape:
{
  "overallScore": <number 0-100>,
  "metrics": { %s },
  "recommendations": [<3 to 5 short coaching strings>]
}

Every metric key listed above must be present, each scored 0-100. The overall score is your independent judgement of the swing as a whole, not an average of the metrics.`

func systemPrompt() string {
	keys := catalog.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q: <number 0-100>", k)
	}
	return fmt.Sprintf(systemPromptTemplate, strings.Join(parts, ", "))
}

// userPrompt décrit la vidéo et les métadonnées structurées du swing
func userPrompt(video model.VideoInput, meta model.SwingMetadata) string {
	var b strings.Builder

	switch video.Kind {
	case model.VideoKindHosted:
		fmt.Fprintf(&b, "Swing video (hosted): %s\n", video.HostedURL)
	default:
		fmt.Fprintf(&b, "Swing video file: %s (%d bytes)\n", video.FileName, video.Size)
	}

	encoded, _ := json.Marshal(meta)
	fmt.Fprintf(&b, "Swing metadata: %s\n", encoded)
	b.WriteString("Evaluate this swing.")
	return b.String()
}
