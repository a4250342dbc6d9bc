package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// capture redirige la sortie colorée le temps d'un test
func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := color.Output, color.NoColor
	color.Output = &buf
	color.NoColor = true
	defer func() {
		color.Output = prevOut
		color.NoColor = prevNoColor
	}()
	fn()
	return buf.String()
}

func TestRequestKeepsVerbsInPathLiteral(t *testing.T) {
	out := capture(t, func() {
		Request("GET", "/api/clubs/100%25off", 200, 5*time.Millisecond)
	})

	assert.Contains(t, out, "/api/clubs/100%25off")
	assert.NotContains(t, out, "%!")
}

func TestRequestStatusAndDuration(t *testing.T) {
	out := capture(t, func() {
		Request("DELETE", "/api/swings/abc", 403, 1500*time.Microsecond)
	})

	assert.Contains(t, out, "DELETE")
	assert.Contains(t, out, "[403]")
	assert.Contains(t, out, "2ms")
}
