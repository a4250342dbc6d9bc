package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHostedVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=abc12345678", "abc12345678", false},
		{"watch url with extra params", "https://youtube.com/watch?v=abc12345678&t=42s", "abc12345678", false},
		{"short url", "https://youtu.be/abc12345678", "abc12345678", false},
		{"short url with query", "https://youtu.be/abc12345678?si=xyz", "abc12345678", false},
		{"embed url", "https://www.youtube.com/embed/abc12345678", "abc12345678", false},
		{"shorts url", "https://youtube.com/shorts/abc12345678", "abc12345678", false},
		{"mobile host", "https://m.youtube.com/watch?v=abc12345678", "abc12345678", false},
		{"nocookie host", "https://www.youtube-nocookie.com/embed/abc12345678", "abc12345678", false},
		{"id with dash and underscore", "https://youtu.be/a-b_c123456", "a-b_c123456", false},
		{"empty", "", "", true},
		{"not a url", "not a url at all ://", "", true},
		{"unknown provider", "https://vimeo.com/123456789", "", true},
		{"missing id", "https://www.youtube.com/watch", "", true},
		{"id too short", "https://youtu.be/abc123", "", true},
		{"id too long", "https://youtu.be/abc123456789000", "", true},
		{"bad scheme", "ftp://youtube.com/watch?v=abc12345678", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHostedVideoID(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostedEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc12345678", HostedEmbedURL("abc12345678"))
}

func TestHostedVideoRoundTrip(t *testing.T) {
	// L'URL embed canonique doit elle-même être re-parsable
	id, err := ParseHostedVideoID(HostedEmbedURL("abc12345678"))
	require.NoError(t, err)
	assert.Equal(t, "abc12345678", id)
}
