package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// hostedVideoIDPattern identifiant opaque à 11 caractères du fournisseur
var hostedVideoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseHostedVideoID extrait l'identifiant vidéo d'une URL hébergée.
// Formes acceptées: URL watch standard, URL courte, URL embed et shorts.
// Seuls l'identifiant et l'URL embed canonique sont persistés ensuite.
func ParseHostedVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty video URL")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("malformed video URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string

	switch host {
	case "youtube.com", "m.youtube.com", "youtube-nocookie.com":
		path := strings.Trim(u.Path, "/")
		switch {
		case path == "watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(path, "embed/"):
			id = strings.TrimPrefix(path, "embed/")
		case strings.HasPrefix(path, "shorts/"):
			id = strings.TrimPrefix(path, "shorts/")
		}
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	default:
		return "", fmt.Errorf("unsupported video provider %q", host)
	}

	// L'identifiant peut traîner un suffixe de chemin
	if i := strings.IndexByte(id, '/'); i >= 0 {
		id = id[:i]
	}

	if !hostedVideoIDPattern.MatchString(id) {
		return "", fmt.Errorf("could not extract a video id from %q", raw)
	}
	return id, nil
}

// HostedEmbedURL forme l'URL embed canonique pour un identifiant
func HostedEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
