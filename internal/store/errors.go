package store

import "errors"

var (
	// ErrNotFound l'identifiant ne résout aucun document
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized mutation tentée sur un document d'un autre utilisateur
	ErrUnauthorized = errors.New("unauthorized")
)
