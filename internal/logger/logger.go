// Package logger fournit les loggers colorés du serveur
package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

func stamp() string {
	return time.Now().Format("15:04:05")
}

// Info log une information générale (bleu)
func Info(format string, args ...interface{}) {
	color.Blue("[%s] %s", stamp(), fmt.Sprintf(format, args...))
}

// Success log un succès (vert)
func Success(format string, args ...interface{}) {
	color.Green("[%s] ✓ %s", stamp(), fmt.Sprintf(format, args...))
}

// Warning log un avertissement (jaune)
func Warning(format string, args ...interface{}) {
	color.Yellow("[%s] ⚠ %s", stamp(), fmt.Sprintf(format, args...))
}

// Error log une erreur (rouge)
func Error(format string, args ...interface{}) {
	color.Red("[%s] ✗ %s", stamp(), fmt.Sprintf(format, args...))
}

// Debug log un message de debug (cyan)
func Debug(format string, args ...interface{}) {
	color.Cyan("[%s] DEBUG: %s", stamp(), fmt.Sprintf(format, args...))
}

// Request log une requête HTTP avec son statut et sa durée
func Request(method, path string, statusCode int, duration time.Duration) {
	// Le chemin peut contenir des '%': toujours passer la ligne en argument
	line := fmt.Sprintf("[%s] %-6s %-40s [%d] (%s)", stamp(), method, path, statusCode, duration.Round(time.Millisecond))
	switch {
	case statusCode >= 500:
		color.Red("%s", line)
	case statusCode >= 400:
		color.Yellow("%s", line)
	default:
		color.Green("%s", line)
	}
}
