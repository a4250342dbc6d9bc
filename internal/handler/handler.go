package handler

import (
	"net/http"

	"github.com/GolfGuruApp/SwingAI-backend/internal/pipeline"
	"github.com/GolfGuruApp/SwingAI-backend/internal/utils"
)

// Pipe pipeline partagé par les handlers, initialisé au démarrage
var Pipe *pipeline.Pipeline

// Init branche le pipeline sur le package
func Init(p *pipeline.Pipeline) {
	Pipe = p
}

// HealthCheck vérifie que le serveur répond
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]string{"status": "ok"})
}
