package main

import (
	"net/http"
	"os"

	"github.com/GolfGuruApp/SwingAI-backend/internal/analysis"
	"github.com/GolfGuruApp/SwingAI-backend/internal/api"
	"github.com/GolfGuruApp/SwingAI-backend/internal/config"
	"github.com/GolfGuruApp/SwingAI-backend/internal/database"
	"github.com/GolfGuruApp/SwingAI-backend/internal/handler"
	"github.com/GolfGuruApp/SwingAI-backend/internal/logger"
	"github.com/GolfGuruApp/SwingAI-backend/internal/pipeline"
	"github.com/GolfGuruApp/SwingAI-backend/internal/services"
	"github.com/GolfGuruApp/SwingAI-backend/internal/services/llm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Configuration invalide: %v", err)
		os.Exit(1)
	}

	pool, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Connexion Postgres impossible: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg); err != nil {
		logger.Error("Migrations échouées: %v", err)
		os.Exit(1)
	}

	blobs, err := services.NewCloudinaryService(cfg)
	if err != nil {
		logger.Error("Initialisation Cloudinary impossible: %v", err)
		os.Exit(1)
	}

	// Sans clé API, le producteur tourne en mode dégradé (fallback)
	var modelClient analysis.ModelClient
	if cfg.LLMAPIKey != "" {
		modelClient = llm.NewClient(llm.Config{
			APIKey:         cfg.LLMAPIKey,
			BaseURL:        cfg.LLMBaseURL,
			Model:          cfg.LLMModel,
			TimeoutSeconds: cfg.LLMTimeoutSeconds,
		})
	} else {
		logger.Warning("LLM_API_KEY absent: analyses en mode fallback uniquement")
	}

	pipe := pipeline.New(
		analysis.NewProducer(modelClient),
		blobs,
		pipeline.StoreSwings{},
		pipeline.StoreStats{},
		pipeline.StoreFeedback{},
		pipeline.StoreAdjustments{},
	)
	handler.Init(pipe)

	router := api.SetupRoutes()

	logger.Success("SwingAI backend démarré sur le port %s (%s)", cfg.Port, cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("Serveur arrêté: %v", err)
		os.Exit(1)
	}
}
