package api

import (
	"net/http"

	"github.com/GolfGuruApp/SwingAI-backend/internal/handler"
	"github.com/GolfGuruApp/SwingAI-backend/internal/middleware"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes construit le routeur complet de l'API
func SetupRoutes() *mux.Router {
	router := mux.NewRouter()

	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware)

	// Monitoring
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET", "OPTIONS")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Routes publiques
	api.HandleFunc("/auth/signup", handler.Signup).Methods("POST", "OPTIONS")
	api.HandleFunc("/auth/login", handler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/catalog/metrics", handler.GetMetricCatalog).Methods("GET", "OPTIONS")
	api.HandleFunc("/adjustments", handler.GetAdjustments).Methods("GET", "OPTIONS")

	// L'analyse accepte les anonymes: auth optionnelle
	analyze := api.PathPrefix("/swings/analyze").Subrouter()
	analyze.Use(middleware.OptionalAuth)
	analyze.HandleFunc("", handler.AnalyzeSwing).Methods("POST", "OPTIONS")

	// Routes protégées
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/auth/logout", handler.Logout).Methods("POST", "OPTIONS")

	protected.HandleFunc("/users/me", handler.GetProfile).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/me", handler.UpdateProfile).Methods("PATCH", "OPTIONS")
	protected.HandleFunc("/users/me/clubs", handler.GetClubs).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/me/clubs", handler.ReplaceClubs).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/users/me/clubs/{id}", handler.GetClub).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/me/stats", handler.GetUserStats).Methods("GET", "OPTIONS")

	protected.HandleFunc("/swings", handler.GetUserSwings).Methods("GET", "OPTIONS")
	protected.HandleFunc("/swings/club/{clubId}", handler.GetUserSwingsByClub).Methods("GET", "OPTIONS")
	protected.HandleFunc("/swings/{id}", handler.GetSwing).Methods("GET", "OPTIONS")
	protected.HandleFunc("/swings/{id}", handler.DeleteSwing).Methods("DELETE", "OPTIONS")
	protected.HandleFunc("/swings/{id}/feedback", handler.SubmitFeedback).Methods("POST", "OPTIONS")

	protected.HandleFunc("/admin/adjustments/recompute", handler.RecomputeAdjustments).Methods("POST", "OPTIONS")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("⚠ Route non trouvée: %s %s", r.Method, r.URL.Path)
		http.Error(w, "route not found", http.StatusNotFound)
	})

	return router
}
