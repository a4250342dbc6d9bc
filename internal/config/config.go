package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// Modèle d'analyse distant; vide = mode dégradé (fallback uniquement)
	LLMAPIKey         string
	LLMBaseURL        string
	LLMModel          string
	LLMTimeoutSeconds int
}

// LoadConfig lit la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "swingai")
	v.SetDefault("LLM_BASE_URL", "https://openrouter.ai/api/v1/chat/completions")
	v.SetDefault("LLM_MODEL", "google/gemini-2.0-flash-001")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 30)

	cfg := &Config{
		Port:       v.GetString("PORT"),
		Env:        v.GetString("ENV"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),

		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),

		LLMAPIKey:         v.GetString("LLM_API_KEY"),
		LLMBaseURL:        v.GetString("LLM_BASE_URL"),
		LLMModel:          v.GetString("LLM_MODEL"),
		LLMTimeoutSeconds: v.GetInt("LLM_TIMEOUT_SECONDS"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN chaîne de connexion Postgres
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
