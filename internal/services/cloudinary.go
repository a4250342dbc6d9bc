package services

import (
	"context"
	"fmt"
	"io"

	"github.com/GolfGuruApp/SwingAI-backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService gère le stockage des vidéos de swing chez Cloudinary
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryService crée une instance du service Cloudinary
func NewCloudinaryService(cfg *config.Config) (*CloudinaryService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryService{cld: cld}, nil
}

func swingPublicID(swingID string) string {
	return fmt.Sprintf("swings/%s", swingID)
}

// UploadSwingVideo upload la vidéo d'un swing et retourne son URL sécurisée.
// Une seule vidéo par swing: le public ID est dérivé de l'identifiant.
func (s *CloudinaryService) UploadSwingVideo(ctx context.Context, file io.Reader, userID, swingID string) (string, error) {
	overwrite := true

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     swingPublicID(swingID),
		Folder:       "golfguru/swings",
		Overwrite:    &overwrite,
		ResourceType: "video",
		Context:      map[string]string{"user_id": userID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload swing video: %w", err)
	}

	return uploadResult.SecureURL, nil
}

// DeleteSwingVideo supprime la vidéo d'un swing (best-effort côté appelant)
func (s *CloudinaryService) DeleteSwingVideo(ctx context.Context, swingID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     "golfguru/swings/" + swingPublicID(swingID),
		ResourceType: "video",
	})
	if err != nil {
		return fmt.Errorf("failed to delete swing video: %w", err)
	}
	return nil
}
