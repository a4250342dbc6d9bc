package pipeline

import (
	"context"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/GolfGuruApp/SwingAI-backend/internal/store"
)

// StoreSwings branche la persistance Postgres sur le pipeline
type StoreSwings struct{}

func (StoreSwings) SaveSwing(ctx context.Context, a *model.SwingAnalysis) error {
	return store.SaveSwing(ctx, a)
}

func (StoreSwings) GetSwingByID(ctx context.Context, swingID string) (*model.SwingAnalysis, error) {
	return store.GetSwingByID(ctx, swingID)
}

func (StoreSwings) DeleteSwing(ctx context.Context, swingID, userID string) error {
	return store.DeleteSwing(ctx, swingID, userID)
}

// StoreStats recalcul des stats via la base
type StoreStats struct{}

func (StoreStats) RecomputeStats(ctx context.Context, userID string) (model.UserStats, error) {
	return store.RecomputeStats(ctx, userID)
}

// StoreFeedback lecture du feedback via la base
type StoreFeedback struct{}

func (StoreFeedback) ListAllFeedback(ctx context.Context) ([]model.Feedback, error) {
	return store.ListAllFeedback(ctx)
}

// StoreAdjustments document d'ajustement via la base
type StoreAdjustments struct{}

func (StoreAdjustments) SaveAdjustmentFactors(ctx context.Context, f *model.AdjustmentFactors, adminID string) error {
	return store.SaveAdjustmentFactors(ctx, f, adminID)
}

func (StoreAdjustments) GetAdjustmentFactors(ctx context.Context) (*model.AdjustmentFactors, error) {
	return store.GetAdjustmentFactors(ctx)
}
