package postgres

import (
	"context"
	"errors"
	"fmt"

	"cropRecommendation/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	DB *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{
		DB: db,
	}
}

func (r *PredictionRepository) Create(ctx context.Context, prediction *domain.Prediction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(prediction).Error; err != nil {
		return fmt.Errorf("failed to create prediction: %w", err)
	}

	return nil
}

// Get the newest predictions ordered by created_at DESC
func (r *PredictionRepository) FindRecent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}

	var predictions []domain.Prediction
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}

	return predictions, nil
}

func (r *PredictionRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Prediction{}, fmt.Errorf("context error: %w", err)
	}

	var prediction domain.Prediction
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&prediction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Prediction{}, domain.ErrPredictionNotFound
		}
		return domain.Prediction{}, fmt.Errorf("failed to find prediction: %w", err)
	}

	return prediction, nil
}

func (r *PredictionRepository) FindOutcomes(ctx context.Context) ([]domain.PredictionOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var outcomes []domain.PredictionOutcome
	if err := r.DB.WithContext(ctx).
		Model(&domain.Prediction{}).
		Select("top_crop", "top_compatibility", "compatible_count").
		Find(&outcomes).Error; err != nil {
		return nil, fmt.Errorf("failed to query prediction outcomes: %w", err)
	}

	return outcomes, nil
}
