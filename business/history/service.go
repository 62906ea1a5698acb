package history

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"cropRecommendation/domain"
	"cropRecommendation/pkg/logger"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
	topCropsSize = 5
)

// PredictionRepository contract interface
type PredictionRepository interface {
	FindRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Prediction, error)
	FindOutcomes(ctx context.Context) ([]domain.PredictionOutcome, error)
}

type Service struct {
	repo PredictionRepository
}

// NewService builds the history service. A nil repo yields ErrHistoryDisabled
// from every method.
func NewService(repo PredictionRepository) *Service {
	return &Service{repo: repo}
}

// List returns the newest predictions first. limit is clamped to [1, MaxLimit];
// zero or less selects DefaultLimit.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Prediction, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	rows, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		logger.Error("Failed to list predictions", err)
		return nil, err
	}

	return rows, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Prediction, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Prediction{}, err
	}

	return s.repo.FindByID(ctx, id)
}

// Summary aggregates every stored prediction. Distribution figures cover only
// predictions that produced at least one compatible crop.
func (s *Service) Summary(ctx context.Context) (domain.HistorySummary, error) {
	if err := s.ready(ctx); err != nil {
		return domain.HistorySummary{}, err
	}

	outcomes, err := s.repo.FindOutcomes(ctx)
	if err != nil {
		logger.Error("Failed to load prediction outcomes", err)
		return domain.HistorySummary{}, err
	}

	summary := domain.HistorySummary{
		Total:    len(outcomes),
		TopCrops: []domain.CropFrequency{},
	}

	var tops stats.Float64Data
	counts := map[string]int{}
	for _, o := range outcomes {
		if o.CompatibleCount == 0 || o.TopCrop == "" {
			continue
		}
		summary.WithCompatible++
		tops = append(tops, o.TopCompatibility)
		counts[o.TopCrop]++
	}

	if len(tops) == 0 {
		return summary, nil
	}

	if summary.MeanTopCompatibility, err = stats.Mean(tops); err != nil {
		return domain.HistorySummary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	if summary.MedianTopCompatibility, err = stats.Median(tops); err != nil {
		return domain.HistorySummary{}, fmt.Errorf("failed to compute median: %w", err)
	}
	if summary.P90TopCompatibility, err = stats.Percentile(tops, 90); err != nil {
		return domain.HistorySummary{}, fmt.Errorf("failed to compute p90: %w", err)
	}

	for crop, n := range counts {
		summary.TopCrops = append(summary.TopCrops, domain.CropFrequency{Crop: crop, Count: n})
	}
	slices.SortFunc(summary.TopCrops, func(a, b domain.CropFrequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Crop, b.Crop)
	})
	if len(summary.TopCrops) > topCropsSize {
		summary.TopCrops = summary.TopCrops[:topCropsSize]
	}

	return summary, nil
}

func (s *Service) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if s.repo == nil {
		return domain.ErrHistoryDisabled
	}
	return nil
}
