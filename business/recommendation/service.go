package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cropRecommendation/business/preset"
	"cropRecommendation/domain"
	"cropRecommendation/pkg/logger"
	"cropRecommendation/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var ErrUnknownCrop = errors.New("unknown crop")

// Scorer is the compatibility engine the service delegates to.
type Scorer interface {
	RankAll(features domain.FeatureInput) domain.Ranking
	Explain(crop string, features domain.FeatureInput) (domain.CompatibilityBreakdown, bool)
}

// PredictionRepository contract interface
type PredictionRepository interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
}

type Request struct {
	Features domain.FeatureInput
	// Preset, when set, replaces the nitrogen, phosphorus and potassium of Features.
	Preset string
}

type Result struct {
	domain.Ranking
	PredictionID *uuid.UUID `json:"prediction_id,omitempty"`
}

type Service struct {
	scorer Scorer
	repo   PredictionRepository
}

// NewService builds the service. repo may be nil, in which case nothing is stored.
func NewService(scorer Scorer, repo PredictionRepository) *Service {
	return &Service{
		scorer: scorer,
		repo:   repo,
	}
}

func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context error: %w", err)
	}

	features, err := resolveFeatures(req)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	ranking := s.scorer.RankAll(features)
	metrics.RankLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()
	metrics.CompatibleSetSize.Observe(float64(len(ranking.CompatibleCrops)))
	if top, ok := ranking.Top(); ok {
		metrics.TopCropTotal.WithLabelValues(top.Crop).Inc()
	}

	res := Result{Ranking: ranking}

	if s.repo != nil {
		id, err := s.save(ctx, req.Preset, features, ranking)
		if err != nil {
			metrics.HistoryWriteFailures.Inc()
			logger.Error("Failed to save prediction", "error", err)
		} else {
			res.PredictionID = &id
		}
	}

	return res, nil
}

func (s *Service) Explain(ctx context.Context, crop string, req Request) (domain.CompatibilityBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.CompatibilityBreakdown{}, fmt.Errorf("context error: %w", err)
	}

	features, err := resolveFeatures(req)
	if err != nil {
		return domain.CompatibilityBreakdown{}, err
	}

	b, ok := s.scorer.Explain(crop, features)
	if !ok {
		return domain.CompatibilityBreakdown{}, fmt.Errorf("%w: %q", ErrUnknownCrop, crop)
	}

	return b, nil
}

func (s *Service) save(ctx context.Context, presetName string, features domain.FeatureInput, ranking domain.Ranking) (uuid.UUID, error) {
	payload, err := json.Marshal(ranking)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode ranking: %w", err)
	}

	p := domain.Prediction{
		ID:                uuid.New(),
		Nitrogen:          features.Nitrogen,
		Phosphorus:        features.Phosphorus,
		Potassium:         features.Potassium,
		Climate:           features.Climate,
		Humidity:          features.Humidity,
		PH:                features.PH,
		Rainfall:          features.Rainfall,
		SoilType:          features.SoilType,
		Topography:        features.Topography,
		WaterAvailability: features.WaterAvailability,
		NPKPreset:         presetName,
		CompatibleCount:   len(ranking.CompatibleCrops),
		Result:            datatypes.JSON(payload),
	}
	if top, ok := ranking.Top(); ok {
		p.TopCrop = top.Crop
		p.TopCompatibility = top.Compatibility
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return uuid.Nil, err
	}

	return p.ID, nil
}

func resolveFeatures(req Request) (domain.FeatureInput, error) {
	if req.Preset == "" {
		return req.Features, nil
	}

	p, err := preset.Resolve(req.Preset)
	if err != nil {
		return domain.FeatureInput{}, err
	}

	return preset.Apply(req.Features, p), nil
}
