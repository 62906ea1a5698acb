package history

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cropRecommendation/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	predictions []domain.Prediction
	outcomes    []domain.PredictionOutcome
	lastLimit   int
	err         error
}

func (f *fakeRepo) FindRecent(ctx context.Context, limit int) ([]domain.Prediction, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.predictions) {
		limit = len(f.predictions)
	}
	return f.predictions[:limit], nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Prediction, error) {
	for _, p := range f.predictions {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Prediction{}, domain.ErrPredictionNotFound
}

func (f *fakeRepo) FindOutcomes(ctx context.Context) ([]domain.PredictionOutcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.outcomes, nil
}

func TestList_ClampsLimit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultLimit},
		{in: -3, want: DefaultLimit},
		{in: 1, want: 1},
		{in: 120, want: 120},
		{in: 10000, want: MaxLimit},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.lastLimit)
		})
	}
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("boom")})

	_, err := svc.List(context.Background(), 10)
	assert.EqualError(t, err, "boom")
}

func TestGet(t *testing.T) {
	id := uuid.New()
	svc := NewService(&fakeRepo{predictions: []domain.Prediction{{ID: id, TopCrop: "Rice"}}})

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rice", p.TopCrop)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPredictionNotFound)
}

func TestDisabled(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.List(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)

	_, err = svc.Summary(context.Background())
	assert.ErrorIs(t, err, domain.ErrHistoryDisabled)
}

func TestSummary(t *testing.T) {
	var outcomes []domain.PredictionOutcome
	for i := 1; i <= 10; i++ {
		crop := "Rice"
		if i > 6 {
			crop = "Dates"
		}
		outcomes = append(outcomes, domain.PredictionOutcome{
			TopCrop:          crop,
			TopCompatibility: float64(i * 10),
			CompatibleCount:  3,
		})
	}
	outcomes = append(outcomes, domain.PredictionOutcome{CompatibleCount: 0})

	s, err := NewService(&fakeRepo{outcomes: outcomes}).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 11, s.Total)
	assert.Equal(t, 10, s.WithCompatible)
	assert.InDelta(t, 55.0, s.MeanTopCompatibility, 1e-9)
	assert.InDelta(t, 55.0, s.MedianTopCompatibility, 1e-9)
	assert.GreaterOrEqual(t, s.P90TopCompatibility, s.MedianTopCompatibility)
	assert.LessOrEqual(t, s.P90TopCompatibility, 100.0)
	assert.Equal(t, []domain.CropFrequency{{Crop: "Rice", Count: 6}, {Crop: "Dates", Count: 4}}, s.TopCrops)
}

func TestSummary_NoCompatiblePredictions(t *testing.T) {
	repo := &fakeRepo{outcomes: []domain.PredictionOutcome{{}, {}}}

	s, err := NewService(repo).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, s.Total)
	assert.Zero(t, s.WithCompatible)
	assert.Zero(t, s.MeanTopCompatibility)
	assert.Empty(t, s.TopCrops)
}

func TestSummary_TopCropsTruncated(t *testing.T) {
	var outcomes []domain.PredictionOutcome
	for _, c := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		outcomes = append(outcomes, domain.PredictionOutcome{TopCrop: c, TopCompatibility: 50, CompatibleCount: 1})
	}

	s, err := NewService(&fakeRepo{outcomes: outcomes}).Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, s.TopCrops, 5)
	assert.Equal(t, "A", s.TopCrops[0].Crop)
	assert.Equal(t, "E", s.TopCrops[4].Crop)
	assert.Equal(t, 50.0, s.P90TopCompatibility)
}
