package compatibility

import (
	"cmp"
	"slices"

	"cropRecommendation/domain"
)

// ProfileSource is the read side of the crop catalog.
type ProfileSource interface {
	Lookup(name string) (domain.CropProfile, bool)
	Names() []string
}

// Scorer computes compatibility percentages. It holds no mutable state, so a
// single Scorer can serve any number of goroutines.
type Scorer struct {
	profiles ProfileSource
}

func NewScorer(profiles ProfileSource) *Scorer {
	return &Scorer{profiles: profiles}
}

// ScoreOne returns 100 * matched / evaluated for one crop. Attributes absent from
// either the profile or the input are skipped. Unknown crops and crops with no
// evaluated attribute score 0.
func (s *Scorer) ScoreOne(crop string, features domain.FeatureInput) float64 {
	profile, ok := s.profiles.Lookup(crop)
	if !ok {
		return 0
	}
	matched, evaluated := tally(profile, features)
	return percentage(matched, evaluated)
}

// RankAll scores every catalog crop and splits them at zero. Compatible crops are
// ordered by compatibility descending then name; incompatible crops by name.
func (s *Scorer) RankAll(features domain.FeatureInput) domain.Ranking {
	ranking := domain.Ranking{
		CompatibleCrops:   []domain.ScoreResult{},
		IncompatibleCrops: []domain.ScoreResult{},
	}

	for _, name := range s.profiles.Names() {
		res := domain.ScoreResult{Crop: name, Compatibility: s.ScoreOne(name, features)}
		if res.Compatibility > 0 {
			ranking.CompatibleCrops = append(ranking.CompatibleCrops, res)
		} else {
			ranking.IncompatibleCrops = append(ranking.IncompatibleCrops, res)
		}
	}

	slices.SortFunc(ranking.CompatibleCrops, func(a, b domain.ScoreResult) int {
		if c := cmp.Compare(b.Compatibility, a.Compatibility); c != 0 {
			return c
		}
		return cmp.Compare(a.Crop, b.Crop)
	})
	slices.SortFunc(ranking.IncompatibleCrops, func(a, b domain.ScoreResult) int {
		return cmp.Compare(a.Crop, b.Crop)
	})

	return ranking
}

// Explain reports, attribute by attribute, how a crop's score was reached.
func (s *Scorer) Explain(crop string, features domain.FeatureInput) (domain.CompatibilityBreakdown, bool) {
	profile, ok := s.profiles.Lookup(crop)
	if !ok {
		return domain.CompatibilityBreakdown{}, false
	}

	out := domain.CompatibilityBreakdown{Crop: crop}

	for _, attr := range domain.NumericAttributes() {
		check := domain.AttributeCheck{Attribute: attr}
		rng, constrained := profile.Numeric[attr]
		v, supplied := features.Numeric(attr)
		switch {
		case !constrained:
			check.SkipReason = domain.SkipNotConstrained
		case !supplied:
			check.SkipReason = domain.SkipNotSupplied
		default:
			check.Evaluated = true
			check.Matched = rng.Contains(v)
		}
		out.Add(check)
	}

	for _, attr := range domain.CategoricalAttributes() {
		check := domain.AttributeCheck{Attribute: attr}
		cons, constrained := profile.Categorical[attr]
		v, supplied := features.Categorical(attr)
		switch {
		case !constrained:
			check.SkipReason = domain.SkipNotConstrained
		case !supplied:
			check.SkipReason = domain.SkipNotSupplied
		default:
			check.Evaluated = true
			check.Matched = cons.Matches(v)
		}
		out.Add(check)
	}

	out.Compatibility = percentage(out.Matched, out.Evaluated)

	return out, true
}

func tally(profile domain.CropProfile, features domain.FeatureInput) (matched, evaluated int) {
	for _, attr := range domain.NumericAttributes() {
		rng, ok := profile.Numeric[attr]
		if !ok {
			continue
		}
		v, ok := features.Numeric(attr)
		if !ok {
			continue
		}
		evaluated++
		if rng.Contains(v) {
			matched++
		}
	}

	for _, attr := range domain.CategoricalAttributes() {
		cons, ok := profile.Categorical[attr]
		if !ok {
			continue
		}
		v, ok := features.Categorical(attr)
		if !ok {
			continue
		}
		evaluated++
		if cons.Matches(v) {
			matched++
		}
	}

	return matched, evaluated
}

func percentage(matched, evaluated int) float64 {
	if evaluated == 0 {
		return 0
	}
	return float64(matched) / float64(evaluated) * 100
}
