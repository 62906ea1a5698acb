package domain

// FeatureInput carries the measurements of one scoring request. A nil field means
// the measurement was not supplied and the attribute is skipped.
type FeatureInput struct {
	Nitrogen          *float64 `json:"nitrogen,omitempty"`
	Phosphorus        *float64 `json:"phosphorus,omitempty"`
	Potassium         *float64 `json:"potassium,omitempty"`
	Climate           *string  `json:"climate,omitempty"`
	Humidity          *float64 `json:"humidity,omitempty"`
	PH                *float64 `json:"ph,omitempty"`
	Rainfall          *float64 `json:"rainfall,omitempty"`
	SoilType          *string  `json:"soil_type,omitempty"`
	Topography        *string  `json:"topography,omitempty"`
	WaterAvailability *string  `json:"water_availability,omitempty"`
}

// NewFeatureInput builds an input with all ten measurements present.
func NewFeatureInput(
	nitrogen, phosphorus, potassium float64,
	climate string,
	humidity, ph, rainfall float64,
	soilType, topography, waterAvailability string,
) FeatureInput {
	return FeatureInput{
		Nitrogen:          &nitrogen,
		Phosphorus:        &phosphorus,
		Potassium:         &potassium,
		Climate:           &climate,
		Humidity:          &humidity,
		PH:                &ph,
		Rainfall:          &rainfall,
		SoilType:          &soilType,
		Topography:        &topography,
		WaterAvailability: &waterAvailability,
	}
}

// Numeric returns the supplied value for a numeric attribute.
func (f FeatureInput) Numeric(attr Attribute) (float64, bool) {
	var p *float64
	switch attr {
	case AttrNitrogen:
		p = f.Nitrogen
	case AttrPhosphorus:
		p = f.Phosphorus
	case AttrPotassium:
		p = f.Potassium
	case AttrHumidity:
		p = f.Humidity
	case AttrPH:
		p = f.PH
	case AttrRainfall:
		p = f.Rainfall
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Categorical returns the supplied value for a categorical attribute.
func (f FeatureInput) Categorical(attr Attribute) (string, bool) {
	var p *string
	switch attr {
	case AttrClimate:
		p = f.Climate
	case AttrSoilType:
		p = f.SoilType
	case AttrTopography:
		p = f.Topography
	case AttrWaterAvailability:
		p = f.WaterAvailability
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

type ScoreResult struct {
	Crop          string  `json:"crop"`
	Compatibility float64 `json:"compatibility"`
}

// Ranking is the scorer output. Every catalog crop appears in exactly one list.
type Ranking struct {
	CompatibleCrops   []ScoreResult `json:"compatible_crops"`
	IncompatibleCrops []ScoreResult `json:"incompatible_crops"`
}

// Top returns the best compatible crop, if any.
func (r Ranking) Top() (ScoreResult, bool) {
	if len(r.CompatibleCrops) == 0 {
		return ScoreResult{}, false
	}
	return r.CompatibleCrops[0], true
}

// AttributeCheck is one line of a per-crop breakdown.
type AttributeCheck struct {
	Attribute Attribute `json:"attribute"`
	Evaluated bool      `json:"evaluated"`
	Matched   bool      `json:"matched"`
	// SkipReason is set when Evaluated is false.
	SkipReason string `json:"skip_reason,omitempty"`
}

const (
	SkipNotConstrained = "not constrained by profile"
	SkipNotSupplied    = "not supplied"
)

type CompatibilityBreakdown struct {
	Crop          string           `json:"crop"`
	Compatibility float64          `json:"compatibility"`
	Matched       int              `json:"matched"`
	Evaluated     int              `json:"evaluated"`
	Checks        []AttributeCheck `json:"checks"`
}

// Add appends a check and updates the matched/evaluated tallies.
func (b *CompatibilityBreakdown) Add(check AttributeCheck) {
	b.Checks = append(b.Checks, check)
	if check.Evaluated {
		b.Evaluated++
	}
	if check.Matched {
		b.Matched++
	}
}
