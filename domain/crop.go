package domain

// Attribute names a measurement a crop profile can constrain. The string values
// match the keys used by the agronomy reference table.
type Attribute string

const (
	AttrNitrogen          Attribute = "Nitrogen"
	AttrPhosphorus        Attribute = "Phosphorus"
	AttrPotassium         Attribute = "Potassium"
	AttrHumidity          Attribute = "Humidity"
	AttrPH                Attribute = "pH"
	AttrRainfall          Attribute = "Rainfall"
	AttrClimate           Attribute = "Climate"
	AttrSoilType          Attribute = "Soil_Type"
	AttrTopography        Attribute = "Topography"
	AttrWaterAvailability Attribute = "Water_Availability"
)

// NumericAttributes lists the range-constrained attributes in evaluation order.
func NumericAttributes() []Attribute {
	return []Attribute{AttrNitrogen, AttrPhosphorus, AttrPotassium, AttrHumidity, AttrPH, AttrRainfall}
}

// CategoricalAttributes lists the value-constrained attributes in evaluation order.
func CategoricalAttributes() []Attribute {
	return []Attribute{AttrClimate, AttrSoilType, AttrTopography, AttrWaterAvailability}
}

func (a Attribute) IsNumeric() bool {
	switch a {
	case AttrNitrogen, AttrPhosphorus, AttrPotassium, AttrHumidity, AttrPH, AttrRainfall:
		return true
	}
	return false
}

func (a Attribute) IsCategorical() bool {
	switch a {
	case AttrClimate, AttrSoilType, AttrTopography, AttrWaterAvailability:
		return true
	}
	return false
}

// Range is an inclusive [Min, Max] bound.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// CategoricalConstraint accepts either one exact value or any member of OneOf.
// When OneOf is non-empty it takes precedence over Exact.
type CategoricalConstraint struct {
	Exact string   `json:"exact,omitempty" yaml:"exact,omitempty"`
	OneOf []string `json:"one_of,omitempty" yaml:"one_of,omitempty"`
}

func (c CategoricalConstraint) Matches(v string) bool {
	if len(c.OneOf) > 0 {
		for _, accepted := range c.OneOf {
			if accepted == v {
				return true
			}
		}
		return false
	}
	return v == c.Exact
}

// CropProfile is a crop's preferred growing conditions. Profiles handed out by
// the catalog are shared and must be treated as read-only.
type CropProfile struct {
	Name        string                              `json:"name" yaml:"name"`
	Numeric     map[Attribute]Range                 `json:"numeric" yaml:"numeric"`
	Categorical map[Attribute]CategoricalConstraint `json:"categorical" yaml:"categorical"`
}
