package domain

// NPKPreset is a named fertilizer composition expressed as N, P and K levels.
type NPKPreset struct {
	Name       string  `json:"name" yaml:"name"`
	Label      string  `json:"label" yaml:"label"`
	Nitrogen   float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium  float64 `json:"potassium" yaml:"potassium"`
	Default    bool    `json:"default,omitempty" yaml:"default,omitempty"`
}
