package preset

import (
	"errors"
	"fmt"
	"strings"

	"cropRecommendation/domain"
)

var ErrUnknownPreset = errors.New("unknown npk preset")

// DefaultName is the preset flagged as the default in listings and the one
// Resolve returns for an empty name.
const DefaultName = "balanced-40-20-10"

type composition struct {
	name    string
	n, p, k float64
}

var builtin = []composition{
	{"balanced-40-20-10", 40, 20, 10},
	{"balanced-10-10-10", 10, 10, 10},
	{"high-n-20-5-5", 20, 5, 5},
	{"high-p-10-20-10", 10, 20, 10},
	{"high-k-5-10-20", 5, 10, 20},
	{"starter-18-24-12", 18, 24, 12},
	{"flowering-5-10-10", 5, 10, 10},
	{"vegetative-growth-20-10-10", 20, 10, 10},
}

// List returns every preset in display order.
func List() []domain.NPKPreset {
	out := make([]domain.NPKPreset, 0, len(builtin))
	for _, c := range builtin {
		out = append(out, c.preset())
	}
	return out
}

// Resolve looks a preset up by name. An empty name resolves to the default.
func Resolve(name string) (domain.NPKPreset, error) {
	if name == "" {
		name = DefaultName
	}
	for _, c := range builtin {
		if c.name == name {
			return c.preset(), nil
		}
	}
	return domain.NPKPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Apply fills the nitrogen, phosphorus and potassium of an input from a preset.
func Apply(in domain.FeatureInput, p domain.NPKPreset) domain.FeatureInput {
	nitrogen, phosphorus, potassium := p.Nitrogen, p.Phosphorus, p.Potassium
	in.Nitrogen = &nitrogen
	in.Phosphorus = &phosphorus
	in.Potassium = &potassium
	return in
}

// Label turns "high-n-20-5-5" into "High N 20 5 5".
func Label(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (c composition) preset() domain.NPKPreset {
	return domain.NPKPreset{
		Name:       c.name,
		Label:      Label(c.name),
		Nitrogen:   c.n,
		Phosphorus: c.p,
		Potassium:  c.k,
		Default:    c.name == DefaultName,
	}
}
