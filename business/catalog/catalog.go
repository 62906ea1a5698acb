package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"cropRecommendation/domain"
)

var (
	ErrEmptyName      = errors.New("crop name is required")
	ErrDuplicateCrop  = errors.New("duplicate crop")
	ErrInvalidRange   = errors.New("range min is greater than max")
	ErrEmptyAccepted  = errors.New("categorical constraint has no accepted value")
	ErrUnknownAttrKey = errors.New("unknown attribute")
)

// Catalog is the read-only set of crop profiles. It is safe for concurrent use.
type Catalog struct {
	profiles map[string]domain.CropProfile
	names    []string
}

// New validates profiles and builds a catalog from them.
func New(profiles ...domain.CropProfile) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]domain.CropProfile, len(profiles)),
		names:    make([]string, 0, len(profiles)),
	}

	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		if _, ok := c.profiles[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCrop, p.Name)
		}
		c.profiles[p.Name] = p
		c.names = append(c.names, p.Name)
	}

	sort.Strings(c.names)

	return c, nil
}

func validateProfile(p domain.CropProfile) error {
	if p.Name == "" {
		return ErrEmptyName
	}

	for attr, rng := range p.Numeric {
		if !attr.IsNumeric() {
			return fmt.Errorf("%w %q in numeric bounds of %q", ErrUnknownAttrKey, attr, p.Name)
		}
		if rng.Min > rng.Max {
			return fmt.Errorf("%w: %s of %q is [%v, %v]", ErrInvalidRange, attr, p.Name, rng.Min, rng.Max)
		}
	}

	for attr, cons := range p.Categorical {
		if !attr.IsCategorical() {
			return fmt.Errorf("%w %q in categorical constraints of %q", ErrUnknownAttrKey, attr, p.Name)
		}
		if len(cons.OneOf) == 0 && cons.Exact == "" {
			return fmt.Errorf("%w: %s of %q", ErrEmptyAccepted, attr, p.Name)
		}
	}

	return nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in reference catalog. It is constructed on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinProfiles()...)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in profile: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup returns the profile of a crop. Unknown crops are reported with ok == false.
func (c *Catalog) Lookup(name string) (domain.CropProfile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Names returns every crop name in ascending order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Profiles returns every profile ordered by crop name.
func (c *Catalog) Profiles() []domain.CropProfile {
	out := make([]domain.CropProfile, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.profiles[name])
	}
	return out
}

// AttributeKeys returns the ten attribute names every profile draws from,
// numeric attributes first.
func (c *Catalog) AttributeKeys() []domain.Attribute {
	return AttributeKeys()
}

func AttributeKeys() []domain.Attribute {
	return append(domain.NumericAttributes(), domain.CategoricalAttributes()...)
}
