package catalog

import (
	"sort"
	"testing"

	"cropRecommendation/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()

	assert.Equal(t, 59, c.Len())
	assert.Same(t, c, Default())

	names := c.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Rice")
	assert.Contains(t, names, "Cabbage (red, white, Savoy)")

	rice, ok := c.Lookup("Rice")
	require.True(t, ok)
	assert.Equal(t, domain.Range{Min: 6.0, Max: 7.0}, rice.Numeric[domain.AttrPH])
	assert.Equal(t, domain.Range{Min: 150, Max: 250}, rice.Numeric[domain.AttrRainfall])
	assert.Equal(t, "Tropical", rice.Categorical[domain.AttrClimate].Exact)
	assert.Equal(t, []string{"Clayey", "Loamy"}, rice.Categorical[domain.AttrSoilType].OneOf)
	assert.Equal(t, "High", rice.Categorical[domain.AttrWaterAvailability].Exact)

	_, constrained := rice.Categorical[domain.AttrTopography]
	assert.False(t, constrained)

	mushrooms, ok := c.Lookup("Mushrooms")
	require.True(t, ok)
	assert.Equal(t, domain.Range{}, mushrooms.Numeric[domain.AttrNitrogen])
	assert.Equal(t, []string{"Peaty"}, mushrooms.Categorical[domain.AttrSoilType].OneOf)
}

func TestDefault_InvariantsHold(t *testing.T) {
	for _, p := range Default().Profiles() {
		assert.NoError(t, validateProfile(p), p.Name)
		assert.Len(t, p.Numeric, 6, p.Name)
		assert.Len(t, p.Categorical, 3, p.Name)
	}
}

func TestLookup_UnknownCrop(t *testing.T) {
	_, ok := Default().Lookup("NotACrop")
	assert.False(t, ok)

	_, ok = Default().Lookup("rice")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestNames_ReturnsCopy(t *testing.T) {
	c := Default()
	names := c.Names()
	names[0] = "mutated"

	assert.NotEqual(t, "mutated", c.Names()[0])
}

func TestAttributeKeys(t *testing.T) {
	keys := Default().AttributeKeys()

	require.Len(t, keys, 10)
	assert.Equal(t, domain.AttrNitrogen, keys[0])
	assert.Equal(t, domain.AttrWaterAvailability, keys[9])
	for _, k := range keys[:6] {
		assert.True(t, k.IsNumeric(), k)
	}
	for _, k := range keys[6:] {
		assert.True(t, k.IsCategorical(), k)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		profiles []domain.CropProfile
		wantErr  error
	}{
		{
			name:     "empty name",
			profiles: []domain.CropProfile{{}},
			wantErr:  ErrEmptyName,
		},
		{
			name: "inverted range",
			profiles: []domain.CropProfile{{
				Name:    "Bad",
				Numeric: map[domain.Attribute]domain.Range{domain.AttrPH: {Min: 8, Max: 6}},
			}},
			wantErr: ErrInvalidRange,
		},
		{
			name: "empty categorical",
			profiles: []domain.CropProfile{{
				Name:        "Bad",
				Categorical: map[domain.Attribute]domain.CategoricalConstraint{domain.AttrClimate: {}},
			}},
			wantErr: ErrEmptyAccepted,
		},
		{
			name: "categorical key in numeric bounds",
			profiles: []domain.CropProfile{{
				Name:    "Bad",
				Numeric: map[domain.Attribute]domain.Range{domain.AttrClimate: {Min: 0, Max: 1}},
			}},
			wantErr: ErrUnknownAttrKey,
		},
		{
			name:     "duplicate",
			profiles: []domain.CropProfile{{Name: "Rice"}, {Name: "Rice"}},
			wantErr:  ErrDuplicateCrop,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.profiles...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_EmptyProfileIsAllowed(t *testing.T) {
	c, err := New(domain.CropProfile{Name: "Bare"})
	require.NoError(t, err)

	p, ok := c.Lookup("Bare")
	require.True(t, ok)
	assert.Empty(t, p.Numeric)
	assert.Empty(t, p.Categorical)
}
