package catalog

import "cropRecommendation/domain"

// profileRow is the uniform shape shared by every built-in crop. Topography is
// not constrained by any of them.
type profileRow struct {
	name       string
	nitrogen   domain.Range
	phosphorus domain.Range
	potassium  domain.Range
	climate    string
	humidity   domain.Range
	ph         domain.Range
	rainfall   domain.Range
	soilTypes  []string
	water      string
}

func r(lo, hi float64) domain.Range { return domain.Range{Min: lo, Max: hi} }

func oneOf(values ...string) []string { return values }

// Mushrooms are grown in substrate, so their nutrient and rainfall ranges are 0-0.
var builtinRows = []profileRow{
	{"Rice", r(60, 90), r(30, 60), r(30, 60), "Tropical", r(70, 90), r(6.0, 7.0), r(150, 250), oneOf("Clayey", "Loamy"), "High"},
	{"Wheat", r(50, 80), r(20, 40), r(20, 40), "Temperate", r(50, 70), r(6.0, 7.5), r(50, 100), oneOf("Loamy", "Sandy", "Silty"), "Medium"},
	{"Maize", r(70, 100), r(30, 50), r(30, 50), "Tropical", r(60, 80), r(6.0, 7.0), r(80, 150), oneOf("Loamy", "Sandy"), "High"},
	{"Barley", r(40, 70), r(20, 35), r(20, 35), "Temperate", r(55, 75), r(6.0, 7.5), r(60, 120), oneOf("Sandy", "Loamy"), "Medium"},
	{"Soybean", r(20, 40), r(40, 70), r(30, 60), "Temperate", r(60, 80), r(6.0, 7.0), r(100, 200), oneOf("Loamy", "Clayey"), "High"},
	{"Alfalfa", r(0, 20), r(40, 80), r(50, 100), "Temperate", r(50, 70), r(6.5, 7.5), r(70, 140), oneOf("Loamy", "Silty"), "Medium"},
	{"Tomato", r(60, 100), r(40, 80), r(80, 150), "Temperate", r(60, 80), r(6.0, 6.8), r(60, 120), oneOf("Loamy", "Sandy"), "Medium"},
	{"Potato", r(80, 120), r(50, 90), r(100, 180), "Temperate", r(70, 85), r(5.5, 6.5), r(80, 150), oneOf("Sandy", "Loamy"), "High"},
	{"Coffee", r(80, 120), r(20, 40), r(80, 120), "Tropical", r(75, 90), r(6.0, 6.5), r(150, 250), oneOf("Loamy", "Clayey"), "High"},
	{"Banana", r(100, 150), r(30, 50), r(150, 200), "Tropical", r(80, 95), r(6.0, 7.0), r(200, 300), oneOf("Loamy", "Silty"), "High"},
	{"Coconut", r(50, 80), r(20, 40), r(100, 150), "Tropical", r(70, 90), r(6.0, 7.0), r(100, 200), oneOf("Sandy", "Loamy"), "High"},
	{"Sugarcane for sugar or alcohol", r(100, 150), r(40, 60), r(120, 180), "Tropical", r(60, 80), r(6.0, 7.0), r(150, 250), oneOf("Clayey", "Loamy"), "High"},
	{"Sunflower for oil seed", r(50, 80), r(30, 50), r(60, 100), "Temperate", r(40, 60), r(6.0, 7.5), r(50, 100), oneOf("Loamy", "Sandy"), "Medium"},
	{"Cotton (all varieties)", r(80, 120), r(30, 60), r(60, 100), "Tropical", r(50, 70), r(6.0, 7.0), r(70, 150), oneOf("Clayey", "Loamy"), "Medium"},
	{"Orange", r(60, 90), r(20, 40), r(50, 80), "Tropical", r(60, 80), r(6.0, 7.0), r(80, 150), oneOf("Loamy", "Sandy"), "Medium"},
	{"Apple", r(40, 70), r(20, 30), r(60, 90), "Temperate", r(60, 80), r(6.0, 7.0), r(80, 150), oneOf("Loamy", "Silty"), "Medium"},
	{"Grape", r(30, 60), r(15, 30), r(40, 70), "Temperate", r(50, 70), r(6.0, 7.0), r(40, 80), oneOf("Sandy", "Loamy"), "Low"},
	{"Tea", r(80, 120), r(20, 40), r(50, 80), "Tropical", r(80, 95), r(4.5, 5.5), r(200, 350), oneOf("Loamy", "Silty"), "High"},
	{"Tobacco", r(40, 70), r(30, 50), r(60, 90), "Temperate", r(60, 80), r(5.5, 6.5), r(60, 120), oneOf("Sandy", "Loamy"), "Medium"},
	{"Abaca (Manila hemp)", r(50, 80), r(20, 40), r(70, 100), "Tropical", r(75, 90), r(6.0, 7.0), r(150, 250), oneOf("Clayey", "Loamy"), "High"},
	{"Almond", r(40, 60), r(15, 30), r(30, 50), "Arid", r(30, 50), r(6.5, 8.0), r(30, 60), oneOf("Sandy", "Loamy"), "Low"},
	{"Apricot", r(30, 50), r(10, 25), r(20, 40), "Temperate", r(50, 70), r(6.0, 7.0), r(50, 100), oneOf("Loamy", "Sandy"), "Medium"},
	{"Avocado", r(60, 90), r(20, 40), r(50, 80), "Tropical", r(60, 80), r(6.0, 7.0), r(100, 200), oneOf("Loamy", "Silty"), "High"},
	{"Beans, dry, edible, for grains", r(20, 40), r(30, 60), r(30, 50), "Temperate", r(50, 70), r(6.0, 7.0), r(60, 120), oneOf("Loamy", "Sandy"), "Medium"},
	{"Beet, sugar", r(80, 120), r(40, 70), r(80, 120), "Temperate", r(60, 80), r(6.0, 7.5), r(50, 100), oneOf("Loamy", "Clayey"), "Medium"},
	{"Black pepper", r(70, 100), r(30, 50), r(80, 120), "Tropical", r(80, 95), r(5.5, 6.5), r(200, 300), oneOf("Loamy", "Clayey"), "High"},
	{"Blueberry", r(20, 40), r(10, 20), r(20, 40), "Temperate", r(60, 80), r(4.5, 5.5), r(80, 150), oneOf("Peaty", "Sandy"), "High"},
	{"Cabbage (red, white, Savoy)", r(80, 120), r(30, 60), r(60, 100), "Temperate", r(70, 90), r(6.0, 7.5), r(60, 120), oneOf("Loamy", "Clayey"), "Medium"},
	{"Carrot, edible", r(40, 70), r(20, 40), r(50, 80), "Temperate", r(60, 80), r(6.0, 7.0), r(50, 100), oneOf("Sandy", "Loamy"), "Medium"},
	{"Cashew nuts", r(30, 60), r(10, 25), r(40, 70), "Tropical", r(60, 80), r(5.0, 6.5), r(100, 200), oneOf("Sandy", "Loamy"), "Medium"},
	{"Cucumber", r(60, 90), r(30, 50), r(70, 100), "Tropical", r(70, 90), r(6.0, 7.0), r(80, 150), oneOf("Loamy", "Sandy"), "High"},
	{"Dates", r(30, 50), r(10, 20), r(40, 60), "Arid", r(20, 40), r(7.0, 8.5), r(0, 20), oneOf("Sandy", "Loamy"), "Low"},
	{"Eggplant", r(50, 80), r(20, 40), r(60, 90), "Tropical", r(60, 80), r(6.0, 7.0), r(70, 140), oneOf("Loamy", "Silty"), "Medium"},
	{"Garlic, dry", r(40, 60), r(20, 30), r(30, 50), "Temperate", r(50, 70), r(6.0, 7.5), r(40, 80), oneOf("Sandy", "Loamy"), "Medium"},
	{"Ginger", r(60, 90), r(30, 50), r(70, 100), "Tropical", r(70, 90), r(6.0, 6.5), r(150, 250), oneOf("Loamy", "Silty"), "High"},
	{"Guava", r(50, 80), r(20, 40), r(60, 90), "Tropical", r(60, 80), r(5.0, 7.0), r(80, 150), oneOf("Loamy", "Sandy"), "Medium"},
	{"Jute", r(40, 70), r(20, 30), r(30, 50), "Tropical", r(70, 90), r(6.0, 7.0), r(150, 250), oneOf("Clayey", "Loamy"), "High"},
	{"Lentil", r(10, 20), r(20, 40), r(20, 30), "Temperate", r(40, 60), r(6.0, 7.5), r(30, 70), oneOf("Loamy", "Silty"), "Low"},
	{"Lettuce", r(50, 80), r(20, 40), r(40, 60), "Temperate", r(60, 80), r(6.0, 7.0), r(50, 100), oneOf("Loamy", "Sandy"), "Medium"},
	{"Mango", r(60, 90), r(20, 40), r(70, 100), "Tropical", r(60, 80), r(5.5, 7.0), r(100, 200), oneOf("Loamy", "Sandy"), "Medium"},
	{"Mushrooms", r(0, 0), r(0, 0), r(0, 0), "Temperate", r(90, 100), r(6.0, 7.0), r(0, 0), oneOf("Peaty"), "High"},
	{"Mustard", r(40, 70), r(20, 40), r(30, 50), "Temperate", r(50, 70), r(6.0, 7.5), r(40, 80), oneOf("Loamy", "Silty"), "Medium"},
	{"Onion, dry", r(60, 90), r(30, 50), r(50, 80), "Temperate", r(60, 80), r(6.0, 7.0), r(40, 80), oneOf("Sandy", "Loamy"), "Medium"},
	{"Papaya (pawpaw)", r(80, 120), r(30, 50), r(100, 150), "Tropical", r(70, 90), r(6.0, 7.0), r(150, 250), oneOf("Loamy", "Sandy"), "High"},
	{"Peach", r(40, 70), r(20, 30), r(50, 80), "Temperate", r(50, 70), r(6.0, 7.0), r(60, 120), oneOf("Loamy", "Sandy"), "Medium"},
	{"Pineapple", r(50, 80), r(20, 40), r(70, 100), "Tropical", r(70, 90), r(4.5, 6.0), r(100, 200), oneOf("Sandy", "Loamy"), "Medium"},
	{"Plum", r(40, 60), r(15, 30), r(30, 50), "Temperate", r(50, 70), r(6.0, 7.0), r(50, 100), oneOf("Loamy", "Clayey"), "Medium"},
	{"Pumpkin, edible", r(60, 90), r(30, 50), r(70, 100), "Temperate", r(60, 80), r(6.0, 7.0), r(60, 120), oneOf("Loamy", "Silty"), "Medium"},
	{"Rhubarb", r(50, 80), r(20, 40), r(40, 60), "Temperate", r(60, 80), r(5.5, 6.5), r(70, 140), oneOf("Loamy", "Clayey"), "High"},
	{"Rye", r(40, 70), r(20, 35), r(20, 40), "Temperate", r(50, 70), r(5.0, 7.0), r(40, 80), oneOf("Sandy", "Loamy"), "Low"},
	{"Safflower", r(30, 50), r(15, 30), r(20, 40), "Arid", r(30, 50), r(6.0, 8.0), r(20, 50), oneOf("Sandy", "Loamy"), "Low"},
	{"Sesame", r(40, 60), r(20, 30), r(30, 50), "Tropical", r(50, 70), r(6.0, 7.5), r(50, 100), oneOf("Sandy", "Loamy"), "Medium"},
	{"Spinach", r(50, 80), r(20, 40), r(40, 60), "Temperate", r(60, 80), r(6.0, 7.5), r(50, 100), oneOf("Loamy", "Silty"), "Medium"},
	{"Strawberry", r(40, 70), r(20, 40), r(50, 80), "Temperate", r(60, 80), r(5.5, 6.5), r(60, 120), oneOf("Loamy", "Sandy"), "Medium"},
	{"Sweet potato", r(30, 60), r(20, 40), r(80, 120), "Tropical", r(70, 90), r(5.5, 6.5), r(100, 200), oneOf("Sandy", "Loamy"), "Medium"},
	{"Tangerine", r(50, 80), r(20, 40), r(40, 70), "Tropical", r(60, 80), r(6.0, 7.0), r(80, 150), oneOf("Loamy", "Sandy"), "Medium"},
	{"Taro", r(60, 90), r(30, 50), r(70, 100), "Tropical", r(80, 95), r(5.5, 6.5), r(200, 300), oneOf("Clayey", "Loamy"), "High"},
	{"Yam", r(50, 80), r(20, 40), r(60, 90), "Tropical", r(70, 90), r(5.5, 6.5), r(100, 200), oneOf("Loamy", "Silty"), "High"},
	{"Watermelon", r(60, 90), r(30, 50), r(70, 100), "Tropical", r(60, 80), r(6.0, 7.0), r(60, 120), oneOf("Sandy", "Loamy"), "Medium"},
}

func (row profileRow) profile() domain.CropProfile {
	return domain.CropProfile{
		Name: row.name,
		Numeric: map[domain.Attribute]domain.Range{
			domain.AttrNitrogen:   row.nitrogen,
			domain.AttrPhosphorus: row.phosphorus,
			domain.AttrPotassium:  row.potassium,
			domain.AttrHumidity:   row.humidity,
			domain.AttrPH:         row.ph,
			domain.AttrRainfall:   row.rainfall,
		},
		Categorical: map[domain.Attribute]domain.CategoricalConstraint{
			domain.AttrClimate:           {Exact: row.climate},
			domain.AttrSoilType:          {OneOf: row.soilTypes},
			domain.AttrWaterAvailability: {Exact: row.water},
		},
	}
}

func builtinProfiles() []domain.CropProfile {
	profiles := make([]domain.CropProfile, 0, len(builtinRows))
	for _, row := range builtinRows {
		profiles = append(profiles, row.profile())
	}
	return profiles
}
