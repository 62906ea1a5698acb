package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CREATE TABLE public.predictions (
//     id                 UUID PRIMARY KEY,
//     nitrogen           NUMERIC,
//     phosphorus         NUMERIC,
//     potassium          NUMERIC,
//     climate            TEXT,
//     humidity           NUMERIC,
//     ph                 NUMERIC,
//     rainfall           NUMERIC,
//     soil_type          TEXT,
//     topography         TEXT,
//     water_availability TEXT,
//     npk_preset         TEXT,
//     top_crop           TEXT,
//     top_compatibility  NUMERIC,
//     compatible_count   INT,
//     result             JSONB,
//     created_at         TIMESTAMPTZ DEFAULT NOW()
// );

type Prediction struct {
	ID                uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Nitrogen          *float64       `gorm:"column:nitrogen;type:numeric" json:"nitrogen,omitempty"`
	Phosphorus        *float64       `gorm:"column:phosphorus;type:numeric" json:"phosphorus,omitempty"`
	Potassium         *float64       `gorm:"column:potassium;type:numeric" json:"potassium,omitempty"`
	Climate           *string        `gorm:"column:climate;type:text" json:"climate,omitempty"`
	Humidity          *float64       `gorm:"column:humidity;type:numeric" json:"humidity,omitempty"`
	PH                *float64       `gorm:"column:ph;type:numeric" json:"ph,omitempty"`
	Rainfall          *float64       `gorm:"column:rainfall;type:numeric" json:"rainfall,omitempty"`
	SoilType          *string        `gorm:"column:soil_type;type:text" json:"soil_type,omitempty"`
	Topography        *string        `gorm:"column:topography;type:text" json:"topography,omitempty"`
	WaterAvailability *string        `gorm:"column:water_availability;type:text" json:"water_availability,omitempty"`
	NPKPreset         string         `gorm:"column:npk_preset;type:text" json:"npk_preset,omitempty"`
	TopCrop           string         `gorm:"column:top_crop;type:text" json:"top_crop"`
	TopCompatibility  float64        `gorm:"column:top_compatibility;type:numeric" json:"top_compatibility"`
	CompatibleCount   int            `gorm:"column:compatible_count" json:"compatible_count"`
	Result            datatypes.JSON `gorm:"column:result;type:jsonb" json:"result"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Prediction) TableName() string {
	return "predictions"
}

// CropFrequency counts how often a crop ranked first.
type CropFrequency struct {
	Crop  string `json:"crop"`
	Count int    `json:"count"`
}

type HistorySummary struct {
	Total                  int             `json:"total"`
	WithCompatible         int             `json:"with_compatible"`
	MeanTopCompatibility   float64         `json:"mean_top_compatibility"`
	MedianTopCompatibility float64         `json:"median_top_compatibility"`
	P90TopCompatibility    float64         `json:"p90_top_compatibility"`
	TopCrops               []CropFrequency `json:"top_crops"`
}

// PredictionOutcome is the slice of a stored prediction the summary works on.
type PredictionOutcome struct {
	TopCrop          string  `gorm:"column:top_crop"`
	TopCompatibility float64 `gorm:"column:top_compatibility"`
	CompatibleCount  int     `gorm:"column:compatible_count"`
}
