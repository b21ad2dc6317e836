package mood

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Emotions a check-in may carry. The enumeration is closed; anything else is
// rejected at submit time.
var ValidEmotions = map[string]bool{
	"Sad":         true,
	"Anxious":     true,
	"Depressed":   true,
	"Angry":       true,
	"Overwhelmed": true,
	"Tired":       true,
	"Stressed":    true,
}

var ValidOverthinking = map[string]bool{
	"No":         true,
	"Slightly":   true,
	"A lot":      true,
	"Constantly": true,
}

// Entry represents one mood check-in. Entries are append-only: once written
// they are never mutated.
type Entry struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Emotion         string         `gorm:"size:20;not null" json:"emotion"`
	EmotionLevel    int            `gorm:"not null" json:"emotion_level"`
	EnergyLevel     int            `gorm:"not null" json:"energy_level"`
	FocusLevel      int            `gorm:"not null" json:"focus_level"`
	Overthinking    string         `gorm:"size:20;not null" json:"overthinking"`
	Trigger         string         `gorm:"type:text" json:"trigger"`
	Pattern         string         `gorm:"type:text" json:"pattern"`
	UnderlyingCause string         `gorm:"type:text" json:"underlying_cause"`
	AdditionalNotes string         `gorm:"type:text" json:"additional_notes"`
	AIGuidance      string         `gorm:"type:text" json:"ai_guidance"`
	Timestamp       time.Time      `gorm:"not null;index" json:"timestamp"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// Intensity maps the entry onto the 0-10 heatmap scale. It is a direct
// passthrough of the emotion level, clamped to the declared range.
func (e *Entry) Intensity() int {
	return clamp(e.EmotionLevel, 0, 10)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- DTO types embedded in this package ---

// SubmitRequest is the POST /mood/submit body.
type SubmitRequest struct {
	Emotion         string `json:"emotion"`
	EmotionLevel    int    `json:"emotion_level"`
	EnergyLevel     int    `json:"energy_level"`
	FocusLevel      int    `json:"focus_level"`
	Overthinking    string `json:"overthinking"`
	Trigger         string `json:"trigger"`
	Pattern         string `json:"pattern"`
	UnderlyingCause string `json:"underlying_cause"`
	AdditionalNotes string `json:"additional_notes"`
}

// TrendPoint is one calendar day's averages.
type TrendPoint struct {
	Date         string  `json:"date"`
	EmotionLevel float64 `json:"emotion_level"`
	EnergyLevel  float64 `json:"energy_level"`
	FocusLevel   float64 `json:"focus_level"`
}

// TriggerGroup aggregates entries sharing a canonical trigger key.
type TriggerGroup struct {
	Trigger  string         `json:"trigger"`
	Count    int            `json:"count"`
	Emotions map[string]int `json:"emotions"`
}

// TriggerInsightsResponse is the GET /mood/trigger-insights payload.
type TriggerInsightsResponse struct {
	CommonTriggers []TriggerGroup `json:"common_triggers"`
	TotalEntries   int            `json:"total_entries"`
}

// HeatmapCell is one calendar cell: a single entry's trigger intensity.
type HeatmapCell struct {
	Date      string `json:"date"`
	Trigger   string `json:"trigger"`
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
}

// HeatmapResponse is the GET /mood/trigger-heatmap payload.
type HeatmapResponse struct {
	HeatmapData []HeatmapCell `json:"heatmap_data"`
}
