package lifestyle

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assessment is one weekly lifestyle self-rating across five pillars.
type Assessment struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SleepQuality     int            `gorm:"not null" json:"sleep_quality"`
	Nutrition        int            `gorm:"not null" json:"nutrition"`
	SocialConnection int            `gorm:"not null" json:"social_connection"`
	PurposeGrowth    int            `gorm:"not null" json:"purpose_growth"`
	StressManagement int            `gorm:"not null" json:"stress_management"`
	Notes            string         `gorm:"type:text" json:"notes"`
	Date             string         `gorm:"size:64" json:"date"`
	AverageScore     float64        `gorm:"not null" json:"average_score"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// CalculateAverageScore computes the mean of the five pillar ratings,
// rounded to one decimal place.
func (a *Assessment) CalculateAverageScore() {
	sum := a.SleepQuality + a.Nutrition + a.SocialConnection + a.PurposeGrowth + a.StressManagement
	a.AverageScore = math.Round(float64(sum)/5*10) / 10
}

// AssessRequest is the POST /lifestyle/assess body.
type AssessRequest struct {
	SleepQuality     int    `json:"sleep_quality"`
	Nutrition        int    `json:"nutrition"`
	SocialConnection int    `json:"social_connection"`
	PurposeGrowth    int    `json:"purpose_growth"`
	StressManagement int    `json:"stress_management"`
	Notes            string `json:"notes"`
	Date             string `json:"date"`
}
