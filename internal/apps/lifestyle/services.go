package lifestyle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/identity"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

var ErrScoreOutOfRange = errors.New("pillar scores must be between 1 and 10")

const defaultHistoryLimit = 52

// Service handles lifestyle assessment business logic.
type Service struct {
	db                *gorm.DB
	moderationService *services.ModerationService
}

func NewService(db *gorm.DB, moderationService *services.ModerationService) *Service {
	return &Service{db: db, moderationService: moderationService}
}

// Assess validates and persists a new assessment.
func (s *Service) Assess(userID uuid.UUID, req AssessRequest) (*Assessment, error) {
	scores := []int{req.SleepQuality, req.Nutrition, req.SocialConnection, req.PurposeGrowth, req.StressManagement}
	for _, score := range scores {
		if score < 1 || score > 10 {
			return nil, ErrScoreOutOfRange
		}
	}

	notes := req.Notes
	if s.moderationService != nil {
		notes = s.moderationService.Sanitize(notes)
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	assessment := &Assessment{
		ID:               uuid.New(),
		UserID:           userID,
		SleepQuality:     req.SleepQuality,
		Nutrition:        req.Nutrition,
		SocialConnection: req.SocialConnection,
		PurposeGrowth:    req.PurposeGrowth,
		StressManagement: req.StressManagement,
		Notes:            notes,
		Date:             date,
	}
	assessment.CalculateAverageScore()

	if err := s.db.Create(assessment).Error; err != nil {
		return nil, err
	}

	return assessment, nil
}

// History returns the user's assessments, newest first.
func (s *Service) History(userID uuid.UUID) ([]Assessment, error) {
	var assessments []Assessment
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("created_at DESC").
		Limit(defaultHistoryLimit).
		Find(&assessments).Error
	return assessments, err
}
