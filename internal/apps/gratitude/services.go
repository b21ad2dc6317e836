package gratitude

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/identity"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

var (
	ErrEmptyContent  = errors.New("content must not be empty")
	ErrEntryNotFound = errors.New("gratitude entry not found")
)

const defaultListLimit = 100

// Service handles gratitude journal business logic.
type Service struct {
	db                *gorm.DB
	moderationService *services.ModerationService
}

func NewService(db *gorm.DB, moderationService *services.ModerationService) *Service {
	return &Service{db: db, moderationService: moderationService}
}

// Add persists a new journal entry for the user.
func (s *Service) Add(userID uuid.UUID, req AddRequest) (*Entry, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	if s.moderationService != nil {
		content = s.moderationService.Sanitize(content)
	}

	date := req.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	entry := &Entry{
		ID:      uuid.New(),
		UserID:  userID,
		Content: content,
		Date:    date,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// List returns the user's journal entries, newest first.
func (s *Service) List(userID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("created_at DESC").
		Limit(defaultListLimit).
		Find(&entries).Error
	return entries, err
}

// Delete removes an entry owned by the user. The owner check and removal are
// one statement, so concurrent deletes of the same id cannot both succeed.
func (s *Service) Delete(userID, entryID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&Entry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
