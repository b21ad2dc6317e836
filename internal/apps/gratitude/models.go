package gratitude

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entry is one gratitude journal record.
type Entry struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Date      string         `gorm:"size:64" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AddRequest is the POST /gratitude/add body.
type AddRequest struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}
