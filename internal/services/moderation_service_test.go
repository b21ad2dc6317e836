package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	ms := NewModerationService()

	tests := []struct {
		name   string
		text   string
		clean  bool
		reason string
	}{
		{"empty", "", true, ""},
		{"clean text", "Had a rough day at work, feeling drained.", true, ""},
		{"banned word", "this is such bullshit", false, "inappropriate_language"},
		{"banned word case insensitive", "This Is BULLSHIT honestly", false, "inappropriate_language"},
		{"banned word inside another word", "scunthorpe class assignment", true, ""},
		{"http url", "check out https://example.com/deal", false, "url_not_allowed"},
		{"www url", "visit www.example.com now", false, "url_not_allowed"},
		{"email", "contact me at someone@example.com", false, "contact_info_not_allowed"},
		{"phone number", "call 555-123-4567 anytime", false, "contact_info_not_allowed"},
		{"parenthesized phone", "call (555) 123-4567", false, "contact_info_not_allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, reason := ms.FilterContent(tt.text)
			assert.Equal(t, tt.clean, clean)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestSanitize(t *testing.T) {
	ms := NewModerationService()

	assert.Equal(t, "feeling grateful today", ms.Sanitize("feeling grateful today"))
	assert.Equal(t, FilteredPlaceholder, ms.Sanitize("buy now at www.spam.site today"))
	assert.Equal(t, "", ms.Sanitize(""))
}
