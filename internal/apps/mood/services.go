package mood

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moodsync/moodsync-backend/internal/identity"
	"github.com/moodsync/moodsync-backend/internal/services"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmotion      = errors.New("emotion must be one of: Sad, Anxious, Depressed, Angry, Overwhelmed, Tired, Stressed")
	ErrInvalidOverthinking = errors.New("overthinking must be one of: No, Slightly, A lot, Constantly")
	ErrLevelOutOfRange     = errors.New("levels must be between 0 and 10")
	ErrInvalidDays         = errors.New("days must be a positive number")
)

// Service handles mood check-in business logic.
type Service struct {
	db                *gorm.DB
	guidanceService   *services.GuidanceService
	moderationService *services.ModerationService
}

func NewService(db *gorm.DB, guidanceService *services.GuidanceService, moderationService *services.ModerationService) *Service {
	return &Service{db: db, guidanceService: guidanceService, moderationService: moderationService}
}

// Submit validates and persists a new check-in, with guidance text attached
// before the write. Guidance failures degrade to a fallback message; they
// never fail the submission.
func (s *Service) Submit(userID uuid.UUID, req SubmitRequest) (*Entry, error) {
	if !ValidEmotions[req.Emotion] {
		return nil, ErrInvalidEmotion
	}
	if !ValidOverthinking[req.Overthinking] {
		return nil, ErrInvalidOverthinking
	}
	if !inRange(req.EmotionLevel) || !inRange(req.EnergyLevel) || !inRange(req.FocusLevel) {
		return nil, ErrLevelOutOfRange
	}

	// Filter free-text fields for prohibited content. The trigger is left
	// alone so analytics group on what the user actually typed.
	if s.moderationService != nil {
		req.Pattern = s.moderationService.Sanitize(req.Pattern)
		req.UnderlyingCause = s.moderationService.Sanitize(req.UnderlyingCause)
		req.AdditionalNotes = s.moderationService.Sanitize(req.AdditionalNotes)
	}

	guidance := services.FallbackGuidance(req.Emotion)
	if s.guidanceService != nil {
		guidance = s.guidanceService.Generate(services.GuidanceRequest{
			Emotion:         req.Emotion,
			EmotionLevel:    req.EmotionLevel,
			EnergyLevel:     req.EnergyLevel,
			FocusLevel:      req.FocusLevel,
			Overthinking:    req.Overthinking,
			Trigger:         req.Trigger,
			Pattern:         req.Pattern,
			UnderlyingCause: req.UnderlyingCause,
			AdditionalNotes: req.AdditionalNotes,
		})
	}

	entry := &Entry{
		ID:              uuid.New(),
		UserID:          userID,
		Emotion:         req.Emotion,
		EmotionLevel:    req.EmotionLevel,
		EnergyLevel:     req.EnergyLevel,
		FocusLevel:      req.FocusLevel,
		Overthinking:    req.Overthinking,
		Trigger:         req.Trigger,
		Pattern:         req.Pattern,
		UnderlyingCause: req.UnderlyingCause,
		AdditionalNotes: req.AdditionalNotes,
		AIGuidance:      guidance,
		Timestamp:       time.Now().UTC(),
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// History returns check-ins for a user, newest first.
func (s *Service) History(userID uuid.UUID, limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.Scopes(identity.ForUser(userID)).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Trends computes per-day averages of emotion/energy/focus over the trailing
// window. Days are bucketed by UTC calendar date; dates with no entries are
// omitted.
func (s *Service) Trends(userID uuid.UUID, days int) ([]TrendPoint, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -days)

	var entries []Entry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where("timestamp >= ? AND timestamp <= ?", since, now).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return buildTrendPoints(entries), nil
}

func buildTrendPoints(entries []Entry) []TrendPoint {
	type bucket struct {
		emotion, energy, focus int
		count                  int
	}

	buckets := make(map[string]*bucket)
	for _, e := range entries {
		date := e.Timestamp.UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		b.emotion += e.EmotionLevel
		b.energy += e.EnergyLevel
		b.focus += e.FocusLevel
		b.count++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for date, b := range buckets {
		n := float64(b.count)
		points = append(points, TrendPoint{
			Date:         date,
			EmotionLevel: round1(float64(b.emotion) / n),
			EnergyLevel:  round1(float64(b.energy) / n),
			FocusLevel:   round1(float64(b.focus) / n),
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CanonicalTrigger normalizes a free-text trigger for grouping: trimmed,
// case-folded, inner whitespace collapsed. "Work Deadline " and
// "work deadline" share one key.
func CanonicalTrigger(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// TriggerInsights ranks canonical triggers by frequency and tallies the
// emotions co-occurring with each. Ranking is deterministic: count
// descending, canonical key ascending on ties.
func (s *Service) TriggerInsights(userID uuid.UUID) (*TriggerInsightsResponse, error) {
	entries, err := s.triggeredEntries(userID)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*TriggerGroup)
	for _, e := range entries {
		key := CanonicalTrigger(e.Trigger)
		g, ok := groups[key]
		if !ok {
			g = &TriggerGroup{Trigger: key, Emotions: make(map[string]int)}
			groups[key] = g
		}
		g.Count++
		g.Emotions[e.Emotion]++
	}

	ranked := make([]TriggerGroup, 0, len(groups))
	for _, g := range groups {
		ranked = append(ranked, *g)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Trigger < ranked[j].Trigger
	})

	return &TriggerInsightsResponse{
		CommonTriggers: ranked,
		TotalEntries:   len(entries),
	}, nil
}

// TriggerHeatmap emits one cell per triggered entry, most recent first, so a
// caller slicing the first N gets the latest cells.
func (s *Service) TriggerHeatmap(userID uuid.UUID) (*HeatmapResponse, error) {
	entries, err := s.triggeredEntries(userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	cells := make([]HeatmapCell, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, HeatmapCell{
			Date:      e.Timestamp.UTC().Format("2006-01-02"),
			Trigger:   e.Trigger,
			Emotion:   e.Emotion,
			Intensity: e.Intensity(),
		})
	}

	return &HeatmapResponse{HeatmapData: cells}, nil
}

// triggeredEntries fetches the user's entries whose trigger is non-empty
// after trimming.
func (s *Service) triggeredEntries(userID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	if err := s.db.Scopes(identity.ForUser(userID)).
		Where(`"trigger" <> ''`).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Trigger) != "" {
			out = append(out, e)
		}
	}
	return out, nil
}

func inRange(v int) bool {
	return v >= 0 && v <= 10
}
