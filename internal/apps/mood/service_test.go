package mood

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))
	return db
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Emotion:      "Sad",
		EmotionLevel: 8,
		EnergyLevel:  2,
		FocusLevel:   3,
		Overthinking: "A lot",
		Trigger:      "work deadline",
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)
	userID := uuid.New()

	entry, err := svc.Submit(userID, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "Sad", entry.Emotion)
	assert.Equal(t, 8, entry.EmotionLevel)
	assert.Equal(t, "A lot", entry.Overthinking)
	assert.NotEmpty(t, entry.AIGuidance)
	assert.False(t, entry.Timestamp.IsZero())

	history, err := svc.History(userID, 30)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entry.ID, history[0].ID)
}

func TestSubmitAssignsUniqueIDs(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)
	userID := uuid.New()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		entry, err := svc.Submit(userID, validRequest())
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "duplicate id %s", entry.ID)
		seen[entry.ID] = true
		assert.NotEmpty(t, entry.AIGuidance)
	}
}

func TestSubmitValidation(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	cases := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr error
	}{
		{"unknown emotion", func(r *SubmitRequest) { r.Emotion = "Happy" }, ErrInvalidEmotion},
		{"empty emotion", func(r *SubmitRequest) { r.Emotion = "" }, ErrInvalidEmotion},
		{"unknown overthinking", func(r *SubmitRequest) { r.Overthinking = "Sometimes" }, ErrInvalidOverthinking},
		{"emotion level too high", func(r *SubmitRequest) { r.EmotionLevel = 11 }, ErrLevelOutOfRange},
		{"emotion level negative", func(r *SubmitRequest) { r.EmotionLevel = -1 }, ErrLevelOutOfRange},
		{"energy level too high", func(r *SubmitRequest) { r.EnergyLevel = 15 }, ErrLevelOutOfRange},
		{"focus level negative", func(r *SubmitRequest) { r.FocusLevel = -3 }, ErrLevelOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.Submit(userID, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// No record may survive a rejected submission.
	var count int64
	require.NoError(t, db.Model(&Entry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHistoryNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		insertEntry(t, db, userID, "Tired", 5, "", now.Add(time.Duration(i)*time.Hour))
	}

	history, err := svc.History(userID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
}

func TestHistoryEmptyForUnknownUser(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)

	history, err := svc.History(uuid.New(), 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistoryScopedByOwner(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Submit(alice, validRequest())
	require.NoError(t, err)

	history, err := svc.History(bob, 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTrendsRejectsNonPositiveDays(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)

	_, err := svc.Trends(uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidDays)

	_, err = svc.Trends(uuid.New(), -7)
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestTrendsBucketsAndAverages(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	// Anchor at noon UTC so hour offsets never cross a date boundary.
	noon := time.Now().UTC().Truncate(24 * time.Hour).Add(12 * time.Hour)
	yesterday := noon.AddDate(0, 0, -1)
	dayBefore := noon.AddDate(0, 0, -2)

	// Two entries the day before yesterday: averages 7.5, 3.5, 5.0
	insertEntryLevels(t, db, userID, 8, 4, 5, dayBefore)
	insertEntryLevels(t, db, userID, 7, 3, 5, dayBefore.Add(time.Hour))
	// One entry yesterday
	insertEntryLevels(t, db, userID, 2, 9, 6, yesterday)
	// One entry far outside the window
	insertEntryLevels(t, db, userID, 10, 10, 10, time.Now().UTC().AddDate(0, 0, -30))

	points, err := svc.Trends(userID, 14)
	require.NoError(t, err)
	require.Len(t, points, 2)

	// Ascending by date, sparse (no zero-filled days).
	assert.Equal(t, dayBefore.Format("2006-01-02"), points[0].Date)
	assert.Equal(t, yesterday.Format("2006-01-02"), points[1].Date)

	assert.InDelta(t, 7.5, points[0].EmotionLevel, 0.001)
	assert.InDelta(t, 3.5, points[0].EnergyLevel, 0.001)
	assert.InDelta(t, 5.0, points[0].FocusLevel, 0.001)

	assert.InDelta(t, 2.0, points[1].EmotionLevel, 0.001)
}

func TestTrendsRoundsToOneDecimal(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	day := time.Now().UTC().Truncate(24 * time.Hour).Add(12 * time.Hour).AddDate(0, 0, -1)
	insertEntryLevels(t, db, userID, 1, 1, 1, day)
	insertEntryLevels(t, db, userID, 2, 2, 2, day.Add(time.Minute))
	insertEntryLevels(t, db, userID, 2, 2, 2, day.Add(2*time.Minute))

	points, err := svc.Trends(userID, 7)
	require.NoError(t, err)
	require.Len(t, points, 1)

	// 5/3 = 1.666..., rounded to 1.7
	assert.InDelta(t, 1.7, points[0].EmotionLevel, 0.001)
}

func TestTrendsEmptyWindow(t *testing.T) {
	svc := NewService(testDB(t), nil, nil)

	points, err := svc.Trends(uuid.New(), 14)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestCanonicalTrigger(t *testing.T) {
	assert.Equal(t, "work deadline", CanonicalTrigger("work deadline"))
	assert.Equal(t, "work deadline", CanonicalTrigger("Work Deadline "))
	assert.Equal(t, "work deadline", CanonicalTrigger("  WORK   DEADLINE"))
	assert.Equal(t, "", CanonicalTrigger("   "))
}

func TestTriggerInsightsGroupsNormalizedTriggers(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	req := validRequest()
	req.Trigger = "work deadline"
	_, err := svc.Submit(userID, req)
	require.NoError(t, err)

	req2 := validRequest()
	req2.Emotion = "Stressed"
	req2.Trigger = "Work Deadline "
	_, err = svc.Submit(userID, req2)
	require.NoError(t, err)

	insights, err := svc.TriggerInsights(userID)
	require.NoError(t, err)

	assert.Equal(t, 2, insights.TotalEntries)
	require.Len(t, insights.CommonTriggers, 1)
	group := insights.CommonTriggers[0]
	assert.Equal(t, "work deadline", group.Trigger)
	assert.Equal(t, 2, group.Count)
	assert.Equal(t, map[string]int{"Sad": 1, "Stressed": 1}, group.Emotions)
}

func TestTriggerInsightsRankingDeterministic(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()
	now := time.Now().UTC()

	insertEntry(t, db, userID, "Angry", 5, "traffic", now)
	insertEntry(t, db, userID, "Angry", 5, "argument", now)
	insertEntry(t, db, userID, "Anxious", 6, "deadline", now)
	insertEntry(t, db, userID, "Anxious", 6, "deadline", now)

	for i := 0; i < 5; i++ {
		insights, err := svc.TriggerInsights(userID)
		require.NoError(t, err)
		require.Len(t, insights.CommonTriggers, 3)

		// Highest count first, then key ascending on the tie.
		assert.Equal(t, "deadline", insights.CommonTriggers[0].Trigger)
		assert.Equal(t, "argument", insights.CommonTriggers[1].Trigger)
		assert.Equal(t, "traffic", insights.CommonTriggers[2].Trigger)
	}
}

func TestTriggerInsightsEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()

	// Entries without a trigger don't count.
	insertEntry(t, db, userID, "Tired", 4, "", time.Now().UTC())
	insertEntry(t, db, userID, "Tired", 4, "   ", time.Now().UTC())

	insights, err := svc.TriggerInsights(userID)
	require.NoError(t, err)
	assert.Empty(t, insights.CommonTriggers)
	assert.Zero(t, insights.TotalEntries)
}

func TestTriggerHeatmapNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil, nil)
	userID := uuid.New()
	now := time.Now().UTC()

	insertEntry(t, db, userID, "Sad", 8, "work", now.AddDate(0, 0, -2))
	insertEntry(t, db, userID, "Angry", 12, "traffic", now.AddDate(0, 0, -1))
	insertEntry(t, db, userID, "Tired", 3, "sleep", now)
	insertEntry(t, db, userID, "Tired", 3, "", now) // no trigger, no cell

	heatmap, err := svc.TriggerHeatmap(userID)
	require.NoError(t, err)
	require.Len(t, heatmap.HeatmapData, 3)

	assert.Equal(t, "sleep", heatmap.HeatmapData[0].Trigger)
	assert.Equal(t, "traffic", heatmap.HeatmapData[1].Trigger)
	assert.Equal(t, "work", heatmap.HeatmapData[2].Trigger)

	// Intensity is the emotion level clamped to the 0-10 scale.
	assert.Equal(t, 10, heatmap.HeatmapData[1].Intensity)
	assert.Equal(t, 8, heatmap.HeatmapData[2].Intensity)
	assert.Equal(t, now.Format("2006-01-02"), heatmap.HeatmapData[0].Date)
}

// insertEntry writes an entry directly, bypassing Submit, so tests can
// control timestamps and skip validation.
func insertEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, emotion string, emotionLevel int, trigger string, ts time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&Entry{
		ID:           uuid.New(),
		UserID:       userID,
		Emotion:      emotion,
		EmotionLevel: emotionLevel,
		EnergyLevel:  5,
		FocusLevel:   5,
		Overthinking: "No",
		Trigger:      trigger,
		AIGuidance:   "test guidance",
		Timestamp:    ts,
	}).Error)
}

func insertEntryLevels(t *testing.T, db *gorm.DB, userID uuid.UUID, emotion, energy, focus int, ts time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&Entry{
		ID:           uuid.New(),
		UserID:       userID,
		Emotion:      "Sad",
		EmotionLevel: emotion,
		EnergyLevel:  energy,
		FocusLevel:   focus,
		Overthinking: "No",
		AIGuidance:   "test guidance",
		Timestamp:    ts,
	}).Error)
}
