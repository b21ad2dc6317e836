package lifestyle

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
	require.NoError(t, db.AutoMigrate(&Assessment{}))
	return db
}

func validRequest() AssessRequest {
	return AssessRequest{
		SleepQuality:     7,
		Nutrition:        6,
		SocialConnection: 8,
		PurposeGrowth:    5,
		StressManagement: 4,
		Date:             "2026-08-30T10:00:00Z",
	}
}

func TestAssessComputesAverageScore(t *testing.T) {
	svc := NewService(testDB(t), nil)

	assessment, err := svc.Assess(uuid.New(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, assessment.ID)
	// (7+6+8+5+4)/5 = 6.0
	assert.InDelta(t, 6.0, assessment.AverageScore, 0.001)
}

func TestAssessRoundsAverageToOneDecimal(t *testing.T) {
	svc := NewService(testDB(t), nil)

	req := validRequest()
	req.StressManagement = 3 // sum 29, avg 5.8
	assessment, err := svc.Assess(uuid.New(), req)
	require.NoError(t, err)
	assert.InDelta(t, 5.8, assessment.AverageScore, 0.001)
}

func TestAssessValidatesPillarRanges(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, nil)

	cases := []func(*AssessRequest){
		func(r *AssessRequest) { r.SleepQuality = 0 },
		func(r *AssessRequest) { r.Nutrition = 11 },
		func(r *AssessRequest) { r.SocialConnection = -1 },
		func(r *AssessRequest) { r.PurposeGrowth = 0 },
		func(r *AssessRequest) { r.StressManagement = 99 },
	}

	for _, mutate := range cases {
		req := validRequest()
		mutate(&req)
		_, err := svc.Assess(uuid.New(), req)
		assert.ErrorIs(t, err, ErrScoreOutOfRange)
	}

	var count int64
	require.NoError(t, db.Model(&Assessment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHistoryNewestFirstAndScoped(t *testing.T) {
	svc := NewService(testDB(t), nil)
	alice := uuid.New()
	bob := uuid.New()

	first, err := svc.Assess(alice, validRequest())
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.Assess(alice, validRequest())
	require.NoError(t, err)

	history, err := svc.History(alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	other, err := svc.History(bob)
	require.NoError(t, err)
	assert.Empty(t, other)
}
