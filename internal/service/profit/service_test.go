package profit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
)

func newTestService(t *testing.T) (*Service, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	svc := NewService(store, nil)

	// Advance the clock one millisecond per call so audit keys never collide.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
	return svc, store
}

func req(income, land float64, cropType, language string) models.ProfitPathRequest {
	return models.ProfitPathRequest{
		CurrentIncome: &income,
		LandSize:      &land,
		CropType:      cropType,
		Language:      language,
	}
}

func TestProjectionArithmetic(t *testing.T) {
	svc, _ := newTestService(t)

	projection, err := svc.CalculateProfitPath(context.Background(), req(100000, 2, "rice", "en"))
	require.NoError(t, err)

	expectedGain := CatalogGainPerArea() * 2
	assert.Equal(t, 200000.0, projection.TargetIncome)
	assert.Equal(t, expectedGain, projection.PotentialGain)
	assert.Equal(t, 100000.0+expectedGain, projection.ProjectedIncome)
	assert.Equal(t, 150.0, projection.AchievementPercent, "projection far above target must cap at 150")
	assert.Equal(t, "12-24 months", projection.Timeline)
	assert.Len(t, projection.Strategies, 5)
	assert.Len(t, projection.QuickWins, 2)
	assert.Len(t, projection.MediumTerm, 2)
	assert.Len(t, projection.LongTerm, 1)
}

func TestProjectionIsDeterministic(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CalculateProfitPath(ctx, req(100000, 2, "rice", "en"))
	require.NoError(t, err)
	second, err := svc.CalculateProfitPath(ctx, req(100000, 2, "rice", "en"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTargetDoublesIncome(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, income := range []float64{1, 42000, 3500000.5} {
		projection, err := svc.CalculateProfitPath(ctx, req(income, 1, "wheat", "en"))
		require.NoError(t, err)
		assert.Equal(t, income*2, projection.TargetIncome)
	}
}

func TestAchievementBelowCap(t *testing.T) {
	svc, _ := newTestService(t)

	// Large income against tiny land keeps the projection under the cap.
	projection, err := svc.CalculateProfitPath(context.Background(), req(10000000, 0.1, "rice", "en"))
	require.NoError(t, err)

	assert.Less(t, projection.AchievementPercent, 150.0)
	expected := projection.ProjectedIncome / projection.TargetIncome * 100
	assert.InDelta(t, expected, projection.AchievementPercent, 1e-9)
}

func TestStrategiesScaleWithLand(t *testing.T) {
	svc, _ := newTestService(t)

	projection, err := svc.CalculateProfitPath(context.Background(), req(50000, 3, "maize", "en"))
	require.NoError(t, err)

	var total float64
	for _, strategy := range projection.Strategies {
		total += strategy.ExpectedGain
	}
	assert.Equal(t, projection.PotentialGain, total)
	assert.Equal(t, CatalogGainPerArea()*3, total)
}

func TestHindiLocalizationKeepsNumbers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	english, err := svc.CalculateProfitPath(ctx, req(100000, 2, "rice", "en"))
	require.NoError(t, err)
	hindi, err := svc.CalculateProfitPath(ctx, req(100000, 2, "rice", "hi"))
	require.NoError(t, err)

	assert.Equal(t, english.PotentialGain, hindi.PotentialGain)
	assert.Equal(t, english.AchievementPercent, hindi.AchievementPercent)

	require.Len(t, hindi.Strategies, len(english.Strategies))
	for i := range hindi.Strategies {
		assert.NotEqual(t, english.Strategies[i].Name, hindi.Strategies[i].Name)
		assert.Equal(t, english.Strategies[i].ExpectedGain, hindi.Strategies[i].ExpectedGain)
	}
}

func TestMissingInputsAreRejected(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	zero := 0.0
	two := 2.0
	cases := []models.ProfitPathRequest{
		{LandSize: &two},
		{CurrentIncome: &two},
		{CurrentIncome: &zero, LandSize: &two},
		{CurrentIncome: &two, LandSize: &zero},
	}

	for _, request := range cases {
		_, err := svc.CalculateProfitPath(ctx, request)
		require.Error(t, err)
		var ve *errs.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "current income and land size are required", ve.Message)
	}

	assert.Zero(t, store.Len(), "rejected requests must not write audit entries")
}

func TestAuditEntryWritten(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.CalculateProfitPath(context.Background(), req(100000, 2, "rice", "en"))
	require.NoError(t, err)

	keys, err := store.ScanPrefixKeys(context.Background(), AuditPrefix)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestIncomeHistoryNewestFirstAndCapped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := svc.CalculateProfitPath(ctx, req(float64(1000*(i+1)), 1, "rice", "en"))
		require.NoError(t, err)
	}

	history, err := svc.IncomeHistory(ctx, "F1")
	require.NoError(t, err)

	require.Len(t, history, 10)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].CalculatedAt.After(history[i-1].CalculatedAt), "history must be newest first")
	}
	assert.Equal(t, 15000.0, history[0].CurrentIncome, "newest calculation must lead the history")
}

func TestIncomeHistoryEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	history, err := svc.IncomeHistory(context.Background(), "F1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
