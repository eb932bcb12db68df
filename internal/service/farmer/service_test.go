package farmer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishimitra/server/internal/domain/errs"
	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
)

func newTestService() (*Service, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	svc := NewService(store, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func TestSaveProfile(t *testing.T) {
	svc, store := newTestService()

	profile, err := svc.SaveProfile(context.Background(), models.FarmerProfile{
		Name:     "Ravi Kumar",
		Location: "Nashik",
		LandSize: 2.5,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(profile.ID, "farmer_"))
	assert.Equal(t, models.SchemaVersion, profile.SchemaVersion)
	assert.Equal(t, "Ravi Kumar", profile.Name)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Equal(t, 1, store.Len())
}

func TestSaveProfileRequiresName(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.SaveProfile(context.Background(), models.FarmerProfile{Location: "Nashik"})
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Zero(t, store.Len())
}

func TestCompleteAwareness(t *testing.T) {
	svc, store := newTestService()

	completion, err := svc.CompleteAwareness(context.Background(), models.AwarenessRequest{
		FarmerID: "farmer_1",
		TopicID:  "soil-health",
		Language: "hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "farmer_1", completion.FarmerID)
	assert.Equal(t, "soil-health", completion.TopicID)
	assert.False(t, completion.CompletedAt.IsZero())

	keys, err := store.ScanPrefixKeys(context.Background(), "awareness:")
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, "awareness:farmer_1:soil-health", keys[0])
}

func TestCompleteAwarenessOverwrites(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	req := models.AwarenessRequest{FarmerID: "farmer_1", TopicID: "soil-health"}
	_, err := svc.CompleteAwareness(ctx, req)
	require.NoError(t, err)
	_, err = svc.CompleteAwareness(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 1, store.Len())
}

func TestCompleteAwarenessValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var ve *errs.ValidationError
	_, err := svc.CompleteAwareness(ctx, models.AwarenessRequest{TopicID: "soil-health"})
	require.ErrorAs(t, err, &ve)
	_, err = svc.CompleteAwareness(ctx, models.AwarenessRequest{FarmerID: "farmer_1"})
	require.ErrorAs(t, err, &ve)
}

func TestGovernmentSchemesSeedOnFirstRead(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	schemes, err := svc.GovernmentSchemes(ctx)
	require.NoError(t, err)
	require.Len(t, schemes, 3)

	ids := make([]string, 0, len(schemes))
	for _, scheme := range schemes {
		ids = append(ids, scheme.ID)
	}
	assert.ElementsMatch(t, []string{"pm-kisan", "pmfby", "pmksy"}, ids)
	assert.Equal(t, 3, store.Len(), "seeding must persist the defaults")

	// The second read comes from the store, not the seed path.
	again, err := svc.GovernmentSchemes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, schemes, again)
	assert.Equal(t, 3, store.Len())
}
