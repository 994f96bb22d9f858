package cmd

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"chapatis/internal/adapters/out/lognotifier"
	"chapatis/internal/core/application/usecases/commands"
	"chapatis/internal/core/application/usecases/queries"
	"chapatis/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() Config {
	return Config{
		StorageDriver:        StorageMemory,
		SessionTTL:           time.Hour,
		SessionPurgeSchedule: "0 0 * * * *",
		DeliveryTimezone:     "Europe/London",
		DeliveryWeekdays:     []string{"Wednesday", "Saturday"},
		LookaheadDays:        28,
		MaxSlots:             6,
		DailyCapacityBoxes:   100,
		MinOrderBoxes:        5,
		MaxOrderBoxes:        50,
		PricePerBoxPence:     450,
		ChapatisPerBox:       10,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_NewCompositionRootWithMemoryStore(t *testing.T) {
	root, err := NewCompositionRoot(t.Context(), memoryConfig(), discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, root.Close()) })

	assert.Equal(t, "Europe/London", root.Location().String())
	assert.IsType(t, &lognotifier.Notifier{}, root.notifier)
}

func Test_BoltStoreKeepsSessionsAcrossRestarts(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = StorageBolt
	cfg.BoltPath = filepath.Join(t.TempDir(), "chapatis.db")

	root, err := NewCompositionRoot(t.Context(), cfg, discardLogger())
	require.NoError(t, err)

	id := kernel.NewUUID()
	createCmd, err := commands.NewCreateSessionCommand(id)
	require.NoError(t, err)
	createHandler := root.CreateCreateSessionCommandHandler()
	require.NoError(t, createHandler.Handle(t.Context(), createCmd))
	require.NoError(t, root.Close())

	restarted, err := NewCompositionRoot(t.Context(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, restarted.Close()) })

	query, err := queries.NewGetSessionQuery(id)
	require.NoError(t, err)
	_, err = restarted.CreateGetSessionQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
}

func Test_PurgeRemovesIdleSessions(t *testing.T) {
	current := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	clock := kernel.ClockFunc(func() time.Time { return current })
	root, err := NewCompositionRoot(t.Context(), memoryConfig(), discardLogger(), WithClock(clock))
	require.NoError(t, err)

	create := root.CreateCreateSessionCommandHandler()
	idleID := kernel.NewUUID()
	idleCmd, err := commands.NewCreateSessionCommand(idleID)
	require.NoError(t, err)
	require.NoError(t, create.Handle(t.Context(), idleCmd))

	current = current.Add(2 * time.Hour)
	freshID := kernel.NewUUID()
	freshCmd, err := commands.NewCreateSessionCommand(freshID)
	require.NoError(t, err)
	require.NoError(t, create.Handle(t.Context(), freshCmd))

	purge := root.CreatePurgeExpiredSessionsCommandHandler()
	purgeCmd, err := commands.NewPurgeExpiredSessionsCommand(root.cfg.SessionTTL)
	require.NoError(t, err)
	removed, err := purge.Handle(t.Context(), purgeCmd)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	get := root.CreateGetSessionQueryHandler()
	idleQuery, err := queries.NewGetSessionQuery(idleID)
	require.NoError(t, err)
	_, err = get.Handle(t.Context(), idleQuery)
	require.Error(t, err)

	freshQuery, err := queries.NewGetSessionQuery(freshID)
	require.NoError(t, err)
	state, err := get.Handle(t.Context(), freshQuery)
	require.NoError(t, err)
	assert.Equal(t, "ORDERING", state.View)
}

func Test_JobManagerStartsWithConfiguredSchedule(t *testing.T) {
	root, err := NewCompositionRoot(t.Context(), memoryConfig(), discardLogger())
	require.NoError(t, err)

	jm := root.CreateJobManager()

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func Test_NewCompositionRootRejectsBadPolicy(t *testing.T) {
	cfg := memoryConfig()
	cfg.MaxSlots = 0

	_, err := NewCompositionRoot(t.Context(), cfg, discardLogger())

	require.Error(t, err)
}

func Test_NewCompositionRootRejectsBadCatalog(t *testing.T) {
	cfg := memoryConfig()
	cfg.ChapatisPerBox = 0

	_, err := NewCompositionRoot(t.Context(), cfg, discardLogger())

	require.Error(t, err)
}
