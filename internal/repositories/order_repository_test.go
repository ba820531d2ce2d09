package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/models"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
)

func newTestStore(t *testing.T) (*localstore.Store, *logger.Logger) {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})

	config := localstore.DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "test.db")

	store, err := localstore.Open(config, log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store, log
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	order := &models.Order{
		ID:        "o1",
		Subtotal:  60000,
		Discount:  6000,
		Total:     56000,
		Status:    models.StatusPreparing,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Add(order))

	loaded, err := repo.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, 56000, loaded.Total)
	assert.Equal(t, models.StatusPreparing, loaded.Status)
	assert.Equal(t, 1, loaded.SchemaVersion, "records carry the schema version")
}

func TestOrderRepositoryRequiresID(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	assert.Error(t, repo.Add(&models.Order{}))
}

func TestOrderRepositoryGetAllNewestFirst(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, repo.Add(&models.Order{
			ID:        id,
			Status:    models.StatusPreparing,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base,
		}))
	}

	orders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "old", orders[2].ID)
}

func TestOrderRepositoryGetAllSkipsMalformedRecords(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	require.NoError(t, repo.Add(&models.Order{ID: "good", Status: models.StatusPreparing, CreatedAt: time.Now()}))
	require.NoError(t, store.Put(localstore.BucketOrders, "bad", "not an order"))

	orders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "good", orders[0].ID)
}

func TestOrderRepositoryUpdate(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	order := &models.Order{ID: "o1", Status: models.StatusPreparing, CreatedAt: time.Now()}
	require.NoError(t, repo.Add(order))

	order.Status = models.StatusReady
	require.NoError(t, repo.Update("o1", order))

	loaded, err := repo.GetByID("o1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, loaded.Status)

	assert.Error(t, repo.Update("missing", order))
}

func TestOrderRepositoryGetActive(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewOrderRepository(log, store)

	require.NoError(t, repo.Add(&models.Order{ID: "active", Status: models.StatusServed, CreatedAt: time.Now()}))
	require.NoError(t, repo.Add(&models.Order{ID: "finished", Status: models.StatusDone, CreatedAt: time.Now()}))

	active, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "active", active[0].ID)
}
