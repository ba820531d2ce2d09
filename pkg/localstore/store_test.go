package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/pkg/logger"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()

	config := DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "test.db")

	store, err := Open(config, logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"}))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStorePutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := record{Name: "americano", Count: 2}
	require.NoError(t, store.Put(BucketOrders, "o1", in))

	var out record
	found, err := store.Get(BucketOrders, "o1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStoreGetAbsentKey(t *testing.T) {
	store := openTestStore(t)

	var out record
	found, err := store.Get(BucketOrders, "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreGetMalformedRecord(t *testing.T) {
	store := openTestStore(t)

	// A record that is not valid JSON for the target type.
	require.NoError(t, store.Put(BucketProfile, "user", "just a string"))

	var out record
	found, err := store.Get(BucketProfile, "user", &out)
	require.Error(t, err, "malformed records surface as errors so callers can fall back")
	assert.False(t, found)
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(BucketFavorites, "f1", record{Name: "latte"}))
	require.NoError(t, store.Delete(BucketFavorites, "f1"))

	var out record
	found, err := store.Get(BucketFavorites, "f1", &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is a no-op.
	assert.NoError(t, store.Delete(BucketFavorites, "f1"))
}

func TestStoreForEachVisitsAllRecords(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put(BucketNotifications, "a", record{Name: "one"}))
	require.NoError(t, store.Put(BucketNotifications, "b", record{Name: "two"}))

	seen := make(map[string]string)
	err := store.ForEach(BucketNotifications, func(key string, value []byte) error {
		var r record
		if err := Decode(value, &r); err != nil {
			return err
		}
		seen[key] = r.Name
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "one", "b": "two"}, seen)
}

func TestStoreUnknownBucket(t *testing.T) {
	store := openTestStore(t)

	var out record
	_, err := store.Get("nope", "k", &out)
	assert.Error(t, err)

	assert.Error(t, store.Put("nope", "k", record{}))
	assert.Error(t, store.Delete("nope", "k"))
}

func TestStoreHealthCheck(t *testing.T) {
	store := openTestStore(t)
	assert.NoError(t, store.HealthCheck())
}

func TestStoreReopenKeepsData(t *testing.T) {
	config := DefaultConfig()
	config.Path = filepath.Join(t.TempDir(), "test.db")
	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})

	store, err := Open(config, log)
	require.NoError(t, err)
	require.NoError(t, store.Put(BucketOrders, "o1", record{Name: "persisted"}))
	require.NoError(t, store.Close())

	reopened, err := Open(config, log)
	require.NoError(t, err)
	defer reopened.Close()

	var out record
	found, err := reopened.Get(BucketOrders, "o1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "persisted", out.Name)
}
