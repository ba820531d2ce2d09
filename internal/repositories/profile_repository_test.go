package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/models"
	"kopikita/pkg/localstore"
)

func TestProfileRepositoryUserLifecycle(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewProfileRepository(log, store)

	_, found, err := repo.GetUser()
	require.NoError(t, err)
	assert.False(t, found, "fresh store starts logged out")

	require.NoError(t, repo.SaveUser(&models.User{ID: "u1", Name: "Ayu", Email: "ayu@example.com"}))

	user, found, err := repo.GetUser()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Ayu", user.Name)
	assert.Equal(t, 1, user.SchemaVersion)

	require.NoError(t, repo.DeleteUser())
	_, found, err = repo.GetUser()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProfileRepositoryMalformedUserIsLoggedOut(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewProfileRepository(log, store)

	require.NoError(t, store.Put(localstore.BucketProfile, "user", "garbage"))

	_, found, err := repo.GetUser()
	require.NoError(t, err, "a corrupt record must not error")
	assert.False(t, found)
}

func TestProfileRepositoryDarkMode(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewProfileRepository(log, store)

	enabled, err := repo.GetDarkMode()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, repo.SetDarkMode(true))

	enabled, err = repo.GetDarkMode()
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestProfileRepositorySettingsFallBackToDefaults(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewProfileRepository(log, store)

	settings, err := repo.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppSettings(), settings)

	// Malformed record also falls back instead of erroring.
	require.NoError(t, store.Put(localstore.BucketProfile, "app-settings", []int{1, 2, 3}))
	settings, err = repo.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppSettings(), settings)

	settings.Preferences.Language = "id"
	require.NoError(t, repo.SaveSettings(settings))

	saved, err := repo.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "id", saved.Preferences.Language)
	assert.Equal(t, 1, saved.SchemaVersion)
}
