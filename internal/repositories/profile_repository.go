package repositories

import (
	"fmt"

	"kopikita/models"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
)

// Keys within the profile bucket.
const (
	keyUser        = "user"
	keyDarkMode    = "dark-mode"
	keyAppSettings = "app-settings"
)

// ProfileRepositoryInterface persists the user record and preferences.
type ProfileRepositoryInterface interface {
	GetUser() (*models.User, bool, error)
	SaveUser(user *models.User) error
	DeleteUser() error
	GetDarkMode() (bool, error)
	SetDarkMode(enabled bool) error
	GetSettings() (models.AppSettings, error)
	SaveSettings(settings models.AppSettings) error
}

// ProfileRepository stores the single-user profile records in the local
// store. Malformed records fall back to defaults instead of erroring, so a
// corrupt store entry never takes the account screens down.
type ProfileRepository struct {
	logger *logger.Logger
	store  *localstore.Store
}

// NewProfileRepository creates a new ProfileRepository backed by the store.
func NewProfileRepository(logger *logger.Logger, store *localstore.Store) *ProfileRepository {
	return &ProfileRepository{
		logger: logger.WithComponent("profile_repository"),
		store:  store,
	}
}

// GetUser - retrieves the stored user; the boolean is false when logged out
func (r *ProfileRepository) GetUser() (*models.User, bool, error) {
	var user models.User
	found, err := r.store.Get(localstore.BucketProfile, keyUser, &user)
	if err != nil {
		// Recoverable: treat a malformed record as logged out.
		r.logger.Warn("Malformed user record, treating as logged out", "error", err)
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}
	return &user, true, nil
}

// SaveUser - persists the user record
func (r *ProfileRepository) SaveUser(user *models.User) error {
	user.SchemaVersion = 1
	if err := r.store.Put(localstore.BucketProfile, keyUser, user); err != nil {
		r.logger.Error("Failed to persist user", "error", err)
		return fmt.Errorf("failed to persist user: %v", err)
	}
	return nil
}

// DeleteUser - clears the logged-in state
func (r *ProfileRepository) DeleteUser() error {
	if err := r.store.Delete(localstore.BucketProfile, keyUser); err != nil {
		r.logger.Error("Failed to delete user", "error", err)
		return fmt.Errorf("failed to delete user: %v", err)
	}
	return nil
}

// GetDarkMode - retrieves the dark-mode flag, defaulting to false
func (r *ProfileRepository) GetDarkMode() (bool, error) {
	var enabled bool
	found, err := r.store.Get(localstore.BucketProfile, keyDarkMode, &enabled)
	if err != nil {
		r.logger.Warn("Malformed dark-mode record, using default", "error", err)
		return false, nil
	}
	if !found {
		return false, nil
	}
	return enabled, nil
}

// SetDarkMode - persists the dark-mode flag
func (r *ProfileRepository) SetDarkMode(enabled bool) error {
	if err := r.store.Put(localstore.BucketProfile, keyDarkMode, enabled); err != nil {
		r.logger.Error("Failed to persist dark-mode flag", "error", err)
		return fmt.Errorf("failed to persist dark-mode flag: %v", err)
	}
	return nil
}

// GetSettings - retrieves app settings, falling back to defaults when the
// record is missing or malformed
func (r *ProfileRepository) GetSettings() (models.AppSettings, error) {
	var settings models.AppSettings
	found, err := r.store.Get(localstore.BucketProfile, keyAppSettings, &settings)
	if err != nil {
		r.logger.Warn("Malformed settings record, using defaults", "error", err)
		return models.DefaultAppSettings(), nil
	}
	if !found {
		return models.DefaultAppSettings(), nil
	}
	return settings, nil
}

// SaveSettings - persists the app settings record
func (r *ProfileRepository) SaveSettings(settings models.AppSettings) error {
	settings.SchemaVersion = 1
	if err := r.store.Put(localstore.BucketProfile, keyAppSettings, settings); err != nil {
		r.logger.Error("Failed to persist settings", "error", err)
		return fmt.Errorf("failed to persist settings: %v", err)
	}
	return nil
}
