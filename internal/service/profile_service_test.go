package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/models"
)

func newTestProfileService(t *testing.T) (*ProfileService, *memProfileRepo) {
	t.Helper()
	repo := &memProfileRepo{}
	return NewProfileService(repo, newTestLogger()), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestProfileService(t)

	user, err := svc.Register(RegisterRequest{Name: "Ayu", Email: "ayu@example.com", Phone: "0812"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	// Registering over an existing profile is rejected.
	_, err = svc.Register(RegisterRequest{Name: "Budi", Email: "budi@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Email matching is case-insensitive.
	logged, err := svc.Login("AYU@Example.Com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Login("other@example.com")
	assert.Error(t, err)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestProfileService(t)

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@b.com"}},
		{"missing email", RegisterRequest{Name: "Ayu"}},
		{"malformed email", RegisterRequest{Name: "Ayu", Email: "not-an-email"}},
		{"email without domain dot", RegisterRequest{Name: "Ayu", Email: "a@b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestLogoutClearsProfile(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Register(RegisterRequest{Name: "Ayu", Email: "ayu@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout())

	_, err = svc.GetProfile()
	assert.Error(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Register(RegisterRequest{Name: "Ayu", Email: "ayu@example.com", Phone: "0812"})
	require.NoError(t, err)

	newName := "Ayu Lestari"
	user, err := svc.UpdateProfile(UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Ayu Lestari", user.Name)
	assert.Equal(t, "ayu@example.com", user.Email, "omitted fields keep their value")
	assert.Equal(t, "0812", user.Phone)

	// An update may not blank out required fields.
	empty := ""
	_, err = svc.UpdateProfile(UpdateProfileRequest{Email: &empty})
	assert.Error(t, err)
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	svc, _ := newTestProfileService(t)

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppSettings(), settings)

	settings.Notifications.OrderUpdates = false
	require.NoError(t, svc.UpdateSettings(settings))

	saved, err := svc.GetSettings()
	require.NoError(t, err)
	assert.False(t, saved.Notifications.OrderUpdates)
}

func TestDarkModeToggle(t *testing.T) {
	svc, _ := newTestProfileService(t)

	enabled, err := svc.GetDarkMode()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, svc.SetDarkMode(true))

	enabled, err = svc.GetDarkMode()
	require.NoError(t, err)
	assert.True(t, enabled)
}
