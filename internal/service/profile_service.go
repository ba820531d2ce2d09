package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// RegisterRequest carries the fields for creating the local profile.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateProfileRequest carries optional profile updates.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// ProfileServiceInterface exposes account and settings operations.
type ProfileServiceInterface interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(email string) (*models.User, error)
	Logout() error
	GetProfile() (*models.User, error)
	UpdateProfile(req UpdateProfileRequest) (*models.User, error)
	GetSettings() (models.AppSettings, error)
	UpdateSettings(settings models.AppSettings) error
	GetDarkMode() (bool, error)
	SetDarkMode(enabled bool) error
}

// ProfileService implements the local account: the stored user record is
// the logged-in state, there is no auth server.
type ProfileService struct {
	profileRepo repositories.ProfileRepositoryInterface
	logger      *logger.Logger
}

// NewProfileService creates a new ProfileService with the given repository and logger
func NewProfileService(profileRepo repositories.ProfileRepositoryInterface, logger *logger.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger.WithComponent("profile_service"),
	}
}

// Register creates the local profile. Registering over an existing profile
// is rejected; log out first.
func (s *ProfileService) Register(req RegisterRequest) (*models.User, error) {
	if err := validateProfileFields(req.Name, req.Email); err != nil {
		s.logger.Warn("Register failed: invalid data", "error", err)
		return nil, err
	}

	if _, exists, err := s.profileRepo.GetUser(); err != nil {
		return nil, err
	} else if exists {
		s.logger.Warn("Register failed: already logged in")
		return nil, fmt.Errorf("a profile already exists, log out first")
	}

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}

	if err := s.profileRepo.SaveUser(user); err != nil {
		s.logger.Error("Failed to save new profile", "error", err)
		return nil, err
	}

	s.logger.Info("Profile registered", "user_id", user.ID)
	return user, nil
}

// Login checks the stored profile against the given email.
func (s *ProfileService) Login(email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	user, exists, err := s.profileRepo.GetUser()
	if err != nil {
		return nil, err
	}
	if !exists || !strings.EqualFold(user.Email, strings.TrimSpace(email)) {
		s.logger.Warn("Login failed: no matching profile")
		return nil, fmt.Errorf("no profile found for this email")
	}

	s.logger.Info("Login succeeded", "user_id", user.ID)
	return user, nil
}

// Logout clears the stored profile.
func (s *ProfileService) Logout() error {
	if err := s.profileRepo.DeleteUser(); err != nil {
		s.logger.Error("Logout failed", "error", err)
		return err
	}
	s.logger.Info("Logged out")
	return nil
}

// GetProfile returns the stored profile.
func (s *ProfileService) GetProfile() (*models.User, error) {
	user, exists, err := s.profileRepo.GetUser()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("not logged in")
	}
	return user, nil
}

// UpdateProfile applies partial updates to the stored profile.
func (s *ProfileService) UpdateProfile(req UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile()
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := validateProfileFields(user.Name, user.Email); err != nil {
		s.logger.Warn("Update failed: invalid data", "error", err)
		return nil, err
	}

	if err := s.profileRepo.SaveUser(user); err != nil {
		s.logger.Error("Failed to save profile update", "error", err)
		return nil, err
	}

	s.logger.Info("Profile updated", "user_id", user.ID)
	return user, nil
}

// GetSettings returns the app settings, defaults when never saved.
func (s *ProfileService) GetSettings() (models.AppSettings, error) {
	return s.profileRepo.GetSettings()
}

// UpdateSettings persists the full settings object.
func (s *ProfileService) UpdateSettings(settings models.AppSettings) error {
	if err := s.profileRepo.SaveSettings(settings); err != nil {
		s.logger.Error("Failed to save settings", "error", err)
		return err
	}
	s.logger.Info("Settings updated")
	return nil
}

// GetDarkMode returns the dark-mode flag.
func (s *ProfileService) GetDarkMode() (bool, error) {
	return s.profileRepo.GetDarkMode()
}

// SetDarkMode persists the dark-mode flag.
func (s *ProfileService) SetDarkMode(enabled bool) error {
	if err := s.profileRepo.SetDarkMode(enabled); err != nil {
		s.logger.Error("Failed to save dark-mode flag", "error", err)
		return err
	}
	s.logger.Info("Dark mode updated", "enabled", enabled)
	return nil
}

// validateProfileFields checks the required profile fields.
func validateProfileFields(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
