package handler

import (
	"net/http"
	"strings"

	"kopikita/internal/service"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// LoginRequest is the body for logging into the stored profile.
type LoginRequest struct {
	Email string `json:"email"`
}

// DarkModeRequest is the body for toggling dark mode.
type DarkModeRequest struct {
	Enabled bool `json:"enabled"`
}

// ProfileHandler serves account and settings endpoints.
type ProfileHandler struct {
	profileService service.ProfileServiceInterface
	logger         *logger.Logger
}

// NewProfileHandler creates a new ProfileHandler with the given service and logger
func NewProfileHandler(profileService service.ProfileServiceInterface, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger.WithComponent("profile_handler"),
	}
}

// Register handles POST /api/v1/account/register
func (h *ProfileHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for register", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.Register(req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, user)
}

// Login handles POST /api/v1/account/login
func (h *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for login", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.Login(req.Email)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "no profile found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, user)
}

// Logout handles POST /api/v1/account/logout
func (h *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.profileService.Logout(); err != nil {
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetProfile handles GET /api/v1/account/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.profileService.GetProfile()
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusNotFound, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/account/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProfileRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for profile update", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateProfile(req)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not logged in") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, user)
}

// GetSettings handles GET /api/v1/settings
func (h *ProfileHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.profileService.GetSettings()
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/v1/settings
func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.AppSettings
	if err := parseRequestBody(r, &settings); err != nil {
		h.logger.Warn("Invalid request body for settings update", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.profileService.UpdateSettings(settings); err != nil {
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, settings)
}

// GetDarkMode handles GET /api/v1/settings/dark-mode
func (h *ProfileHandler) GetDarkMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.profileService.GetDarkMode()
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch dark mode")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, DarkModeRequest{Enabled: enabled})
}

// SetDarkMode handles PUT /api/v1/settings/dark-mode
func (h *ProfileHandler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req DarkModeRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for dark mode", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.profileService.SetDarkMode(req.Enabled); err != nil {
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to save dark mode")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, req)
}
