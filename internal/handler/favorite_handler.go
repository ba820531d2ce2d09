package handler

import (
	"net/http"
	"strings"

	"kopikita/internal/service"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// SaveFavoriteRequest is the body for saving a favorite.
type SaveFavoriteRequest struct {
	ItemID        string                `json:"item_id"`
	Customization *models.Customization `json:"customization"`
}

// ReorderRequest is the body for re-ordering a favorite into the cart.
type ReorderRequest struct {
	Quantity int `json:"quantity"`
}

// FavoriteHandler serves the favorites endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteServiceInterface
	logger          *logger.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler with the given service and logger
func NewFavoriteHandler(favoriteService service.FavoriteServiceInterface, logger *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger.WithComponent("favorite_handler"),
	}
}

// GetAllFavorites handles GET /api/v1/favorites
func (h *FavoriteHandler) GetAllFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteService.GetAllFavorites()
	if err != nil {
		h.logger.Error("Failed to get favorites", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, favorites)
}

// SaveFavorite handles POST /api/v1/favorites
func (h *FavoriteHandler) SaveFavorite(w http.ResponseWriter, r *http.Request) {
	var req SaveFavoriteRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for save favorite", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ItemID == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "item_id is required")
		return
	}

	favorite, err := h.favoriteService.SaveFavorite(req.ItemID, req.Customization)
	if err != nil {
		statusCode := http.StatusBadRequest

		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}

		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /api/v1/favorites/{id}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.favoriteService.RemoveFavorite(id); err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"status": "removed"})
}

// Reorder handles POST /api/v1/favorites/{id}/reorder
func (h *FavoriteHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req ReorderRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for reorder", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.favoriteService.Reorder(id, req.Quantity)
	if err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}
