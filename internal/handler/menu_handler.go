package handler

import (
	"net/http"

	"kopikita/internal/service"
	"kopikita/pkg/logger"
)

// MenuHandler serves the menu browsing endpoints.
type MenuHandler struct {
	menuService service.MenuServiceInterface
	logger      *logger.Logger
}

// NewMenuHandler creates a new MenuHandler with the given service and logger
func NewMenuHandler(menuService service.MenuServiceInterface, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
		logger:      logger.WithComponent("menu_handler"),
	}
}

// GetMenu handles GET /api/v1/menu?category=&q=
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items, err := h.menuService.GetMenu(category, query)
	if err != nil {
		h.logger.Error("Failed to get menu", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch menu")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, items)
}

// GetMenuItem handles GET /api/v1/menu/{id}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	item, err := h.menuService.GetMenuItem(id)
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Menu item not found")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, item)
}

// GetCombos handles GET /api/v1/menu/{id}/combos
func (h *MenuHandler) GetCombos(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	combos, err := h.menuService.GetCombos(id)
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Menu item not found")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, combos)
}
