package handler

import (
	"net/http"
	"strings"

	"kopikita/internal/service"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// AddItemRequest is the body for adding an item to the cart. A missing
// customization means the default (Regular size, Regular milk).
type AddItemRequest struct {
	ItemID        string                `json:"item_id"`
	Quantity      int                   `json:"quantity"`
	Customization *models.Customization `json:"customization"`
}

// UpdateQuantityRequest is the body for replacing a line's quantity.
type UpdateQuantityRequest struct {
	ItemID        string               `json:"item_id"`
	Customization models.Customization `json:"customization"`
	Quantity      int                  `json:"quantity"`
}

// RemoveItemRequest is the body for removing a line.
type RemoveItemRequest struct {
	ItemID        string               `json:"item_id"`
	Customization models.Customization `json:"customization"`
}

// ApplyVoucherRequest is the body for applying a voucher code.
type ApplyVoucherRequest struct {
	Code string `json:"code"`
}

// CartHandler serves the cart and voucher endpoints.
type CartHandler struct {
	cartService service.CartServiceInterface
	logger      *logger.Logger
}

// NewCartHandler creates a new CartHandler with the given service and logger
func NewCartHandler(cartService service.CartServiceInterface, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger.WithComponent("cart_handler"),
	}
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.cartService.GetCart())
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for add item", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ItemID == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "item_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	view, err := h.cartService.AddItem(req.ItemID, req.Quantity, req.Customization)
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

// UpdateQuantity handles PUT /api/v1/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for quantity update", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ItemID == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "item_id is required")
		return
	}

	view, err := h.cartService.UpdateQuantity(req.ItemID, req.Customization, req.Quantity)
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/v1/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req RemoveItemRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for remove item", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	view, err := h.cartService.RemoveItem(req.ItemID, req.Customization)
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.cartService.Clear())
}

// ApplyVoucher handles POST /api/v1/cart/voucher
func (h *CartHandler) ApplyVoucher(w http.ResponseWriter, r *http.Request) {
	var req ApplyVoucherRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for voucher", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "code is required")
		return
	}

	view, err := h.cartService.ApplyVoucher(strings.TrimSpace(req.Code))
	if err != nil {
		// Invalid code and unmet minimum share one rejection message.
		writeErrorResponse(h.logger, w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
}

// RemoveVoucher handles DELETE /api/v1/cart/voucher
func (h *CartHandler) RemoveVoucher(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.logger, w, http.StatusOK, h.cartService.RemoveVoucher())
}
