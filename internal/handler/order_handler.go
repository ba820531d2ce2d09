package handler

import (
	"net/http"
	"strings"

	"kopikita/internal/service"
	"kopikita/pkg/logger"
)

// OrderHandler serves checkout and order history endpoints.
type OrderHandler struct {
	orderService    service.OrderServiceInterface
	checkoutService service.CheckoutServiceInterface
	logger          *logger.Logger
}

// NewOrderHandler creates a new OrderHandler with the given services and logger
func NewOrderHandler(orderService service.OrderServiceInterface, checkoutService service.CheckoutServiceInterface, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		logger:          logger.WithComponent("order_handler"),
	}
}

// Checkout handles POST /api/v1/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for checkout", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.checkoutService.Checkout(r.Context(), req)
	if err != nil {
		h.logger.Warn("Checkout failed", "error", err)
		statusCode := http.StatusBadRequest

		if strings.Contains(err.Error(), "cart is empty") {
			statusCode = http.StatusConflict
		} else if strings.Contains(err.Error(), "payment failed") {
			statusCode = http.StatusBadGateway
		} else if strings.Contains(err.Error(), "cancelled") {
			statusCode = http.StatusRequestTimeout
		}

		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, order)
}

// GetAllOrders handles GET /api/v1/orders
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		h.logger.Error("Failed to get all orders", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, orders)
}

// GetOrderByID handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Order not found")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, order)
}

// GiveFeedback handles POST /api/v1/orders/{id}/feedback
func (h *OrderHandler) GiveFeedback(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.orderService.MarkFeedbackGiven(id); err != nil {
		statusCode := http.StatusBadRequest

		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		} else if strings.Contains(err.Error(), "already given") {
			statusCode = http.StatusConflict
		}

		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"status": "feedback recorded"})
}
