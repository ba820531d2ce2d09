package router

import (
	"net/http"

	"kopikita/internal/handler"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Menu         *handler.MenuHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Favorite     *handler.FavoriteHandler
	Notification *handler.NotificationHandler
	Profile      *handler.ProfileHandler
}

// NewRouter mounts the full API surface on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Menu
	mux.HandleFunc("GET /api/v1/menu", h.Menu.GetMenu)
	mux.HandleFunc("GET /api/v1/menu/{id}", h.Menu.GetMenuItem)
	mux.HandleFunc("GET /api/v1/menu/{id}/combos", h.Menu.GetCombos)

	// Cart and voucher
	mux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart)
	mux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/items", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/v1/cart/items", h.Cart.RemoveItem)
	mux.HandleFunc("POST /api/v1/cart/voucher", h.Cart.ApplyVoucher)
	mux.HandleFunc("DELETE /api/v1/cart/voucher", h.Cart.RemoveVoucher)

	// Checkout and orders
	mux.HandleFunc("POST /api/v1/checkout", h.Order.Checkout)
	mux.HandleFunc("GET /api/v1/orders", h.Order.GetAllOrders)
	mux.HandleFunc("GET /api/v1/orders/{id}", h.Order.GetOrderByID)
	mux.HandleFunc("POST /api/v1/orders/{id}/feedback", h.Order.GiveFeedback)

	// Favorites
	mux.HandleFunc("GET /api/v1/favorites", h.Favorite.GetAllFavorites)
	mux.HandleFunc("POST /api/v1/favorites", h.Favorite.SaveFavorite)
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", h.Favorite.RemoveFavorite)
	mux.HandleFunc("POST /api/v1/favorites/{id}/reorder", h.Favorite.Reorder)

	// Notifications
	mux.HandleFunc("GET /api/v1/notifications", h.Notification.GetAllNotifications)
	mux.HandleFunc("GET /api/v1/notifications/unread-count", h.Notification.UnreadCount)
	mux.HandleFunc("POST /api/v1/notifications/read-all", h.Notification.MarkAllRead)
	mux.HandleFunc("POST /api/v1/notifications/{id}/read", h.Notification.MarkRead)

	// Account and settings
	mux.HandleFunc("POST /api/v1/account/register", h.Profile.Register)
	mux.HandleFunc("POST /api/v1/account/login", h.Profile.Login)
	mux.HandleFunc("POST /api/v1/account/logout", h.Profile.Logout)
	mux.HandleFunc("GET /api/v1/account/profile", h.Profile.GetProfile)
	mux.HandleFunc("PUT /api/v1/account/profile", h.Profile.UpdateProfile)
	mux.HandleFunc("GET /api/v1/settings", h.Profile.GetSettings)
	mux.HandleFunc("PUT /api/v1/settings", h.Profile.UpdateSettings)
	mux.HandleFunc("GET /api/v1/settings/dark-mode", h.Profile.GetDarkMode)
	mux.HandleFunc("PUT /api/v1/settings/dark-mode", h.Profile.SetDarkMode)

	return mux
}
