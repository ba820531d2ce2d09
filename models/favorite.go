package models

import "time"

// FavoriteItem is a saved (product, customization) snapshot that can be
// re-ordered into the cart later. UnitPrice is the resolved price at save
// time.
type FavoriteItem struct {
	ID            string        `json:"id"`
	MenuItemID    string        `json:"menu_item_id"`
	Name          string        `json:"name"`
	Customization Customization `json:"customization"`
	UnitPrice     int           `json:"total_price"`
	SavedAt       time.Time     `json:"saved_at"`
	SchemaVersion int           `json:"schema_version"`
}
