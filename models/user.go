package models

// User is the locally stored profile record. Its presence is the
// "logged in" state; there is no auth server.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	SchemaVersion int    `json:"schema_version"`
}

// NotificationSettings groups the notification toggles.
type NotificationSettings struct {
	OrderUpdates bool `json:"order_updates"`
	Promotions   bool `json:"promotions"`
	NewMenu      bool `json:"new_menu"`
}

// PreferenceSettings groups general app preferences.
type PreferenceSettings struct {
	SaveOrderHistory bool   `json:"save_order_history"`
	Language         string `json:"language"`
}

// PrivacySettings groups the privacy toggles.
type PrivacySettings struct {
	ShareUsageData     bool `json:"share_usage_data"`
	PersonalizedOffers bool `json:"personalized_offers"`
}

// AppSettings is the nested settings object persisted under the
// "app-settings" key.
type AppSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Preferences   PreferenceSettings   `json:"preferences"`
	Privacy       PrivacySettings      `json:"privacy"`
	SchemaVersion int                  `json:"schema_version"`
}

// DefaultAppSettings returns the settings used before the user changes
// anything, and the fallback when a stored record cannot be decoded.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Notifications: NotificationSettings{
			OrderUpdates: true,
			Promotions:   true,
			NewMenu:      false,
		},
		Preferences: PreferenceSettings{
			SaveOrderHistory: true,
			Language:         "en",
		},
		Privacy: PrivacySettings{
			ShareUsageData:     false,
			PersonalizedOffers: true,
		},
		SchemaVersion: 1,
	}
}
