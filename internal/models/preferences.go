package models

// Preferences are the per-user settings persisted in the key-value store.
// A nil DarkMode means the client follows the system theme.
type Preferences struct {
	DarkMode     *bool `json:"dark_mode"`
	BatteryAlert bool  `json:"battery_alert"`
	AmbientLight bool  `json:"ambient_light"`
}
