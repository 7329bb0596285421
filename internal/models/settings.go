package models

// Theme is the UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings is the single preferences record. It is created with defaults on
// first load and persisted immediately on every change.
type Settings struct {
	Theme Theme `json:"theme"`
}

// DefaultSettings returns the record used when nothing has been persisted
// yet.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight}
}
