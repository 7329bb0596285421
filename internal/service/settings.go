package service

import "impactrack/internal/models"

// Theme returns the current theme preference.
func (t *Tracker) Theme() models.Theme {
	return t.settings.Current().Theme
}

// ToggleTheme flips the theme preference and persists it immediately.
func (t *Tracker) ToggleTheme() (models.Theme, error) {
	next := models.ThemeDark
	if t.settings.Current().Theme == models.ThemeDark {
		next = models.ThemeLight
	}
	t.settings.SetTheme(next)
	if err := t.settings.Persist(); err != nil {
		t.logger.Error("toggle theme: persist failed", "theme", next, "error", err)
		return next, err
	}
	t.logger.Info("theme toggled", "theme", next)
	t.notifier.Notify(EventSettingsChanged)
	return next, nil
}
