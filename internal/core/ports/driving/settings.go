package driving

import "github.com/custodia-labs/toolbox/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
