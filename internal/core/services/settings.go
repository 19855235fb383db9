package services

import (
	"fmt"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyHanoiHost     = "hanoi.host"
	keyHanoiPort     = "hanoi.port"
	keyHanoiMaxDisks = "hanoi.max_disks"
	keyMatrixHost    = "matrix.host"
	keyMatrixPort    = "matrix.port"
	keyLogVerbose    = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Missing keys take their
// defaults; the result is validated before it is returned.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Hanoi: domain.HanoiSettings{
			Listen: domain.ListenSettings{
				Host: s.getString(keyHanoiHost, defaults.Hanoi.Listen.Host),
				Port: s.getInt(keyHanoiPort, defaults.Hanoi.Listen.Port),
			},
			// Zero is meaningful here (no cap), so only absence takes the default.
			MaxDisks: s.getIntAllowZero(keyHanoiMaxDisks, defaults.Hanoi.MaxDisks),
		},
		Matrix: domain.MatrixSettings{
			Listen: domain.ListenSettings{
				Host: s.getString(keyMatrixHost, defaults.Matrix.Listen.Host),
				Port: s.getInt(keyMatrixPort, defaults.Matrix.Listen.Port),
			},
		},
		Verbose: s.getBool(keyLogVerbose, defaults.Verbose),
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", s.configStore.Path(), err)
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{keyHanoiHost, settings.Hanoi.Listen.Host},
		{keyHanoiPort, settings.Hanoi.Listen.Port},
		{keyHanoiMaxDisks, settings.Hanoi.MaxDisks},
		{keyMatrixHost, settings.Matrix.Listen.Host},
		{keyMatrixPort, settings.Matrix.Listen.Port},
		{keyLogVerbose, settings.Verbose},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}

	return nil
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getIntAllowZero(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
