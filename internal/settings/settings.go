// Package settings holds the user-tunable capture and retention knobs,
// persisted as settings.json inside the data directory.
package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings controls capture, filtering and retention behavior.
type Settings struct {
	MinTextLength     int  `json:"min_text_length"     mapstructure:"min_text_length"`
	MaxImageSizeMB    int  `json:"max_image_size_mb"   mapstructure:"max_image_size_mb"`
	AutoMonitor       bool `json:"auto_monitor"        mapstructure:"auto_monitor"`
	OrganizeByDate    bool `json:"organize_by_date"    mapstructure:"organize_by_date"`
	ShowNotifications bool `json:"show_notifications"  mapstructure:"show_notifications"`
	SkipSensitive     bool `json:"skip_sensitive"      mapstructure:"skip_sensitive"`
	RetentionDays     int  `json:"retention_days"      mapstructure:"retention_days"`
	MaxEntries        int  `json:"max_entries"         mapstructure:"max_entries"`
}

// Default returns the built-in settings used when no override file exists.
func Default() Settings {
	return Settings{
		MinTextLength:     3,
		MaxImageSizeMB:    10,
		AutoMonitor:       true,
		OrganizeByDate:    true,
		ShowNotifications: true,
		SkipSensitive:     true,
		RetentionDays:     30,
		MaxEntries:        1000,
	}
}

// Store loads and saves settings at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store for the settings file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the defaults merged with the on-disk override. A missing
// or unparsable file falls back to defaults and is logged, never fatal.
func (s *Store) Load() Settings {
	def := Default()

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault("min_text_length", def.MinTextLength)
	v.SetDefault("max_image_size_mb", def.MaxImageSizeMB)
	v.SetDefault("auto_monitor", def.AutoMonitor)
	v.SetDefault("organize_by_date", def.OrganizeByDate)
	v.SetDefault("show_notifications", def.ShowNotifications)
	v.SetDefault("skip_sensitive", def.SkipSensitive)
	v.SetDefault("retention_days", def.RetentionDays)
	v.SetDefault("max_entries", def.MaxEntries)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read settings, using defaults",
				"path", s.path, "error", err)
		}
		return def
	}

	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		slog.Warn("failed to parse settings, using defaults",
			"path", s.path, "error", err)
		return def
	}
	return out
}

// Save writes cfg as indented JSON, creating the parent directory if
// needed.
func (s *Store) Save(cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
