package cmd

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/clipkeep/clipkeep/internal/db"
	"github.com/clipkeep/clipkeep/internal/engine"
	"github.com/clipkeep/clipkeep/internal/notify"
	"github.com/clipkeep/clipkeep/internal/settings"
	"github.com/clipkeep/clipkeep/internal/store"
	"github.com/clipkeep/clipkeep/internal/wlclip"
)

func dataDir() string {
	return viper.GetString("data")
}

func settingsStore() *settings.Store {
	return settings.NewStore(filepath.Join(dataDir(), "settings.json"))
}

// newEngine wires the full pipeline against the configured data
// directory.
func newEngine() (*engine.Engine, error) {
	dir := dataDir()
	cfg := settingsStore().Load()

	catalog, err := db.Open(dir)
	if err != nil {
		return nil, err
	}

	var sink notify.Sink = notify.Log{}
	if cfg.ShowNotifications {
		sink = notify.Desktop{}
	}

	return engine.New(engine.Options{
		Settings: cfg,
		Backend:  wlclip.New(),
		Catalog:  catalog,
		Store:    store.New(dir, cfg.OrganizeByDate),
		Notify:   sink,
	}), nil
}
