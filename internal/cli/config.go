package cli

import (
	"os"

	"github.com/example/labops/internal/config"
)

// loadConfig reads the optional .labops/config.json from the working
// directory. A missing or broken config is not an error at the CLI
// surface; commands just fall back to their flag defaults.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return nil
	}
	return cfg
}

// defaultShift resolves the shift default for flags: the configured
// default shift when a config exists, day otherwise.
func defaultShift() string {
	return loadConfig().Shift()
}
