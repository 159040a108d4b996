package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultWindow is the recency exclusion window in days. Deck sizes are
// expected to grow, so the window stays configurable rather than baked
// into the engine.
const DefaultWindow = 30

// Config locates the two storage namespaces and carries tunables.
type Config struct {
	// SharedPath is the namespace visible to both processes (the app
	// group equivalent).
	SharedPath string `json:"shared"`
	// LegacyPath is the old private namespace from before the widget
	// existed; it is read once during migration and never written.
	LegacyPath string `json:"path"`
	// Window is the recency exclusion window in days.
	Window int `json:"window"`
}

// LoadConfig reads the .vibeflip config file (home directory or cwd),
// applying VIBEFLIP_* environment overrides and defaults.
func LoadConfig() (*Config, error) {
	viper.SetDefault("shared", "~/.vibeflip/shared")
	viper.SetDefault("path", "~/.vibeflip/local")
	viper.SetDefault("window", DefaultWindow)
	viper.SetConfigName(".vibeflip") // .yaml is implicit
	viper.SetEnvPrefix("VIBEFLIP")
	viper.AutomaticEnv()

	if override := os.Getenv("VIBEFLIP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	shared, err := homedir.Expand(viper.GetString("shared"))
	if err != nil {
		return nil, fmt.Errorf("store: expand shared path: %w", err)
	}
	legacy, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	window := viper.GetInt("window")
	if window <= 0 {
		window = DefaultWindow
	}

	return &Config{SharedPath: shared, LegacyPath: legacy, Window: window}, nil
}
