package configs

import (
	"flag"
	"os"

	"github.com/hilthontt/companion/internal/infrastructure/env"
)

// DetermineConfigPath resolves the config file from the --config flag, the
// COMPANION_CONFIG env var, or a few conventional locations. Returns an empty
// string when no file exists; the service then runs on defaults and env vars.
func DetermineConfigPath() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = env.GetString("COMPANION_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/companion/config.yaml",
			"/app/config.yaml", // common in Docker
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
