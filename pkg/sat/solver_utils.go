package sat

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// ConfigPath points to an optional JSON file mapping config keys (e.g.
// "minisatPath") to solver executable paths.
var ConfigPath = "config.json"

// getExecutablePath resolves a solver executable through the config file,
// falling back to the bare executable name so the named backends work
// without any config as long as the solver is on PATH.
func getExecutablePath(key, fallback string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return fallback
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return fallback
	}

	var config map[string]string
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return fallback
	}

	if path, ok := config[key]; ok && path != "" {
		return path
	}
	return fallback
}
