package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/retailhub/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent from the file" from zero values, so a JSON
// file only overrides what it actually specifies.
type JsonConfig struct {
	ServerBaseURL     *string `json:"server_base_url"`
	SessionDBPath     *string `json:"session_db_path"`
	PreserveReturnURL *bool   `json:"preserve_return_url"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (see
// flagx.JsonConfigFlags); when neither is given, nothing is loaded.
// Read or unmarshal errors panic; the config stage runs before any
// user interaction and a broken config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.SessionDBPath != nil {
		cfg.SessionDBPath = *jc.SessionDBPath
	}
	if jc.PreserveReturnURL != nil {
		cfg.PreserveReturnURL = *jc.PreserveReturnURL
	}
}
