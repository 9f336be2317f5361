package config

import (
	"encoding/json"
	"os"

	"github.com/chenjq/photofolio/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// stay zero and are skipped when copying, so a partial file overrides only
// what it names.
type JsonConfig struct {
	Backend            string `json:"backend"`
	APIVersion         string `json:"api_version"`
	FirebaseAPIKey     string `json:"firebase_api_key"`
	FirebaseAuthDomain string `json:"firebase_auth_domain"`
	FirebaseProjectID  string `json:"firebase_project_id"`
	DatabasePath       string `json:"database_path"`
	PageSize           int    `json:"page_size"`
	AdminPageSize      int    `json:"admin_page_size"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flag. No flag means no JSON stage. Panics on read or unmarshal
// errors (caller should recover if desired).
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

	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.APIVersion != "" {
		cfg.APIVersion = jc.APIVersion
	}
	if jc.FirebaseAPIKey != "" {
		cfg.FirebaseAPIKey = jc.FirebaseAPIKey
	}
	if jc.FirebaseAuthDomain != "" {
		cfg.FirebaseAuthDomain = jc.FirebaseAuthDomain
	}
	if jc.FirebaseProjectID != "" {
		cfg.FirebaseProjectID = jc.FirebaseProjectID
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.AdminPageSize > 0 {
		cfg.AdminPageSize = jc.AdminPageSize
	}
}
