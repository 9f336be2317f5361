package config

// Config holds runtime settings for the portfolio CLI.
//
// Fields:
//   - Backend: base URL of the portfolio backend (scheme included).
//   - APIVersion: API version segment appended to the backend URL.
//   - FirebaseAPIKey / FirebaseAuthDomain / FirebaseProjectID: identity
//     provider project settings.
//   - DatabasePath: path of the local sqlite database file.
//   - PageSize / AdminPageSize: gallery page sizes for the public listing
//     and the admin listing.
type Config struct {
	Backend            string
	APIVersion         string
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	DatabasePath       string
	PageSize           int
	AdminPageSize      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = "http://127.0.0.1:8080"
	c.APIVersion = "v1"
	c.DatabasePath = "portfolio.db"
	c.PageSize = 10
	c.AdminPageSize = 50
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// MissingFirebaseVars lists the identity provider settings that are still
// empty after loading. The CLI warns about them at startup; login cannot work
// without the API key.
func (c *Config) MissingFirebaseVars() []string {
	var missing []string
	if c.FirebaseAPIKey == "" {
		missing = append(missing, "FIREBASE_API_KEY")
	}
	if c.FirebaseAuthDomain == "" {
		missing = append(missing, "FIREBASE_AUTH_DOMAIN")
	}
	if c.FirebaseProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	return missing
}
