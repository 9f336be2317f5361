package config

import "os"

// parseEnv overlays cfg with values from environment variables. Empty or
// unset variables leave the earlier value in place.
func parseEnv(cfg *Config) {
	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	overlay(&cfg.Backend, "BACKEND")
	overlay(&cfg.APIVersion, "API_VERSION")
	overlay(&cfg.FirebaseAPIKey, "FIREBASE_API_KEY")
	overlay(&cfg.FirebaseAuthDomain, "FIREBASE_AUTH_DOMAIN")
	overlay(&cfg.FirebaseProjectID, "FIREBASE_PROJECT_ID")
}
