// Package config loads runtime configuration for the portfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   base URL of the portfolio backend
//	-v string   API version segment (default "v1")
//	-d string   path of the local sqlite database file
//	-p int      gallery page size for the public listing
//
// # JSON schema
//
//	{
//	  "backend": "https://api.example.com",
//	  "api_version": "v1",
//	  "firebase_api_key": "...",
//	  "firebase_auth_domain": "example.firebaseapp.com",
//	  "firebase_project_id": "example",
//	  "database_path": "portfolio.db",
//	  "page_size": 10,
//	  "admin_page_size": 50
//	}
//
// Environment variables
//
//	BACKEND, API_VERSION, FIREBASE_API_KEY, FIREBASE_AUTH_DOMAIN,
//	FIREBASE_PROJECT_ID
//
// An empty variable leaves the earlier value in place.
package config
