// Copyright Punit Mishra, 2026. All rights reserved.

// Package secrets loads publishing credentials from the environment.
// A .env file, when present, fills in variables that are not already set;
// real environment variables always win.
package secrets

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names, matching the site's CI configuration.
const (
	EnvTwitterAPIKey       = "TWITTER_API_KEY"
	EnvTwitterAPISecret    = "TWITTER_API_SECRET"
	EnvTwitterAccessToken  = "TWITTER_ACCESS_TOKEN"
	EnvTwitterAccessSecret = "TWITTER_ACCESS_SECRET"
	EnvMediumToken         = "MEDIUM_TOKEN"
)

// Credentials carries every credential the publishing clients accept.
// Clients receive this struct explicitly and never read the environment
// themselves.
type Credentials struct {
	TwitterAPIKey       string
	TwitterAPISecret    string
	TwitterAccessToken  string
	TwitterAccessSecret string
	MediumToken         string
}

// Load reads credentials from the environment. When envFile names an
// existing file it is loaded first (without overriding variables already
// set); a missing file is not an error, matching how a fresh clone works
// before any credentials are configured.
func Load(envFile string) Credentials {
	if envFile != "" {
		// Ignore load errors: an absent or unreadable .env simply means
		// the environment is the only source.
		_ = godotenv.Load(envFile)
	}

	return Credentials{
		TwitterAPIKey:       strings.TrimSpace(os.Getenv(EnvTwitterAPIKey)),
		TwitterAPISecret:    strings.TrimSpace(os.Getenv(EnvTwitterAPISecret)),
		TwitterAccessToken:  strings.TrimSpace(os.Getenv(EnvTwitterAccessToken)),
		TwitterAccessSecret: strings.TrimSpace(os.Getenv(EnvTwitterAccessSecret)),
		MediumToken:         strings.TrimSpace(os.Getenv(EnvMediumToken)),
	}
}

// TwitterComplete reports whether all four OAuth 1.0a values are present.
func (c Credentials) TwitterComplete() bool {
	return c.TwitterAPIKey != "" && c.TwitterAPISecret != "" &&
		c.TwitterAccessToken != "" && c.TwitterAccessSecret != ""
}

// MediumComplete reports whether the Medium integration token is present.
func (c Credentials) MediumComplete() bool {
	return c.MediumToken != ""
}
