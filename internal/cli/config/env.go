package config

import (
	"os"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env captures the AGENTMART_* environment variables. The env var always
// wins over the config file for the API key.
type Env struct {
	APIKey  string `env:"API_KEY" envDefault:""`
	BaseURL string `env:"BASE_URL" envDefault:""`
	AgentID string `env:"AGENT_ID" envDefault:""`
}

// FromEnv loads a .env file when present and parses the prefixed variables.
// Parse failures degrade to zero values; the CLI validates what it actually
// needs at the command boundary.
func FromEnv() Env {
	_ = godotenv.Load()
	var e Env
	_ = env.ParseWithOptions(&e, env.Options{Prefix: "AGENTMART_"})
	return e
}

// NoColor reports the standard no-color convention: any non-empty NO_COLOR
// value disables color output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}
