// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the server.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"address"`

	// Provider names the text-generation backend: openai, anthropic or gemini.
	Provider string `json:"provider"`

	// Model overrides the provider's default model name.
	Model string `json:"model"`

	// APIKey is the generation-service credential. It is read from the
	// environment only and is never serialized or logged.
	APIKey string `json:"-"`

	// Config is the path to the config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.Provider, "p", "openai", "generation provider: openai | anthropic | gemini")
	flag.StringVar(&options.Model, "m", "", "model name (provider default when empty)")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// keyEnvVars maps each provider to the environment variable holding its
// credential.
var keyEnvVars = map[string]string{
	"openai":    "OPENAI_API_KEY",
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct
// containing the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}
	if provider := os.Getenv("PROVIDER"); provider != "" {
		options.Provider = provider
	}
	if model := os.Getenv("MODEL"); model != "" {
		options.Model = model
	}

	// The credential comes from the provider's env var only; a missing
	// key does not stop startup, it blocks generation requests later.
	if envVar, ok := keyEnvVars[options.Provider]; ok {
		options.APIKey = os.Getenv(envVar)
	}

	return options
}
