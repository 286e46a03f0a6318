package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	UserID    string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("TYPEFIGHT_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("TYPEFIGHT_TOKEN"),
		UserID:    os.Getenv("TYPEFIGHT_USER_ID"),
		Output:    "text",
		Verbose:   false,
	}
}

// WebSocketURL converts the server URL to its websocket form
func (c *Config) WebSocketURL() string {
	url := c.ServerURL
	switch {
	case len(url) >= 8 && url[:8] == "https://":
		return "wss://" + url[8:]
	case len(url) >= 7 && url[:7] == "http://":
		return "ws://" + url[7:]
	}
	return url
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
