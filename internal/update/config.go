package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	APIBaseURL     string
	LogDir         string
	RequestTimeout int
	AltScreen      bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		APIBaseURL:     "http://localhost:8080",
		LogDir:         "",
		RequestTimeout: 15,
		AltScreen:      true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TASKBOARD_API_URL")); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKBOARD_LOG_DIR")); v != "" {
		cfg.LogDir = v
	}
	if v, ok := getEnvInt("TASKBOARD_REQUEST_TIMEOUT"); ok && v > 0 {
		cfg.RequestTimeout = v
	}
	if v, ok := getEnvBool("TASKBOARD_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	}
	return false, false
}
