package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	apiBaseURLEnvVar  = "API_BASE_URL"
	apiBasePathEnvVar = "API_BASE_PATH"
	apiTimeoutEnvVar  = "API_TIMEOUT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "PayFlow Wallet")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the origin of the wallet backend (e.g. "https://wallet.example.com")
func (API) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiBaseURLEnvVar, "http://localhost:8081"), "/")
}

// GetAPIBasePath is prefixed to every backend endpoint
func (API) GetAPIBasePath() string {
	return GetEnv(apiBasePathEnvVar, "/api")
}

// GetAPITimeout of zero means backend calls are bounded only by the request context
func (API) GetAPITimeout() time.Duration {
	return GetEnvDuration(apiTimeoutEnvVar, 0)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvBool(envVar string, defaultValue bool) bool {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func GetEnvInt(envVar string, defaultValue int) int {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

func GetEnvDuration(envVar string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
