package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
	CorsConfig
	SecurityConfig
	CheckoutConfig
	DisplayConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type APIConfig interface {
	GetAPIBaseURL() string
	GetAPIBasePath() string
	GetAPITimeout() time.Duration
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	API
	Cors
	Security
	Checkout
	Display
}

func New() Config {
	return mainConfig{}
}
