package config

import (
	"time"

	"dulcetienda_server/structs"
)

// Load reads the full application configuration from the environment. It is
// called once in main and the result is injected everywhere else; there is no
// package-level instance.
func Load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "DulceTienda"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8080"),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20),        // 1 MB
			MaxBodyBytes:   int64(getEnvAsInt("SERVER_MAX_BODY_BYTES", 10<<20)), // 10 MB
		},
		Cors: &structs.CorsConfig{
			// The storefront page may be served from anywhere.
			AllowOrigins:     getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
			AllowMethods:     getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "OPTIONS"}),
			AllowHeaders:     getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
		},
		Database: &structs.DatabaseConfig{
			Host:         getEnvAsString("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnvAsString("DB_USER", "postgres"),
			Password:     getEnvAsString("DB_PASSWORD", "password"),
			Name:         getEnvAsString("DB_NAME", "dulcetienda_db"),
			MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
			MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
			MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
		},
		Email: &structs.EmailConfig{
			ApiKey: getEnvAsString("EMAIL_API_KEY", ""),
			From:   getEnvAsString("EMAIL_FROM", ""),
		},
	}
}

// LogLevel picks the log level for the current environment.
func LogLevel(cfg *structs.Config) string {
	if cfg.Server.Environment == "production" {
		return "info"
	}
	return "debug"
}
