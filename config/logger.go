package config

import (
	"github.com/MonkyMars/gecho"

	"dulcetienda_server/structs"
)

// NewLogger builds the application logger with caller reporting enabled.
func NewLogger(cfg *structs.Config) *gecho.Logger {
	level := gecho.ParseLogLevel(LogLevel(cfg))
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(level)))
}

// NewMiddlewareLogger builds the quieter logger used by HTTP middleware,
// where the caller is always the middleware itself.
func NewMiddlewareLogger(cfg *structs.Config) *gecho.Logger {
	level := gecho.ParseLogLevel(LogLevel(cfg))
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(level)))
}
