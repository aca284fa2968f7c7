package middleware

import (
	"github.com/MonkyMars/gecho"

	"dulcetienda_server/structs"
)

type Middleware struct {
	cfg    *structs.Config
	logger *gecho.Logger
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger) *Middleware {
	return &Middleware{
		cfg:    cfg,
		logger: logger,
	}
}
