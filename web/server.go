package web

import (
	"eduhub/config"
	"eduhub/visit"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg *config.Config, registry *visit.Registry) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Server.Address,
		Verbose: cfg.Server.Verbose,
	})

	s.Use(rweb.RequestInfo)
	s.Use(CorsMiddleware)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s, registry, NewRateLimiter(cfg.Server.MountsPerMinute))
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("EduHub server starting", "address", address)
	return s.Run()
}
