// Package httpapi exposes the registry's record and search operations over a
// thin JSON HTTP API. It maps the core's error kinds to transport status
// codes and owns no business logic of its own.
package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aadhaarseva/registry/internal/logging"
	"github.com/aadhaarseva/registry/internal/server/services"
)

type Server struct {
	app     *fiber.App
	address string
	logger  logging.Logger
	records *services.RecordService
	search  *services.SearchService
}

func NewServer(address string, l logging.Logger, rs *services.RecordService, ss *services.SearchService) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		records: rs,
		search:  ss,
	}

	app := fiber.New(fiber.Config{
		AppName:               "aadhaar-registry",
		DisableStartupMessage: true,
	})

	app.Use(s.requestID)
	app.Use(s.requestLogger)

	api := app.Group("/api")
	api.Get("/health", s.health)
	api.Get("/records", s.getRecords)
	api.Post("/records", s.saveRecord)
	api.Get("/records/search", s.searchRecords)
	api.Get("/records/suggest", s.suggestByName)

	s.app = app
	return s
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithContext(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
