package http

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"wellness-service/internal/config"
)

// Server wraps the Fiber application serving the journal API.
type Server struct {
	app  *fiber.App
	port int
}

// NewServer wires middleware and routes around the handler.
func NewServer(cfg *config.HTTPConfig, handler *Handler) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New())

	handler.Register(app)

	return &Server{
		app:  app,
		port: cfg.Port,
	}
}

// App exposes the Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.Printf("HTTP server listening on :%d", s.port)

	if err := s.app.Listen(fmt.Sprintf(":%d", s.port)); err != nil {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() {
	log.Println("Gracefully stopping HTTP server...")
	if err := s.app.Shutdown(); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	log.Println("HTTP server stopped")
}
