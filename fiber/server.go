// Package fiber serves the chat widget's HTTP API using gofiber.
package fiber

import (
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// allowMethods lists every method a cross-origin caller may use.
const allowMethods = "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS"

// Config is the HTTP server configuration.
type Config struct {
	// Addr is the address to listen on (e.g., "127.0.0.1:8000").
	Addr string

	// AllowOrigins lists origins allowed to call the API from a browser,
	// with credentials.
	AllowOrigins []string
}

// Server is the HTTP server for the chat widget.
type Server struct {
	config    Config
	assistant sitechat.Assistant
	cache     *sitechat.Cache
	logger    *slog.Logger
	app       *fiber.App
	ln        net.Listener
}

// NewServer creates a new Server answering with assistant. The cache is
// only read, to report its state on the health endpoint.
func NewServer(config Config, assistant sitechat.Assistant, cache *sitechat.Cache, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:    config,
		assistant: assistant,
		cache:     cache,
		logger:    logger,
		app:       app,
	}

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(s.logRequest)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(config.AllowOrigins, ","),
		AllowMethods:     allowMethods,
		AllowCredentials: true,
	}))

	app.Get("/healthz", s.handleHealth)
	app.Post("/api/assistant", s.handleAssistant)

	return s
}

// Open starts listening on the configured address and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.config.Addr); err != nil {
		return err
	}

	s.logger.Info("starting HTTP server", "addr", s.ln.Addr().String())

	go func() {
		if err := s.app.Listener(s.ln); err != nil {
			s.logger.Error("HTTP server stopped", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	return s.app.ShutdownWithTimeout(ShutdownTimeout)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// logRequest logs every request after it has been handled.
func (s *Server) logRequest(c *fiber.Ctx) error {
	begin := time.Now()
	err := c.Next()
	s.logger.Info("request",
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(begin),
		"err", err,
	)
	return err
}
