package server

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/config"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/service"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/summary"
)

// Server exposes feed conversion over HTTP.
type Server struct {
	config    *config.Config
	logger    *log.Logger
	processor *service.Processor
	app       *fiber.App
}

// New creates a new HTTP server
func New(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		config:    cfg,
		logger:    logger,
		processor: service.NewProcessor(cfg, logger),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "achrecon",
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.setupRoutes()
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	if addr == "" {
		addr = s.config.Server.Addr
	}
	s.logger.Info("listening", "addr", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) setupRoutes() {
	s.app.Use(s.withLogging)

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Post("/convert", s.handleConvert)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleConvert accepts a multipart upload in field "file" and returns the
// converted workbook, or csv when format=csv.
func (s *Server) handleConvert(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return s.respondError(c, fiber.StatusBadRequest, "no file uploaded, use form field 'file'", err)
	}

	format := strings.ToLower(c.FormValue("format", s.config.Format))
	if format != config.FormatXLSX && format != config.FormatCSV {
		return s.respondError(c, fiber.StatusBadRequest, fmt.Sprintf("unsupported format %q", format), nil)
	}

	f, err := fh.Open()
	if err != nil {
		return s.respondError(c, fiber.StatusBadRequest, "failed to read file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return s.respondError(c, fiber.StatusBadRequest, "failed to read file", err)
	}

	feed := s.processor.Parse(data)

	var buf bytes.Buffer
	if err := s.processor.Write(&buf, feed, format); err != nil {
		return s.respondError(c, fiber.StatusInternalServerError, "failed to render output", err)
	}

	sum := summary.Build(feed)
	s.logger.Info("converted upload", "file", fh.Filename, "format", format, "records", sum.Records)

	name := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	if name == "" || name == "." {
		name = "feed"
	}
	c.Attachment(name + "." + format)
	c.Set("X-Record-Count", strconv.Itoa(sum.Records))
	return c.Send(buf.Bytes())
}

func (s *Server) respondError(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", c.Method(), "path", c.Path())
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", c.Method(), "path", c.Path())
	}
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// handleError turns errors escaping a handler, such as unknown routes or an
// oversized body, into the same JSON shape as respondError.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		status = e.Code
	}
	return s.respondError(c, status, err.Error(), nil)
}

func (s *Server) withLogging(c *fiber.Ctx) (err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic recovered", "panic", rec, "method", c.Method(), "path", c.Path())
			err = s.respondError(c, fiber.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
		}
		s.logger.Debug("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"remote", c.IP(),
			"duration", time.Since(start))
	}()
	return c.Next()
}
