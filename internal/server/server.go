// Package server hosts the dev HTTP surface: static web assets and
// the enrichment proxy endpoint that keeps the OpenAI key off the
// client.
package server

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/config"
	"github.com/expokit/standplan/internal/credential"
	"github.com/expokit/standplan/internal/enrich"
)

// Handler serves the enrichment endpoint. The lookup and upstream
// hooks exist so tests can run without a key or a live API.
type Handler struct {
	log         *zap.Logger
	lookupKey   func() (string, error)
	newUpstream func(apiKey string) enrich.Service
}

// NewHandler builds a Handler wired to the real key sources (the
// OPENAI_API_KEY environment variable, then the system keyring) and
// the real completion API.
func NewHandler(cfg config.EnrichmentConfig, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		log:       log,
		lookupKey: lookupAPIKey,
		newUpstream: func(apiKey string) enrich.Service {
			return enrich.NewOpenAI(apiKey, cfg.Model, cfg.MaxTokens, cfg.Temperature)
		},
	}
}

// New builds the Fiber app: static assets at / and the enrichment
// endpoint at /api/chatgpt.
func New(cfg *config.AppConfig, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "standplan",
		DisableStartupMessage: true,
	})

	h := NewHandler(cfg.Enrichment, log)
	app.All("/api/chatgpt", h.Suggest)
	app.Static("/", cfg.Server.StaticDir)

	return app
}

// Suggest proxies a draft's identity fields to the completion API and
// returns the suggestion JSON. Error shapes and status codes are part
// of the client contract: 405 for non-POST, 500 when no key is
// configured, 400 for malformed bodies, 502 when the upstream
// rejects the request, 500 for anything else.
func (h *Handler) Suggest(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	apiKey, err := h.lookupKey()
	if err != nil || apiKey == "" {
		h.log.Warn("enrichment request without configured key")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Missing OPENAI_API_KEY",
		})
	}

	var in enrich.Input
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON body",
		})
	}

	suggestion, err := h.newUpstream(apiKey).Generate(c.Context(), in)
	if err != nil {
		var upstream *enrich.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Warn("completion API rejected request", zap.String("detail", upstream.Detail))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error":  "OpenAI request failed",
				"detail": upstream.Detail,
			})
		}
		h.log.Error("enrichment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "AI generation failed",
			"detail": err.Error(),
		})
	}

	return c.JSON(suggestion)
}

// lookupAPIKey resolves the OpenAI key from the environment, falling
// back to the system keyring.
func lookupAPIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}
	return credential.Get(credential.OpenAIKeyName)
}
