package gateway

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"go.uber.org/zap"

	"github.com/spec-kit/marketplace/internal/config"
)

// Gateway forwards storefront and vendor-portal traffic to the backing
// services. It carries no business logic; bodies, headers (including the
// Authorization bearer token) and status codes pass through untouched.
type Gateway struct {
	cfg    config.GatewayConfig
	logger *zap.Logger
}

// New builds a gateway over the configured upstreams.
func New(cfg config.GatewayConfig, logger *zap.Logger) *Gateway {
	return &Gateway{cfg: cfg, logger: logger}
}

// RegisterRoutes wires pass-through routes for both upstreams.
func (g *Gateway) RegisterRoutes(app *fiber.App) {
	app.Get("/health/live", g.Live)
	app.Get("/health/ready", g.Ready)

	app.All("/auth/*", g.forward(g.cfg.AuthServiceURL))
	app.All("/vendor/*", g.forward(g.cfg.VendorServiceURL))
}

func (g *Gateway) forward(base string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		target := base + c.OriginalURL()
		if err := proxy.Do(c, target); err != nil {
			g.logger.Error("upstream unreachable", zap.String("target", target), zap.Error(err))
			return fiber.NewError(fiber.StatusBadGateway, "upstream unavailable")
		}
		return nil
	}
}

// Live reports gateway liveness.
func (g *Gateway) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": "api-gateway",
	})
}

// Ready reports readiness by probing both upstreams' liveness endpoints.
func (g *Gateway) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{}
	ready := true

	for name, base := range map[string]string{
		"auth":   g.cfg.AuthServiceURL,
		"vendor": g.cfg.VendorServiceURL,
	} {
		if err := pingUpstream(base); err != nil {
			depStatus[name] = err.Error()
			ready = false
		} else {
			depStatus[name] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more upstreams unavailable",
			"details": depStatus,
		},
	})
}

func pingUpstream(base string) error {
	agent := fiber.Get(base + "/health/live")
	agent.Timeout(2 * time.Second)
	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errs[0]
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("unexpected status %d", code)
	}
	return nil
}
