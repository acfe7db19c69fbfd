package routes

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// RegisterHealthRoutes adds a readiness endpoint probing every configured backend concurrently.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		probes := map[string]func(context.Context) error{}
		if d.DB != nil {
			probes["postgres"] = d.DB.Ping
		}
		if d.Cache != nil {
			probes["redis"] = func(ctx context.Context) error { return d.Cache.Ping(ctx).Err() }
		}
		if p, ok := d.Preferences.(pinger); ok {
			probes["preferences"] = p.Ping
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		var (
			mu       sync.Mutex
			statuses = make(map[string]string, len(probes))
			healthy  = true
			g        errgroup.Group
		)
		for name, probe := range probes {
			g.Go(func() error {
				status := "ok"
				if err := probe(ctx); err != nil {
					status = err.Error()
				}
				mu.Lock()
				defer mu.Unlock()
				statuses[name] = status
				if status != "ok" {
					healthy = false
				}
				return nil
			})
		}
		_ = g.Wait()

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":    statuses,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
