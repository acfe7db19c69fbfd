package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestRegisterRateLimitPerPhone(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Post("/register", RegisterRateLimit(cache, 2), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(body string) int {
		req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp.StatusCode
	}

	alice := `{"country_code":"+55","area_code":"11","phone":"98765-4321"}`
	bob := `{"country_code":"+55","area_code":"21","phone":"91234-5678"}`

	for i := 0; i < 2; i++ {
		if status := send(alice); status != fiber.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, status)
		}
	}
	if status := send(alice); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 on third attempt, got %d", status)
	}
	if status := send(bob); status != fiber.StatusOK {
		t.Fatalf("other numbers are limited separately, got %d", status)
	}
	if !mr.Exists("rl:register:5511987654321") {
		t.Fatalf("expected counter keyed by the normalized phone")
	}
}

func TestRegisterRateLimitDisabled(t *testing.T) {
	app := fiber.New()
	app.Post("/register", RegisterRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader("{}"))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected no limit without redis, got %d", resp.StatusCode)
		}
	}
}
