package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/whatsclone/whatsclone/internal/logging"
)

func TestAuditUsesWrappedFiberErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(Audit(logging.NewWithWriter(&buf, "test", "info")))
	app.Get("/screen", func(c *fiber.Ctx) error {
		return fmt.Errorf("load screen: %w", fiber.NewError(fiber.StatusConflict, "screen finished"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/screen", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	var entry struct {
		Level  string `json:"level"`
		Status int    `json:"status"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode audit line %q: %v", buf.String(), err)
	}
	if entry.Status != fiber.StatusConflict || entry.Level != "WARN" {
		t.Fatalf("unexpected audit entry %+v", entry)
	}
}
