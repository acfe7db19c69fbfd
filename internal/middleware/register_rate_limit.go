package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/whatsclone/whatsclone/internal/onboarding"
)

// RegisterRateLimit caps registration submissions per destination phone per
// minute, so a stuck button cannot flood one number with SMS. Without Redis,
// or with maxPerMin <= 0, it is a no-op. Cache errors fail open.
func RegisterRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil || maxPerMin <= 0 {
			return c.Next()
		}
		var req struct {
			CountryCode string `json:"country_code"`
			AreaCode    string `json:"area_code"`
			Phone       string `json:"phone"`
		}
		_ = c.BodyParser(&req)
		subject := onboarding.FullPhoneNumber(req.CountryCode, req.AreaCode, req.Phone)
		if subject == "" {
			subject = c.IP()
		}

		key := fmt.Sprintf("rl:register:%s", subject)
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many registration attempts, try again later")
		}
		return c.Next()
	}
}
