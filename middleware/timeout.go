package middleware

import (
	"context"
	"time"

	"packflow/config"

	"github.com/gofiber/fiber/v2"
)

// Timeout attaches a per-request deadline as the user context. Repositories
// run their transactions against this context, so a request that exceeds the
// ceiling aborts with a timeout instead of hanging.
func Timeout(ctx *fiber.Ctx) error {
	deadline := time.Duration(config.RequestTimeout) * time.Second
	if deadline <= 0 {
		deadline = 30 * time.Second
	}

	c, cancel := context.WithTimeout(ctx.UserContext(), deadline)
	defer cancel()

	ctx.SetUserContext(c)
	return ctx.Next()
}
