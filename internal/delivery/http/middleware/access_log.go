package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *log.Logger
	skip   []string
}

// NewAccessLogMiddleware logs one line per request. Paths starting with any of
// skipPrefixes are served without a log line.
func NewAccessLogMiddleware(logger *log.Logger, skipPrefixes ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger, skip: skipPrefixes}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		if m == nil || m.logger == nil || m.skipped(c.Path()) {
			return err
		}

		// Registered ahead of the error middleware, so the response status is final here.
		status := c.Response().StatusCode()
		m.logger.Printf(
			"[HTTP] rid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, c.IP(), c.Method(), c.OriginalURL(), status, time.Since(start), len(c.Response().Body()), c.Get("User-Agent"),
		)

		return err
	}
}

func (m *AccessLogMiddleware) skipped(path string) bool {
	for _, p := range m.skip {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
