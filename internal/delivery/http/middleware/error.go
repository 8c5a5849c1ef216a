package middleware

import (
	"errors"
	"html"
	"log"
	"strconv"
	"strings"

	"portfolio-site/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

// ErrorMiddleware turns handler errors into the JSON envelope for API routes
// and into a small HTML page for everything a browser navigates to.
type ErrorMiddleware struct {
	logger       *log.Logger
	jsonPrefixes []string
}

func NewErrorMiddleware(logger *log.Logger, jsonPrefixes ...string) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	if len(jsonPrefixes) == 0 {
		jsonPrefixes = []string{"/api", "/health"}
	}
	return &ErrorMiddleware{logger: logger, jsonPrefixes: jsonPrefixes}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("[HTTP] panic recovered | path=%s panic=%v", c.Path(), r)
				err = m.write(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= 500 {
			m.logger.Printf("[HTTP] request failed | path=%s err=%v", c.Path(), err)
		}
		return m.write(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) write(c fiber.Ctx, status int, msg string, data interface{}) error {
	if m.wantsJSON(c.Path()) {
		return response.Error(c, status, msg, data)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).SendString(
		"<!DOCTYPE html><html><head><title>" + strconv.Itoa(status) + "</title></head><body>" +
			"<h1>" + strconv.Itoa(status) + "</h1><p>" + html.EscapeString(msg) + "</p>" +
			"<p><a href=\"/\">Back to home</a></p></body></html>",
	)
}

func (m *ErrorMiddleware) wantsJSON(path string) bool {
	for _, p := range m.jsonPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode <= 0 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		status := appErr.StatusCode
		msg := appErr.Message
		if msg == "" {
			msg = response.MessageForStatus(status)
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		return status, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}

		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.MessageForStatus(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
