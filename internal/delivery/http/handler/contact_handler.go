package handler

import (
	"context"
	"errors"

	"portfolio-site/internal/delivery/http/dto"
	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/domain/contact"
	"portfolio-site/internal/pkg/response"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// RegisterRoutes mounts the browser-facing redirects.
func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/contact/message", h.SendMessage)
	r.Get("/contact/:method", h.Open)
}

// RegisterAPIRoutes mounts the JSON lookups under the API group.
func (h *ContactHandler) RegisterAPIRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/contact", h.ListURIs)
	r.Get("/contact/:method", h.URI)
}

// redirectHandoff resolves a contact URI by sending the browser to it.
type redirectHandoff struct {
	c fiber.Ctx
}

func (h redirectHandoff) Open(_ context.Context, uri string) error {
	return h.c.Redirect().Status(fiber.StatusFound).To(uri)
}

func (h *ContactHandler) Open(c fiber.Ctx) error {
	method, err := contact.ParseMethod(c.Params("method"))
	if err != nil {
		return mapContactError(err)
	}

	if _, err := h.uc.Dispatch(c.Context(), contact.Command{Kind: method}, redirectHandoff{c: c}); err != nil {
		return mapContactError(err)
	}
	return nil
}

func (h *ContactHandler) SendMessage(c fiber.Ctx) error {
	msg := &contact.Message{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}

	cmd := contact.Command{Kind: contact.MethodEmail, Payload: msg}
	if _, err := h.uc.Dispatch(c.Context(), cmd, redirectHandoff{c: c}); err != nil {
		return mapContactError(err)
	}
	return nil
}

func (h *ContactHandler) URI(c fiber.Ctx) error {
	method, err := contact.ParseMethod(c.Params("method"))
	if err != nil {
		return mapContactError(err)
	}

	uri, err := h.uc.URI(contact.Command{Kind: method})
	if err != nil {
		return mapContactError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, contactURIResponse(method, uri))
}

func (h *ContactHandler) ListURIs(c fiber.Ctx) error {
	methods := contact.Methods()
	res := make([]dto.ContactURIResponse, 0, len(methods))
	for _, m := range methods {
		uri, err := h.uc.URI(contact.Command{Kind: m})
		if err != nil {
			return mapContactError(err)
		}
		res = append(res, contactURIResponse(m, uri))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func contactURIResponse(m contact.Method, uri string) dto.ContactURIResponse {
	return dto.ContactURIResponse{
		Method:      string(m),
		Label:       m.Label(),
		Description: m.Description(),
		URI:         uri,
	}
}

func mapContactError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, contact.ErrUnknownMethod):
		return middleware.NewAppError(fiber.StatusNotFound, "Unknown contact method", nil, err)
	case errors.Is(err, usecase.ErrInvalidMessage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Name, a valid email and a message are required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
