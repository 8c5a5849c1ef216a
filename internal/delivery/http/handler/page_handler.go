package handler

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"log"

	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/delivery/http/view"
	"portfolio-site/internal/domain/contact"
	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/pkg/response"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PageHandler struct {
	store   *profile.Store
	skills  usecase.SkillUsecase
	contact usecase.ContactUsecase
	qr      usecase.QRUsecase
	views   *view.Renderer
	logger  *log.Logger
}

func NewPageHandler(store *profile.Store, skills usecase.SkillUsecase, contactUC usecase.ContactUsecase, qr usecase.QRUsecase, views *view.Renderer, logger *log.Logger) *PageHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &PageHandler{store: store, skills: skills, contact: contactUC, qr: qr, views: views, logger: logger}
}

func (h *PageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Home)
	r.Get("/skills", h.Skills)
	r.Get("/contact", h.Contact)
}

func (h *PageHandler) base(page, title string) view.Base {
	return view.Base{Page: page, Title: title, Identity: h.store.Identity(), Theme: h.store.Theme()}
}

func (h *PageHandler) Home(c fiber.Ctx) error {
	return h.render(c, view.PageHome, view.HomePage{
		Base:        h.base(view.PageHome, "Home"),
		Stats:       h.store.Stats(),
		LinkedinURL: h.store.Contact().LinkedinURL,
	})
}

func (h *PageHandler) Skills(c fiber.Ctx) error {
	selected := categoryFromQuery(c)
	items, err := h.skills.ListSkills(c.Context(), selected)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return h.render(c, view.PageSkills, view.SkillsPage{
		Base:           h.base(view.PageSkills, "Skills"),
		Categories:     h.skills.ListCategories(selected),
		Skills:         items,
		Projects:       h.store.Projects(),
		Education:      h.store.Education(),
		Certifications: h.store.Certifications(),
		Workshops:      h.store.Workshops(),
		Hobbies:        h.store.Hobbies(),
	})
}

func (h *PageHandler) Contact(c fiber.Ctx) error {
	methods := contact.Methods()
	cards := make([]view.ContactMethod, 0, len(methods))
	for _, m := range methods {
		cards = append(cards, view.ContactMethod{Method: string(m), Label: m.Label(), Description: m.Description()})
	}

	page := view.ContactPage{
		Base:       h.base(view.PageContact, "Contact"),
		Contact:    h.store.Contact(),
		Methods:    cards,
		QRFileName: h.store.QRFileName(),
	}
	if uri, err := h.contact.URI(contact.Command{Kind: contact.MethodEmail}); err == nil {
		page.MailtoURL = template.URL(uri)
	}
	if uri, err := h.contact.URI(contact.Command{Kind: contact.MethodCall}); err == nil {
		page.TelURL = template.URL(uri)
	}

	// A failed render only hides the QR block.
	if png, err := h.qr.PNG(c.Context()); err != nil {
		h.logger.Printf("[Page] contact qr unavailable | err=%v", err)
	} else {
		page.QRDataURL = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	}

	return h.render(c, view.PageContact, page)
}

func (h *PageHandler) render(c fiber.Ctx, page string, data any) error {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
