package handler

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"portfolio-site/internal/delivery/http/middleware"
	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/infrastructure/qrcode"
	"portfolio-site/internal/pkg/response"
	"portfolio-site/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DownloadHandler struct {
	store     *profile.Store
	qr        usecase.QRUsecase
	staticDir string
	logger    *log.Logger
}

func NewDownloadHandler(store *profile.Store, qr usecase.QRUsecase, staticDir string, logger *log.Logger) *DownloadHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &DownloadHandler{store: store, qr: qr, staticDir: staticDir, logger: logger}
}

func (h *DownloadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/downloads")
	grp.Get("/qr.png", h.QRCode)
	grp.Get("/resume", h.Resume)
}

func (h *DownloadHandler) QRCode(c fiber.Ctx) error {
	b, err := h.qr.PNG(c.Context())
	if err != nil {
		if errors.Is(err, qrcode.ErrInvalidTarget) {
			return middleware.NewAppError(fiber.StatusNotFound, "QR code unavailable", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Attachment(h.store.QRFileName())
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(b)
}

func (h *DownloadHandler) Resume(c fiber.Ctx) error {
	path, ok := resolveStaticFile(h.staticDir, h.store.Contact().ResumeURL)
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, nil)
	}
	if _, err := os.Stat(path); err != nil {
		h.logger.Printf("[Download] resume missing | path=%s err=%v", path, err)
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	}
	return c.Download(path, h.store.ResumeFileName())
}

// resolveStaticFile maps a site path such as /static/cv.pdf onto staticDir.
// Paths that would leave staticDir are rejected.
func resolveStaticFile(staticDir, sitePath string) (string, bool) {
	sitePath = strings.TrimSpace(sitePath)
	if sitePath == "" || staticDir == "" {
		return "", false
	}
	rel := strings.TrimPrefix(sitePath, "/static")
	rel = filepath.Clean("/" + rel)
	if rel == "/" {
		return "", false
	}
	return filepath.Join(staticDir, filepath.FromSlash(rel)), true
}
