package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"portfolio-site/internal/infrastructure/qrcode"

	"golang.org/x/sync/singleflight"
)

type QRUsecase interface {
	PNG(ctx context.Context) ([]byte, error)
}

type QR struct {
	target   string
	opts     qrcode.Options
	renderer *qrcode.Renderer
	cache    QRCache
	ttl      time.Duration
	logger   *log.Logger

	group singleflight.Group
}

func NewQRUsecase(target string, opts qrcode.Options, renderer *qrcode.Renderer, cache QRCache, ttl time.Duration, logger *log.Logger) *QR {
	if logger == nil {
		logger = log.Default()
	}
	return &QR{target: target, opts: opts, renderer: renderer, cache: cache, ttl: ttl, logger: logger}
}

// PNG returns the QR image for the profile's configured link.
func (u *QR) PNG(ctx context.Context) ([]byte, error) {
	key := QRCacheKey(u.target, u.opts)

	if u.cache != nil {
		if b, ok, err := u.cache.GetBytes(ctx, key); err == nil && ok {
			return b, nil
		}
	}

	v, err, _ := u.group.Do(key, func() (any, error) {
		// The render is shared by coalesced callers and outlives any one of them.
		ctx := context.WithoutCancel(ctx)
		surface := qrcode.NewSurface()
		if err := u.renderer.Render(ctx, u.target, surface, u.opts); err != nil {
			return nil, err
		}
		b, err := surface.Export()
		if err != nil {
			return nil, err
		}
		if u.cache != nil {
			if err := u.cache.SetBytes(ctx, key, b, u.ttl); err != nil {
				u.logger.Printf("[QR] cache set failed | key=%s err=%v", key, err)
			}
		}
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

type qrCacheKeyInput struct {
	Target     string `json:"target"`
	Width      int    `json:"width"`
	Margin     int    `json:"margin"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

func QRCacheKey(target string, opts qrcode.Options) string {
	b, _ := json.Marshal(qrCacheKeyInput{
		Target:     target,
		Width:      opts.Width,
		Margin:     opts.Margin,
		Foreground: opts.Foreground,
		Background: opts.Background,
	})
	sum := sha256.Sum256(b)
	return "qr:png:" + hex.EncodeToString(sum[:])
}
