package qrcode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"net/url"
	"strconv"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultWidth      = 200
	DefaultMargin     = 2
	DefaultForeground = "#1E293B"
	DefaultBackground = "#F8FAFC"

	// fallbackScale is used when Width cannot hold the symbol and its margin.
	fallbackScale = 4
)

var (
	ErrInvalidTarget = errors.New("invalid qr target")
	ErrInvalidColor  = errors.New("invalid qr color")
)

type Options struct {
	Width      int
	Margin     int
	Foreground string
	Background string
}

func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		Margin:     DefaultMargin,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Margin < 0 {
		o.Margin = d.Margin
	}
	if strings.TrimSpace(o.Foreground) == "" {
		o.Foreground = d.Foreground
	}
	if strings.TrimSpace(o.Background) == "" {
		o.Background = d.Background
	}
	return o
}

type Renderer struct {
	logger *log.Logger
}

func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{logger: logger}
}

// Render draws target onto surface. On failure the error is logged and
// returned, and surface keeps whatever it held before.
func (r *Renderer) Render(ctx context.Context, target string, surface *Surface, opts Options) error {
	if surface == nil {
		return errors.New("nil qr surface")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := draw(target, opts.withDefaults())
	if err != nil {
		r.logger.Printf("[QR] render failed | target=%q err=%v", target, err)
		return err
	}

	surface.replace(img)
	return nil
}

func draw(target string, opts Options) (*image.NRGBA, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	fg, err := parseHexColor(opts.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}

	q, err := goqrcode.New(target, goqrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	q.DisableBorder = true
	modules := q.Bitmap()

	return rasterize(modules, opts.Width, opts.Margin, fg, bg), nil
}

// rasterize scales the module grid so that the symbol plus margin fills width
// pixels, sampling each output pixel back to its module.
func rasterize(modules [][]bool, width, margin int, fg, bg color.NRGBA) *image.NRGBA {
	size := len(modules)
	total := size + 2*margin

	scale := float64(fallbackScale)
	if width >= total {
		scale = float64(width) / float64(total)
	}

	px := int(math.Floor(float64(total) * scale))
	scaledMargin := float64(margin) * scale
	img := image.NewNRGBA(image.Rect(0, 0, px, px))

	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			c := bg
			fy, fx := float64(y), float64(x)
			if fy >= scaledMargin && fx >= scaledMargin && fy < float64(px)-scaledMargin && fx < float64(px)-scaledMargin {
				row := min(int(math.Floor((fy-scaledMargin)/scale)), size-1)
				col := min(int(math.Floor((fx-scaledMargin)/scale)), size-1)
				if modules[row][col] {
					c = fg
				}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func validateTarget(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTarget)
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: missing scheme", ErrInvalidTarget)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidTarget)
	}
	return nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
