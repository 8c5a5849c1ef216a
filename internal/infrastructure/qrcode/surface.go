package qrcode

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"sync"
)

var ErrSurfaceEmpty = errors.New("qr surface is empty")

// Surface is the drawing target of a render. It keeps its last successful
// image; a failed render leaves it untouched.
type Surface struct {
	mu  sync.RWMutex
	img *image.NRGBA
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.img != nil
}

func (s *Surface) Bounds() image.Rectangle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Export encodes the current contents as PNG.
func (s *Surface) Export() ([]byte, error) {
	s.mu.RLock()
	img := s.img
	s.mu.RUnlock()

	if img == nil {
		return nil, ErrSurfaceEmpty
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Surface) replace(img *image.NRGBA) {
	s.mu.Lock()
	s.img = img
	s.mu.Unlock()
}
