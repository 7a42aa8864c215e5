package qrcode

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MaxSize     = 2048
)

var (
	ErrEmptyURL    = errors.New("qr code url is required")
	ErrInvalidSize = fmt.Errorf("qr code size must be between 1 and %d", MaxSize)
)

var (
	foreground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer draws QR codes as PNG with a fixed two-colour palette and the
// standard quiet-zone margin. Output depends only on (url, size).
type Renderer struct {
	Level goqrcode.RecoveryLevel
}

func NewRenderer() *Renderer {
	return &Renderer{Level: goqrcode.Medium}
}

// Render encodes url. size <= 0 selects DefaultSize.
func (r *Renderer) Render(url string, size int) ([]byte, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		return nil, ErrInvalidSize
	}

	q, err := goqrcode.New(url, r.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	q.ForegroundColor = foreground
	q.BackgroundColor = background

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}
