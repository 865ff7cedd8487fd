// Package qr renders short URLs as QR codes. Encoding is delegated to
// skip2/go-qrcode; this package only lays the modules out at the requested
// size, margin and colours, as a PNG or as terminal text.
package qr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

// ErrEmptyContent is returned when there is nothing to encode
var ErrEmptyContent = errors.New("no content to encode")

// Color holds the module colours as #rrggbb strings
type Color struct {
	Dark  string
	Light string
}

// Options are the rendering parameters of an encoding. Margin is counted in modules.
type Options struct {
	Width  int
	Height int
	Margin int
	Color  Color
}

// DefaultOptions returns the parameters used on the result page
func DefaultOptions() Options {
	return Options{
		Width:  200,
		Height: 200,
		Margin: 1,
		Color: Color{
			Dark:  "#333333",
			Light: "#ffffff",
		},
	}
}

// Image is an encoded QR symbol ready to be rendered
type Image struct {
	modules [][]bool
	opts    Options
	dark    color.RGBA
	light   color.RGBA
}

// Encode builds the QR symbol for text
func Encode(text string, opts Options) (*Image, error) {
	if text == "" {
		return nil, ErrEmptyContent
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("invalid margin %d", opts.Margin)
	}

	dark, err := parseHexColor(opts.Color.Dark)
	if err != nil {
		return nil, fmt.Errorf("invalid dark color: %w", err)
	}
	light, err := parseHexColor(opts.Color.Light)
	if err != nil {
		return nil, fmt.Errorf("invalid light color: %w", err)
	}

	code, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	code.DisableBorder = true

	return &Image{
		modules: withMargin(code.Bitmap(), opts.Margin),
		opts:    opts,
		dark:    dark,
		light:   light,
	}, nil
}

// Size returns the number of modules per side, margin included
func (i *Image) Size() int {
	return len(i.modules)
}

// Dark reports whether the module at (x, y) is dark
func (i *Image) Dark(x, y int) bool {
	return i.modules[y][x]
}

// Options returns the parameters the image was encoded with
func (i *Image) Options() Options {
	return i.opts
}

// Image rasterises the symbol onto a Width x Height canvas
func (i *Image) Image() image.Image {
	w, h := i.opts.Width, i.opts.Height
	n := len(i.modules)
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{i.light, i.dark})

	for y := 0; y < h; y++ {
		my := y * n / h
		for x := 0; x < w; x++ {
			if i.modules[my][x*n/w] {
				img.SetColorIndex(x, y, 1)
			}
		}
	}

	return img
}

// PNG returns the rasterised symbol encoded as PNG
func (i *Image) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Text renders the symbol with Unicode half blocks, two module rows per line.
// Dark modules are drawn as blocks; set inverse for terminals with a light
// foreground on a dark background.
func (i *Image) Text(inverse bool) string {
	n := len(i.modules)
	at := func(x, y int) bool {
		if y >= n {
			return inverse
		}
		return i.modules[y][x] != inverse
	}

	var sb strings.Builder
	for y := 0; y < n; y += 2 {
		for x := 0; x < n; x++ {
			top, bottom := at(x, y), at(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders the symbol for a light-on-dark terminal
func (i *Image) String() string {
	return i.Text(true)
}

// Encoder adapts Encode to the injected encoder capability of the result page
type Encoder struct{}

// Encode builds the QR symbol for text unless ctx is already done
func (Encoder) Encode(ctx context.Context, text string, opts Options) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Encode(text, opts)
}

func withMargin(bitmap [][]bool, margin int) [][]bool {
	n := len(bitmap) + 2*margin
	out := make([][]bool, n)
	for y := range out {
		out[y] = make([]bool, n)
	}
	for y, row := range bitmap {
		copy(out[y+margin][margin:], row)
	}
	return out
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
