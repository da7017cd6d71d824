// Package imaging re-encodes uploaded images as size-capped JPEG data URIs
// so they fit inside per-record limits of the backing store.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif" // register decoders for the upload formats we accept
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Options controls one compression call site.
type Options struct {
	// MaxWidth is the output pixel width. Sources narrower than MaxWidth are
	// scaled UP to it — this matches the long-standing site behavior and is
	// kept deliberately (flagged for product review, do not "fix" here).
	MaxWidth int

	// Quality is the JPEG quality factor, 1–100.
	Quality int
}

// Presets per call site. Trip and place imagery is capped tighter than the
// full-bleed banners.
var (
	TripImage    = Options{MaxWidth: 800, Quality: 78}
	PlaceImage   = Options{MaxWidth: 800, Quality: 75}
	RegionBanner = Options{MaxWidth: 900, Quality: 75}
	HeroBanner   = Options{MaxWidth: 1200, Quality: 70}
)

// Compress decodes data, scales it to opts.MaxWidth preserving aspect ratio,
// and returns a base64 JPEG data URI ("data:image/jpeg;base64,....").
//
// The pipeline checks ctx between its stages (decode, scale, encode), so a
// caller-supplied deadline bounds a stuck or oversized decode instead of
// stalling the submit indefinitely. On any error the caller must abort the
// submission; nothing partial is ever returned.
func Compress(ctx context.Context, data []byte, opts Options) (string, error) {
	if opts.MaxWidth <= 0 {
		return "", fmt.Errorf("imaging.Compress: max width must be positive, got %d", opts.MaxWidth)
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return "", fmt.Errorf("imaging.Compress: quality must be in 1..100, got %d", opts.Quality)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("imaging.Compress: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("imaging.Compress: decode: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("imaging.Compress: %w", err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return "", fmt.Errorf("imaging.Compress: source image is empty")
	}

	scale := float64(opts.MaxWidth) / float64(b.Dx())
	height := int(float64(b.Dy()) * scale)
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.MaxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("imaging.Compress: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("data:image/jpeg;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := jpeg.Encode(enc, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", fmt.Errorf("imaging.Compress: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("imaging.Compress: encode: %w", err)
	}

	return buf.String(), nil
}
