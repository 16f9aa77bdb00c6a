// Package imageembed turns local image files into Base64 data URIs for inline
// embedding, downsizing anything larger than the configured bound.
package imageembed

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"os"
	"time"

	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/security"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder
)

// TransparentPixel is a 1x1 transparent PNG, served when an image is missing.
const TransparentPixel = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAAC0lEQVR42mNgAAIAAAUAAen63NgAAAAASUVORK5CYII="

// FallbackDataURI is the data URI form of TransparentPixel.
const FallbackDataURI = "data:image/png;base64," + TransparentPixel

const (
	DefaultMaxDimension = 800
	DefaultTTL          = 10 * time.Minute
	jpegQuality         = 85
)

// Embedder encodes images and caches the results by path.
type Embedder struct {
	maxDimension int
	cache        *cache.Cache
}

// New returns an Embedder. Non-positive arguments fall back to the defaults.
func New(maxDimension int, ttl time.Duration) *Embedder {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Embedder{
		maxDimension: maxDimension,
		cache:        cache.New(ttl, 2*ttl),
	}
}

// DataURI returns path as a data URI. It never fails: unreadable or
// undecodable files yield FallbackDataURI.
func (e *Embedder) DataURI(path string) string {
	if cached, ok := e.cache.Get(path); ok {
		return cached.(string)
	}

	uri, err := e.encode(path)
	if err != nil {
		logger.Log.Warnw("Image not embeddable, using transparent pixel", "path", path, "error", err)
		uri = FallbackDataURI
	}

	e.cache.SetDefault(path, uri)
	return uri
}

func (e *Embedder) encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if check := security.ValidateImage(path, data); !check.Valid {
		security.DefaultLogger().LogAssetRejected(context.Background(), path, check.Error)
		return "", errors.New(check.Error)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= e.maxDimension && bounds.Dy() <= e.maxDimension {
		return toDataURI("image/"+format, data), nil
	}

	resized := resize(img, e.maxDimension)

	var buf bytes.Buffer
	mime := "image/png"
	if format == "jpeg" {
		mime = "image/jpeg"
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	} else {
		// keep transparency for png, gif and webp sources
		err = png.Encode(&buf, resized)
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return toDataURI(mime, buf.Bytes()), nil
}

// resize scales img so its longer side equals maxDimension, keeping aspect ratio
func resize(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var newWidth, newHeight int
	if width > height {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func toDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
