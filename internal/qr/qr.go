// Package qr encodes the public LayerMap URL as a QR code image.
package qr

import (
	"errors"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultURL is where the public LayerMap deployment lives.
const DefaultURL = "https://layer-map.vercel.app/"

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 512

// ErrInvalidURL is returned for targets that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("qr target must be an absolute http or https URL")

// Validate checks that target can be scanned into a browser.
func Validate(target string) error {
	u, err := url.Parse(target)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, target)
	}
	return nil
}

// PNG encodes target as a square PNG of the given size. A size of zero or
// less uses DefaultSize.
func PNG(target string, size int) ([]byte, error) {
	if err := Validate(target); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return png, nil
}
