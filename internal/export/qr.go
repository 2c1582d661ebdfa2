package export

import (
	"errors"
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrInvalidBookingURL is returned for anything but an absolute http(s) URL.
var ErrInvalidBookingURL = errors.New("booking url must be an absolute http(s) URL")

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// BookingQR encodes a hotel booking link as a PNG QR code. size is the image
// edge in pixels; zero selects the default.
func BookingQR(link string, size int) ([]byte, error) {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidBookingURL
	}
	switch {
	case size <= 0:
		size = defaultQRSize
	case size > maxQRSize:
		size = maxQRSize
	}
	png, err := qrcode.Encode(u.String(), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
