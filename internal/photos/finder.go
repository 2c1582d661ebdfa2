// README: Stock-photo lookup for destination cards.
package photos

import (
	"context"
	"errors"
)

// ErrPhotoNotFound means the lookup ran but produced no usable image.
var ErrPhotoNotFound = errors.New("photo not found")

// Finder resolves a descriptive query to an image URL.
type Finder interface {
	FindPhoto(ctx context.Context, query string) (string, error)
}

// NewFinder returns the Unsplash finder when accessKey is set and the
// placeholder finder otherwise.
func NewFinder(accessKey, fallbackURL string, opts ...UnsplashOption) Finder {
	if accessKey == "" {
		return FallbackFinder{URL: fallbackURL}
	}
	return NewUnsplashFinder(accessKey, opts...)
}

// FallbackFinder never finds anything; it hands back the placeholder image with
// ErrPhotoNotFound.
type FallbackFinder struct {
	URL string
}

func (f FallbackFinder) FindPhoto(context.Context, string) (string, error) {
	return f.URL, ErrPhotoNotFound
}
