package enrich

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
	"tourweaver/internal/photos"
)

const fallback = "https://placehold.co/600x400?text=No+Image"

// stubFinder answers from a fixed map and records the peak number of concurrent calls.
type stubFinder struct {
	urls  map[string]string
	err   error
	delay time.Duration

	mu      sync.Mutex
	queries []string
	active  int32
	peak    int32
}

func (f *stubFinder) FindPhoto(ctx context.Context, query string) (string, error) {
	n := atomic.AddInt32(&f.active, 1)
	defer atomic.AddInt32(&f.active, -1)
	for {
		p := atomic.LoadInt32(&f.peak)
		if n <= p || atomic.CompareAndSwapInt32(&f.peak, p, n) {
			break
		}
	}
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return "", f.err
	}
	if u, ok := f.urls[query]; ok {
		return u, nil
	}
	return "", photos.ErrPhotoNotFound
}

type stubSearcher struct {
	hotels []itinerary.Hotel
	err    error
}

func (s stubSearcher) SearchHotels(context.Context, maps.HotelQuery) ([]itinerary.Hotel, error) {
	return s.hotels, s.err
}

func TestDestinationImages(t *testing.T) {
	finder := &stubFinder{urls: map[string]string{
		"Gion Kyoto": "https://img.example/gion.jpg",
		"Kinkaku-ji": "https://img.example/kinkakuji.jpg",
	}}
	svc := NewService(finder, stubSearcher{}, Config{FallbackURL: fallback, Concurrency: 2}, nil)

	in := []itinerary.Destination{
		{Name: "Gion", ImageHint: "Gion Kyoto"},
		{Name: "Kinkaku-ji"},
		{Name: "Ryoan-ji", ImageHint: "Ryoanji Kyoto"},
		{Name: "Nijo Castle", ImageURL: "https://img.example/nijo.jpg"},
	}
	out := svc.DestinationImages(context.Background(), in)

	want := []itinerary.Destination{
		{Name: "Gion", ImageHint: "Gion Kyoto", ImageURL: "https://img.example/gion.jpg", ImageFound: true},
		{Name: "Kinkaku-ji", ImageURL: "https://img.example/kinkakuji.jpg", ImageFound: true},
		{Name: "Ryoan-ji", ImageHint: "Ryoanji Kyoto", ImageURL: fallback},
		{Name: "Nijo Castle", ImageURL: "https://img.example/nijo.jpg", ImageFound: true},
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %+v, want %+v", i, out[i], want[i])
		}
	}
	if in[0].ImageURL != "" {
		t.Error("input slice was modified")
	}
	if len(finder.queries) != 3 {
		t.Errorf("lookups = %v, want 3 (existing URL skipped)", finder.queries)
	}
}

func TestDestinationImages_BoundedConcurrency(t *testing.T) {
	finder := &stubFinder{delay: 20 * time.Millisecond}
	svc := NewService(finder, stubSearcher{}, Config{FallbackURL: fallback, Concurrency: 2}, nil)

	dests := make([]itinerary.Destination, 8)
	for i := range dests {
		dests[i] = itinerary.Destination{Name: string(rune('A' + i))}
	}
	svc.DestinationImages(context.Background(), dests)

	if peak := atomic.LoadInt32(&finder.peak); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestPhoto_FailureYieldsFallback(t *testing.T) {
	for name, err := range map[string]error{
		"network":   errors.New("dial tcp: connection refused"),
		"not found": photos.ErrPhotoNotFound,
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&stubFinder{err: err}, stubSearcher{}, Config{FallbackURL: fallback}, nil)
			got := svc.Photo(context.Background(), "Alfama Lisbon")
			if got.URL != fallback || got.Found {
				t.Errorf("Photo = %+v", got)
			}
		})
	}
}

func TestPhoto_MissingCredentialYieldsFallback(t *testing.T) {
	svc := NewService(photos.NewFinder("", fallback), stubSearcher{}, Config{FallbackURL: fallback}, nil)
	if got := svc.Photo(context.Background(), "Alfama Lisbon"); got.URL != fallback || got.Found {
		t.Errorf("Photo = %+v", got)
	}
}

func TestHotels(t *testing.T) {
	q := maps.HotelQuery{Location: "Kyoto", MinRating: 4}

	ok := NewService(&stubFinder{}, stubSearcher{hotels: []itinerary.Hotel{{Name: "Kanra", ReviewRating: 4.6}}}, Config{}, nil)
	if got := ok.Hotels(context.Background(), q); len(got) != 1 {
		t.Errorf("Hotels = %+v", got)
	}

	failing := NewService(&stubFinder{}, stubSearcher{err: maps.ErrMissingAPIKey}, Config{}, nil)
	got := failing.Hotels(context.Background(), q)
	if got == nil || len(got) != 0 {
		t.Errorf("failure should yield an empty, non-nil list, got %#v", got)
	}
}
