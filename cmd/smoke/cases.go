// README: Smoke cases for the form, itinerary, enrichment and export routes.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 90 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency.Round(time.Millisecond))
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func kyotoRequest() map[string]any {
	return map[string]any{
		"location":      "Kyoto, Japan",
		"noOfDays":      5,
		"checkInDate":   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		"adults":        2,
		"minUserRating": 4,
		"budget":        "Mid-Range",
	}
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		httpCase("Health: server reachable", http.MethodGet, base+"/health", nil, http.StatusOK, bodyEquals("OK")),
		httpCase("Form: renders", http.MethodGet, base+"/", nil, http.StatusOK, bodyContains(`name="checkInDate"`)),

		httpCase("Itinerary: invalid request -> 400", http.MethodPost, base+"/api/itinerary", map[string]any{
			"location": "K",
			"noOfDays": 31,
		}, http.StatusBadRequest, bodyContains("noOfDays")),
		{
			Name: "Itinerary: Kyoto round trip (live)",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Live {
					return Result{Status: StatusSkip, Note: "live=false"}
				}
				return httpCase("", http.MethodPost, base+"/api/itinerary", kyotoRequest(), http.StatusOK, itineraryAvailable).Run(ctx, r)
			},
		},

		httpCase("Photos: empty query -> 400", http.MethodGet, base+"/api/photos", nil, http.StatusBadRequest, nil),
		httpCase("Photos: lookup never fails", http.MethodGet, base+"/api/photos?query="+url.QueryEscape("Kinkaku-ji Kyoto"), nil, http.StatusOK, bodyContains(`"url"`)),
		httpCase("Hotels: lookup never fails", http.MethodGet, base+"/api/hotels?location=Kyoto&minRating=4", nil, http.StatusOK, bodyContains(`"hotels"`)),

		httpCase("Export: packing list PDF", http.MethodPost, base+"/api/packing-list/export?format=pdf", map[string]any{
			"location": "Kyoto",
			"items":    []string{"Umbrella", "IC card", "Comfortable shoes"},
		}, http.StatusOK, bodyPrefix("%PDF")),
		httpCase("Export: QR rejects non-http URL -> 400", http.MethodGet, base+"/api/booking/qr?url="+url.QueryEscape("ftp://example.com"), nil, http.StatusBadRequest, nil),

		{
			Name: "Perf: /health load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/health")
			},
		},
		// Runs last: it drains this client's generation budget.
		{
			Name: "Rate limit: burst -> 429",
			Run: func(ctx context.Context, r *Runner) Result {
				return burstLimited(ctx, r, base+"/api/itinerary")
			},
		},
	}
}

type bodyCheck func(body []byte) error

func bodyEquals(want string) bodyCheck {
	return func(body []byte) error {
		if string(body) != want {
			return fmt.Errorf("body=%q", body)
		}
		return nil
	}
}

func bodyContains(want string) bodyCheck {
	return func(body []byte) error {
		if !bytes.Contains(body, []byte(want)) {
			return fmt.Errorf("body lacks %q", want)
		}
		return nil
	}
}

func bodyPrefix(want string) bodyCheck {
	return func(body []byte) error {
		if !bytes.HasPrefix(body, []byte(want)) {
			return fmt.Errorf("body does not start with %q", want)
		}
		return nil
	}
}

func itineraryAvailable(body []byte) error {
	var res struct {
		Success bool `json:"success"`
		Data    struct {
			Destinations struct {
				Available bool `json:"available"`
			} `json:"destinations"`
			Itinerary struct {
				Available bool `json:"available"`
			} `json:"itinerary"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return err
	}
	if !res.Success || !res.Data.Destinations.Available || !res.Data.Itinerary.Available {
		return fmt.Errorf("incomplete itinerary: %.120s", body)
	}
	return nil
}

func httpCase(name, method, url string, body any, wantStatus int, check bodyCheck) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = bytes.NewReader(b)
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			req.Header.Set("Content-Type", "application/json")
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			defer resp.Body.Close()
			payload, _ := io.ReadAll(resp.Body)
			latency := time.Since(start)

			if resp.StatusCode != wantStatus {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
			}
			if check != nil {
				if err := check(payload); err != nil {
					return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
				}
			}
			return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func burstLimited(ctx context.Context, r *Runner, url string) Result {
	var limited atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	// Invalid bodies pass the limiter first, so no generation is triggered.
	for i := 0; i < 4*r.cfg.Concurrency; i++ {
		g.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(`{}`))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			resp, err := r.httpc.Do(req)
			if err != nil {
				return err
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests {
				limited.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	if limited.Load() == 0 {
		return Result{Status: StatusFail, Note: "no request was limited"}
	}
	return Result{Status: StatusPass, Note: fmt.Sprintf("limited=%d", limited.Load())}
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	var count, errCount atomic.Int64
	end := time.Now().Add(r.cfg.Duration)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Concurrency; i++ {
		g.Go(func() error {
			for time.Now().Before(end) && ctx.Err() == nil {
				req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
				if err != nil {
					return err
				}
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
				count.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}
