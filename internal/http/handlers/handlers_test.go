// README: Handler tests with stub planner and enricher.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tourweaver/internal/enrich"
	"tourweaver/internal/http/handlers"
	"tourweaver/internal/http/web"
	"tourweaver/internal/itinerary"
	"tourweaver/internal/maps"
	"tourweaver/internal/service"
)

// stubPlanner is a test double for handlers.Planner.
type stubPlanner struct {
	result service.ActionResult
	got    *itinerary.TripRequest
}

func (s *stubPlanner) Plan(_ context.Context, req itinerary.TripRequest) service.ActionResult {
	s.got = &req
	return s.result
}

// stubEnricher is a test double for handlers.Enricher.
type stubEnricher struct {
	photo  enrich.PhotoResult
	hotels []itinerary.Hotel
	query  maps.HotelQuery
}

func (s *stubEnricher) Photo(context.Context, string) enrich.PhotoResult { return s.photo }

func (s *stubEnricher) Hotels(_ context.Context, q maps.HotelQuery) []itinerary.Hotel {
	s.query = q
	return s.hotels
}

func successResult() service.ActionResult {
	v := itinerary.NewView(&itinerary.Result{
		Destinations: []itinerary.Destination{{Name: "Fushimi Inari Taisha", ImageURL: "https://img.example/inari.jpg", ImageFound: true}},
		Itinerary:    []itinerary.ItineraryDay{{Day: 1, Activities: "Gion walk\nTea ceremony"}},
	})
	v.Location = "Kyoto"
	return service.ActionResult{Success: true, Data: &v}
}

func buildTestRouter(planner handlers.Planner, enricher handlers.Enricher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tmpl, err := web.Templates()
	if err != nil {
		panic(err)
	}
	r.SetHTMLTemplate(tmpl)

	pages := handlers.NewPageHandler(planner)
	r.GET("/", pages.Form)
	r.POST("/plan", pages.Plan)
	r.POST("/api/itinerary", handlers.NewItineraryHandler(planner).Generate)
	eh := handlers.NewEnrichHandler(enricher)
	r.GET("/api/photos", eh.Photo)
	r.GET("/api/hotels", eh.Hotels)
	xh := handlers.NewExportHandler()
	r.POST("/api/packing-list/export", xh.PackingList)
	r.GET("/api/booking/qr", xh.BookingQR)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var validBody = map[string]any{
	"location":      "Kyoto",
	"noOfDays":      5,
	"checkInDate":   "2025-04-01",
	"adults":        2,
	"minUserRating": 4,
	"budget":        "Mid-Range",
}

func TestGenerate_Success(t *testing.T) {
	planner := &stubPlanner{result: successResult()}
	w := doJSON(buildTestRouter(planner, &stubEnricher{}), http.MethodPost, "/api/itinerary", validBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body)
	}
	var got struct {
		Success bool `json:"success"`
		Data    struct {
			Destinations struct {
				Available bool `json:"available"`
			} `json:"destinations"`
			Hotels struct {
				Placeholder string `json:"placeholder"`
			} `json:"hotels"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success || !got.Data.Destinations.Available || got.Data.Hotels.Placeholder != itinerary.PlaceholderHotels {
		t.Errorf("body = %s", w.Body)
	}
	if planner.got == nil || planner.got.Budget != itinerary.BudgetMid || planner.got.MinRating != 4 {
		t.Errorf("planner received %+v", planner.got)
	}
}

func TestGenerate_InvalidJSON(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubEnricher{})
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	planner := &stubPlanner{}
	body := map[string]any{"location": "K", "noOfDays": 40, "checkInDate": "tomorrow", "adults": 0}
	w := doJSON(buildTestRouter(planner, &stubEnricher{}), http.MethodPost, "/api/itinerary", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if planner.got != nil {
		t.Error("planner should not run for an invalid request")
	}
	if !strings.Contains(w.Body.String(), "noOfDays cannot exceed 30") {
		t.Errorf("body = %s", w.Body)
	}
}

func TestGenerate_Failure(t *testing.T) {
	planner := &stubPlanner{result: service.ActionResult{Error: "Failed to generate itinerary. no usable itinerary output: timeout"}}
	w := doJSON(buildTestRouter(planner, &stubEnricher{}), http.MethodPost, "/api/itinerary", validBody)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var got service.ActionResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Success || got.Data != nil || !strings.HasPrefix(got.Error, "Failed to generate itinerary.") {
		t.Errorf("result = %+v", got)
	}
}

func TestForm(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubEnricher{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, want := range []string{`name="location"`, `name="noOfDays"`, `name="checkInDate"`, `step="0.5"`, `<option value="Luxury"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("form lacks %s", want)
		}
	}
}

func planForm() url.Values {
	return url.Values{
		"location":      {"Kyoto"},
		"noOfDays":      {"5"},
		"checkInDate":   {"2025-04-01"},
		"adults":        {"2"},
		"minUserRating": {"4.5"},
		"budget":        {"Luxury"},
	}
}

func TestPlanPage_Success(t *testing.T) {
	planner := &stubPlanner{result: successResult()}
	w := doForm(buildTestRouter(planner, &stubEnricher{}), "/plan", planForm())

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Fushimi Inari Taisha", "<li>Tea ceremony</li>", itinerary.PlaceholderHotels, itinerary.PlaceholderPackingList} {
		if !strings.Contains(body, want) {
			t.Errorf("result page lacks %q", want)
		}
	}
	if planner.got.MinRating != 4.5 || planner.got.Budget != itinerary.BudgetLuxury {
		t.Errorf("form binding = %+v", planner.got)
	}
}

func TestPlanPage_Failure(t *testing.T) {
	planner := &stubPlanner{result: service.ActionResult{Error: "Failed to generate itinerary. upstream unavailable"}}
	w := doForm(buildTestRouter(planner, &stubEnricher{}), "/plan", planForm())

	body := w.Body.String()
	if !strings.Contains(body, `role="alert"`) || !strings.Contains(body, "Failed to generate itinerary. upstream unavailable") {
		t.Errorf("failure notification missing:\n%s", body)
	}
	if strings.Contains(body, `class="tabs"`) {
		t.Error("no itinerary should be rendered on failure")
	}
}

func TestPlanPage_BadForm(t *testing.T) {
	form := planForm()
	form.Set("noOfDays", "five")
	w := doForm(buildTestRouter(&stubPlanner{}, &stubEnricher{}), "/plan", form)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPhoto(t *testing.T) {
	enricher := &stubEnricher{photo: enrich.PhotoResult{URL: "https://img.example/x.jpg", Found: true}}
	r := buildTestRouter(&stubPlanner{}, enricher)

	w := doJSON(r, http.MethodGet, "/api/photos?query=Gion+Kyoto", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"found":true`) {
		t.Errorf("got %d %s", w.Code, w.Body)
	}
	if w := doJSON(r, http.MethodGet, "/api/photos", nil); w.Code != http.StatusBadRequest {
		t.Errorf("empty query: expected 400, got %d", w.Code)
	}
}

func TestHotels(t *testing.T) {
	enricher := &stubEnricher{hotels: []itinerary.Hotel{}}
	r := buildTestRouter(&stubPlanner{}, enricher)

	w := doJSON(r, http.MethodGet, "/api/hotels?location=Kyoto&minRating=4.5&budget=Luxury", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"hotels":[]}` {
		t.Errorf("got %d %s", w.Code, w.Body)
	}
	if enricher.query.MinRating != 4.5 || enricher.query.Budget != itinerary.BudgetLuxury {
		t.Errorf("query = %+v", enricher.query)
	}
	if w := doJSON(r, http.MethodGet, "/api/hotels?location=Kyoto&minRating=nine", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad rating: expected 400, got %d", w.Code)
	}
}

func TestPackingListExport(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubEnricher{})
	body := map[string]any{"location": "Kyoto, Japan", "items": []string{"Umbrella", "Yen"}}

	w := doJSON(r, http.MethodPost, "/api/packing-list/export?format=txt", body)
	if w.Code != http.StatusOK || w.Body.String() != "[ ] Umbrella\n[ ] Yen\n" {
		t.Errorf("txt export = %d %q", w.Code, w.Body)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "packing-list-kyoto-japan.txt") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	w = doJSON(r, http.MethodPost, "/api/packing-list/export?format=pdf", body)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Errorf("pdf export = %d", w.Code)
	}

	form := url.Values{"location": {"Kyoto"}, "items": {"Umbrella", "Yen"}}
	if w := doForm(r, "/api/packing-list/export?format=txt", form); w.Body.String() != "[ ] Umbrella\n[ ] Yen\n" {
		t.Errorf("form export = %q", w.Body)
	}

	if w := doJSON(r, http.MethodPost, "/api/packing-list/export?format=docx", body); w.Code != http.StatusBadRequest {
		t.Errorf("unknown format: expected 400, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/packing-list/export", map[string]any{"items": []string{}}); w.Code != http.StatusBadRequest {
		t.Errorf("empty list: expected 400, got %d", w.Code)
	}
}

func TestBookingQR(t *testing.T) {
	r := buildTestRouter(&stubPlanner{}, &stubEnricher{})

	w := doJSON(r, http.MethodGet, "/api/booking/qr?url="+url.QueryEscape("https://www.booking.com/hotel/jp/kanra.html"), nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Errorf("got %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if w := doJSON(r, http.MethodGet, "/api/booking/qr?url=javascript:alert(1)", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
