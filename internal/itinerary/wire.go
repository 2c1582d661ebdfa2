package itinerary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"tourweaver/internal/types"
)

// The UnmarshalJSON methods below accept the field aliases seen across result
// revisions. Marshalling always uses the canonical names from the struct tags.

var jsonNull = []byte("null")

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), jsonNull)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (d *Destination) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var w struct {
		Name           string `json:"name"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		ImageURL       string `json:"imageUrl"`
		ImageURLSnake  string `json:"image_url"`
		ImageHint      string `json:"imageHint"`
		ImageHintSnake string `json:"image_hint"`
		ImageFound     bool   `json:"imageFound"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*d = Destination{
		Name:        firstNonEmpty(w.Name, w.Title),
		Description: strings.TrimSpace(w.Description),
		ImageURL:    firstNonEmpty(w.ImageURL, w.ImageURLSnake),
		ImageHint:   firstNonEmpty(w.ImageHint, w.ImageHintSnake),
		ImageFound:  w.ImageFound,
	}
	return nil
}

func (d *ItineraryDay) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var w struct {
		Day         json.RawMessage `json:"day"`
		Activities  json.RawMessage `json:"activities"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	day, err := decodeDayNumber(w.Day)
	if err != nil {
		return err
	}
	text, err := decodeText(w.Activities)
	if err != nil {
		return fmt.Errorf("day %d activities: %w", day, err)
	}
	if text == "" {
		if text, err = decodeText(w.Description); err != nil {
			return fmt.Errorf("day %d description: %w", day, err)
		}
	}
	*d = ItineraryDay{Day: day, Activities: text}
	return nil
}

// decodeDayNumber accepts 3, 3.0, "3" and "Day 3".
func decodeDayNumber(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || isNull(raw) {
		return 0, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(math.Round(n)), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("day: unsupported value %s", raw)
	}
	digits := strings.TrimFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if i := strings.IndexFunc(digits, func(r rune) bool { return !unicode.IsDigit(r) }); i >= 0 {
		digits = digits[:i]
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("day: no number in %q", s)
	}
	return v, nil
}

// decodeText accepts a string or a list of strings (joined by newlines).
func decodeText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return "", fmt.Errorf("expected text or list of text, got %s", raw)
	}
	return strings.TrimSpace(strings.Join(list, "\n")), nil
}

func (h *Hotel) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var w struct {
		HotelName         string          `json:"hotel_name"`
		Name              string          `json:"name"`
		HotelClass        json.RawMessage `json:"hotel_class"`
		ReviewRating      *float64        `json:"review_rating"`
		Rating            *float64        `json:"rating"`
		ReviewCount       *float64        `json:"review_count"`
		UserRatingsTotal  *float64        `json:"user_ratings_total"`
		TotalStayPrice    json.RawMessage `json:"total_stay_price"`
		TotalStayPriceINR *float64        `json:"total_stay_price_inr"`
		Currency          string          `json:"currency"`
		DealInfo          *string         `json:"deal_info"`
		BookingURL        string          `json:"bookingUrl"`
		BookingURLSnake   string          `json:"booking_url"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	out := Hotel{
		Name:       firstNonEmpty(w.HotelName, w.Name),
		Class:      decodeHotelClass(w.HotelClass),
		BookingURL: firstNonEmpty(w.BookingURL, w.BookingURLSnake),
	}
	switch {
	case w.ReviewRating != nil:
		out.ReviewRating = *w.ReviewRating
	case w.Rating != nil:
		out.ReviewRating = *w.Rating
	}
	count := w.ReviewCount
	if count == nil {
		count = w.UserRatingsTotal
	}
	if count != nil {
		n := int(math.Round(*count))
		out.ReviewCount = &n
	}
	if w.DealInfo != nil {
		out.DealInfo = strings.TrimSpace(*w.DealInfo)
	}

	price, err := decodeStayPrice(w.TotalStayPrice, w.Currency)
	if err != nil {
		return fmt.Errorf("hotel %q: %w", out.Name, err)
	}
	if price == nil && w.TotalStayPriceINR != nil {
		price = &types.Money{Amount: int64(math.Round(*w.TotalStayPriceINR)), Currency: "INR"}
	}
	out.TotalStayPrice = price

	*h = out
	return nil
}

// decodeHotelClass turns "4-star hotel", 4 or null into a display label.
func decodeHotelClass(raw json.RawMessage) string {
	if len(raw) == 0 || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return fmt.Sprintf("%s-star hotel", strconv.FormatFloat(n, 'f', -1, 64))
	}
	return ""
}

// decodeStayPrice accepts a bare number (currency from the sibling field) or a
// {amount, currency} object.
func decodeStayPrice(raw json.RawMessage, currency string) (*types.Money, error) {
	if len(raw) == 0 || isNull(raw) {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &types.Money{Amount: int64(math.Round(n)), Currency: strings.ToUpper(currency)}, nil
	}
	var m struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("total_stay_price: unsupported value %s", raw)
	}
	return &types.Money{
		Amount:   int64(math.Round(m.Amount)),
		Currency: strings.ToUpper(firstNonEmpty(m.Currency, currency)),
	}, nil
}
