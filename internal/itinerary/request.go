package itinerary

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ErrInvalidRequest is returned when a TripRequest fails validation.
var ErrInvalidRequest = errors.New("invalid trip request")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize returns a copy with surrounding whitespace removed from text fields.
func (r TripRequest) Normalize() TripRequest {
	r.Location = strings.TrimSpace(r.Location)
	r.CheckInDate = strings.TrimSpace(r.CheckInDate)
	r.Budget = BudgetTier(strings.TrimSpace(string(r.Budget)))
	return r
}

// Validate checks the request against its declarative contract.
func (r TripRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(describe(err), "; "))
	}
	return nil
}

// CheckIn returns the parsed check-in date. Call only after Validate succeeded.
func (r TripRequest) CheckIn() time.Time {
	t, _ := time.Parse(DateLayout, r.CheckInDate)
	return t
}

// BudgetLabel is the budget as shown to the model and the user.
func (r TripRequest) BudgetLabel() string {
	if r.Budget == "" {
		return "Not specified"
	}
	return string(r.Budget)
}

func describe(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describeField(fe))
	}
	return out
}

func describeField(fe validator.FieldError) string {
	name := fe.Namespace()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return name + " must be a date formatted as YYYY-MM-DD"
	case "http_url", "url":
		return name + " must be an absolute http(s) URL"
	default:
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}
