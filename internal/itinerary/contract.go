package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContractViolation is returned when a decoded result breaks the output contract.
// There is no partial acceptance: one bad entity rejects the payload.
var ErrContractViolation = errors.New("itinerary contract violation")

// ValidateResult checks entity-level rules of a decoded result against the request
// that produced it. Missing sections are allowed; malformed entities are not.
func ValidateResult(res *Result, req TripRequest) error {
	if res == nil {
		return fmt.Errorf("%w: empty result", ErrContractViolation)
	}

	var problems []string
	if err := validate.Struct(res); err != nil {
		problems = append(problems, describe(err)...)
	}
	for i, d := range res.Itinerary {
		if req.Days > 0 && d.Day > req.Days {
			problems = append(problems, fmt.Sprintf("itinerary[%d].day %d is outside a %d-day trip", i, d.Day, req.Days))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrContractViolation, strings.Join(problems, "; "))
	}
	return nil
}
