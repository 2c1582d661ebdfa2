package ai

import (
	"errors"
	"fmt"
	"strings"

	"tourweaver/internal/itinerary"
)

// ErrNoUsableOutput wraps every generation failure: transport errors, empty
// replies, unrecognized shapes and contract violations.
var ErrNoUsableOutput = errors.New("no usable itinerary output")

// decodeOutput turns a raw model reply into a validated result.
func decodeOutput(raw string, req itinerary.TripRequest) (*itinerary.Result, error) {
	clean := cleanJSONString(raw)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", ErrNoUsableOutput)
	}
	res, err := itinerary.Decode([]byte(clean))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoUsableOutput, err)
	}
	if err := itinerary.ValidateResult(res, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoUsableOutput, err)
	}
	return res, nil
}

// cleanJSONString removes markdown code fences (```json ... ```) and any prose
// around the outermost JSON object.
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "{") {
		return input
	}
	start, end := strings.IndexByte(input, '{'), strings.LastIndexByte(input, '}')
	if start >= 0 && end > start {
		return input[start : end+1]
	}
	return input
}
