// README: Result normalizer; probes the historical wire shapes in a fixed order.
package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Shape identifies one of the wire layouts the model has produced over time.
type Shape string

const (
	// ShapeFlat is {destinations, itinerary, hotels, packingList}.
	ShapeFlat Shape = "flat"
	// ShapeWrapped is {items: [{title, type, items: [...]}]}.
	ShapeWrapped Shape = "wrapped"
	// ShapeDoubleNested is the wrapper whose section items hold another items/properties level.
	ShapeDoubleNested Shape = "double_nested"
)

// ErrUnrecognizedShape is returned when no shape parser accepts the payload.
var ErrUnrecognizedShape = errors.New("unrecognized itinerary shape")

// rawSections maps each located section to its undecoded payload.
type rawSections map[Section]json.RawMessage

type shapeParser struct {
	shape Shape
	parse func(top map[string]json.RawMessage) (rawSections, bool)
}

// shapeParsers is the fallback order. The first parser that accepts wins.
var shapeParsers = []shapeParser{
	{shape: ShapeFlat, parse: parseFlat},
	{shape: ShapeWrapped, parse: parseWrapped},
	{shape: ShapeDoubleNested, parse: parseDoubleNested},
}

// Decode locates every section in raw and decodes it into a Result. A section that
// is missing, or present but undecodable, is left empty; the latter is listed in
// Result.Degraded. Decode fails only when no known shape matches.
func Decode(raw []byte) (*Result, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}
	for _, p := range shapeParsers {
		sections, ok := p.parse(top)
		if !ok {
			continue
		}
		res := decodeSections(sections)
		res.Shape = p.shape
		return res, nil
	}
	return nil, ErrUnrecognizedShape
}

var flatKeys = map[string]Section{
	"destinations": SectionDestinations,
	"itinerary":    SectionItinerary,
	"hotels":       SectionHotels,
	"packingList":  SectionPackingList,
	"packing_list": SectionPackingList,
}

func parseFlat(top map[string]json.RawMessage) (rawSections, bool) {
	out := rawSections{}
	for key, sec := range flatKeys {
		if raw, ok := top[key]; ok && !isNull(raw) {
			out[sec] = raw
		}
	}
	// search_parameters next to a flat hotel list forms the envelope.
	if params, ok := top["search_parameters"]; ok && !isNull(params) {
		if hotels, ok := out[SectionHotels]; ok && isJSONArray(hotels) {
			out[SectionHotels] = envelopeJSON(params, hotels)
		}
	}
	return out, len(out) > 0
}

type wrappedSection struct {
	Title            string          `json:"title"`
	Type             string          `json:"type"`
	Items            json.RawMessage `json:"items"`
	Hotels           json.RawMessage `json:"hotels"`
	SearchParameters json.RawMessage `json:"search_parameters"`
}

// payload returns the section body. Hotel sections sometimes carry the envelope
// fields on the section itself instead of under items.
func (s wrappedSection) payload() json.RawMessage {
	if len(s.Items) > 0 && !isNull(s.Items) {
		return s.Items
	}
	if len(s.Hotels) > 0 && !isNull(s.Hotels) {
		if len(s.SearchParameters) > 0 && !isNull(s.SearchParameters) {
			return envelopeJSON(s.SearchParameters, s.Hotels)
		}
		return s.Hotels
	}
	return nil
}

func wrappedList(top map[string]json.RawMessage) ([]wrappedSection, bool) {
	raw, ok := top["items"]
	if !ok {
		return nil, false
	}
	var list []wrappedSection
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return nil, false
	}
	return list, true
}

func parseWrapped(top map[string]json.RawMessage) (rawSections, bool) {
	list, ok := wrappedList(top)
	if !ok {
		return nil, false
	}
	out := rawSections{}
	for _, s := range list {
		sec, ok := classifySection(s.Title, s.Type)
		if !ok {
			continue
		}
		body := s.payload()
		if body == nil {
			continue
		}
		if _, nested := unwrapContainer(sec, body); nested {
			return nil, false
		}
		out[sec] = body
	}
	return out, len(out) > 0
}

func parseDoubleNested(top map[string]json.RawMessage) (rawSections, bool) {
	list, ok := wrappedList(top)
	if !ok {
		return nil, false
	}
	out := rawSections{}
	for _, s := range list {
		sec, ok := classifySection(s.Title, s.Type)
		if !ok {
			continue
		}
		body := s.payload()
		if body == nil {
			continue
		}
		if inner, nested := unwrapContainer(sec, body); nested {
			body = inner
		}
		out[sec] = body
	}
	return out, len(out) > 0
}

// unwrapContainer reports whether body is an {items|properties: ...} object and
// returns the inner value. A hotel envelope is not a container; a hotel container
// with sibling search_parameters unwraps to an envelope.
func unwrapContainer(sec Section, body json.RawMessage) (json.RawMessage, bool) {
	if !isJSONObject(body) {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, false
	}
	if sec == SectionHotels {
		if _, ok := obj["hotels"]; ok {
			return nil, false
		}
	}
	for _, key := range []string{"items", "properties"} {
		inner, ok := obj[key]
		if !ok || isNull(inner) {
			continue
		}
		// Keep hotel search parameters given next to the nested list.
		if params, ok := obj["search_parameters"]; ok && sec == SectionHotels && !isNull(params) && isJSONArray(inner) {
			return envelopeJSON(params, inner), true
		}
		return inner, true
	}
	return nil, false
}

// classifySection maps a wrapper title (preferred) or type to a section.
func classifySection(title, typ string) (Section, bool) {
	for _, label := range []string{title, typ} {
		l := strings.ToLower(label)
		switch {
		case l == "":
			continue
		case strings.Contains(l, "destination"):
			return SectionDestinations, true
		case strings.Contains(l, "itinerary"), strings.Contains(l, "day plan"), strings.Contains(l, "schedule"):
			return SectionItinerary, true
		case strings.Contains(l, "hotel"), strings.Contains(l, "lodging"), strings.Contains(l, "accommodation"):
			return SectionHotels, true
		case strings.Contains(l, "pack"):
			return SectionPackingList, true
		}
	}
	return "", false
}

func decodeSections(sections rawSections) *Result {
	res := &Result{}
	degrade := func(s Section) { res.Degraded = append(res.Degraded, s) }

	if raw, ok := sections[SectionDestinations]; ok {
		if list, err := decodeList[Destination](raw); err == nil {
			res.Destinations = list
		} else {
			degrade(SectionDestinations)
		}
	}
	if raw, ok := sections[SectionItinerary]; ok {
		if list, err := decodeList[ItineraryDay](raw); err == nil {
			sort.SliceStable(list, func(i, j int) bool { return list[i].Day < list[j].Day })
			res.Itinerary = list
		} else {
			degrade(SectionItinerary)
		}
	}
	if raw, ok := sections[SectionHotels]; ok {
		if hs, ok := decodeHotels(raw); ok {
			res.Hotels = hs.hotels
			res.SearchParameters = hs.params
		} else {
			degrade(SectionHotels)
		}
	}
	if raw, ok := sections[SectionPackingList]; ok {
		if list, err := decodePackingList(raw); err == nil {
			res.PackingList = list
		} else {
			degrade(SectionPackingList)
		}
	}
	sort.Slice(res.Degraded, func(i, j int) bool { return res.Degraded[i] < res.Degraded[j] })
	return res
}

// decodeList decodes a JSON array element by element, skipping null entries.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(elems))
	for i, e := range elems {
		if isNull(e) {
			continue
		}
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodePackingList accepts strings or {item|name} objects.
func decodePackingList(raw json.RawMessage) ([]string, error) {
	elems, err := decodeList[json.RawMessage](raw)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
			continue
		}
		var obj struct {
			Item string `json:"item"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(e, &obj); err != nil {
			return nil, err
		}
		if s := firstNonEmpty(obj.Item, obj.Name); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func envelopeJSON(params, hotels json.RawMessage) json.RawMessage {
	b, _ := json.Marshal(map[string]json.RawMessage{
		"search_parameters": params,
		"hotels":            hotels,
	})
	return b
}

func isJSONArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isJSONObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
