package itinerary

import "encoding/json"

type hotelSection struct {
	hotels []Hotel
	params *HotelSearchParameters
}

// hotelParsers are tried in order: a bare list, then the envelope.
var hotelParsers = []func(json.RawMessage) (hotelSection, bool){
	parseHotelList,
	parseHotelEnvelope,
}

func decodeHotels(raw json.RawMessage) (hotelSection, bool) {
	for _, parse := range hotelParsers {
		if hs, ok := parse(raw); ok {
			return hs, true
		}
	}
	return hotelSection{}, false
}

func parseHotelList(raw json.RawMessage) (hotelSection, bool) {
	if !isJSONArray(raw) {
		return hotelSection{}, false
	}
	list, err := decodeList[Hotel](raw)
	if err != nil {
		return hotelSection{}, false
	}
	return hotelSection{hotels: list}, true
}

func parseHotelEnvelope(raw json.RawMessage) (hotelSection, bool) {
	if !isJSONObject(raw) {
		return hotelSection{}, false
	}
	var env struct {
		SearchParameters *HotelSearchParameters `json:"search_parameters"`
		Hotels           json.RawMessage        `json:"hotels"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return hotelSection{}, false
	}
	out := hotelSection{params: env.SearchParameters}
	if len(env.Hotels) == 0 || isNull(env.Hotels) {
		return out, env.SearchParameters != nil
	}
	list, err := decodeList[Hotel](env.Hotels)
	if err != nil {
		return hotelSection{}, false
	}
	out.hotels = list
	return out, true
}
