package ai

import "github.com/google/generative-ai-go/genai"

// itinerarySchema describes the flat result object to Gemini's constrained decoder.
var itinerarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"destinations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
					"imageHint": {
						Type:        genai.TypeString,
						Description: "One or two keywords for a photo search, including the destination name.",
					},
				},
				Required: []string{"name", "description", "imageHint"},
			},
		},
		"itinerary": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"day":        {Type: genai.TypeInteger},
					"activities": {Type: genai.TypeString},
				},
				Required: []string{"day", "activities"},
			},
		},
		"hotels": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"hotel_name":       {Type: genai.TypeString},
					"hotel_class":      {Type: genai.TypeString, Nullable: true},
					"review_rating":    {Type: genai.TypeNumber},
					"review_count":     {Type: genai.TypeInteger, Nullable: true},
					"total_stay_price": {Type: genai.TypeNumber, Nullable: true},
					"currency":         {Type: genai.TypeString, Nullable: true},
					"deal_info":        {Type: genai.TypeString, Nullable: true},
					"bookingUrl": {
						Type:        genai.TypeString,
						Nullable:    true,
						Description: "Absolute URL of a third-party booking site page for the hotel.",
					},
				},
				Required: []string{"hotel_name", "review_rating"},
			},
		},
		"packingList": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"destinations", "itinerary", "hotels", "packingList"},
}
