package ai

import (
	"fmt"
	"strconv"

	"tourweaver/internal/itinerary"
)

// promptTemplate holds no digits, no budget tier names and no place names, so
// every request value appears in the rendered prompt exactly once.
const promptTemplate = `You are an expert travel agent. Create a personalised tour itinerary, recommend hotels and suggest a packing list.

Trip details:
- Destination: %s
- Length of stay (days): %d
- Check-in date: %s
- Travellers (adults): %d
- Minimum hotel rating (out of five): %s
- Spending level: %s

Instructions:
a) Destinations: list seven to fifteen top places to visit at the destination. For each give "name", a short "description" and an "imageHint" of one or two keywords that MUST include the destination name, written as the landmark followed by the destination.
b) Itinerary: plan every day of the stay, one entry per day with "day" (counting from one) and "activities". Match the activities to the spending level: free walks and parks for a tight budget, premium experiences for a lavish one.
c) Hotels: recommend hotels at the destination rated at or above the minimum rating and priced for the spending level. Give "hotel_name", "hotel_class", "review_rating", "review_count" and "deal_info". When known, add a "bookingUrl" on a well-known booking site and a "total_stay_price" with its "currency".
d) Packing list: suggest items to pack in "packingList", based on the typical weather around the check-in date for the length of stay and on the planned activities.

Output format:
Reply with a single JSON object with the keys "destinations", "itinerary", "hotels" and "packingList". Do not add any commentary before or after the JSON.
`

// systemInstruction is sent separately where the provider supports a system role.
const systemInstruction = "You plan trips and answer only with JSON objects."

// BuildPrompt renders the generation prompt for req. It is deterministic.
func BuildPrompt(req itinerary.TripRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.Location,
		req.Days,
		req.CheckInDate,
		req.Adults,
		strconv.FormatFloat(req.MinRating, 'f', -1, 64),
		req.BudgetLabel(),
	)
}
