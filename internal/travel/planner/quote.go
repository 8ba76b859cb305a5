package planner

import (
	"fmt"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/knowledge"
)

// Quote is the outcome of pricing a package: a recommendation, or a
// shortfall when the budget cannot cover the minimum stay.
type Quote struct {
	Country   string
	People    int
	Budget    int
	MinNights int
	MaxNights int

	DailyCost        int // per person
	DailyBurn        int // whole party
	AffordableNights int

	Shortfall       bool
	SuggestedBudget int // only set on shortfall

	SuggestedNights int
	EstimatedCost   int
	Attractions     []string
}

// Message renders the quote as markdown for the chat.
func (q Quote) Message() string {
	name := knowledge.DisplayName(q.Country)
	var b strings.Builder
	fmt.Fprintf(&b, "**Custom Package for %s**\n\n", name)

	if q.Shortfall {
		fmt.Fprintf(&b, "**Budget Constraint:** A budget of $%d is quite tight for %d %s in %s. ",
			q.Budget, q.People, peopleNoun(q.People), name)
		fmt.Fprintf(&b, "Average daily cost is approx $%d. You can afford about **%d nights**. ",
			q.DailyBurn, q.AffordableNights)
		fmt.Fprintf(&b, "I recommend increasing the budget to at least $%d for a short %d-night trip.",
			q.SuggestedBudget, q.MinNights)
		return b.String()
	}

	tip := "Your budget covers the full stay you asked for."
	if q.SuggestedNights < q.MaxNights {
		tip = fmt.Sprintf("Capped at %d nights: that is as far as this budget stretches within your %d-%d night range.",
			q.SuggestedNights, q.MinNights, q.MaxNights)
	}
	fmt.Fprintf(&b, "Based on your budget of **$%d** for **%d %s**:\n", q.Budget, q.People, peopleNoun(q.People))
	fmt.Fprintf(&b, "- **Recommended Stay:** %d Nights\n", q.SuggestedNights)
	fmt.Fprintf(&b, "- **Estimated Total Cost:** $%d (Approx. $%d/person/day)\n", q.EstimatedCost, q.DailyCost)
	fmt.Fprintf(&b, "- **Suggested Itinerary:** Visit %s.\n", strings.Join(q.Attractions, ", "))
	fmt.Fprintf(&b, "- **Travel Tip:** %s", tip)
	return b.String()
}

func peopleNoun(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
