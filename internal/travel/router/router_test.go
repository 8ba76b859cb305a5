package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-ai/server/internal/travel/dialogue"
	"github.com/wanderlust-ai/server/internal/travel/extract"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	"github.com/wanderlust-ai/server/internal/travel/visa"
)

func newRouter(opts ...Option) *Router {
	mgr := dialogue.NewManager(planner.NewCalculator(planner.DefaultConfig()))
	return New(mgr, visa.NewEngine(nil), opts...)
}

func firstPicker(options []string) string { return options[0] }

func TestRuleOrder(t *testing.T) {
	r := newRouter()
	assert.Equal(t, []string{
		"package", "visa", "country-facts", "attractions",
		"packing", "suggestions", "budgeting", "greeting",
	}, r.RuleNames())
}

func TestSingleTurnAnswers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"greeting", "Hello there", []string{"Hello", "Travel Packages"}},
		{"fallback", "kdsjfklsdjfkl", []string{"I can help with"}},
		{"turkey package", "Plan a package for Turkey for 2 people budget 1500 5 nights",
			[]string{"Custom Package for Turkey", "**Recommended Stay:** 5 Nights", "$1000"}},
		{"usa package", "I want a travel package to USA for 4 people with 2000 dollars",
			[]string{"Custom Package for USA", "Budget Constraint", "**2 nights**"}},
		{"visa usa to turkey", "Visa requirements from USA to Turkey", []string{"Visa Free"}},
		{"visa india to china", "Visa from India to China", []string{"Visa Required"}},
		{"visa poland to france", "Visa from Poland to France", []string{"Freedom of movement"}},
		{"visa uk to usa", "Visa from UK to USA", []string{"ESTA Required"}},
		{"visa citizens", "Visa rules for USA citizens travelling to Thailand", []string{"Visa Free / VOA"}},
		{"currency", "What is the currency in Turkey?", []string{"Turkish Lira"}},
		{"tipping", "Tipping in USA", []string{"15-20%"}},
		{"best time", "When is the best time to go to Japan?", []string{"Sakura"}},
		{"language", "What language is spoken in Lithuania?", []string{"Lithuanian"}},
		{"visit france", "What to visit in France", []string{"Eiffel Tower"}},
		{"attractions italy", "Top attractions in Italy", []string{"Colosseum"}},
		{"see china", "Things to see in China", []string{"Great Wall"}},
		{"pack iceland", "What should I pack for Iceland?", []string{"Thermal underwear"}},
		{"pack thailand", "Packing list for Thailand", []string{"Sunscreen"}},
		{"pack general", "What to bring for Paris", []string{"Sticking to general essentials", "Passport"}},
		{"budgeting", "General budgeting tips", []string{"Budgeting:", "Thailand"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := newRouter().MatchRule(tt.input, trip.NewSession())
			for _, w := range tt.want {
				assert.Contains(t, reply, w)
			}
		})
	}
}

func TestVisaWithoutOrigin(t *testing.T) {
	r := newRouter()

	reply := r.MatchRule("Do I need a visa for Japan?", trip.NewSession())
	assert.Contains(t, reply, "visa for Japan")
	assert.Contains(t, reply, "Visa from [Origin] to Japan")

	reply = r.MatchRule("visa please", trip.NewSession())
	assert.Equal(t, visaHelpMessage, reply)
}

func TestSuggestions(t *testing.T) {
	r := newRouter(WithPicker(firstPicker))

	assert.Equal(t, "For a beach trip, I highly recommend **Maldives**!", r.MatchRule("Suggest a beach trip", trip.NewSession()))
	assert.Equal(t, "For a budget-friendly trip, consider **Bali, Indonesia**.",
		r.MatchRule("Recommend a budget friendly destination", trip.NewSession()))
	assert.Equal(t, "For mountains, **Swiss Alps** is amazing.", r.MatchRule("suggest some mountains", trip.NewSession()))
	assert.Equal(t, themeQuestion, r.MatchRule("where to go this summer?", trip.NewSession()))
}

func TestRandomSuggestionComesFromCatalog(t *testing.T) {
	reply := newRouter().MatchRule("Suggest a beach trip", trip.NewSession())
	assert.Contains(t, strings.ToLower(reply), "recommend")
	found := false
	for _, d := range []string{"Maldives", "Bora Bora", "Maui", "Phuket", "Antalya", "Greek Islands"} {
		if strings.Contains(reply, d) {
			found = true
		}
	}
	assert.True(t, found, reply)
}

func TestTipDoesNotMatchInsideWords(t *testing.T) {
	reply := newRouter().MatchRule("multiple things to see in italy", trip.NewSession())
	assert.Contains(t, reply, "Top things to see in **Italy**")
}

func TestPackageTriggerOpensPlan(t *testing.T) {
	r := newRouter()
	s := trip.NewSession()

	reply := r.MatchRule("Plan a trip to Thailand", s)
	assert.Contains(t, strings.ToLower(reply), "how many people")
	assert.Equal(t, trip.StatePlanningPackage, s.State)
	assert.Equal(t, "thailand", s.Draft.Country)
}

func TestMultiTurnPackage(t *testing.T) {
	r := newRouter()
	s := trip.NewSession()

	r.MatchRule("Create a travel package for Poland", s)
	r.MatchRule("2", s)
	reply := r.MatchRule("900", s)
	assert.Contains(t, reply, "How many nights")

	reply = r.MatchRule("3-7 nights", s)
	assert.Contains(t, reply, "Custom Package for Poland")
	assert.Contains(t, reply, "**Recommended Stay:** 5 Nights")
	assert.Equal(t, trip.StateIdle, s.State)

	// back to topic rules once the plan is done
	assert.Contains(t, r.MatchRule("hello", s), "Hello!")
}

func TestPlanningCapturesTopicLikeReplies(t *testing.T) {
	r := newRouter()
	s := trip.NewSession()

	r.MatchRule("package for greece", s)
	reply := r.MatchRule("hello", s)
	assert.Equal(t, "Got it. How many people are traveling?", reply)
	assert.True(t, s.Planning())
}

func TestPackageForAnotherCountryRestarts(t *testing.T) {
	r := newRouter()
	s := trip.NewSession()

	r.MatchRule("package for greece", s)
	r.MatchRule("3 people", s)
	require.Equal(t, 3, s.Draft.People)

	reply := r.MatchRule("actually, plan a package for spain", s)
	assert.Contains(t, reply, "**Spain**")
	assert.Equal(t, "spain", s.Draft.Country)
	assert.Equal(t, 0, s.Draft.People)
}

func TestCancelDuringPlan(t *testing.T) {
	r := newRouter()
	s := trip.NewSession()

	r.MatchRule("package for italy", s)
	r.MatchRule("cancel", s)
	assert.False(t, s.Planning())
	assert.Contains(t, r.MatchRule("currency in italy", s), "**Currency in Italy:**")
}

func TestCustomDetector(t *testing.T) {
	r := newRouter(WithDetector(extract.NewCountryDetector([]string{"portugal"})))
	reply := r.MatchRule("visa for portugal", trip.NewSession())
	assert.Contains(t, reply, "visa for Portugal")
}

func TestOversizedInputIsTruncated(t *testing.T) {
	input := "hello " + strings.Repeat("é", maxInputLen)
	reply := newRouter().MatchRule(input, trip.NewSession())
	assert.Equal(t, greetingMessage, reply)
}
