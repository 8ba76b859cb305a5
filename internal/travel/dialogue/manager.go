package dialogue

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/extract"
	"github.com/wanderlust-ai/server/internal/travel/knowledge"
	"github.com/wanderlust-ai/server/internal/travel/planner"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

const cancelledMessage = "No problem, I've dropped that package plan. What else can I help you with?"

var cancelRe = regexp.MustCompile(`\b(?:cancel|stop|abort|never ?mind|forget it|start over)\b`)

// Manager drives the package slot-filling dialogue over a caller-owned session.
type Manager struct {
	calc *planner.Calculator
}

func NewManager(calc *planner.Calculator) *Manager {
	return &Manager{calc: calc}
}

// Start opens a plan for country, seeded with whatever the triggering message
// already says. A message that names both party size and budget is priced
// straight away with the default night range.
func (m *Manager) Start(s *trip.Session, country, text string) string {
	s.Reset()
	s.State = trip.StatePlanningPackage
	s.Draft = extract.ExtractPackageSlots(text, trip.Draft{Country: country})

	logx.Debug().
		Str("component", "dialogue").
		Str("country", country).
		Interface("draft", s.Draft).
		Msg("package plan started")

	if s.Draft.Has(trip.SlotPeople) && s.Draft.Has(trip.SlotBudget) {
		return m.complete(s)
	}

	name := knowledge.DisplayName(country)
	if !s.Draft.Has(trip.SlotPeople) {
		s.Pending = trip.SlotPeople
		return fmt.Sprintf("I can definitely build a travel package for **%s**!\nFirst, how many people are traveling?", name)
	}
	s.Pending = trip.SlotBudget
	return fmt.Sprintf("Building a package for %d %s to %s. What is your total budget?",
		s.Draft.People, peopleNoun(s.Draft.People), name)
}

// Continue feeds one reply into the open plan. It asks for the first missing
// slot in the order people, budget, nights, and prices the package once
// nothing is missing.
func (m *Manager) Continue(s *trip.Session, text string) string {
	text = strings.ToLower(text)
	if cancelRe.MatchString(text) {
		logx.Debug().Str("component", "dialogue").Str("country", s.Draft.Country).Msg("package plan cancelled")
		s.Reset()
		return cancelledMessage
	}

	before := s.Draft
	s.Draft = extract.ExtractPackageSlots(text, s.Draft)
	if s.Draft == before {
		s.Draft = extract.FillPendingSlot(text, s.Draft, s.Pending)
	}

	slot, missing := s.Draft.FirstMissing()
	if !missing {
		return m.complete(s)
	}

	s.Pending = slot
	logx.Debug().
		Str("component", "dialogue").
		Str("pending", string(slot)).
		Interface("draft", s.Draft).
		Msg("asking for slot")

	switch slot {
	case trip.SlotPeople:
		return "Got it. How many people are traveling?"
	case trip.SlotBudget:
		return fmt.Sprintf("Okay, for %d %s. What is your total budget for the trip (in USD/EUR)?",
			s.Draft.People, peopleNoun(s.Draft.People))
	default:
		return "Almost done! How many nights do you want to stay? (You can give a range like '5-7 nights')"
	}
}

func (m *Manager) complete(s *trip.Session) string {
	q := m.calc.Compute(s.Draft)
	s.Reset()
	return q.Message()
}

func peopleNoun(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
