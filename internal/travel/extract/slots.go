package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/trip"
)

// amount matches "1500" as well as "1,500".
const amount = `(\d{1,3}(?:,\d{3})+|\d+)`

var (
	soloRe   = regexp.MustCompile(`\b(?:solo|just me)\b`)
	coupleRe = regexp.MustCompile(`\bcouple\b`)
	peopleRe = regexp.MustCompile(`(\d+)\s*(?:people|person|pax|travelers|travellers)`)

	// marker first ("budget 1500", "$900"), then unit last ("2000 dollars")
	budgetMarkerRe = regexp.MustCompile(`(?:\$|€|\b(?:eur|usd|budget))\s*` + amount)
	budgetUnitRe   = regexp.MustCompile(amount + `\s*(?:dollars|usd|eur|€|\$)`)

	nightRangeRe  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(?:nights?|days?)`)
	nightSingleRe = regexp.MustCompile(`(\d+)\s*(?:nights?|days?)`)
	weekRe        = regexp.MustCompile(`\bweek`)

	bareNumberRe = regexp.MustCompile(`\b` + amount + `\b`)
)

// ExtractPackageSlots returns draft updated with every slot text supplies.
// Slots the text says nothing about are left as they were; nothing is guessed.
func ExtractPackageSlots(text string, draft trip.Draft) trip.Draft {
	text = strings.ToLower(text)

	if n, ok := extractPeople(text); ok {
		draft.People = n
	}
	if n, ok := extractBudget(text); ok {
		draft.Budget = n
	}
	if lo, hi, ok := extractNights(text); ok {
		draft.MinNights, draft.MaxNights = lo, hi
	}
	return draft
}

// FillPendingSlot answers a follow-up question with a bare number: after
// "how many people?" the reply "2" fills people. Only people and budget can
// be answered this way, and only while still missing.
func FillPendingSlot(text string, draft trip.Draft, pending trip.Slot) trip.Draft {
	if pending != trip.SlotPeople && pending != trip.SlotBudget {
		return draft
	}
	if draft.Has(pending) {
		return draft
	}
	m := bareNumberRe.FindStringSubmatch(text)
	if m == nil {
		return draft
	}
	n, ok := parseAmount(m[1])
	if !ok {
		return draft
	}
	switch pending {
	case trip.SlotPeople:
		draft.People = n
	case trip.SlotBudget:
		draft.Budget = n
	}
	return draft
}

func extractPeople(text string) (int, bool) {
	switch {
	case soloRe.MatchString(text):
		return 1, true
	case coupleRe.MatchString(text):
		return 2, true
	}
	if m := peopleRe.FindStringSubmatch(text); m != nil {
		return parseAmount(m[1])
	}
	return 0, false
}

func extractBudget(text string) (int, bool) {
	m := budgetMarkerRe.FindStringSubmatch(text)
	if m == nil {
		m = budgetUnitRe.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1])
}

func extractNights(text string) (lo, hi int, ok bool) {
	if m := nightRangeRe.FindStringSubmatch(text); m != nil {
		lo, okLo := parseAmount(m[1])
		hi, okHi := parseAmount(m[2])
		if !okLo || !okHi {
			return 0, 0, false
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
	if m := nightSingleRe.FindStringSubmatch(text); m != nil {
		n, ok := parseAmount(m[1])
		return n, n, ok
	}
	if weekRe.MatchString(text) {
		return 7, 7, true
	}
	return 0, 0, false
}

// parseAmount accepts positive integers only; anything else counts as "not found".
func parseAmount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
