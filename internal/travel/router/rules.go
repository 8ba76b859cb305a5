package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/knowledge"
)

const (
	greetingMessage = "Hello! I can help with **Travel Packages**, **Visas**, **Packing**, **Currency**, or **Suggestions**."
	fallbackMessage = "I can help with **Travel Packages** (e.g., 'Package for Poland'), **Visas**, **Packing**, " +
		"**Currency**, **Best Time to Visit**, or **Suggestions**."
	visaHelpMessage  = "To check visas, please tell me: **Where are you from** and **Where are you going?** (e.g., 'Visa from Turkey to Greece')"
	themeQuestion    = "Do you prefer a **beach**, **mountains**, a bustling **city**, or a **budget-friendly** trip?"
	attractionsLimit = 4
)

// prefixWords matches any of words at the start of a word, so "tip" hits
// "tipping" but not "multiple".
func prefixWords(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s+`)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)`)
}

// wholeWords matches any of words as complete words.
func wholeWords(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

var (
	packageRe = prefixWords("package", "plan")
	visaRe    = prefixWords("visa")
	tipRe     = prefixWords("tip")

	visaFromRe    = regexp.MustCompile(`\bvisa.*\bfrom\s+(?:the\s+)?(\w+)\s+to\s+(?:the\s+)?(\w+)`)
	visaCitizenRe = regexp.MustCompile(`\bvisa.*?\b(\w+)\s+citizens?\b.*\s(\w+)`)

	attractionsRe = prefixWords("attractions", "sightseeing", "what to see", "places to visit")
	seeVisitRe    = wholeWords("visit", "see")

	packingRe = regexp.MustCompile(`\b(?:pack|bring|wear)\w*.*?\bfor\s+(\w+)`)

	suggestRe = prefixWords("suggest", "recommend", "where to go")
	budgetRe  = prefixWords("cost", "price", "budget", "expensive", "cheap")
	greetRe   = wholeWords("hi", "hello", "hey", "greetings", "hola")
)

// fact is one country-fact category; categories are checked in order.
type fact struct {
	keywords *regexp.Regexp
	answer   func(name string, info knowledge.Info) string
}

var facts = []fact{
	{prefixWords("when", "best time", "season"), func(name string, info knowledge.Info) string {
		return fmt.Sprintf("**Best time to visit %s:** %s.", name, info.BestTime)
	}},
	{prefixWords("currency", "money", "pay"), func(name string, info knowledge.Info) string {
		return fmt.Sprintf("**Currency in %s:** %s.", name, info.Currency)
	}},
	{prefixWords("tip"), func(name string, info knowledge.Info) string {
		return fmt.Sprintf("**Tipping in %s:** %s", name, info.Tipping)
	}},
	{prefixWords("language", "speak", "spoken", "english"), func(name string, info knowledge.Info) string {
		return fmt.Sprintf("**Language in %s:** %s.", name, info.Language)
	}},
}

var themeWords = map[knowledge.Theme]*regexp.Regexp{
	knowledge.ThemeBeach:    prefixWords("beach"),
	knowledge.ThemeMountain: prefixWords("mountain"),
	knowledge.ThemeCity:     prefixWords("city"),
	knowledge.ThemeBudget:   prefixWords("budget"),
}

var themeReplies = map[knowledge.Theme]string{
	knowledge.ThemeBeach:    "For a beach trip, I highly recommend **%s**!",
	knowledge.ThemeMountain: "For mountains, **%s** is amazing.",
	knowledge.ThemeCity:     "If you want city vibes, try **%s**.",
	knowledge.ThemeBudget:   "For a budget-friendly trip, consider **%s**.",
}

func isPackageRequest(t *Turn) bool {
	return t.HasCountry && packageRe.MatchString(t.Text) && !visaRe.MatchString(t.Text)
}

func (r *Router) defaultRules() []Rule {
	return []Rule{
		{Name: "package", Match: isPackageRequest, Respond: r.startPackage},
		{Name: "visa", Match: func(t *Turn) bool { return visaRe.MatchString(t.Text) }, Respond: r.answerVisa},
		{Name: "country-facts", Match: func(t *Turn) bool { _, ok := matchFact(t); return ok }, Respond: answerFact},
		{Name: "attractions", Match: wantsAttractions, Respond: answerAttractions},
		{Name: "packing", Match: func(t *Turn) bool { return packingRe.MatchString(t.Text) }, Respond: answerPacking},
		{Name: "suggestions", Match: func(t *Turn) bool { return suggestRe.MatchString(t.Text) }, Respond: r.suggest},
		{Name: "budgeting", Match: func(t *Turn) bool { return budgetRe.MatchString(t.Text) }, Respond: constant(knowledge.BudgetTiers)},
		{Name: "greeting", Match: func(t *Turn) bool { return greetRe.MatchString(t.Text) }, Respond: constant(greetingMessage)},
	}
}

func constant(s string) func(*Turn) string {
	return func(*Turn) string { return s }
}

func (r *Router) startPackage(t *Turn) string {
	return r.dialogue.Start(t.Session, t.Country, t.Text)
}

func (r *Router) answerVisa(t *Turn) string {
	m := visaFromRe.FindStringSubmatch(t.Text)
	if m == nil {
		m = visaCitizenRe.FindStringSubmatch(t.Text)
	}
	if m != nil {
		return r.visa.Evaluate(m[1], m[2])
	}
	if t.HasCountry {
		name := knowledge.DisplayName(t.Country)
		return fmt.Sprintf("I see you're asking about a visa for %s, but I need to know your origin. Try 'Visa from [Origin] to %s'.", name, name)
	}
	return visaHelpMessage
}

func matchFact(t *Turn) (fact, bool) {
	if !t.HasCountry {
		return fact{}, false
	}
	if _, ok := knowledge.Lookup(t.Country); !ok {
		return fact{}, false
	}
	for _, f := range facts {
		if f.keywords.MatchString(t.Text) {
			return f, true
		}
	}
	return fact{}, false
}

func answerFact(t *Turn) string {
	f, _ := matchFact(t)
	c, _ := knowledge.Lookup(t.Country)
	return f.answer(c.Name, c.Info)
}

func wantsAttractions(t *Turn) bool {
	if !t.HasCountry {
		return false
	}
	if attractionsRe.MatchString(t.Text) {
		return true
	}
	return seeVisitRe.MatchString(t.Text) && !visaRe.MatchString(t.Text) && !tipRe.MatchString(t.Text)
}

func answerAttractions(t *Turn) string {
	list := knowledge.Attractions(t.Country, attractionsLimit)
	return fmt.Sprintf("Top things to see in **%s**: \n- %s", knowledge.DisplayName(t.Country), strings.Join(list, "\n- "))
}

func answerPacking(t *Turn) string {
	target := packingRe.FindStringSubmatch(t.Text)[1]
	switch climate := knowledge.ClassifyClimate(target); climate {
	case knowledge.ClimateCold:
		return fmt.Sprintf("For %s, it might be chilly! Pack: %s", target, strings.Join(knowledge.PackingList(climate), ", "))
	case knowledge.ClimateHot:
		return fmt.Sprintf("For %s, enjoy the warmth! Pack: %s", target, strings.Join(knowledge.PackingList(climate), ", "))
	default:
		return "Sticking to general essentials: " + strings.Join(knowledge.PackingList(knowledge.ClimateGeneral), ", ")
	}
}

func (r *Router) suggest(t *Turn) string {
	for _, theme := range knowledge.Themes {
		if themeWords[theme].MatchString(t.Text) {
			return fmt.Sprintf(themeReplies[theme], r.pick(knowledge.Destinations(theme)))
		}
	}
	return themeQuestion
}
