package visa

import "github.com/wanderlust-ai/server/internal/travel/knowledge"

// Verdict templates may reference {origin} and {destination}.
const (
	verdictSameCountry = "No visa needed: you are travelling within your own country."
	verdictDefault     = "Generally, check if {destination} offers an E-Visa for {origin} citizens."
)

// Clause pairs an origin group with a verdict. A clause without Origins
// matches any origin.
type Clause struct {
	Origins *knowledge.Group
	Verdict string
}

// Rule covers a set of destinations with clauses tried top to bottom. When no
// clause applies evaluation falls through to the next rule.
type Rule struct {
	Name         string
	SameCountry  bool
	Destinations *knowledge.Group
	Clauses      []Clause
}

func group(name string, keys ...string) *knowledge.Group {
	g := knowledge.NewGroup(name, keys...)
	return &g
}

func extend(base knowledge.Group, name string, keys ...string) *knowledge.Group {
	g := base.Union(name, keys...)
	return &g
}

func only(key string) *knowledge.Group {
	return group(key, key)
}

var (
	schengen  = &knowledge.Schengen
	euToChina = &knowledge.EUVisaFreeToChina
)

// DefaultRules is the curated visa table. Order matters.
var DefaultRules = []Rule{
	{Name: "same-country", SameCountry: true},
	{
		Name:         "schengen-internal",
		Destinations: schengen,
		Clauses: []Clause{
			{Origins: schengen, Verdict: "**Visa Free:** Freedom of movement applies within the Schengen Area."},
		},
	},
	{
		Name:         "schengen-external",
		Destinations: schengen,
		Clauses: []Clause{
			{Origins: group("schengen visa-free", "usa", "canada", "uk", "japan", "ukraine", "brazil"),
				Verdict: "**Visa Free:** Citizens of {origin} can usually enter the Schengen area ({destination}) for 90 days."},
			{Origins: group("schengen visa-required", "russia", "china", "india", "turkey", "thailand"),
				Verdict: "**Visa Required:** Citizens of {origin} generally need a Schengen Visa."},
		},
	},
	{
		Name:         "turkey",
		Destinations: only("turkey"),
		Clauses: []Clause{
			{Origins: extend(knowledge.Schengen, "turkey visa-free", "ukraine", "russia", "thailand", "uk", "usa"),
				Verdict: "**Visa Free:** generally visa-free for short tourism stays."},
			{Origins: group("turkey e-visa", "india", "china"),
				Verdict: "**Visa Required:** E-Visa or Sticker visa required."},
		},
	},
	{
		Name:         "usa",
		Destinations: only("usa"),
		Clauses: []Clause{
			{Origins: extend(knowledge.Schengen, "visa waiver program", "uk", "japan"),
				Verdict: "**ESTA Required:** Visa Waiver Program available (ESTA)."},
			{Verdict: "**Visa Required:** B1/B2 Visa typically needed."},
		},
	},
	{
		Name:         "russia",
		Destinations: only("russia"),
		Clauses: []Clause{
			{Origins: group("russia simplified", "china", "thailand", "turkey"),
				Verdict: "**Visa Free / Simplified:** Visa-free for groups or simplified entry."},
			{Origins: extend(knowledge.Schengen, "russia visa-required", "usa", "uk", "canada", "india"),
				Verdict: "**Visa Required:** You likely need a visa. (Unified E-visa is available)."},
		},
	},
	{
		Name:         "ukraine",
		Destinations: only("ukraine"),
		Clauses: []Clause{
			{Origins: extend(knowledge.Schengen, "ukraine visa-free", "usa", "uk", "canada", "turkey"),
				Verdict: "**Visa Free:** Up to 90 days within 180 days."},
			{Origins: group("ukraine e-visa", "india"), Verdict: "**Visa Required:** E-Visa available."},
			{Origins: group("ukraine standard visa", "china"), Verdict: "**Visa Required:** Standard visa required."},
		},
	},
	{
		Name:         "thailand",
		Destinations: only("thailand"),
		Clauses: []Clause{
			{Origins: extend(knowledge.Schengen, "thailand visa-free",
				"usa", "uk", "canada", "russia", "turkey", "china", "india", "ukraine"),
				Verdict: "**Visa Free / VOA:** Thailand currently has very open policies."},
		},
	},
	{
		Name:         "india",
		Destinations: only("india"),
		Clauses: []Clause{
			{Origins: extend(knowledge.Schengen, "india e-visa",
				"usa", "uk", "russia", "ukraine", "thailand", "turkey", "china"),
				Verdict: "**Visa Required:** E-Visa is widely available."},
		},
	},
	{
		Name:         "china",
		Destinations: only("china"),
		Clauses: []Clause{
			{Origins: group("china mutual exemption", "thailand"),
				Verdict: "**Visa Free:** Permanent mutual visa exemption."},
			{Origins: euToChina, Verdict: "**Visa Free:** 15-day visa-free entry (Trial policy)."},
			{Origins: group("china visa-required", "usa", "uk", "canada", "india", "lithuania", "turkey", "ukraine"),
				Verdict: "**Visa Required:** You generally need a tourist (L) visa."},
		},
	},
}
