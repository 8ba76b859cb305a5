package router

import (
	"math/rand"
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/dialogue"
	"github.com/wanderlust-ai/server/internal/travel/extract"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	"github.com/wanderlust-ai/server/internal/travel/visa"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

// maxInputLen bounds the text run through the regexps; longer input is truncated.
const maxInputLen = 4 * 1024

// Picker chooses one destination from a non-empty catalog.
type Picker func(options []string) string

// RandomPicker picks uniformly at random.
func RandomPicker(options []string) string {
	return options[rand.Intn(len(options))]
}

// Turn is one user message as seen by the rules.
type Turn struct {
	Text       string // lower-cased and trimmed
	Country    string
	HasCountry bool
	Session    *trip.Session
}

// Rule is one row of the routing decision table.
type Rule struct {
	Name    string
	Match   func(t *Turn) bool
	Respond func(t *Turn) string
}

type Option func(*Router)

// WithPicker replaces the random destination picker.
func WithPicker(p Picker) Option {
	return func(r *Router) {
		if p != nil {
			r.pick = p
		}
	}
}

// WithDetector replaces the knowledge base country detector.
func WithDetector(d *extract.CountryDetector) Option {
	return func(r *Router) {
		if d != nil {
			r.detector = d
		}
	}
}

// Router dispatches a message either to the open package plan or to the
// first matching topic rule.
type Router struct {
	dialogue *dialogue.Manager
	visa     *visa.Engine
	detector *extract.CountryDetector
	pick     Picker
	rules    []Rule
}

func New(mgr *dialogue.Manager, engine *visa.Engine, opts ...Option) *Router {
	r := &Router{
		dialogue: mgr,
		visa:     engine,
		detector: extract.KnownCountries(),
		pick:     RandomPicker,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.rules = r.defaultRules()
	return r
}

// RuleNames returns the topic rules in evaluation order.
func (r *Router) RuleNames() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// MatchRule answers one message. It always returns a reply; the session is
// updated in place for the next turn.
func (r *Router) MatchRule(input string, s *trip.Session) string {
	t := r.newTurn(input, s)

	if s.Planning() {
		if t.HasCountry && t.Country != s.Draft.Country && isPackageRequest(t) {
			logx.Debug().
				Str("component", "router").
				Str("from", s.Draft.Country).
				Str("to", t.Country).
				Msg("package plan restarted for another country")
			return r.dialogue.Start(s, t.Country, t.Text)
		}
		return r.dialogue.Continue(s, t.Text)
	}

	for _, rule := range r.rules {
		if rule.Match(t) {
			logx.Debug().
				Str("component", "router").
				Str("rule", rule.Name).
				Str("country", t.Country).
				Msg("rule matched")
			return rule.Respond(t)
		}
	}
	logx.Debug().Str("component", "router").Msg("no rule matched, using fallback")
	return fallbackMessage
}

func (r *Router) newTurn(input string, s *trip.Session) *Turn {
	if len(input) > maxInputLen {
		logx.Warn().
			Str("component", "router").
			Int("max_len", maxInputLen).
			Int("orig_len", len(input)).
			Msg("input truncated due to size limit")
		input = strings.ToValidUTF8(input[:maxInputLen], "")
	}
	text := strings.ToLower(strings.TrimSpace(input))
	detected, ok := r.detector.Detect(text)
	return &Turn{Text: text, Country: detected, HasCountry: ok, Session: s}
}
