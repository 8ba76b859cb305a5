package visa

import (
	"strings"

	"github.com/wanderlust-ai/server/internal/travel/knowledge"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

// Engine evaluates an ordered rule chain for (origin, destination) pairs.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine over rules; nil selects DefaultRules.
func NewEngine(rules []Rule) *Engine {
	if rules == nil {
		rules = DefaultRules
	}
	return &Engine{rules: rules}
}

// Evaluate returns the first applicable verdict for travellers from origin
// to destination, or the generic e-visa advice when no rule applies.
func (e *Engine) Evaluate(origin, destination string) string {
	origin = strings.ToLower(strings.TrimSpace(origin))
	destination = strings.ToLower(strings.TrimSpace(destination))

	rule, verdict, ok := e.match(origin, destination)
	if !ok {
		rule, verdict = "default", verdictDefault
	}
	logx.Debug().
		Str("component", "visa").
		Str("origin", origin).
		Str("destination", destination).
		Str("rule", rule).
		Msg("visa rule applied")
	return render(verdict, origin, destination)
}

func (e *Engine) match(origin, destination string) (string, string, bool) {
	for _, r := range e.rules {
		if r.SameCountry {
			if origin == destination {
				return r.Name, verdictSameCountry, true
			}
			continue
		}
		if r.Destinations == nil || !r.Destinations.Contains(destination) {
			continue
		}
		for _, c := range r.Clauses {
			if c.Origins == nil || c.Origins.Contains(origin) {
				return r.Name, c.Verdict, true
			}
		}
	}
	return "", "", false
}

func render(verdict, origin, destination string) string {
	return strings.NewReplacer(
		"{origin}", knowledge.DisplayName(origin),
		"{destination}", knowledge.DisplayName(destination),
	).Replace(verdict)
}
