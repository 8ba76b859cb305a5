package core

import "strings"

// Environment is the deployment environment the assistant runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// IsProduction reports whether logs should be JSON at info level.
func (e Environment) IsProduction() bool {
	return e == Production
}

var environmentAliases = map[string]Environment{
	"prod":        Production,
	"production":  Production,
	"stage":       Staging,
	"staging":     Staging,
	"test":        Testing,
	"testing":     Testing,
	"dev":         Development,
	"development": Development,
	"local":       Development,
}

// ParseEnvironment accepts full names and short aliases ("prod", "dev")
// in any case. Anything unrecognised is treated as Development.
func ParseEnvironment(v string) Environment {
	if e, ok := environmentAliases[strings.ToLower(strings.TrimSpace(v))]; ok {
		return e
	}
	return Development
}
