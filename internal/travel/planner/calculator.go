package planner

import (
	"github.com/wanderlust-ai/server/internal/travel/knowledge"
	"github.com/wanderlust-ai/server/internal/travel/trip"
	logx "github.com/wanderlust-ai/server/pkg/logger"
)

// Config holds the defaults applied to slots a draft leaves empty.
type Config struct {
	DefaultPeople    int `envconfig:"PLANNER_DEFAULT_PEOPLE" default:"2"`
	DefaultBudget    int `envconfig:"PLANNER_DEFAULT_BUDGET" default:"1000"`
	DefaultMinNights int `envconfig:"PLANNER_DEFAULT_MIN_NIGHTS" default:"3"`
	DefaultMaxNights int `envconfig:"PLANNER_DEFAULT_MAX_NIGHTS" default:"7"`
	// MinDailyBurn replaces a non-positive party daily cost.
	MinDailyBurn    int `envconfig:"PLANNER_MIN_DAILY_BURN" default:"100"`
	ItineraryLength int `envconfig:"PLANNER_ITINERARY_LENGTH" default:"3"`
}

// DefaultConfig mirrors the envconfig defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPeople:    2,
		DefaultBudget:    1000,
		DefaultMinNights: 3,
		DefaultMaxNights: 7,
		MinDailyBurn:     100,
		ItineraryLength:  3,
	}
}

// Calculator turns a package draft into a quote.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if cfg.DefaultPeople <= 0 {
		cfg.DefaultPeople = def.DefaultPeople
	}
	if cfg.DefaultBudget <= 0 {
		cfg.DefaultBudget = def.DefaultBudget
	}
	if cfg.DefaultMinNights <= 0 {
		cfg.DefaultMinNights = def.DefaultMinNights
	}
	if cfg.DefaultMaxNights < cfg.DefaultMinNights {
		cfg.DefaultMaxNights = cfg.DefaultMinNights
	}
	if cfg.MinDailyBurn <= 0 {
		cfg.MinDailyBurn = def.MinDailyBurn
	}
	if cfg.ItineraryLength <= 0 {
		cfg.ItineraryLength = def.ItineraryLength
	}
	return &Calculator{cfg: cfg}
}

// Compute prices the draft. Missing slots take the configured defaults.
func (c *Calculator) Compute(d trip.Draft) Quote {
	q := Quote{
		Country:   d.Country,
		People:    orDefault(d.People, c.cfg.DefaultPeople),
		Budget:    orDefault(d.Budget, c.cfg.DefaultBudget),
		MinNights: orDefault(d.MinNights, c.cfg.DefaultMinNights),
		MaxNights: orDefault(d.MaxNights, c.cfg.DefaultMaxNights),
		DailyCost: knowledge.DailyCost(d.Country),
	}
	if q.MaxNights < q.MinNights {
		q.MaxNights = q.MinNights
	}

	q.DailyBurn = q.DailyCost * q.People
	if q.DailyBurn <= 0 {
		q.DailyBurn = c.cfg.MinDailyBurn
	}
	q.AffordableNights = q.Budget / q.DailyBurn

	if q.AffordableNights < q.MinNights {
		q.Shortfall = true
		q.SuggestedBudget = q.DailyBurn * q.MinNights
	} else {
		q.SuggestedNights = min(q.AffordableNights, q.MaxNights)
		q.EstimatedCost = q.SuggestedNights * q.DailyBurn
		q.Attractions = knowledge.Attractions(d.Country, c.cfg.ItineraryLength)
	}

	logx.Debug().
		Str("component", "planner").
		Str("country", q.Country).
		Int("people", q.People).
		Int("budget", q.Budget).
		Int("daily_burn", q.DailyBurn).
		Int("affordable_nights", q.AffordableNights).
		Bool("shortfall", q.Shortfall).
		Msg("package computed")
	return q
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
