package trip

// Slot names a piece of package information gathered from the user.
type Slot string

const (
	SlotCountry Slot = "country"
	SlotPeople  Slot = "people"
	SlotBudget  Slot = "budget"
	SlotNights  Slot = "nights" // min_nights and max_nights together
)

// RequiredSlots is the order in which missing slots are asked for.
var RequiredSlots = []Slot{SlotPeople, SlotBudget, SlotNights}

// Draft is a partially filled package request. Zero values mean "not supplied".
type Draft struct {
	Country   string `json:"country,omitempty"`
	People    int    `json:"people,omitempty"`
	Budget    int    `json:"budget,omitempty"`
	MinNights int    `json:"min_nights,omitempty"`
	MaxNights int    `json:"max_nights,omitempty"`
}

// Has reports whether a slot has been supplied.
func (d Draft) Has(s Slot) bool {
	switch s {
	case SlotCountry:
		return d.Country != ""
	case SlotPeople:
		return d.People > 0
	case SlotBudget:
		return d.Budget > 0
	case SlotNights:
		return d.MinNights > 0 && d.MaxNights > 0
	default:
		return false
	}
}

// FirstMissing returns the first required slot not yet supplied.
func (d Draft) FirstMissing() (Slot, bool) {
	for _, s := range RequiredSlots {
		if !d.Has(s) {
			return s, true
		}
	}
	return "", false
}
