package knowledge

// Group is a named treaty group of canonical country keys.
type Group struct {
	Name    string
	members map[string]struct{}
}

// NewGroup builds a group from its members.
func NewGroup(name string, members ...string) Group {
	m := make(map[string]struct{}, len(members))
	for _, k := range members {
		m[k] = struct{}{}
	}
	return Group{Name: name, members: m}
}

// Contains reports whether key is a member.
func (g Group) Contains(key string) bool {
	_, ok := g.members[key]
	return ok
}

// Union returns a new group holding the members of g and the extra keys.
func (g Group) Union(name string, extra ...string) Group {
	keys := make([]string, 0, len(g.members)+len(extra))
	for k := range g.members {
		keys = append(keys, k)
	}
	return NewGroup(name, append(keys, extra...)...)
}

var (
	Schengen = NewGroup("Schengen",
		"lithuania", "poland", "greece", "france", "germany", "italy", "spain", "portugal")

	// EUVisaFreeToChina holds the EU members covered by China's unilateral visa-free trial.
	EUVisaFreeToChina = NewGroup("EU-China visa-free",
		"poland", "greece", "france", "germany", "italy", "spain")
)
