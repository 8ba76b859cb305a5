package knowledge

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// FallbackDailyCost is the per-person daily cost used for countries outside the table.
	FallbackDailyCost  = 100
	fallbackAttraction = "City Center"
)

// Info holds the practical facts answered by country-fact queries.
type Info struct {
	Currency string
	Language string
	Tipping  string
	BestTime string
}

// Country is an immutable knowledge base entry keyed by its canonical lower-case name.
type Country struct {
	Key         string
	Name        string
	Attractions []string
	Info        Info
	DailyCost   int // USD per person per day
}

var countries = map[string]Country{
	"lithuania": {
		Name:        "Lithuania",
		Attractions: []string{"Gediminas Tower", "Trakai Island Castle", "Curonian Spit", "Hill of Crosses"},
		Info:        Info{Currency: "Euro (€)", Language: "Lithuanian", Tipping: "Not mandatory, but 10% is appreciated.", BestTime: "May to September"},
		DailyCost:   80,
	},
	"poland": {
		Name:        "Poland",
		Attractions: []string{"Wawel Castle (Krakow)", "Wieliczka Salt Mine", "Warsaw Old Town", "Malbork Castle"},
		Info:        Info{Currency: "Polish Złoty (PLN)", Language: "Polish", Tipping: "10% is standard in restaurants.", BestTime: "May to October"},
		DailyCost:   90,
	},
	"turkey": {
		Name:        "Turkey",
		Attractions: []string{"Hagia Sophia", "Cappadocia Balloons", "Pamukkale Thermal Pools", "Ephesus"},
		Info:        Info{Currency: "Turkish Lira (TRY)", Language: "Turkish", Tipping: "5-10% in restaurants is customary.", BestTime: "April-May or September-October"},
		DailyCost:   100,
	},
	"greece": {
		Name:        "Greece",
		Attractions: []string{"Acropolis of Athens", "Santorini Sunsets", "Meteora Monasteries", "Navagio Beach"},
		Info:        Info{Currency: "Euro (€)", Language: "Greek", Tipping: "Round up the bill or 5-10%.", BestTime: "April to June or September to October"},
		DailyCost:   150,
	},
	"russia": {
		Name:        "Russia",
		Attractions: []string{"Red Square", "The Hermitage", "Lake Baikal", "Peterhof Palace"},
		Info:        Info{Currency: "Russian Ruble (RUB)", Language: "Russian", Tipping: "10% is common in cities.", BestTime: "May to September"},
		DailyCost:   90,
	},
	"ukraine": {
		Name:        "Ukraine",
		Attractions: []string{"Kyiv Pechersk Lavra", "Lviv Old Town", "Tunnel of Love", "Carpathian Mountains"},
		Info:        Info{Currency: "Ukrainian Hryvnia (UAH)", Language: "Ukrainian", Tipping: "10% is standard.", BestTime: "May to September"},
		DailyCost:   60,
	},
	"thailand": {
		Name:        "Thailand",
		Attractions: []string{"The Grand Palace", "Phi Phi Islands", "Chiang Mai Night Bazaar", "Ayutthaya"},
		Info:        Info{Currency: "Thai Baht (THB)", Language: "Thai", Tipping: "Not customary, but loose change is nice.", BestTime: "November to February (Cool season)"},
		DailyCost:   50,
	},
	"india": {
		Name:        "India",
		Attractions: []string{"Taj Mahal", "Jaipur Pink City", "Varanasi Ghats", "Kerala Backwaters"},
		Info:        Info{Currency: "Indian Rupee (INR)", Language: "Hindi & English", Tipping: "10% at restaurants, small amount for porters.", BestTime: "October to March"},
		DailyCost:   45,
	},
	"china": {
		Name:        "China",
		Attractions: []string{"Great Wall of China", "Forbidden City", "Terracotta Army", "The Bund (Shanghai)"},
		Info:        Info{Currency: "Renminbi (CNY)", Language: "Mandarin", Tipping: "Generally not practiced and can be seen as rude.", BestTime: "April-May or September-October"},
		DailyCost:   110,
	},
	"usa": {
		Name:        "USA",
		Attractions: []string{"Grand Canyon", "Statue of Liberty", "Yellowstone National Park", "Disney World", "Times Square"},
		Info:        Info{Currency: "US Dollar ($)", Language: "English", Tipping: "15-20% is practically mandatory.", BestTime: "All year round depending on region"},
		DailyCost:   250,
	},
	"uk": {
		Name:        "UK",
		Attractions: []string{"Big Ben", "Stonehenge", "Edinburgh Castle", "British Museum"},
		Info:        Info{Currency: "British Pound (£)", Language: "English", Tipping: "10-15% if service not included.", BestTime: "May to September"},
		DailyCost:   200,
	},
	"france": {
		Name:        "France",
		Attractions: []string{"Eiffel Tower", "Louvre Museum", "Mont Saint-Michel", "French Riviera"},
		Info:        Info{Currency: "Euro (€)", Language: "French", Tipping: "Service is included, small change is polite.", BestTime: "April to June or September to November"},
		DailyCost:   220,
	},
	"italy": {
		Name:        "Italy",
		Attractions: []string{"Colosseum", "Venice Canals", "Leaning Tower of Pisa", "Amalfi Coast"},
		Info:        Info{Currency: "Euro (€)", Language: "Italian", Tipping: "Service usually included; just round up.", BestTime: "April to June or September to October"},
		DailyCost:   180,
	},
	"germany": {
		Name:        "Germany",
		Attractions: []string{"Brandenburg Gate", "Neuschwanstein Castle", "Cologne Cathedral", "Black Forest"},
		Info:        Info{Currency: "Euro (€)", Language: "German", Tipping: "Round up or add 5-10%.", BestTime: "May to September"},
		DailyCost:   170,
	},
	"spain": {
		Name:        "Spain",
		Attractions: []string{"Sagrada Família", "Alhambra", "Park Güell", "Ibiza"},
		Info:        Info{Currency: "Euro (€)", Language: "Spanish", Tipping: "Round up or leave loose change.", BestTime: "April to June or September to October"},
		DailyCost:   160,
	},
	"japan": {
		Name:        "Japan",
		Attractions: []string{"Mount Fuji", "Kyoto Temples", "Tokyo Tower", "Osaka Castle"},
		Info:        Info{Currency: "Japanese Yen (JPY)", Language: "Japanese", Tipping: "No tipping! It can be considered rude.", BestTime: "March-May (Sakura) or September-November"},
		DailyCost:   190,
	},
}

// Lookup returns the entry for a canonical key.
func Lookup(key string) (Country, bool) {
	c, ok := countries[key]
	if !ok {
		return Country{}, false
	}
	c.Key = key
	return c, true
}

// CountryKeys returns every canonical key, sorted alphabetically.
func CountryKeys() []string {
	keys := make([]string, 0, len(countries))
	for k := range countries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DailyCost returns the average per-person daily cost, or FallbackDailyCost for unknown keys.
func DailyCost(key string) int {
	if c, ok := countries[key]; ok && c.DailyCost > 0 {
		return c.DailyCost
	}
	return FallbackDailyCost
}

// Attractions returns up to limit attractions in curated order. A limit <= 0 returns all of them.
func Attractions(key string, limit int) []string {
	list := []string{fallbackAttraction}
	if c, ok := countries[key]; ok && len(c.Attractions) > 0 {
		list = c.Attractions
	}
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// DisplayName renders a key for humans: the curated name when known,
// English title case otherwise ("canada" -> "Canada").
func DisplayName(key string) string {
	if c, ok := countries[key]; ok {
		return c.Name
	}
	// Casers keep state between calls, so each call gets its own.
	return cases.Title(language.English).String(key)
}
