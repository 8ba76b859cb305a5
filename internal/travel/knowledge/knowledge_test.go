package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCountryHasCompleteEntry(t *testing.T) {
	for _, key := range CountryKeys() {
		c, ok := Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, key, c.Key)
		assert.NotEmpty(t, c.Name, key)
		assert.NotEmpty(t, c.Attractions, key)
		assert.NotEmpty(t, c.Info.Currency, key)
		assert.NotEmpty(t, c.Info.Language, key)
		assert.NotEmpty(t, c.Info.Tipping, key)
		assert.NotEmpty(t, c.Info.BestTime, key)
		assert.Positive(t, c.DailyCost, key)
	}
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, FallbackDailyCost, DailyCost("atlantis"))
	assert.Equal(t, []string{"City Center"}, Attractions("atlantis", 3))
	assert.Equal(t, "Atlantis", DisplayName("atlantis"))
	assert.Equal(t, "USA", DisplayName("usa"))
}

func TestAttractionsLimitReturnsCopy(t *testing.T) {
	got := Attractions("usa", 3)
	require.Len(t, got, 3)
	got[0] = "changed"
	assert.Equal(t, "Grand Canyon", Attractions("usa", 0)[0])
	assert.Len(t, Attractions("usa", 0), 5)
}

func TestClassifyClimate(t *testing.T) {
	cases := map[string]Climate{
		"iceland":  ClimateCold,
		"skiing":   ClimateCold,
		"thailand": ClimateHot,
		"beach":    ClimateHot,
		"business": ClimateGeneral,
	}
	for target, want := range cases {
		assert.Equal(t, want, ClassifyClimate(target), target)
	}
}

func TestGroups(t *testing.T) {
	assert.True(t, Schengen.Contains("portugal"))
	assert.False(t, Schengen.Contains("uk"))
	assert.False(t, EUVisaFreeToChina.Contains("lithuania"))

	g := Schengen.Union("Schengen+", "uk")
	assert.True(t, g.Contains("uk"))
	assert.True(t, g.Contains("france"))
	assert.False(t, Schengen.Contains("uk"))
}
