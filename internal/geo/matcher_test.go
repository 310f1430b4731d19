package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermoculture/discourse-engine/internal/models"
)

func matchNames(matches []models.LocationMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return names
}

func TestFindLocationsBasic(t *testing.T) {
	matches := FindLocations("Manchester and Liverpool both flooded")
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"Manchester", "Liverpool"}, matchNames(matches))
	for _, m := range matches {
		assert.Equal(t, models.RegionNorthWest, m.Region)
		assert.NotZero(t, m.Latitude)
	}
}

func TestFindLocationsDeduplicates(t *testing.T) {
	text := "Leeds saw heavy rain. Leeds council opened shelters, and leeds station closed."
	matches := FindLocations(text)
	require.Len(t, matches, 1)
	assert.Equal(t, "Leeds", matches[0].Name)
	assert.Equal(t, models.RegionYorkshire, matches[0].Region)
}

func TestFindLocationsReadingAmbiguity(t *testing.T) {
	assert.Empty(t, FindLocations("I was reading a book"))
	assert.Empty(t, FindLocations("She kept reading the reports all night"))

	matches := FindLocations("flooding in Reading town centre")
	require.Len(t, matches, 1)
	assert.Equal(t, "Reading", matches[0].Name)
	assert.Equal(t, models.RegionSouthEast, matches[0].Region)
}

func TestFindLocationsAmbiguousNeedContext(t *testing.T) {
	// "bath" as a noun, no geographic context nearby.
	assert.Empty(t, FindLocations("I ran a hot bath after the storm"))

	matches := FindLocations("Bath city council approved the flood defence plan")
	require.Len(t, matches, 1)
	assert.Equal(t, "Bath", matches[0].Name)
}

func TestFindLocationsNewYork(t *testing.T) {
	assert.Empty(t, FindLocations("Protests were held in New York yesterday"))

	matches := FindLocations("York city centre flooded again")
	require.Len(t, matches, 1)
	assert.Equal(t, "York", matches[0].Name)
}

func TestFindLocationsLongestNameWins(t *testing.T) {
	matches := FindLocations("Heavy rain hit Milton Keynes and Stoke-on-Trent overnight")
	assert.ElementsMatch(t, []string{"Milton Keynes", "Stoke-on-Trent"}, matchNames(matches))
}

func TestFindLocationsBlankInput(t *testing.T) {
	assert.Empty(t, FindLocations(""))
	assert.Empty(t, FindLocations("   \n\t"))
}

func TestFindLocationsUnknownPlace(t *testing.T) {
	assert.Empty(t, FindLocations("The village of Ambridge stayed dry"))
}
