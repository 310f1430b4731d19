// Package geo extracts UK place mentions from free text using a curated
// gazetteer and context heuristics for ambiguous names.
package geo

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thermoculture/discourse-engine/internal/models"
)

// contextWindow is how many characters around a match are searched for
// geographic context words.
const contextWindow = 80

var (
	placeByLower    map[string]Place
	locationPattern *regexp.Regexp

	// Trigger phrases for the verb sense of "reading", e.g. "reading a book".
	readingVerbRe = regexp.MustCompile(`(?i)\breading\s+(?:a|the|this|that|my|his|her|their|some|about|up|through)\b`)
)

func init() {
	placeByLower = make(map[string]Place, len(ukGazetteer))
	names := make([]string, 0, len(ukGazetteer))
	for _, p := range ukGazetteer {
		placeByLower[strings.ToLower(p.Name)] = p
		names = append(names, p.Name)
	}

	// Longest names first so "Stoke-on-Trent" wins over any shorter prefix.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = regexp.QuoteMeta(name)
	}
	locationPattern = regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`)
}

// FindLocations scans text for known UK place mentions in a single pass over
// the combined gazetteer pattern. Each canonical place appears at most once
// in the result regardless of mention count. Unknown places never match;
// blank text returns nil.
func FindLocations(text string) []models.LocationMatch {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var results []models.LocationMatch

	for _, loc := range locationPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		matched := text[start:end]
		lower := strings.ToLower(matched)

		if seen[lower] {
			continue
		}

		// "New York" is not Yorkshire.
		if lower == "york" && precededByNew(text, start) {
			continue
		}

		if ambiguousNames[lower] && !acceptAmbiguous(text, matched, lower, start, end) {
			continue
		}

		place := placeByLower[lower]
		seen[lower] = true
		results = append(results, models.LocationMatch{
			Name:      place.Name,
			Region:    place.Region,
			Latitude:  place.Latitude,
			Longitude: place.Longitude,
		})
	}

	return results
}

// acceptAmbiguous decides whether a match of an ambiguous name is being used
// in its geographic sense. Names colliding with verb forms are rejected on a
// lowercase first letter or a nearby trigger phrase; otherwise a geographic
// context word in the surrounding window is accepted, and for the verb
// subtype a capitalised mid-text mention suffices on its own.
func acceptAmbiguous(text, matched, lower string, start, end int) bool {
	if verbCollisionNames[lower] {
		first, _ := utf8.DecodeRuneInString(matched)
		if unicode.IsLower(first) {
			return false
		}

		vStart := start - 5
		if vStart < 0 {
			vStart = 0
		}
		vEnd := end + 40
		if vEnd > len(text) {
			vEnd = len(text)
		}
		if readingVerbRe.MatchString(text[vStart:vEnd]) {
			return false
		}
		return true
	}

	return hasGeoContext(text, start, end)
}

func hasGeoContext(text string, start, end int) bool {
	wStart := start - contextWindow
	if wStart < 0 {
		wStart = 0
	}
	wEnd := end + contextWindow
	if wEnd > len(text) {
		wEnd = len(text)
	}
	window := strings.ToLower(text[wStart:wEnd])

	for _, ctx := range geoContextWords {
		if strings.Contains(window, ctx) {
			return true
		}
	}
	return false
}

func precededByNew(text string, start int) bool {
	prefixStart := start - 4
	if prefixStart < 0 {
		prefixStart = 0
	}
	prefix := strings.TrimRight(strings.ToLower(text[prefixStart:start]), " ")
	return strings.HasSuffix(prefix, "new")
}
