// Package sentiment scores text with VADER adjusted by a climate-domain
// lexicon, producing a bounded score, label, and confidence.
package sentiment

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/thermoculture/discourse-engine/internal/models"
)

// climateTerm is one precompiled lexicon entry. Single words match on word
// boundaries, multi-word phrases as substrings.
type climateTerm struct {
	term     string
	pattern  *regexp.Regexp
	modifier float64
}

// climateTerms holds every lexicon entry sorted longest term first, so a
// phrase claims its span before any of its constituent words can.
var climateTerms = buildClimateTerms()

func buildClimateTerms() []climateTerm {
	terms := make([]climateTerm, 0, len(climateNegativeLexicon)+len(climatePositiveLexicon))
	for _, lexicon := range []map[string]float64{climateNegativeLexicon, climatePositiveLexicon} {
		for term, modifier := range lexicon {
			expr := regexp.QuoteMeta(term)
			if !strings.Contains(term, " ") {
				expr = `\b` + expr + `\b`
			}
			terms = append(terms, climateTerm{
				term:     term,
				pattern:  regexp.MustCompile(expr),
				modifier: modifier,
			})
		}
	}

	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i].term) != len(terms[j].term) {
			return len(terms[i].term) > len(terms[j].term)
		}
		return terms[i].term < terms[j].term
	})
	return terms
}

// Analyzer combines the VADER polarity engine with the climate lexicon.
// Safe for concurrent use; all matching state is read-only after init.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores a single text. Empty or whitespace-only input yields the
// neutral default rather than an error.
func (a *Analyzer) Analyze(text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{
			OverallSentiment: 0.0,
			SentimentLabel:   models.SentimentNeutral,
			Confidence:       0.3,
		}
	}

	scores := a.vader.PolarityScores(text)
	adjustment := climateAdjustment(text)

	adjusted := clamp(scores.Compound+adjustment, -1.0, 1.0)
	adjusted = round4(adjusted)

	return models.SentimentResult{
		OverallSentiment: adjusted,
		SentimentLabel:   labelFromScore(adjusted),
		Confidence:       confidence(scores, adjustment),
	}
}

// AnalyzeBatch scores each text independently.
func (a *Analyzer) AnalyzeBatch(texts []string) []models.SentimentResult {
	results := make([]models.SentimentResult, len(texts))
	for i, t := range texts {
		results[i] = a.Analyze(t)
	}
	return results
}

// climateAdjustment sums the modifiers of every climate term found in the
// text. Longest terms are matched first and overlapping spans excluded so a
// phrase and its constituent word are never both counted. The total is
// clamped so the lexicon cannot overwhelm the base engine.
func climateAdjustment(text string) float64 {
	lower := strings.ToLower(text)
	adjustment := 0.0
	var spans [][2]int

	overlaps := func(start, end int) bool {
		for _, s := range spans {
			if start < s[1] && end > s[0] {
				return true
			}
		}
		return false
	}

	for _, ct := range climateTerms {
		for _, loc := range ct.pattern.FindAllStringIndex(lower, -1) {
			if overlaps(loc[0], loc[1]) {
				continue
			}
			adjustment += ct.modifier
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}

	return clamp(adjustment, -0.5, 0.5)
}

// confidence blends the base engine's polarity strength, a sign-agreement
// factor against the climate adjustment, and a penalty for very neutral
// text. Always within [0.3, 1.0].
func confidence(scores govader.Sentiment, adjustment float64) float64 {
	polarityStrength := math.Abs(scores.Compound)

	agreement := 0.9
	if scores.Compound != 0 && adjustment != 0 {
		if (scores.Compound > 0) == (adjustment > 0) {
			agreement = 1.0
		} else {
			agreement = 0.8
		}
	}

	neutralPenalty := 1.0 - scores.Neutral*0.3

	raw := polarityStrength * agreement * neutralPenalty
	return round4(clamp(raw+0.3, 0.3, 1.0))
}

func labelFromScore(score float64) models.SentimentLabel {
	switch {
	case score < -0.6:
		return models.SentimentVeryNegative
	case score < -0.2:
		return models.SentimentNegative
	case score <= 0.2:
		return models.SentimentNeutral
	case score <= 0.6:
		return models.SentimentPositive
	default:
		return models.SentimentVeryPositive
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
