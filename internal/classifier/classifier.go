// Package classifier scores text against the five discourse categories
// using weighted keyword matching with diminishing returns, normalized into
// a probability-like distribution.
package classifier

import (
	"math"
	"regexp"
	"strings"

	"github.com/thermoculture/discourse-engine/internal/models"
)

type compiledKeyword struct {
	pattern *regexp.Regexp
	weight  float64
}

// Classifier holds the precompiled keyword patterns for every category.
// Patterns are built once and read-only afterwards.
type Classifier struct {
	patterns map[models.DiscourseCategory][]compiledKeyword
}

func NewClassifier() *Classifier {
	patterns := make(map[models.DiscourseCategory][]compiledKeyword, len(categoryKeywords))
	for category, keywords := range categoryKeywords {
		compiled := make([]compiledKeyword, 0, len(keywords))
		for _, kw := range keywords {
			expr := regexp.QuoteMeta(kw.keyword)
			if !strings.Contains(kw.keyword, " ") {
				expr = `\b` + expr + `\b`
			}
			compiled = append(compiled, compiledKeyword{
				pattern: regexp.MustCompile(`(?i)` + expr),
				weight:  kw.weight,
			})
		}
		patterns[category] = compiled
	}
	return &Classifier{patterns: patterns}
}

// Classify scores a single text. Empty input returns the first category at
// uniform confidence, a deliberate deterministic degenerate case.
func (c *Classifier) Classify(text string) models.ClassificationResult {
	if strings.TrimSpace(text) == "" {
		uniform := normalize(zeroScores())
		return models.ClassificationResult{
			ClassificationType: models.DiscourseCategories[0],
			Confidence:         round4(1.0 / float64(len(models.DiscourseCategories))),
			AllScores:          uniform,
		}
	}

	raw := c.score(text)
	normalized := normalize(raw)

	best := models.DiscourseCategories[0]
	for _, category := range models.DiscourseCategories {
		if normalized[category] > normalized[best] {
			best = category
		}
	}

	return models.ClassificationResult{
		ClassificationType: best,
		Confidence:         normalized[best],
		AllScores:          normalized,
	}
}

// ClassifyBatch classifies each text independently.
func (c *Classifier) ClassifyBatch(texts []string) []models.ClassificationResult {
	results := make([]models.ClassificationResult, len(texts))
	for i, t := range texts {
		results[i] = c.Classify(t)
	}
	return results
}

// score sums weight * sqrt(count) for every matching keyword, giving
// repeated terms diminishing returns.
func (c *Classifier) score(text string) map[models.DiscourseCategory]float64 {
	scores := zeroScores()
	for category, compiled := range c.patterns {
		for _, kw := range compiled {
			count := len(kw.pattern.FindAllStringIndex(text, -1))
			if count > 0 {
				scores[category] += kw.weight * math.Sqrt(float64(count))
			}
		}
	}
	return scores
}

// normalize scales scores to sum to 1.0, distributing uniformly when every
// score is zero.
func normalize(scores map[models.DiscourseCategory]float64) map[models.DiscourseCategory]float64 {
	total := 0.0
	for _, v := range scores {
		total += v
	}

	normalized := make(map[models.DiscourseCategory]float64, len(scores))
	if total == 0 {
		equal := round4(1.0 / float64(len(scores)))
		for category := range scores {
			normalized[category] = equal
		}
		return normalized
	}

	for category, v := range scores {
		normalized[category] = round4(v / total)
	}
	return normalized
}

func zeroScores() map[models.DiscourseCategory]float64 {
	scores := make(map[models.DiscourseCategory]float64, len(models.DiscourseCategories))
	for _, category := range models.DiscourseCategories {
		scores[category] = 0.0
	}
	return scores
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
