// Package themes maps text to a fixed taxonomy of climate-discourse themes
// via TF-IDF cosine similarity, discovers latent topics over corpora with
// LDA, and extracts per-document keywords.
package themes

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/thermoculture/discourse-engine/internal/models"
)

const (
	// relevanceThreshold filters out negligible theme similarities.
	relevanceThreshold = 0.01

	// defaultTopics is the latent topic count for batch extraction.
	defaultTopics = 10

	ldaSweeps          = 20
	topicTermCount     = 15
	dominantTopicCount = 3
	minTopicWeight     = 0.05

	defaultMaxFeatures = 5000
	corpusMaxDF        = 0.95
)

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// Extractor matches text against the theme taxonomy. The theme vocabulary
// is fit once at construction and read-only afterwards, so a single
// Extractor is safe to share across concurrent callers.
type Extractor struct {
	themeNames   []string
	themeVec     *vectorizer
	themeVectors [][]float64
}

func NewExtractor() *Extractor {
	docs := make([]string, len(taxonomy))
	names := make([]string, len(taxonomy))
	for i, theme := range taxonomy {
		docs[i] = strings.Join(theme.Keywords, " ")
		names[i] = theme.Name
	}

	vec := newVectorizer(0, 1.0)
	vec.fit(docs)

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vec.transform(doc)
	}

	return &Extractor{themeNames: names, themeVec: vec, themeVectors: vectors}
}

// ExtractThemes maps a single text to taxonomy themes by cosine similarity.
// Blank input returns nil, never an error.
func (e *Extractor) ExtractThemes(text string) []models.ThemeAssignment {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return e.matchThemes(text)
}

// ExtractThemesBatch maps each text to themes, additionally fitting an LDA
// topic model over the whole corpus and blending each document's dominant
// latent topics back into its theme scores. One result slice per input;
// blank inputs get empty results. Deterministic for a fixed corpus (seeded
// sampler), but topic assignments are not stable across corpus sizes.
func (e *Extractor) ExtractThemesBatch(texts []string, nTopics int) [][]models.ThemeAssignment {
	results := make([][]models.ThemeAssignment, len(texts))
	if len(texts) == 0 {
		return results
	}
	if nTopics <= 0 {
		nTopics = defaultTopics
	}

	validIdx := make([]int, 0, len(texts))
	validTexts := make([]string, 0, len(texts))
	for i, t := range texts {
		if strings.TrimSpace(t) != "" {
			validIdx = append(validIdx, i)
			validTexts = append(validTexts, t)
		}
	}
	if len(validTexts) == 0 {
		return results
	}

	corpusVec := newVectorizer(defaultMaxFeatures, corpusMaxDF)
	corpusVec.fit(validTexts)

	vocabSize := len(corpusVec.terms)
	if vocabSize == 0 {
		// Nothing survived tokenization; fall back to direct matching.
		for i, corpusIdx := range validIdx {
			results[corpusIdx] = e.matchThemes(validTexts[i])
		}
		return results
	}

	k := nTopics
	if len(validTexts) < k {
		k = len(validTexts)
	}
	if vocabSize < k {
		k = vocabSize
	}
	if k < 1 {
		k = 1
	}

	docs := make([][]int, len(validTexts))
	for i, text := range validTexts {
		for term, count := range corpusVec.counts(text) {
			for c := 0; c < count; c++ {
				docs[i] = append(docs[i], term)
			}
		}
	}

	model := fitLDA(docs, vocabSize, k, ldaSweeps, ldaSeed)

	// Map each latent topic to taxonomy themes via its top terms.
	topicThemes := make([][]models.ThemeAssignment, k)
	for t := 0; t < k; t++ {
		top := topTerms(model.topicTerm[t], topicTermCount)
		words := make([]string, len(top))
		for i, idx := range top {
			words[i] = corpusVec.terms[idx]
		}
		topicThemes[t] = e.matchThemes(strings.Join(words, " "))
	}

	for i, corpusIdx := range validIdx {
		direct := e.matchThemes(validTexts[i])

		scores := make(map[string]float64, len(direct))
		for _, t := range direct {
			scores[t.Theme] = t.RelevanceScore
		}

		for _, topicIdx := range dominantTopics(model.docTopic[i], dominantTopicCount) {
			weight := model.docTopic[i][topicIdx]
			if weight < minTopicWeight {
				continue
			}
			for _, t := range topicThemes[topicIdx] {
				blended := t.RelevanceScore * weight
				if blended > scores[t.Theme] {
					scores[t.Theme] = blended
				}
			}
		}

		merged := make([]models.ThemeAssignment, 0, len(scores))
		for _, name := range e.themeNames {
			if score := round4(scores[name]); score > relevanceThreshold {
				merged = append(merged, models.ThemeAssignment{Theme: name, RelevanceScore: score})
			}
		}
		sort.SliceStable(merged, func(a, b int) bool {
			return merged[a].RelevanceScore > merged[b].RelevanceScore
		})
		results[corpusIdx] = merged
	}

	return results
}

// Keywords extracts up to topN salient terms from a single text by fitting
// a fresh TF-IDF model over its sentences and summing term scores. Blank or
// all-stop-word input returns nil.
func (e *Extractor) Keywords(text string, topN int) []string {
	if strings.TrimSpace(text) == "" || topN <= 0 {
		return nil
	}

	var sentences []string
	for _, s := range sentenceRe.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return nil
	}

	vec := newVectorizer(defaultMaxFeatures, 1.0)
	vec.fit(sentences)
	if len(vec.terms) == 0 {
		return nil
	}

	summed := make([]float64, len(vec.terms))
	for _, s := range sentences {
		for i, v := range vec.transform(s) {
			summed[i] += v
		}
	}

	candidates := topTerms(summed, topN)
	keywords := make([]string, 0, topN)
	for _, idx := range candidates {
		term := vec.terms[idx]
		if climateStopWords[term] {
			continue
		}
		keywords = append(keywords, term)
		if len(keywords) >= topN {
			break
		}
	}
	return keywords
}

// matchThemes compares text against every theme pseudo-document, keeping
// similarities above the threshold, highest first.
func (e *Extractor) matchThemes(text string) []models.ThemeAssignment {
	vec := e.themeVec.transform(text)

	var matches []models.ThemeAssignment
	for i, themeVec := range e.themeVectors {
		if score := round4(cosine(vec, themeVec)); score > relevanceThreshold {
			matches = append(matches, models.ThemeAssignment{
				Theme:          e.themeNames[i],
				RelevanceScore: score,
			})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].RelevanceScore > matches[b].RelevanceScore
	})
	return matches
}

// dominantTopics returns the indices of the n largest topic weights,
// descending.
func dominantTopics(weights []float64, n int) []int {
	return topTerms(weights, n)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
