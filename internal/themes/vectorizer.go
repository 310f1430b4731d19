package themes

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var tokenRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z-]+`)

// tokenize lowercases, extracts word tokens, drops stop words, and appends
// bigrams formed from the surviving token sequence.
func tokenize(text string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(text), -1)

	unigrams := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !englishStopWords[tok] {
			unigrams = append(unigrams, tok)
		}
	}

	features := make([]string, 0, len(unigrams)*2)
	features = append(features, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		features = append(features, unigrams[i]+" "+unigrams[i+1])
	}
	return features
}

// vectorizer fits a TF-IDF vocabulary over a document set and transforms
// texts into L2-normalized term-weight vectors. Fit once, then read-only.
type vectorizer struct {
	maxFeatures int     // 0 means unlimited
	maxDF       float64 // drop terms present in more than this fraction of docs

	terms []string
	vocab map[string]int
	idf   []float64
}

func newVectorizer(maxFeatures int, maxDF float64) *vectorizer {
	return &vectorizer{maxFeatures: maxFeatures, maxDF: maxDF}
}

// fit builds the vocabulary and smoothed IDF weights from docs.
func (v *vectorizer) fit(docs []string) {
	df := make(map[string]int)
	tf := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range tokenize(doc) {
			tf[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := len(docs)
	candidates := make([]string, 0, len(df))
	for term, count := range df {
		if v.maxDF < 1.0 && n > 1 && float64(count)/float64(n) > v.maxDF {
			continue
		}
		candidates = append(candidates, term)
	}

	if v.maxFeatures > 0 && len(candidates) > v.maxFeatures {
		sort.Slice(candidates, func(i, j int) bool {
			if tf[candidates[i]] != tf[candidates[j]] {
				return tf[candidates[i]] > tf[candidates[j]]
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:v.maxFeatures]
	}
	sort.Strings(candidates)

	v.terms = candidates
	v.vocab = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	for i, term := range candidates {
		v.vocab[term] = i
		v.idf[i] = smoothIDF(n, df[term])
	}
}

// counts returns the raw in-vocabulary term counts for doc.
func (v *vectorizer) counts(doc string) []int {
	counts := make([]int, len(v.terms))
	for _, term := range tokenize(doc) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}
	return counts
}

// transform returns the L2-normalized TF-IDF vector for doc. A doc with no
// in-vocabulary terms yields the zero vector.
func (v *vectorizer) transform(doc string) []float64 {
	vec := make([]float64, len(v.terms))
	for i, count := range v.counts(doc) {
		if count > 0 {
			vec[i] = float64(count) * v.idf[i]
		}
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// cosine computes the similarity of two L2-normalized vectors.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}

// smoothIDF matches the common smoothed formulation:
// ln((1+n)/(1+df)) + 1.
func smoothIDF(n, df int) float64 {
	return math.Log(float64(1+n)/float64(1+df)) + 1
}
