package themes

import "math/rand"

// ldaSeed fixes the sampler's initialization so batch extraction over the
// same corpus is reproducible. Results are not stable across different
// corpus sizes or seeds.
const ldaSeed = 42

// ldaModel holds the smoothed distributions estimated by collapsed Gibbs
// sampling: one topic mixture per document, one term distribution per topic.
type ldaModel struct {
	docTopic  [][]float64 // nDocs x k
	topicTerm [][]float64 // k x vocabSize
}

// fitLDA runs collapsed Gibbs sampling over docs (each a slice of term
// indices, one entry per token occurrence) for a fixed number of sweeps.
// Runtime is bounded by the sweep count, never by wall clock.
func fitLDA(docs [][]int, vocabSize, k, sweeps int, seed int64) ldaModel {
	rng := rand.New(rand.NewSource(seed))

	alpha := 50.0 / float64(k)
	const beta = 0.01
	betaSum := beta * float64(vocabSize)

	nDocs := len(docs)
	docTopicCount := make([][]int, nDocs)
	topicTermCount := make([][]int, k)
	topicTotal := make([]int, k)
	assignments := make([][]int, nDocs)

	for t := 0; t < k; t++ {
		topicTermCount[t] = make([]int, vocabSize)
	}

	for d, doc := range docs {
		docTopicCount[d] = make([]int, k)
		assignments[d] = make([]int, len(doc))
		for i, term := range doc {
			topic := rng.Intn(k)
			assignments[d][i] = topic
			docTopicCount[d][topic]++
			topicTermCount[topic][term]++
			topicTotal[topic]++
		}
	}

	weights := make([]float64, k)
	for sweep := 0; sweep < sweeps; sweep++ {
		for d, doc := range docs {
			for i, term := range doc {
				old := assignments[d][i]
				docTopicCount[d][old]--
				topicTermCount[old][term]--
				topicTotal[old]--

				total := 0.0
				for t := 0; t < k; t++ {
					w := (float64(docTopicCount[d][t]) + alpha) *
						(float64(topicTermCount[t][term]) + beta) /
						(float64(topicTotal[t]) + betaSum)
					weights[t] = w
					total += w
				}

				topic := sampleIndex(rng, weights, total)
				assignments[d][i] = topic
				docTopicCount[d][topic]++
				topicTermCount[topic][term]++
				topicTotal[topic]++
			}
		}
	}

	model := ldaModel{
		docTopic:  make([][]float64, nDocs),
		topicTerm: make([][]float64, k),
	}
	for d, doc := range docs {
		model.docTopic[d] = make([]float64, k)
		denom := float64(len(doc)) + alpha*float64(k)
		for t := 0; t < k; t++ {
			model.docTopic[d][t] = (float64(docTopicCount[d][t]) + alpha) / denom
		}
	}
	for t := 0; t < k; t++ {
		model.topicTerm[t] = make([]float64, vocabSize)
		denom := float64(topicTotal[t]) + betaSum
		for w := 0; w < vocabSize; w++ {
			model.topicTerm[t][w] = (float64(topicTermCount[t][w]) + beta) / denom
		}
	}
	return model
}

func sampleIndex(rng *rand.Rand, weights []float64, total float64) int {
	target := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}

// topTerms returns the indices of the n highest-weighted terms for one
// topic, in a deterministic order.
func topTerms(termWeights []float64, n int) []int {
	idx := make([]int, len(termWeights))
	for i := range idx {
		idx[i] = i
	}
	// Partial selection sort; n is small (15).
	if n > len(idx) {
		n = len(idx)
	}
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < len(idx); j++ {
			if termWeights[idx[j]] > termWeights[idx[best]] {
				best = j
			}
		}
		idx[i], idx[best] = idx[best], idx[i]
	}
	return idx[:n]
}
