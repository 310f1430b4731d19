package themes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractThemesEnergyText(t *testing.T) {
	e := NewExtractor()

	themes := e.ExtractThemes("Our energy bills doubled so we installed loft insulation and a heat pump")
	require.NotEmpty(t, themes)
	assert.Equal(t, "Energy and Heating", themes[0].Theme)

	for _, th := range themes {
		assert.Greater(t, th.RelevanceScore, 0.01)
		assert.LessOrEqual(t, th.RelevanceScore, 1.0)
	}

	// Sorted descending.
	for i := 1; i < len(themes); i++ {
		assert.GreaterOrEqual(t, themes[i-1].RelevanceScore, themes[i].RelevanceScore)
	}
}

func TestExtractThemesBlankInput(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.ExtractThemes(""))
	assert.Empty(t, e.ExtractThemes("   \n"))
}

func TestExtractThemesNoOverlap(t *testing.T) {
	e := NewExtractor()

	// No taxonomy vocabulary at all.
	assert.Empty(t, e.ExtractThemes("zzz qqq xxx"))
}

func TestExtractThemesBatch(t *testing.T) {
	e := NewExtractor()

	texts := []string{
		"Flooding and storms battered the coast, rainfall records broken",
		"",
		"The council approved new solar panels and insulation grants for every home",
		"Wildlife habitats and woodland need protection, bees and birds are vanishing",
	}

	results := e.ExtractThemesBatch(texts, 4)
	require.Len(t, results, 4)

	assert.NotEmpty(t, results[0])
	assert.Equal(t, "Extreme Weather", results[0][0].Theme)
	assert.Empty(t, results[1])
	assert.NotEmpty(t, results[2])
	assert.NotEmpty(t, results[3])

	for _, perDoc := range results {
		for _, th := range perDoc {
			assert.Greater(t, th.RelevanceScore, 0.01)
		}
	}
}

func TestExtractThemesBatchDeterministic(t *testing.T) {
	e := NewExtractor()

	texts := []string{
		"Energy bills and heat pumps dominate the conversation",
		"Flooding closed the village school again",
		"Volunteers organised a community litter pick and tree planting",
		"Parliament debated net zero policy targets",
	}

	first := e.ExtractThemesBatch(texts, 3)
	second := e.ExtractThemesBatch(texts, 3)
	assert.Equal(t, first, second, "same corpus and seed must reproduce results")
}

func TestExtractThemesBatchEmpty(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.ExtractThemesBatch(nil, 10))

	results := e.ExtractThemesBatch([]string{"", "  "}, 10)
	require.Len(t, results, 2)
	assert.Empty(t, results[0])
	assert.Empty(t, results[1])
}

func TestKeywords(t *testing.T) {
	e := NewExtractor()

	text := "Solar panels cut our energy bills. The heat pump keeps the house warm. Insulation made the biggest difference."
	keywords := e.Keywords(text, 10)
	require.NotEmpty(t, keywords)
	assert.LessOrEqual(t, len(keywords), 10)

	lower := strings.ToLower(text)
	for _, kw := range keywords {
		assert.False(t, climateStopWords[kw], "climate stop word leaked: %s", kw)
		for _, word := range strings.Fields(kw) {
			assert.Contains(t, lower, word)
		}
	}
}

func TestKeywordsBlankAndDegenerate(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.Keywords("", 10))
	assert.Empty(t, e.Keywords("...!!!", 10))
	// Only stop words.
	assert.Empty(t, e.Keywords("the and of it", 10))
	assert.Empty(t, e.Keywords("some text", 0))
}

func TestTokenizeBigrams(t *testing.T) {
	tokens := tokenize("the heat pump works")
	assert.Contains(t, tokens, "heat")
	assert.Contains(t, tokens, "pump")
	assert.Contains(t, tokens, "heat pump")
	assert.NotContains(t, tokens, "the")
}

func TestVectorizerTransformNormalized(t *testing.T) {
	v := newVectorizer(0, 1.0)
	v.fit([]string{"energy bills energy", "flooding storms"})

	vec := v.transform("energy bills")
	sum := 0.0
	for _, x := range vec {
		sum += x * x
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// Out-of-vocabulary text gives the zero vector.
	zero := v.transform("zzz")
	for _, x := range zero {
		assert.Zero(t, x)
	}
}
