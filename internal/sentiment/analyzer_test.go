package sentiment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermoculture/discourse-engine/internal/models"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewAnalyzer()

	for _, text := range []string{"", "   ", "\n\t"} {
		got := a.Analyze(text)
		assert.Equal(t, 0.0, got.OverallSentiment)
		assert.Equal(t, models.SentimentNeutral, got.SentimentLabel)
		assert.Equal(t, 0.3, got.Confidence)
	}
}

func TestAnalyzeBounds(t *testing.T) {
	a := NewAnalyzer()

	inputs := []string{
		"The devastating flooding destroyed homes",
		"Wonderful community action and clean energy progress everywhere!",
		"The meeting is on Tuesday.",
		"disaster disaster disaster catastrophe collapse famine extinction",
		"breakthrough breakthrough reforestation green energy clean energy hopeful",
		"ok",
	}

	for _, text := range inputs {
		got := a.Analyze(text)
		assert.GreaterOrEqual(t, got.OverallSentiment, -1.0, text)
		assert.LessOrEqual(t, got.OverallSentiment, 1.0, text)
		assert.GreaterOrEqual(t, got.Confidence, 0.3, text)
		assert.LessOrEqual(t, got.Confidence, 1.0, text)
		assert.True(t, got.SentimentLabel.Valid(), text)
	}
}

func TestAnalyzeNegativeScenario(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("The devastating flooding destroyed homes")
	assert.Less(t, got.OverallSentiment, -0.3)
	assert.Contains(t,
		[]models.SentimentLabel{models.SentimentNegative, models.SentimentVeryNegative},
		got.SentimentLabel)
}

func TestAnalyzePositiveScenario(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("Brilliant news: the community energy project is a huge success and everyone is hopeful")
	assert.Greater(t, got.OverallSentiment, 0.2)
}

func TestClimateAdjustmentClamped(t *testing.T) {
	// Enough negative lexicon hits to blow well past the clamp.
	text := strings.Repeat("flooding drought wildfire famine catastrophe ", 5)
	adj := climateAdjustment(text)
	assert.Equal(t, -0.5, adj)
}

func TestClimateAdjustmentNoDoubleCounting(t *testing.T) {
	// "heat pumps" must consume its span so the shorter "heat pump" entry
	// cannot also match inside it.
	withPhrase := climateAdjustment("we fitted heat pumps")
	require.InDelta(t, 0.10, withPhrase, 1e-9)

	// "heat pump" and "insulation" are independent spans.
	two := climateAdjustment("a heat pump and insulation")
	require.InDelta(t, 0.18, two, 1e-9)
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  models.SentimentLabel
	}{
		{-0.9, models.SentimentVeryNegative},
		{-0.61, models.SentimentVeryNegative},
		{-0.6, models.SentimentNegative},
		{-0.21, models.SentimentNegative},
		{-0.2, models.SentimentNeutral},
		{0.0, models.SentimentNeutral},
		{0.2, models.SentimentNeutral},
		{0.21, models.SentimentPositive},
		{0.6, models.SentimentPositive},
		{0.61, models.SentimentVeryPositive},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFromScore(tt.score), "score %v", tt.score)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	a := NewAnalyzer()

	results := a.AnalyzeBatch([]string{"flooding ruined everything", "", "great progress on renewables"})
	require.Len(t, results, 3)
	assert.Equal(t, models.SentimentNeutral, results[1].SentimentLabel)
	assert.Less(t, results[0].OverallSentiment, results[2].OverallSentiment)
}
