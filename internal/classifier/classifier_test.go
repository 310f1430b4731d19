package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermoculture/discourse-engine/internal/models"
)

func scoreSum(scores map[models.DiscourseCategory]float64) float64 {
	total := 0.0
	for _, v := range scores {
		total += v
	}
	return total
}

func TestClassifyPracticalAdaptation(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("We installed solar panels and a heat pump")
	assert.Equal(t, models.CategoryPracticalAdaptation, got.ClassificationType)
	assert.Greater(t, got.Confidence, 0.5)
}

func TestClassifyCategories(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		text string
		want models.DiscourseCategory
	}{
		{"I feel so anxious and overwhelmed, the dread keeps me sleepless", models.CategoryEmotionalResponse},
		{"Parliament debated the new net zero legislation and carbon tax", models.CategoryPolicyDiscussion},
		{"Our grassroots group organised a petition and a community garden", models.CategoryCommunityAction},
		{"It's all a hoax, alarmist propaganda and junk science", models.CategoryDenialDismissal},
	}

	for _, tt := range tests {
		got := c.Classify(tt.text)
		assert.Equal(t, tt.want, got.ClassificationType, tt.text)
	}
}

func TestClassifyDistributionSumsToOne(t *testing.T) {
	c := NewClassifier()

	inputs := []string{
		"",
		"We installed solar panels and a heat pump",
		"nothing matches here at all",
		"government policy and community volunteers feel worried about the hoax",
	}

	for _, text := range inputs {
		got := c.Classify(text)
		require.Len(t, got.AllScores, 5)
		assert.InDelta(t, 1.0, scoreSum(got.AllScores), 0.001, "text: %q", text)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("   ")
	assert.Equal(t, models.DiscourseCategories[0], got.ClassificationType)
	assert.InDelta(t, 0.2, got.Confidence, 1e-9)
	for _, v := range got.AllScores {
		assert.InDelta(t, 0.2, v, 1e-9)
	}
}

func TestClassifyDiminishingReturns(t *testing.T) {
	c := NewClassifier()

	once := c.score("installed")
	twice := c.score("installed and installed")

	assert.InDelta(t, 1.2, once[models.CategoryPracticalAdaptation], 1e-9)
	// sqrt(2) scaling, not 2x.
	assert.InDelta(t, 1.2*1.4142, twice[models.CategoryPracticalAdaptation], 0.001)
}

func TestClassifyBatch(t *testing.T) {
	c := NewClassifier()

	results := c.ClassifyBatch([]string{"We installed solar panels", ""})
	require.Len(t, results, 2)
	assert.Equal(t, models.CategoryPracticalAdaptation, results[0].ClassificationType)
	assert.Equal(t, models.DiscourseCategories[0], results[1].ClassificationType)
}
