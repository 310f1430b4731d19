package models

import (
	"time"

	"github.com/google/uuid"
)

// SentimentLabel is the closed set of sentiment buckets.
type SentimentLabel string

const (
	SentimentVeryNegative SentimentLabel = "VERY_NEGATIVE"
	SentimentNegative     SentimentLabel = "NEGATIVE"
	SentimentNeutral      SentimentLabel = "NEUTRAL"
	SentimentPositive     SentimentLabel = "POSITIVE"
	SentimentVeryPositive SentimentLabel = "VERY_POSITIVE"
)

func (l SentimentLabel) Valid() bool {
	switch l {
	case SentimentVeryNegative, SentimentNegative, SentimentNeutral,
		SentimentPositive, SentimentVeryPositive:
		return true
	}
	return false
}

// SentimentResult is one immutable sentiment analysis outcome.
// Re-analysis creates a new result rather than mutating an old one.
type SentimentResult struct {
	OverallSentiment float64        `json:"overall_sentiment"`
	SentimentLabel   SentimentLabel `json:"sentiment_label"`
	Confidence       float64        `json:"confidence"`
}

// DiscourseCategory is the closed set of discourse classifications.
type DiscourseCategory string

const (
	CategoryPracticalAdaptation DiscourseCategory = "PRACTICAL_ADAPTATION"
	CategoryEmotionalResponse   DiscourseCategory = "EMOTIONAL_RESPONSE"
	CategoryPolicyDiscussion    DiscourseCategory = "POLICY_DISCUSSION"
	CategoryCommunityAction     DiscourseCategory = "COMMUNITY_ACTION"
	CategoryDenialDismissal     DiscourseCategory = "DENIAL_DISMISSAL"
)

// DiscourseCategories lists every category in canonical order. The first
// entry doubles as the deterministic winner for empty input.
var DiscourseCategories = []DiscourseCategory{
	CategoryPracticalAdaptation,
	CategoryEmotionalResponse,
	CategoryPolicyDiscussion,
	CategoryCommunityAction,
	CategoryDenialDismissal,
}

func (c DiscourseCategory) Valid() bool {
	for _, known := range DiscourseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ClassificationResult holds the winning category plus the full normalized
// distribution, which sums to 1.0.
type ClassificationResult struct {
	ClassificationType DiscourseCategory             `json:"classification_type"`
	Confidence         float64                       `json:"confidence"`
	AllScores          map[DiscourseCategory]float64 `json:"all_scores"`
}

// ThemeAssignment links a text to one taxonomy theme.
type ThemeAssignment struct {
	Theme          string  `json:"theme"`
	RelevanceScore float64 `json:"relevance_score"`
}

// Region is the closed set of UK regions used by the gazetteer.
type Region string

const (
	RegionLondon          Region = "LONDON"
	RegionSouthEast       Region = "SOUTH_EAST"
	RegionSouthWest       Region = "SOUTH_WEST"
	RegionEast            Region = "EAST"
	RegionWestMidlands    Region = "WEST_MIDLANDS"
	RegionEastMidlands    Region = "EAST_MIDLANDS"
	RegionNorthWest       Region = "NORTH_WEST"
	RegionNorthEast       Region = "NORTH_EAST"
	RegionYorkshire       Region = "YORKSHIRE"
	RegionScotland        Region = "SCOTLAND"
	RegionWales           Region = "WALES"
	RegionNorthernIreland Region = "NORTHERN_IRELAND"
)

// LocationMatch is one resolved gazetteer hit.
type LocationMatch struct {
	Name      string  `json:"name"`
	Region    Region  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AnalysisResult bundles every analyzer's output for one record. Error is
// set (and the rest left zero) when a record failed inside a batch.
type AnalysisResult struct {
	RecordID       uuid.UUID            `json:"record_id"`
	Sentiment      SentimentResult      `json:"sentiment"`
	Classification ClassificationResult `json:"classification"`
	Themes         []ThemeAssignment    `json:"themes"`
	Locations      []LocationMatch      `json:"locations"`
	Keywords       []string             `json:"keywords"`
	AnalyzedAt     time.Time            `json:"analyzed_at"`
	Error          string               `json:"error,omitempty"`
}
