package insights

import (
	"strconv"
	"strings"
)

// ScoreConfig is the immutable normalization table shared by every analysis.
// Construct it with DefaultScoreConfig; the zero value recognizes nothing.
type ScoreConfig struct {
	moodLabelScores map[string]float64
	moodLabelRating map[string]int
	bloatingLevels  map[string]int
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		moodLabelScores: map[string]float64{
			"sad":        -1,
			"neutral":    -0.5,
			"happy":      0,
			"very happy": 0.5,
			"ecstatic":   1,
		},
		moodLabelRating: map[string]int{
			"sad":        1,
			"neutral":    2,
			"happy":      3,
			"very happy": 4,
			"ecstatic":   5,
		},
		bloatingLevels: map[string]int{
			"none":     0,
			"mild":     1,
			"moderate": 2,
			"severe":   3,
		},
	}
}

// MoodScore maps a mood label or its 1-5 numeric form onto [-1, 1]. The
// second return is false for anything outside the recognized domain; such
// records are skipped by callers, never coerced to zero.
func (config ScoreConfig) MoodScore(value string) (float64, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if score, ok := config.moodLabelScores[normalized]; ok {
		return score, true
	}
	if rating, err := strconv.Atoi(normalized); err == nil && rating >= 1 && rating <= 5 {
		return float64(rating-3) / 2, true
	}
	return 0, false
}

// MoodRating maps a mood label onto its 1-5 equivalent, used where weekly
// summaries report means on the familiar rating scale.
func (config ScoreConfig) MoodRating(value string) (int, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if rating, ok := config.moodLabelRating[normalized]; ok {
		return rating, true
	}
	if rating, err := strconv.Atoi(normalized); err == nil && rating >= 1 && rating <= 5 {
		return rating, true
	}
	return 0, false
}

// BloatingScore maps the ordinal bloating levels onto 0-3.
func (config ScoreConfig) BloatingScore(level string) (int, bool) {
	score, ok := config.bloatingLevels[strings.ToLower(strings.TrimSpace(level))]
	return score, ok
}

// ProductivityScore centers a raw rating at the midpoint of its scale:
// raw - ceil(scaleMax/2). Positive means above the neutral midpoint for any
// scale, which keeps "improving" symmetric across 1-5 and 1-10 histories.
func ProductivityScore(raw int, scaleMax int) (float64, bool) {
	if scaleMax < 2 || raw < 1 || raw > scaleMax {
		return 0, false
	}
	midpoint := (scaleMax + 1) / 2
	return float64(raw - midpoint), true
}

// SplitMealItems is the canonical food tokenizer: split on commas, trim each
// token, drop empties. Tokens stay case-sensitive; every consumer that
// compares or counts foods must go through this function.
func SplitMealItems(text string) []string {
	parts := strings.Split(text, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
