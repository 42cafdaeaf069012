package insights

import "math"

// Confidence is a heuristic trust tier derived from cohort sizes, not a
// statistical test.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

const (
	significantDiff        = 0.3
	significantDiffPercent = 15
)

// CohortComparison is the outcome of comparing one metric across two
// cohorts, e.g. mood on working vs. non-working days.
type CohortComparison struct {
	AvgA        float64    `json:"avg_a"`
	AvgB        float64    `json:"avg_b"`
	StdDevA     float64    `json:"std_dev_a"`
	StdDevB     float64    `json:"std_dev_b"`
	CountA      int        `json:"count_a"`
	CountB      int        `json:"count_b"`
	Diff        float64    `json:"diff"`
	DiffPercent float64    `json:"diff_percent"`
	Confidence  Confidence `json:"confidence"`
	Significant bool       `json:"significant"`
}

// Compare computes diff = avgA - avgB, a guarded percentage diff (0 when the
// reference average is zero, never NaN), a sample-count confidence tier and
// a threshold significance flag.
func Compare(cohortA []float64, cohortB []float64) CohortComparison {
	comparison := CohortComparison{
		AvgA:    Mean(cohortA),
		AvgB:    Mean(cohortB),
		StdDevA: StdDev(cohortA),
		StdDevB: StdDev(cohortB),
		CountA:  len(cohortA),
		CountB:  len(cohortB),
	}

	comparison.Diff = comparison.AvgA - comparison.AvgB
	if comparison.AvgB != 0 {
		comparison.DiffPercent = comparison.Diff / math.Abs(comparison.AvgB) * 100
	}
	comparison.Confidence = confidenceForCounts(comparison.CountA, comparison.CountB)
	comparison.Significant = math.Abs(comparison.Diff) > significantDiff ||
		math.Abs(comparison.DiffPercent) > significantDiffPercent
	return comparison
}

func confidenceForCounts(countA int, countB int) Confidence {
	smaller := countA
	if countB < smaller {
		smaller = countB
	}
	switch {
	case smaller >= 20:
		return ConfidenceHigh
	case smaller >= 10:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ComparativeResult joins the mood and productivity comparisons for one
// cohort split (working vs. non-working, training vs. non-training) into a
// single recommendation.
type ComparativeResult struct {
	Label          string           `json:"label"`
	Mood           CohortComparison `json:"mood"`
	Productivity   CohortComparison `json:"productivity"`
	Confidence     Confidence       `json:"confidence"`
	Significant    bool             `json:"significant"`
	Recommendation string           `json:"recommendation"`
}

// CombineComparisons evaluates the two metrics jointly: either diff alone
// can establish significance, and the weaker of the two confidence tiers
// governs the result.
func CombineComparisons(label string, mood CohortComparison, productivity CohortComparison) ComparativeResult {
	result := ComparativeResult{
		Label:        label,
		Mood:         mood,
		Productivity: productivity,
		Confidence:   weakerConfidence(mood.Confidence, productivity.Confidence),
		Significant:  mood.Significant || productivity.Significant,
	}
	result.Recommendation = comparisonRecommendation(label, result)
	return result
}

func weakerConfidence(a Confidence, b Confidence) Confidence {
	rank := map[Confidence]int{ConfidenceLow: 0, ConfidenceMedium: 1, ConfidenceHigh: 2}
	if rank[a] <= rank[b] {
		return a
	}
	return b
}
