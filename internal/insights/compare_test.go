package insights

import (
	"math"
	"strings"
	"testing"
)

func TestCompareIdenticalCohorts(t *testing.T) {
	cohort := []float64{0.5, -0.5, 1, 0}
	comparison := Compare(cohort, cohort)

	if comparison.Diff != 0 {
		t.Fatalf("expected diff 0 for identical cohorts, got %v", comparison.Diff)
	}
	if comparison.Significant {
		t.Fatal("expected identical cohorts to be insignificant")
	}
}

func TestCompareWorkingDayScenario(t *testing.T) {
	// working days mood [-1, 0], non-working [1]
	comparison := Compare([]float64{-1, 0}, []float64{1})

	if comparison.AvgA != -0.5 {
		t.Fatalf("expected avgA -0.5, got %v", comparison.AvgA)
	}
	if comparison.AvgB != 1 {
		t.Fatalf("expected avgB 1, got %v", comparison.AvgB)
	}
	if comparison.Diff != -1.5 {
		t.Fatalf("expected diff -1.5, got %v", comparison.Diff)
	}
	if !comparison.Significant {
		t.Fatal("expected a 1.5 point swing to be significant")
	}
	if comparison.Confidence != ConfidenceLow {
		t.Fatalf("expected low confidence with a cohort of 1, got %s", comparison.Confidence)
	}
}

func TestCompareZeroDenominatorYieldsZeroPercent(t *testing.T) {
	comparison := Compare([]float64{1, 1}, []float64{0, 0})
	if comparison.DiffPercent != 0 {
		t.Fatalf("expected diff percent 0 when avgB is 0, got %v", comparison.DiffPercent)
	}
	if math.IsNaN(comparison.DiffPercent) || math.IsInf(comparison.DiffPercent, 0) {
		t.Fatal("diff percent must never be NaN or Inf")
	}
}

func TestConfidenceTiers(t *testing.T) {
	tests := []struct {
		name   string
		countA int
		countB int
		want   Confidence
	}{
		{name: "both large", countA: 25, countB: 20, want: ConfidenceHigh},
		{name: "smaller cohort governs", countA: 50, countB: 12, want: ConfidenceMedium},
		{name: "boundary at ten", countA: 10, countB: 10, want: ConfidenceMedium},
		{name: "boundary at twenty", countA: 20, countB: 20, want: ConfidenceHigh},
		{name: "tiny cohort", countA: 9, countB: 100, want: ConfidenceLow},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := confidenceForCounts(testCase.countA, testCase.countB); got != testCase.want {
				t.Fatalf("expected %s, got %s", testCase.want, got)
			}
		})
	}
}

func TestSignificanceByPercentAlone(t *testing.T) {
	// diff 0.2 is under the absolute threshold but 20% of the reference.
	comparison := Compare([]float64{1.2}, []float64{1.0})
	if !comparison.Significant {
		t.Fatalf("expected 20%% swing to be significant, got %+v", comparison)
	}
}

func TestCombineComparisonsQuadrants(t *testing.T) {
	up := Compare([]float64{2, 2}, []float64{0, 0})
	down := Compare([]float64{0, 0}, []float64{2, 2})

	tests := []struct {
		name         string
		mood         CohortComparison
		productivity CohortComparison
		wantPhrase   string
	}{
		{name: "both up", mood: up, productivity: up, wantPhrase: "Both your mood and productivity are higher"},
		{name: "both down", mood: down, productivity: down, wantPhrase: "Both your mood and productivity dip"},
		{name: "mood up productivity down", mood: up, productivity: down, wantPhrase: "recharge"},
		{name: "mood down productivity up", mood: down, productivity: up, wantPhrase: "overload"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := CombineComparisons("working days", testCase.mood, testCase.productivity)
			if !result.Significant {
				t.Fatal("expected combined result to be significant")
			}
			if !strings.Contains(result.Recommendation, testCase.wantPhrase) {
				t.Fatalf("expected recommendation containing %q, got %q", testCase.wantPhrase, result.Recommendation)
			}
		})
	}
}

func TestCombineComparisonsNeutralWhenInsignificant(t *testing.T) {
	flat := Compare([]float64{1, 1}, []float64{1, 1})
	result := CombineComparisons("training days", flat, flat)

	if result.Significant {
		t.Fatal("expected flat cohorts to be insignificant")
	}
	if !strings.Contains(result.Recommendation, "No significant difference") {
		t.Fatalf("expected neutral recommendation, got %q", result.Recommendation)
	}
}

func TestCombineComparisonsWeakerConfidenceGoverns(t *testing.T) {
	many := make([]float64, 25)
	few := []float64{1, 2}

	result := CombineComparisons("working days", Compare(many, many), Compare(few, few))
	if result.Confidence != ConfidenceLow {
		t.Fatalf("expected the weaker tier to govern, got %s", result.Confidence)
	}
}
