package insights

import (
	"reflect"
	"testing"
)

func TestCorrelateFrequencyWeightedAverages(t *testing.T) {
	// Happy day with eggs and toast, sad day with eggs only.
	outcomes := map[string]float64{
		"2024-01-01": 0,
		"2024-01-02": -1,
	}
	foods := map[string][]string{
		"2024-01-01": {"Eggs", "Toast"},
		"2024-01-02": {"Eggs"},
	}

	rows := Correlate(outcomes, foods)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Toast (avg 0) ranks above Eggs (avg -0.5).
	if rows[0].FoodName != "Toast" || rows[0].AverageScore != 0 || rows[0].Occurrences != 1 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[1].FoodName != "Eggs" || rows[1].AverageScore != -0.5 || rows[1].Occurrences != 2 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestCorrelateExcludesUnratedDays(t *testing.T) {
	outcomes := map[string]float64{"2024-01-01": 1}
	foods := map[string][]string{
		"2024-01-01": {"Rice"},
		"2024-01-02": {"Rice", "Beans"},
	}

	rows := Correlate(outcomes, foods)
	if len(rows) != 1 {
		t.Fatalf("expected unrated day to be excluded, got %d rows", len(rows))
	}
	if rows[0].FoodName != "Rice" || rows[0].Occurrences != 1 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestCorrelateCountsDuplicateTokensPerDay(t *testing.T) {
	outcomes := map[string]float64{"2024-01-01": 0.5}
	foods := map[string][]string{"2024-01-01": {"Coffee", "Coffee"}}

	rows := Correlate(outcomes, foods)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Occurrences != 2 {
		t.Fatalf("expected duplicate tokens to each count, got occurrences=%d", rows[0].Occurrences)
	}
}

func TestCorrelateTiesKeepFirstAppearanceOrder(t *testing.T) {
	outcomes := map[string]float64{"2024-01-01": 0.5, "2024-01-02": 0.5}
	foods := map[string][]string{
		"2024-01-01": {"Apple", "Banana"},
		"2024-01-02": {"Cherry"},
	}

	rows := Correlate(outcomes, foods)
	got := []string{rows[0].FoodName, rows[1].FoodName, rows[2].FoodName}
	want := []string{"Apple", "Banana", "Cherry"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected tie order %v, got %v", want, got)
	}
}

func TestCorrelateIsDeterministicAcrossRuns(t *testing.T) {
	outcomes := map[string]float64{
		"2024-01-01": 1, "2024-01-02": -1, "2024-01-03": 0,
		"2024-01-04": 0.5, "2024-01-05": -0.5,
	}
	foods := map[string][]string{
		"2024-01-01": {"A", "B"}, "2024-01-02": {"B", "C"},
		"2024-01-03": {"C", "A"}, "2024-01-04": {"D"}, "2024-01-05": {"E", "D"},
	}

	first := Correlate(outcomes, foods)
	for i := 0; i < 20; i++ {
		if again := Correlate(outcomes, foods); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed:\nfirst: %#v\nagain: %#v", i, first, again)
		}
	}
}

func TestCorrelateConditionsGroupsByCondition(t *testing.T) {
	outcomes := map[string]float64{
		"2024-01-01": 1,
		"2024-01-02": 0,
		"2024-01-03": -1,
	}
	conditions := map[string]string{
		"2024-01-01": "sunny",
		"2024-01-02": "sunny",
		"2024-01-03": "rain",
	}

	rows := CorrelateConditions(outcomes, conditions)
	if len(rows) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(rows))
	}
	if rows[0].Condition != "sunny" || rows[0].AverageScore != 0.5 || rows[0].Days != 2 {
		t.Fatalf("unexpected top condition: %+v", rows[0])
	}
	if rows[1].Condition != "rain" || rows[1].AverageScore != -1 {
		t.Fatalf("unexpected second condition: %+v", rows[1])
	}
}
