package insights

import "testing"

func TestMoodScoreLabels(t *testing.T) {
	config := DefaultScoreConfig()

	tests := []struct {
		label string
		want  float64
	}{
		{label: "Sad", want: -1},
		{label: "Neutral", want: -0.5},
		{label: "Happy", want: 0},
		{label: "Very Happy", want: 0.5},
		{label: "Ecstatic", want: 1},
		{label: "  ecstatic  ", want: 1},
		{label: "VERY HAPPY", want: 0.5},
	}

	for _, testCase := range tests {
		t.Run(testCase.label, func(t *testing.T) {
			score, ok := config.MoodScore(testCase.label)
			if !ok {
				t.Fatalf("expected %q to be recognized", testCase.label)
			}
			if score != testCase.want {
				t.Fatalf("expected score %v for %q, got %v", testCase.want, testCase.label, score)
			}
		})
	}
}

func TestMoodScoreNumericForm(t *testing.T) {
	config := DefaultScoreConfig()

	expected := map[string]float64{"1": -1, "2": -0.5, "3": 0, "4": 0.5, "5": 1}
	for raw, want := range expected {
		score, ok := config.MoodScore(raw)
		if !ok {
			t.Fatalf("expected numeric mood %q to be recognized", raw)
		}
		if score != want {
			t.Fatalf("expected score %v for %q, got %v", want, raw, score)
		}
	}
}

func TestMoodScoreRejectsUnknownInput(t *testing.T) {
	config := DefaultScoreConfig()

	for _, raw := range []string{"", "meh", "6", "0", "-1", "happyish"} {
		if _, ok := config.MoodScore(raw); ok {
			t.Fatalf("expected %q to be rejected, not coerced to a default", raw)
		}
	}
}

func TestProductivityScoreCentersAtMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		raw      int
		scaleMax int
		want     float64
	}{
		{name: "five point low", raw: 1, scaleMax: 5, want: -2},
		{name: "five point midpoint", raw: 3, scaleMax: 5, want: 0},
		{name: "five point high", raw: 5, scaleMax: 5, want: 2},
		{name: "ten point low", raw: 1, scaleMax: 10, want: -4},
		{name: "ten point midpoint", raw: 5, scaleMax: 10, want: 0},
		{name: "ten point high", raw: 10, scaleMax: 10, want: 5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			score, ok := ProductivityScore(testCase.raw, testCase.scaleMax)
			if !ok {
				t.Fatalf("expected rating %d on scale %d to be valid", testCase.raw, testCase.scaleMax)
			}
			if score != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, score)
			}
		})
	}
}

func TestProductivityScoreRejectsOutOfScale(t *testing.T) {
	if _, ok := ProductivityScore(0, 5); ok {
		t.Fatal("expected rating 0 to be rejected")
	}
	if _, ok := ProductivityScore(6, 5); ok {
		t.Fatal("expected rating 6 on a 1-5 scale to be rejected")
	}
	if _, ok := ProductivityScore(3, 1); ok {
		t.Fatal("expected a degenerate scale to be rejected")
	}
}

func TestBloatingScore(t *testing.T) {
	config := DefaultScoreConfig()

	expected := map[string]int{"none": 0, "Mild": 1, "MODERATE": 2, " severe ": 3}
	for level, want := range expected {
		score, ok := config.BloatingScore(level)
		if !ok {
			t.Fatalf("expected bloating level %q to be recognized", level)
		}
		if score != want {
			t.Fatalf("expected %d for %q, got %d", want, level, score)
		}
	}

	if _, ok := config.BloatingScore("extreme"); ok {
		t.Fatal("expected unknown bloating level to be rejected")
	}
}

func TestSplitMealItems(t *testing.T) {
	items := SplitMealItems(" Eggs , Toast,,  Orange Juice ")
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d: %#v", len(items), items)
	}
	expected := []string{"Eggs", "Toast", "Orange Juice"}
	for i, item := range items {
		if item != expected[i] {
			t.Fatalf("expected item %q at position %d, got %q", expected[i], i, item)
		}
	}

	if len(SplitMealItems("")) != 0 {
		t.Fatal("expected empty text to yield no items")
	}
	if len(SplitMealItems(" , , ")) != 0 {
		t.Fatal("expected comma noise to yield no items")
	}
}
