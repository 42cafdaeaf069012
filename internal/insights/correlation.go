package insights

import "sort"

// FoodCorrelation is one row of a food-to-outcome ranking: the mean outcome
// score across every occurrence of the food, frequency-weighted.
type FoodCorrelation struct {
	FoodName     string  `json:"food_name"`
	AverageScore float64 `json:"average_score"`
	Occurrences  int     `json:"occurrences"`
}

// Correlate accumulates, for every food token logged on a date that also has
// an outcome score, one (score, occurrence) contribution. Duplicate tokens
// on the same day each count: eating a food twice weighs it twice. Days with
// food but no outcome are excluded, not treated as neutral. Rows come back
// sorted by average score descending; ties keep first-appearance order.
func Correlate(outcomeByDate map[string]float64, foodsByDate map[string][]string) []FoodCorrelation {
	type accumulator struct {
		sum   float64
		count int
	}

	dates := make([]string, 0, len(foodsByDate))
	for date := range foodsByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	order := make([]string, 0)
	totals := make(map[string]*accumulator)
	for _, date := range dates {
		score, rated := outcomeByDate[date]
		if !rated {
			continue
		}
		for _, food := range foodsByDate[date] {
			entry, seen := totals[food]
			if !seen {
				entry = &accumulator{}
				totals[food] = entry
				order = append(order, food)
			}
			entry.sum += score
			entry.count++
		}
	}

	rows := make([]FoodCorrelation, 0, len(order))
	for _, food := range order {
		entry := totals[food]
		rows = append(rows, FoodCorrelation{
			FoodName:     food,
			AverageScore: entry.sum / float64(entry.count),
			Occurrences:  entry.count,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageScore > rows[j].AverageScore
	})
	return rows
}

// ConditionCorrelation relates a weather condition to the mean mood score of
// the days it was recorded on.
type ConditionCorrelation struct {
	Condition    string  `json:"condition"`
	AverageScore float64 `json:"average_score"`
	Days         int     `json:"days"`
}

// CorrelateConditions groups mood scores by the weather condition recorded
// for the same date. Same ordering rules as Correlate.
func CorrelateConditions(outcomeByDate map[string]float64, conditionByDate map[string]string) []ConditionCorrelation {
	dates := make([]string, 0, len(conditionByDate))
	for date := range conditionByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	samples := make([]Sample, 0, len(dates))
	for _, date := range dates {
		score, rated := outcomeByDate[date]
		if !rated {
			continue
		}
		condition := conditionByDate[date]
		if condition == "" {
			continue
		}
		samples = append(samples, Sample{Key: condition, Value: score})
	}

	rows := make([]ConditionCorrelation, 0)
	for _, summary := range Summarize(samples) {
		rows = append(rows, ConditionCorrelation{
			Condition:    summary.Key,
			AverageScore: summary.Mean,
			Days:         summary.Count,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageScore > rows[j].AverageScore
	})
	return rows
}
