package insights

import (
	"math"
	"time"
)

// Sample is one (key, value) observation fed to the aggregator.
type Sample struct {
	Key   string
	Value float64
}

// GroupSummary holds per-key statistics. StdDev uses population variance
// and is defined as 0 for groups smaller than two.
type GroupSummary struct {
	Key    string
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize groups samples by key and computes count, mean and population
// standard deviation per group. Groups are emitted in order of first
// appearance so that downstream output stays deterministic.
func Summarize(samples []Sample) []GroupSummary {
	order := make([]string, 0)
	grouped := make(map[string][]float64)
	for _, sample := range samples {
		if _, seen := grouped[sample.Key]; !seen {
			order = append(order, sample.Key)
		}
		grouped[sample.Key] = append(grouped[sample.Key], sample.Value)
	}

	summaries := make([]GroupSummary, 0, len(order))
	for _, key := range order {
		values := grouped[key]
		summaries = append(summaries, GroupSummary{
			Key:    key,
			Count:  len(values),
			Mean:   Mean(values),
			StdDev: StdDev(values),
		})
	}
	return summaries
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

// StdDev is the population standard deviation (divide by count, not
// count-1); a group of fewer than two values has no spread.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var total float64
	for _, value := range values {
		delta := value - mean
		total += delta * delta
	}
	return math.Sqrt(total / float64(len(values)))
}

// WeekStart returns the Monday of the ISO week containing date, at midnight
// in the date's location.
func WeekStart(date time.Time) time.Time {
	day := dateOnly(date)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey is the calendar-date grouping key used across all analyses.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
