package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alencengic/modest-insights/internal/models"
)

// SymptomMetric selects which reaction dimension a food-symptom correlation
// scores against.
type SymptomMetric string

const (
	SymptomBloating SymptomMetric = "bloating"
	SymptomEnergy   SymptomMetric = "energy"
	SymptomStool    SymptomMetric = "stool"
	SymptomDiarrhea SymptomMetric = "diarrhea"
	SymptomNausea   SymptomMetric = "nausea"
	SymptomPain     SymptomMetric = "pain"
)

func ParseSymptomMetric(raw string) (SymptomMetric, error) {
	metric := SymptomMetric(strings.ToLower(strings.TrimSpace(raw)))
	switch metric {
	case SymptomBloating, SymptomEnergy, SymptomStool, SymptomDiarrhea, SymptomNausea, SymptomPain:
		return metric, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSymptomMetric, raw)
}

// SymptomScore extracts the metric's numeric value from one report:
// bloating on its 0-3 ordinal map, energy 1-5, stool on the 1-7 Bristol
// scale, and the boolean flags as 0/1. Out-of-domain values are excluded.
func (config ScoreConfig) SymptomScore(metric SymptomMetric, report models.SymptomReport) (float64, bool) {
	switch metric {
	case SymptomBloating:
		score, ok := config.BloatingScore(report.Bloating)
		return float64(score), ok
	case SymptomEnergy:
		if report.Energy < 1 || report.Energy > 5 {
			return 0, false
		}
		return float64(report.Energy), true
	case SymptomStool:
		if report.StoolConsistency < 1 || report.StoolConsistency > 7 {
			return 0, false
		}
		return float64(report.StoolConsistency), true
	case SymptomDiarrhea:
		return boolScore(report.Diarrhea), true
	case SymptomNausea:
		return boolScore(report.Nausea), true
	case SymptomPain:
		return boolScore(report.Pain), true
	}
	return 0, false
}

func boolScore(flag bool) float64 {
	if flag {
		return 1
	}
	return 0
}

// SymptomScoresByDate averages every report created on the same calendar
// date; a day with three meal reactions contributes their mean, not three
// separate outcomes.
func (config ScoreConfig) SymptomScoresByDate(metric SymptomMetric, reports []models.SymptomReport) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, report := range reports {
		score, ok := config.SymptomScore(metric, report)
		if !ok {
			continue
		}
		date := DateKey(report.CreatedAt)
		sums[date] += score
		counts[date]++
	}

	scores := make(map[string]float64, len(sums))
	for date, sum := range sums {
		scores[date] = sum / float64(counts[date])
	}
	return scores
}

// SymptomMetrics lists the valid metric names in a stable order, for error
// messages and API documentation payloads.
func SymptomMetrics() []string {
	names := []string{
		string(SymptomBloating), string(SymptomEnergy), string(SymptomStool),
		string(SymptomDiarrhea), string(SymptomNausea), string(SymptomPain),
	}
	sort.Strings(names)
	return names
}
