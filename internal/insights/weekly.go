package insights

import (
	"sort"
	"strings"
	"time"

	"github.com/alencengic/modest-insights/internal/models"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

const (
	moodTrendThreshold         = 0.3
	productivityTrendThreshold = 0.5
)

// WeekRecords bundles the raw records of one ISO week.
type WeekRecords struct {
	Moods        []models.MoodEntry
	Productivity []models.ProductivityEntry
	Food         []models.FoodIntake
}

type MoodSummary struct {
	AverageRating float64 `json:"average_rating"`
	MostFrequent  string  `json:"most_frequent"`
	Trend         Trend   `json:"trend"`
	DaysLogged    int     `json:"days_logged"`
}

type ProductivitySummary struct {
	AverageScore float64 `json:"average_score"`
	Trend        Trend   `json:"trend"`
	DaysLogged   int     `json:"days_logged"`
}

type FoodFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type FoodSummary struct {
	TopFoods         []FoodFrequency `json:"top_foods"`
	DiversityScore   int             `json:"diversity_score"`
	TotalMealsLogged int             `json:"total_meals_logged"`
	TotalItems       int             `json:"total_items"`
	UniqueItems      int             `json:"unique_items"`
}

type WeeklySummary struct {
	WeekStart    time.Time           `json:"week_start"`
	WeekEnd      time.Time           `json:"week_end"`
	Mood         MoodSummary         `json:"mood"`
	Productivity ProductivitySummary `json:"productivity"`
	Food         FoodSummary         `json:"food"`
	StreakDays   int                 `json:"streak_days"`
	Insights     []WeeklyInsight     `json:"insights"`
}

// BuildWeeklySummary derives the full weekly artifact from the target week's
// records and the immediately preceding week's (used only for trends). The
// result is a pure function of its inputs: rebuilding it from unchanged
// records yields a structurally identical summary.
func BuildWeeklySummary(config ScoreConfig, weekStart time.Time, current WeekRecords, previous WeekRecords) WeeklySummary {
	weekStart = WeekStart(weekStart)
	summary := WeeklySummary{
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}

	summary.Mood = buildMoodSummary(config, current.Moods, previous.Moods)
	summary.Productivity = buildProductivitySummary(current.Productivity, previous.Productivity)
	summary.Food = buildFoodSummary(current.Food)
	summary.StreakDays = longestLoggedStreak(weekStart, current)
	summary.Insights = sortInsights(generateInsights(summary, loggedDayCount(current)))
	return summary
}

func buildMoodSummary(config ScoreConfig, current []models.MoodEntry, previous []models.MoodEntry) MoodSummary {
	ratings, frequency := moodRatings(config, current)
	summary := MoodSummary{DaysLogged: len(ratings)}
	if len(ratings) == 0 {
		summary.Trend = TrendStable
		return summary
	}

	summary.AverageRating = Mean(ratings)
	summary.MostFrequent = mostFrequentMood(frequency)

	previousRatings, _ := moodRatings(config, previous)
	summary.Trend = classifyTrend(summary.AverageRating, previousRatings, moodTrendThreshold)
	return summary
}

func moodRatings(config ScoreConfig, entries []models.MoodEntry) ([]float64, map[int]int) {
	ratings := make([]float64, 0, len(entries))
	frequency := make(map[int]int)
	for _, entry := range entries {
		rating, ok := config.MoodRating(entry.Mood)
		if !ok {
			continue
		}
		ratings = append(ratings, float64(rating))
		frequency[rating]++
	}
	return ratings, frequency
}

// mostFrequentMood breaks frequency ties toward the higher rating so the
// label stays deterministic.
func mostFrequentMood(frequency map[int]int) string {
	labels := map[int]string{
		1: models.MoodSad,
		2: models.MoodNeutral,
		3: models.MoodHappy,
		4: models.MoodVeryHappy,
		5: models.MoodEcstatic,
	}
	best, bestCount := 0, 0
	for rating := 1; rating <= 5; rating++ {
		if frequency[rating] >= bestCount && frequency[rating] > 0 {
			best = rating
			bestCount = frequency[rating]
		}
	}
	return labels[best]
}

func buildProductivitySummary(current []models.ProductivityEntry, previous []models.ProductivityEntry) ProductivitySummary {
	scores := productivityScores(current)
	summary := ProductivitySummary{DaysLogged: len(scores)}
	if len(scores) == 0 {
		summary.Trend = TrendStable
		return summary
	}

	summary.AverageScore = Mean(scores)
	summary.Trend = classifyTrend(summary.AverageScore, productivityScores(previous), productivityTrendThreshold)
	return summary
}

func productivityScores(entries []models.ProductivityEntry) []float64 {
	scores := make([]float64, 0, len(entries))
	for _, entry := range entries {
		score, ok := ProductivityScore(entry.Rating, entry.ScaleMax)
		if !ok {
			continue
		}
		scores = append(scores, score)
	}
	return scores
}

// classifyTrend compares this week's mean against the previous week's. A
// week with no prior samples is always stable; no inference without a
// baseline.
func classifyTrend(currentMean float64, previousValues []float64, threshold float64) Trend {
	if len(previousValues) == 0 {
		return TrendStable
	}
	diff := currentMean - Mean(previousValues)
	switch {
	case diff > threshold:
		return TrendImproving
	case diff < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func buildFoodSummary(intakes []models.FoodIntake) FoodSummary {
	summary := FoodSummary{TopFoods: []FoodFrequency{}}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, intake := range intakes {
		for _, meal := range intake.MealTexts() {
			items := SplitMealItems(meal)
			if len(items) > 0 {
				summary.TotalMealsLogged++
			}
			for _, item := range items {
				token := strings.ToLower(item)
				if counts[token] == 0 {
					order = append(order, token)
				}
				counts[token]++
				summary.TotalItems++
			}
		}
	}

	summary.UniqueItems = len(order)
	if summary.TotalItems > 0 {
		score := int(float64(summary.UniqueItems)/float64(summary.TotalItems)*100 + 0.5)
		if score > 100 {
			score = 100
		}
		summary.DiversityScore = score
	}

	ranked := make([]FoodFrequency, 0, len(order))
	for _, token := range order {
		ranked = append(ranked, FoodFrequency{Name: token, Count: counts[token]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	summary.TopFoods = ranked
	return summary
}

// longestLoggedStreak is the longest run of consecutive days inside the week
// with at least one record of any kind.
func longestLoggedStreak(weekStart time.Time, records WeekRecords) int {
	logged := loggedDates(records)

	best, run := 0, 0
	for offset := 0; offset < 7; offset++ {
		day := DateKey(weekStart.AddDate(0, 0, offset))
		if logged[day] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

func loggedDayCount(records WeekRecords) int {
	return len(loggedDates(records))
}

func loggedDates(records WeekRecords) map[string]bool {
	logged := make(map[string]bool)
	for _, entry := range records.Moods {
		logged[DateKey(entry.Date)] = true
	}
	for _, entry := range records.Productivity {
		logged[DateKey(entry.Date)] = true
	}
	for _, intake := range records.Food {
		logged[DateKey(intake.Date)] = true
	}
	return logged
}
