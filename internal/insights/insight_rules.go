package insights

import (
	"fmt"
	"sort"
)

type InsightType string

const (
	InsightPositive   InsightType = "positive"
	InsightNegative   InsightType = "negative"
	InsightNeutral    InsightType = "neutral"
	InsightSuggestion InsightType = "suggestion"
)

type InsightCategory string

const (
	CategoryMood         InsightCategory = "mood"
	CategoryProductivity InsightCategory = "productivity"
	CategoryFood         InsightCategory = "food"
	CategoryStreak       InsightCategory = "streak"
	CategoryGeneral      InsightCategory = "general"
)

// WeeklyInsight is one prioritized finding. IDs are assignment-order
// artifacts regenerated on every call; compare insights by category and
// title, never by the numeric suffix.
type WeeklyInsight struct {
	ID          string          `json:"id"`
	Type        InsightType     `json:"type"`
	Category    InsightCategory `json:"category"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Priority    int             `json:"priority"`
}

// generateInsights walks a fixed rule table over the computed summaries.
// Rules fire independently; each carries a fixed priority.
func generateInsights(summary WeeklySummary, daysLogged int) []WeeklyInsight {
	builder := &insightBuilder{}

	if daysLogged == 0 {
		builder.add(InsightSuggestion, CategoryGeneral, "Start tracking your days",
			"Log your mood, meals and productivity for a few days and insights will appear here.", "📝", 100)
		return builder.insights
	}

	switch summary.Mood.Trend {
	case TrendImproving:
		builder.add(InsightPositive, CategoryMood, "Your mood is on the rise",
			"This week's average mood is clearly above last week's. Whatever changed, it's working.", "📈", 80)
	case TrendDeclining:
		builder.add(InsightNegative, CategoryMood, "Your mood dipped this week",
			"This week's average mood fell compared to last week. It may be worth looking at what was different.", "📉", 85)
	}

	if summary.Mood.DaysLogged > 0 {
		if summary.Mood.AverageRating >= 4 {
			builder.add(InsightPositive, CategoryMood, "A genuinely good week",
				fmt.Sprintf("Your average mood was %.1f out of 5. Weeks like this are worth remembering.", summary.Mood.AverageRating), "🌟", 70)
		} else if summary.Mood.AverageRating <= 2 {
			builder.add(InsightNegative, CategoryMood, "A rough week",
				fmt.Sprintf("Your average mood was %.1f out of 5. Be kind to yourself and consider what support would help.", summary.Mood.AverageRating), "💙", 90)
		}
	}

	switch summary.Productivity.Trend {
	case TrendImproving:
		builder.add(InsightPositive, CategoryProductivity, "Productivity picking up",
			"You got noticeably more done this week than last. Momentum counts.", "🚀", 75)
	case TrendDeclining:
		builder.add(InsightNegative, CategoryProductivity, "Productivity slowed down",
			"Your productivity dropped compared to last week. A lighter week now and then is normal.", "🐌", 80)
	}

	if summary.Productivity.DaysLogged > 0 {
		if summary.Productivity.AverageScore >= 1 {
			builder.add(InsightPositive, CategoryProductivity, "Strong output",
				"You rated most days well above your usual midpoint. Solid week of work.", "⚡", 65)
		} else if summary.Productivity.AverageScore <= -1 {
			builder.add(InsightNegative, CategoryProductivity, "Low-output week",
				"Most days landed below your midpoint. Check whether anything is draining your focus.", "🔋", 82)
		}
	}

	if summary.Food.TotalItems > 0 {
		if summary.Food.DiversityScore >= 70 {
			builder.add(InsightPositive, CategoryFood, "Varied diet",
				fmt.Sprintf("You logged %d different foods this week with a diversity score of %d. Variety tends to pay off.", summary.Food.UniqueItems, summary.Food.DiversityScore), "🥗", 60)
		} else if summary.Food.DiversityScore < 30 {
			builder.add(InsightSuggestion, CategoryFood, "Mix up your meals",
				fmt.Sprintf("A diversity score of %d means you repeated the same foods a lot. Trying something new could shift how you feel.", summary.Food.DiversityScore), "🍽️", 55)
		}
	}

	if daysLogged >= 6 {
		builder.add(InsightPositive, CategoryStreak, "Consistent logging",
			fmt.Sprintf("You logged %d of 7 days this week. That consistency is what makes your insights reliable.", daysLogged), "🔥", 50)
	} else if daysLogged <= 2 {
		builder.add(InsightSuggestion, CategoryStreak, "Log a few more days",
			"With only a couple of days logged, weekly trends are guesswork. Even quick entries help.", "📅", 45)
	}

	return builder.insights
}

type insightBuilder struct {
	insights []WeeklyInsight
}

func (builder *insightBuilder) add(kind InsightType, category InsightCategory, title string, description string, emoji string, priority int) {
	builder.insights = append(builder.insights, WeeklyInsight{
		ID:          fmt.Sprintf("insight-%d", len(builder.insights)+1),
		Type:        kind,
		Category:    category,
		Title:       title,
		Description: description,
		Emoji:       emoji,
		Priority:    priority,
	})
}

// sortInsights orders by priority descending; ties keep generation order.
func sortInsights(insights []WeeklyInsight) []WeeklyInsight {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
	if insights == nil {
		insights = []WeeklyInsight{}
	}
	return insights
}
