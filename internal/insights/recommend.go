package insights

import "fmt"

// comparisonRecommendation picks a message by the sign quadrant of the mood
// and productivity diffs when the joint result is significant, otherwise a
// neutral no-difference message. Labels read as "working days" or
// "training days".
func comparisonRecommendation(label string, result ComparativeResult) string {
	if !result.Significant {
		return fmt.Sprintf("No significant difference between %s and other days. Keep logging to sharpen the picture.", label)
	}

	moodUp := result.Mood.Diff > 0
	productivityUp := result.Productivity.Diff > 0
	switch {
	case moodUp && productivityUp:
		return fmt.Sprintf("Both your mood and productivity are higher on %s. Whatever you do on those days is working for you.", label)
	case !moodUp && !productivityUp:
		return fmt.Sprintf("Both your mood and productivity dip on %s. Consider building in more recovery around them.", label)
	case moodUp:
		return fmt.Sprintf("Your mood is higher on %s even though productivity drops. They may be good days to recharge rather than push.", label)
	default:
		return fmt.Sprintf("You get more done on %s but your mood suffers. Watch for signs of overload.", label)
	}
}

// hydrationRecommendation scales its tone by overall average intake and
// appends an extra nudge when hydration visibly lifts mood.
func hydrationRecommendation(averageIntake float64, moodImpact Impact) string {
	var message string
	switch {
	case averageIntake < 4:
		message = "You average fewer than 4 glasses of water a day. Try keeping a bottle within reach; even small increases tend to show up quickly."
	case averageIntake < 6:
		message = "Your water intake is moderate. Nudging it toward 6-8 glasses a day could help."
	case averageIntake < 8:
		message = "You drink a solid amount of water most days. Staying consistent matters more than adding more."
	default:
		message = "Your hydration is excellent. Keep it up."
	}

	if moodImpact == ImpactPositive {
		message += " Your mood is noticeably better on well-hydrated days, so it is worth protecting this habit."
	}
	return message
}
