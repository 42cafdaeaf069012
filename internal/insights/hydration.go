package insights

import "sort"

// Impact classifies how a habit shifts an outcome metric.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

const (
	HydrationLow       = "low"
	HydrationModerate  = "moderate"
	HydrationGood      = "good"
	HydrationExcellent = "excellent"
)

const (
	hydrationMoodMargin         = 0.2
	hydrationProductivityMargin = 0.3
)

// bucket midpoints used for the optimal-intake figure; the open-ended
// excellent bucket is pinned to its floor.
var hydrationMidpoints = map[string]float64{
	HydrationLow:       2,
	HydrationModerate:  4.5,
	HydrationGood:      6.5,
	HydrationExcellent: 8,
}

var hydrationBucketOrder = []string{HydrationLow, HydrationModerate, HydrationGood, HydrationExcellent}

// HydrationBucket aggregates the days falling into one intake band.
type HydrationBucket struct {
	Bucket              string  `json:"bucket"`
	Days                int     `json:"days"`
	MoodSamples         int     `json:"mood_samples"`
	AverageMood         float64 `json:"average_mood"`
	ProductivitySamples int     `json:"productivity_samples"`
	AverageProductivity float64 `json:"average_productivity"`
}

type HydrationResult struct {
	Buckets            []HydrationBucket `json:"buckets"`
	AverageIntake      float64           `json:"average_intake"`
	MoodImpact         Impact            `json:"mood_impact"`
	ProductivityImpact Impact            `json:"productivity_impact"`
	OptimalWaterIntake float64           `json:"optimal_water_intake"`
	Recommendation     string            `json:"recommendation"`
}

// HydrationBucketFor bands a glass count: 1-3 low, 4-5 moderate, 6-7 good,
// 8+ excellent. Zero glasses means the field was never filled in and the
// day is excluded from hydration analysis entirely.
func HydrationBucketFor(glasses int) (string, bool) {
	switch {
	case glasses <= 0:
		return "", false
	case glasses <= 3:
		return HydrationLow, true
	case glasses <= 5:
		return HydrationModerate, true
	case glasses <= 7:
		return HydrationGood, true
	default:
		return HydrationExcellent, true
	}
}

// AnalyzeHydration buckets each logged day's water intake and relates the
// buckets to mood and productivity scores for the same dates. Impact is
// judged by comparing the low bucket against the better of the good and
// excellent buckets.
func AnalyzeHydration(glassesByDate map[string]int, moodByDate map[string]float64, productivityByDate map[string]float64) HydrationResult {
	dates := make([]string, 0, len(glassesByDate))
	for date := range glassesByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	type bucketAccumulator struct {
		days              int
		moodSum           float64
		moodCount         int
		productivitySum   float64
		productivityCount int
	}
	accumulators := make(map[string]*bucketAccumulator)
	var intakeSum float64
	var intakeDays int

	for _, date := range dates {
		bucket, ok := HydrationBucketFor(glassesByDate[date])
		if !ok {
			continue
		}
		intakeSum += float64(glassesByDate[date])
		intakeDays++

		entry := accumulators[bucket]
		if entry == nil {
			entry = &bucketAccumulator{}
			accumulators[bucket] = entry
		}
		entry.days++
		if mood, rated := moodByDate[date]; rated {
			entry.moodSum += mood
			entry.moodCount++
		}
		if productivity, rated := productivityByDate[date]; rated {
			entry.productivitySum += productivity
			entry.productivityCount++
		}
	}

	result := HydrationResult{Buckets: make([]HydrationBucket, 0, len(accumulators))}
	if intakeDays > 0 {
		result.AverageIntake = intakeSum / float64(intakeDays)
	}

	means := make(map[string]HydrationBucket)
	for _, name := range hydrationBucketOrder {
		entry := accumulators[name]
		if entry == nil || (entry.moodCount == 0 && entry.productivityCount == 0) {
			continue
		}
		bucket := HydrationBucket{
			Bucket:              name,
			Days:                entry.days,
			MoodSamples:         entry.moodCount,
			ProductivitySamples: entry.productivityCount,
		}
		if entry.moodCount > 0 {
			bucket.AverageMood = entry.moodSum / float64(entry.moodCount)
		}
		if entry.productivityCount > 0 {
			bucket.AverageProductivity = entry.productivitySum / float64(entry.productivityCount)
		}
		means[name] = bucket
		result.Buckets = append(result.Buckets, bucket)
	}

	result.MoodImpact = hydrationImpact(means, hydrationMoodMargin, func(bucket HydrationBucket) (float64, bool) {
		return bucket.AverageMood, bucket.MoodSamples > 0
	})
	result.ProductivityImpact = hydrationImpact(means, hydrationProductivityMargin, func(bucket HydrationBucket) (float64, bool) {
		return bucket.AverageProductivity, bucket.ProductivitySamples > 0
	})
	result.OptimalWaterIntake = optimalIntake(result.Buckets)
	result.Recommendation = hydrationRecommendation(result.AverageIntake, result.MoodImpact)
	return result
}

func hydrationImpact(means map[string]HydrationBucket, margin float64, metric func(HydrationBucket) (float64, bool)) Impact {
	low, hasLow := means[HydrationLow]
	if !hasLow {
		return ImpactNeutral
	}
	lowMean, rated := metric(low)
	if !rated {
		return ImpactNeutral
	}

	best, hasHigh := 0.0, false
	for _, name := range []string{HydrationGood, HydrationExcellent} {
		bucket, present := means[name]
		if !present {
			continue
		}
		mean, ok := metric(bucket)
		if !ok {
			continue
		}
		if !hasHigh || mean > best {
			best = mean
			hasHigh = true
		}
	}
	if !hasHigh {
		return ImpactNeutral
	}

	switch {
	case best-lowMean > margin:
		return ImpactPositive
	case lowMean-best > margin:
		return ImpactNegative
	default:
		return ImpactNeutral
	}
}

// optimalIntake is the midpoint of the bucket with the highest mean mood.
func optimalIntake(buckets []HydrationBucket) float64 {
	bestBucket := ""
	bestMood := 0.0
	for _, bucket := range buckets {
		if bucket.MoodSamples == 0 {
			continue
		}
		if bestBucket == "" || bucket.AverageMood > bestMood {
			bestBucket = bucket.Bucket
			bestMood = bucket.AverageMood
		}
	}
	if bestBucket == "" {
		return 0
	}
	return hydrationMidpoints[bestBucket]
}
