package insights

import (
	"log/slog"
	"time"

	"github.com/alencengic/modest-insights/internal/models"
)

// Reader interfaces mirror the persistence layer's fetch surface. The
// service fetches everything an analysis needs up front, then hands the
// records to the pure computation functions; it never interleaves I/O with
// computation.

type MoodReader interface {
	ListMoodEntries(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error)
}

type ProductivityReader interface {
	ListProductivityEntries(userID uint, from *time.Time, to *time.Time) ([]models.ProductivityEntry, error)
}

type FoodReader interface {
	ListFoodIntakes(userID uint, from *time.Time, to *time.Time) ([]models.FoodIntake, error)
}

type SymptomReader interface {
	ListSymptomReports(userID uint, from *time.Time, to *time.Time) ([]models.SymptomReport, error)
}

type WeatherReader interface {
	ListWeatherEntries(userID uint, from *time.Time, to *time.Time) ([]models.WeatherEntry, error)
}

type WorkProfileReader interface {
	FindWorkProfile(userID uint) (models.WorkProfile, bool, error)
}

// Service is the engine façade. It holds no mutable state; every call is a
// deterministic function of the records read at its start, so concurrent
// calls for the same or different users are safe.
type Service struct {
	moods        MoodReader
	productivity ProductivityReader
	food         FoodReader
	symptoms     SymptomReader
	weather      WeatherReader
	profiles     WorkProfileReader
	config       ScoreConfig
	location     *time.Location
	now          func() time.Time
}

func NewService(moods MoodReader, productivity ProductivityReader, food FoodReader, symptoms SymptomReader, weather WeatherReader, profiles WorkProfileReader, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		moods:        moods,
		productivity: productivity,
		food:         food,
		symptoms:     symptoms,
		weather:      weather,
		profiles:     profiles,
		config:       DefaultScoreConfig(),
		location:     location,
		now:          time.Now,
	}
}

// FoodMoodCorrelation ranks foods by the average mood score of the days
// they were eaten.
func (service *Service) FoodMoodCorrelation(userID uint) ([]FoodCorrelation, error) {
	foodsByDate, err := service.foodsByDate(userID)
	if err != nil {
		return nil, err
	}
	moodByDate, err := service.moodScoresByDate(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(foodsByDate) == 0 || len(moodByDate) == 0 {
		return nil, ErrNoData
	}
	return Correlate(moodByDate, foodsByDate), nil
}

// FoodProductivityCorrelation ranks foods by the average centered
// productivity score of the days they were eaten.
func (service *Service) FoodProductivityCorrelation(userID uint) ([]FoodCorrelation, error) {
	foodsByDate, err := service.foodsByDate(userID)
	if err != nil {
		return nil, err
	}
	productivityByDate, err := service.productivityScoresByDate(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(foodsByDate) == 0 || len(productivityByDate) == 0 {
		return nil, ErrNoData
	}
	return Correlate(productivityByDate, foodsByDate), nil
}

// FoodSymptomCorrelation ranks foods by the mean of the chosen symptom
// metric across the days they were eaten. Higher scores mean stronger
// symptoms, so for every metric except energy the top of the list is the
// likeliest trigger.
func (service *Service) FoodSymptomCorrelation(userID uint, metric SymptomMetric) ([]FoodCorrelation, error) {
	foodsByDate, err := service.foodsByDate(userID)
	if err != nil {
		return nil, err
	}
	reports, err := service.symptoms.ListSymptomReports(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	symptomByDate := service.config.SymptomScoresByDate(metric, reports)
	if len(foodsByDate) == 0 || len(symptomByDate) == 0 {
		return nil, ErrNoData
	}
	return Correlate(symptomByDate, foodsByDate), nil
}

// WeatherMoodCorrelation relates recorded weather conditions to the mood of
// the same dates.
func (service *Service) WeatherMoodCorrelation(userID uint) ([]ConditionCorrelation, error) {
	entries, err := service.weather.ListWeatherEntries(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	moodByDate, err := service.moodScoresByDate(userID, nil, nil)
	if err != nil {
		return nil, err
	}

	conditionByDate := make(map[string]string, len(entries))
	for _, entry := range entries {
		conditionByDate[DateKey(entry.Date)] = entry.Condition
	}
	if len(conditionByDate) == 0 || len(moodByDate) == 0 {
		return nil, ErrNoData
	}
	return CorrelateConditions(moodByDate, conditionByDate), nil
}

// WorkingDayAnalysis compares mood and productivity between working and
// non-working days as classified by the user's work profile.
func (service *Service) WorkingDayAnalysis(userID uint) (ComparativeResult, error) {
	return service.weekdayAnalysis(userID, "working days", models.WorkProfile.IsWorkingDay)
}

// TrainingDayAnalysis compares mood and productivity between training and
// rest days as classified by the user's sport days.
func (service *Service) TrainingDayAnalysis(userID uint) (ComparativeResult, error) {
	return service.weekdayAnalysis(userID, "training days", models.WorkProfile.IsSportDay)
}

func (service *Service) weekdayAnalysis(userID uint, label string, inCohort func(models.WorkProfile, time.Time) bool) (ComparativeResult, error) {
	profile, found, err := service.profiles.FindWorkProfile(userID)
	if err != nil {
		return ComparativeResult{}, err
	}
	if !found {
		return ComparativeResult{}, ErrNoData
	}

	moodEntries, err := service.moods.ListMoodEntries(userID, nil, nil)
	if err != nil {
		return ComparativeResult{}, err
	}
	productivityEntries, err := service.productivity.ListProductivityEntries(userID, nil, nil)
	if err != nil {
		return ComparativeResult{}, err
	}
	if len(moodEntries) == 0 && len(productivityEntries) == 0 {
		return ComparativeResult{}, ErrNoData
	}

	var moodIn, moodOut []float64
	for _, entry := range moodEntries {
		score, ok := service.config.MoodScore(entry.Mood)
		if !ok {
			service.logSkipped("mood", entry.Date, entry.Mood)
			continue
		}
		if inCohort(profile, entry.Date) {
			moodIn = append(moodIn, score)
		} else {
			moodOut = append(moodOut, score)
		}
	}

	var productivityIn, productivityOut []float64
	for _, entry := range productivityEntries {
		score, ok := ProductivityScore(entry.Rating, entry.ScaleMax)
		if !ok {
			service.logSkipped("productivity", entry.Date, entry.Rating)
			continue
		}
		if inCohort(profile, entry.Date) {
			productivityIn = append(productivityIn, score)
		} else {
			productivityOut = append(productivityOut, score)
		}
	}

	return CombineComparisons(label, Compare(moodIn, moodOut), Compare(productivityIn, productivityOut)), nil
}

// HydrationAnalysis buckets logged water intake and relates the buckets to
// mood and productivity.
func (service *Service) HydrationAnalysis(userID uint) (HydrationResult, error) {
	intakes, err := service.food.ListFoodIntakes(userID, nil, nil)
	if err != nil {
		return HydrationResult{}, err
	}

	glassesByDate := make(map[string]int)
	for _, intake := range intakes {
		if intake.WaterGlasses > 0 {
			glassesByDate[DateKey(intake.Date)] = intake.WaterGlasses
		}
	}
	if len(glassesByDate) == 0 {
		return HydrationResult{}, ErrNoData
	}

	moodByDate, err := service.moodScoresByDate(userID, nil, nil)
	if err != nil {
		return HydrationResult{}, err
	}
	productivityByDate, err := service.productivityScoresByDate(userID, nil, nil)
	if err != nil {
		return HydrationResult{}, err
	}

	return AnalyzeHydration(glassesByDate, moodByDate, productivityByDate), nil
}

// WeeklyInsights builds the WeeklySummary for the ISO week containing
// weekOf, or the current week when weekOf is nil. The previous week is
// fetched only to classify trends.
func (service *Service) WeeklyInsights(userID uint, weekOf *time.Time) (WeeklySummary, error) {
	anchor := service.now().In(service.location)
	if weekOf != nil {
		anchor = *weekOf
	}
	weekStart := WeekStart(anchor)
	previousStart := weekStart.AddDate(0, 0, -7)
	weekEnd := weekStart.AddDate(0, 0, 7)

	current, err := service.fetchWeek(userID, weekStart, weekEnd)
	if err != nil {
		return WeeklySummary{}, err
	}
	previous, err := service.fetchWeek(userID, previousStart, weekStart)
	if err != nil {
		return WeeklySummary{}, err
	}

	return BuildWeeklySummary(service.config, weekStart, current, previous), nil
}

func (service *Service) fetchWeek(userID uint, from time.Time, to time.Time) (WeekRecords, error) {
	moods, err := service.moods.ListMoodEntries(userID, &from, &to)
	if err != nil {
		return WeekRecords{}, err
	}
	productivity, err := service.productivity.ListProductivityEntries(userID, &from, &to)
	if err != nil {
		return WeekRecords{}, err
	}
	food, err := service.food.ListFoodIntakes(userID, &from, &to)
	if err != nil {
		return WeekRecords{}, err
	}
	return WeekRecords{Moods: moods, Productivity: productivity, Food: food}, nil
}

func (service *Service) foodsByDate(userID uint) (map[string][]string, error) {
	intakes, err := service.food.ListFoodIntakes(userID, nil, nil)
	if err != nil {
		return nil, err
	}

	foodsByDate := make(map[string][]string, len(intakes))
	for _, intake := range intakes {
		date := DateKey(intake.Date)
		for _, meal := range intake.MealTexts() {
			foodsByDate[date] = append(foodsByDate[date], SplitMealItems(meal)...)
		}
	}
	return foodsByDate, nil
}

func (service *Service) moodScoresByDate(userID uint, from *time.Time, to *time.Time) (map[string]float64, error) {
	entries, err := service.moods.ListMoodEntries(userID, from, to)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(entries))
	for _, entry := range entries {
		score, ok := service.config.MoodScore(entry.Mood)
		if !ok {
			service.logSkipped("mood", entry.Date, entry.Mood)
			continue
		}
		scores[DateKey(entry.Date)] = score
	}
	return scores, nil
}

func (service *Service) productivityScoresByDate(userID uint, from *time.Time, to *time.Time) (map[string]float64, error) {
	entries, err := service.productivity.ListProductivityEntries(userID, from, to)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(entries))
	for _, entry := range entries {
		score, ok := ProductivityScore(entry.Rating, entry.ScaleMax)
		if !ok {
			service.logSkipped("productivity", entry.Date, entry.Rating)
			continue
		}
		scores[DateKey(entry.Date)] = score
	}
	return scores, nil
}

// logSkipped records a malformed row without failing the aggregate; one bad
// record must never abort a whole analysis.
func (service *Service) logSkipped(kind string, date time.Time, value any) {
	slog.Warn("skipping malformed record", "kind", kind, "date", DateKey(date), "value", value)
}
