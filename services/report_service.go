package services

import (
	"context"
	"fmt"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportService aggregates daily_meals and daily_activity into weekly,
// monthly and yearly views for the reports page.
type ReportService struct {
	meals    *mongo.Collection
	activity *mongo.Collection
	now      func() time.Time
}

func NewReportService() *ReportService {
	return &ReportService{
		meals:    config.MongoDB.Collection("daily_meals"),
		activity: config.MongoDB.Collection("daily_activity"),
		now:      time.Now,
	}
}

type ReportFigures struct {
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	CaloriesBurned   float64 `json:"caloriesBurned"`
	ExerciseDuration float64 `json:"exerciseDuration"`
	WaterIntake      float64 `json:"waterIntake"`
}

// DailyPoint is one day in a weekly report. Days without data stay zeroed so
// charts always get seven points.
type DailyPoint struct {
	Date             string  `json:"date"`
	Day              string  `json:"day"`
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	MealsCount       int     `json:"mealsCount"`
	ExercisesCount   int     `json:"exercisesCount"`
	CaloriesBurned   float64 `json:"caloriesBurned"`
	ExerciseDuration float64 `json:"exerciseDuration"`
	WaterIntake      float64 `json:"waterIntake"`
}

type WeeklyReport struct {
	Period      string        `json:"period"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	DailyData   []DailyPoint  `json:"dailyData"`
	Averages    ReportFigures `json:"averages"`
	Totals      ReportFigures `json:"totals"`
	DaysTracked int           `json:"daysTracked"`
}

// WeekBucket is one of the four week slices in a monthly report.
type WeekBucket struct {
	Week             int     `json:"week"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	Label            string  `json:"label"`
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	MealsCount       int     `json:"mealsCount"`
	DaysTracked      int     `json:"daysTracked"`
	CaloriesBurned   float64 `json:"caloriesBurned"`
	ExerciseDuration float64 `json:"exerciseDuration"`
	WaterIntake      float64 `json:"waterIntake"`
}

type MonthlyReport struct {
	Period      string        `json:"period"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	WeeklyData  []WeekBucket  `json:"weeklyData"`
	Averages    ReportFigures `json:"averages"`
	Totals      ReportFigures `json:"totals"`
	DaysTracked int           `json:"daysTracked"`
}

// MonthBucket is one calendar month in a yearly report.
type MonthBucket struct {
	Month            string  `json:"month"`
	Label            string  `json:"label"`
	Calories         float64 `json:"calories"`
	Protein          float64 `json:"protein"`
	Carbs            float64 `json:"carbs"`
	Fat              float64 `json:"fat"`
	MealsCount       int     `json:"mealsCount"`
	DaysTracked      int     `json:"daysTracked"`
	CaloriesBurned   float64 `json:"caloriesBurned"`
	ExerciseDuration float64 `json:"exerciseDuration"`
	WaterIntake      float64 `json:"waterIntake"`
}

type YearlyReport struct {
	Period      string        `json:"period"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	MonthlyData []MonthBucket `json:"monthlyData"`
	Averages    ReportFigures `json:"averages"`
	Totals      ReportFigures `json:"totals"`
	DaysTracked int           `json:"daysTracked"`
}

func (s *ReportService) Weekly(ctx context.Context, userID string) (*WeeklyReport, error) {
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -6)
	meals, activity, err := s.fetchRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return buildWeeklyReport(start, end, meals, activity), nil
}

func (s *ReportService) Monthly(ctx context.Context, userID string) (*MonthlyReport, error) {
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -29)
	meals, activity, err := s.fetchRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return buildMonthlyReport(start, end, meals, activity), nil
}

func (s *ReportService) Yearly(ctx context.Context, userID string) (*YearlyReport, error) {
	end := s.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -364)
	meals, activity, err := s.fetchRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return buildYearlyReport(start, end, meals, activity), nil
}

func (s *ReportService) fetchRange(ctx context.Context, userID string, start, end time.Time) ([]models.DailyMeals, []models.DailyActivity, error) {
	filter := bson.M{
		"userId": userID,
		"date": bson.M{
			"$gte": start.Format("2006-01-02"),
			"$lte": end.Format("2006-01-02"),
		},
	}
	opts := options.Find().SetSort(bson.M{"date": 1})

	cur, err := s.meals.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var meals []models.DailyMeals
	if err := cur.All(ctx, &meals); err != nil {
		return nil, nil, err
	}

	cur, err = s.activity.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var activity []models.DailyActivity
	if err := cur.All(ctx, &activity); err != nil {
		return nil, nil, err
	}
	return meals, activity, nil
}

func mealTotals(meals []models.Meal) (calories, protein, carbs, fat float64) {
	for _, m := range meals {
		calories += m.TotalCalories
		protein += m.TotalProtein
		carbs += m.TotalCarbs
		fat += m.TotalFat
	}
	return
}

func activityTotals(a models.Activity) (burned, duration float64) {
	for _, ex := range a.Exercises {
		burned += ex.CaloriesBurned
		duration += ex.Duration
	}
	return
}

func buildWeeklyReport(start, end time.Time, meals []models.DailyMeals, activity []models.DailyActivity) *WeeklyReport {
	mealsByDate := make(map[string]models.DailyMeals, len(meals))
	for _, d := range meals {
		mealsByDate[d.Date] = d
	}
	activityByDate := make(map[string]models.DailyActivity, len(activity))
	for _, d := range activity {
		activityByDate[d.Date] = d
	}

	points := make([]DailyPoint, 0, 7)
	var totals ReportFigures
	daysWithData := 0
	daysWithActivity := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		dateStr := day.Format("2006-01-02")
		point := DailyPoint{Date: dateStr, Day: day.Format("Mon")}

		if doc, ok := mealsByDate[dateStr]; ok {
			cal, prot, carb, fat := mealTotals(doc.Meals)
			point.Calories = cal
			point.Protein = round1(prot)
			point.Carbs = round1(carb)
			point.Fat = round1(fat)
			point.MealsCount = len(doc.Meals)
		}
		if doc, ok := activityByDate[dateStr]; ok {
			burned, duration := activityTotals(doc.Activity)
			point.ExercisesCount = len(doc.Activity.Exercises)
			point.CaloriesBurned = round1(burned)
			point.ExerciseDuration = round1(duration)
			point.WaterIntake = round1(doc.Activity.WaterIntake)
		}

		totals.Calories += point.Calories
		totals.Protein += point.Protein
		totals.Carbs += point.Carbs
		totals.Fat += point.Fat
		totals.CaloriesBurned += point.CaloriesBurned
		totals.ExerciseDuration += point.ExerciseDuration
		totals.WaterIntake += point.WaterIntake
		if point.MealsCount > 0 {
			daysWithData++
		}
		if point.ExercisesCount > 0 || point.WaterIntake > 0 {
			daysWithActivity++
		}
		points = append(points, point)
	}

	report := &WeeklyReport{
		Period:      "weekly",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		DailyData:   points,
		Totals:      roundFigures(totals),
		DaysTracked: daysWithData,
	}
	if daysWithData > 0 {
		report.Averages.Calories = round1(totals.Calories / 7)
		report.Averages.Protein = round1(totals.Protein / 7)
		report.Averages.Carbs = round1(totals.Carbs / 7)
		report.Averages.Fat = round1(totals.Fat / 7)
	}
	if daysWithActivity > 0 {
		report.Averages.CaloriesBurned = round1(totals.CaloriesBurned / 7)
		report.Averages.ExerciseDuration = round1(totals.ExerciseDuration / 7)
		report.Averages.WaterIntake = round1(totals.WaterIntake / 7)
	}
	return report
}

func buildMonthlyReport(start, end time.Time, meals []models.DailyMeals, activity []models.DailyActivity) *MonthlyReport {
	buckets := make([]WeekBucket, 4)
	for week := range buckets {
		weekStart := start.AddDate(0, 0, week*7)
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.After(end) {
			weekEnd = end
		}
		buckets[week] = WeekBucket{
			Week:      week + 1,
			StartDate: weekStart.Format("2006-01-02"),
			EndDate:   weekEnd.Format("2006-01-02"),
			Label:     fmt.Sprintf("Week %d", week+1),
		}
	}

	weekIndex := func(dateStr string) (int, bool) {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return 0, false
		}
		week := int(day.Sub(start).Hours()/24) / 7
		if week < 0 || week >= len(buckets) {
			return 0, false
		}
		return week, true
	}

	for _, doc := range meals {
		week, ok := weekIndex(doc.Date)
		if !ok {
			continue
		}
		cal, prot, carb, fat := mealTotals(doc.Meals)
		buckets[week].Calories += cal
		buckets[week].Protein += prot
		buckets[week].Carbs += carb
		buckets[week].Fat += fat
		buckets[week].MealsCount += len(doc.Meals)
		buckets[week].DaysTracked++
	}
	for _, doc := range activity {
		week, ok := weekIndex(doc.Date)
		if !ok {
			continue
		}
		burned, duration := activityTotals(doc.Activity)
		buckets[week].CaloriesBurned += burned
		buckets[week].ExerciseDuration += duration
		buckets[week].WaterIntake += doc.Activity.WaterIntake
	}

	var totals ReportFigures
	totalDays := 0
	for i := range buckets {
		buckets[i].Protein = round1(buckets[i].Protein)
		buckets[i].Carbs = round1(buckets[i].Carbs)
		buckets[i].Fat = round1(buckets[i].Fat)
		buckets[i].CaloriesBurned = round1(buckets[i].CaloriesBurned)
		buckets[i].ExerciseDuration = round1(buckets[i].ExerciseDuration)
		buckets[i].WaterIntake = round1(buckets[i].WaterIntake)

		totals.Calories += buckets[i].Calories
		totals.Protein += buckets[i].Protein
		totals.Carbs += buckets[i].Carbs
		totals.Fat += buckets[i].Fat
		totals.CaloriesBurned += buckets[i].CaloriesBurned
		totals.ExerciseDuration += buckets[i].ExerciseDuration
		totals.WaterIntake += buckets[i].WaterIntake
		totalDays += buckets[i].DaysTracked
	}

	report := &MonthlyReport{
		Period:      "monthly",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		WeeklyData:  buckets,
		Totals:      roundFigures(totals),
		DaysTracked: totalDays,
	}
	if totalDays > 0 {
		report.Averages = averageFigures(totals, 30)
	}
	return report
}

func buildYearlyReport(start, end time.Time, meals []models.DailyMeals, activity []models.DailyActivity) *YearlyReport {
	byMonth := make(map[string]*MonthBucket, 12)
	ordered := make([]MonthBucket, 0, 12)
	firstOfEndMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		month := firstOfEndMonth.AddDate(0, i-11, 0)
		key := month.Format("2006-01")
		ordered = append(ordered, MonthBucket{Month: key, Label: month.Format("Jan 2006")})
		byMonth[key] = &ordered[len(ordered)-1]
	}

	for _, doc := range meals {
		bucket, ok := byMonth[monthKey(doc.Date)]
		if !ok {
			continue
		}
		cal, prot, carb, fat := mealTotals(doc.Meals)
		bucket.Calories += cal
		bucket.Protein += prot
		bucket.Carbs += carb
		bucket.Fat += fat
		bucket.MealsCount += len(doc.Meals)
		bucket.DaysTracked++
	}
	for _, doc := range activity {
		bucket, ok := byMonth[monthKey(doc.Date)]
		if !ok {
			continue
		}
		burned, duration := activityTotals(doc.Activity)
		bucket.CaloriesBurned += burned
		bucket.ExerciseDuration += duration
		bucket.WaterIntake += doc.Activity.WaterIntake
	}

	var totals ReportFigures
	totalDays := 0
	for i := range ordered {
		ordered[i].Protein = round1(ordered[i].Protein)
		ordered[i].Carbs = round1(ordered[i].Carbs)
		ordered[i].Fat = round1(ordered[i].Fat)
		ordered[i].CaloriesBurned = round1(ordered[i].CaloriesBurned)
		ordered[i].ExerciseDuration = round1(ordered[i].ExerciseDuration)
		ordered[i].WaterIntake = round1(ordered[i].WaterIntake)

		totals.Calories += ordered[i].Calories
		totals.Protein += ordered[i].Protein
		totals.Carbs += ordered[i].Carbs
		totals.Fat += ordered[i].Fat
		totals.CaloriesBurned += ordered[i].CaloriesBurned
		totals.ExerciseDuration += ordered[i].ExerciseDuration
		totals.WaterIntake += ordered[i].WaterIntake
		totalDays += ordered[i].DaysTracked
	}

	report := &YearlyReport{
		Period:      "yearly",
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		MonthlyData: ordered,
		Totals:      roundFigures(totals),
		DaysTracked: totalDays,
	}
	if totalDays > 0 {
		report.Averages = averageFigures(totals, 365)
	}
	return report
}

func monthKey(dateStr string) string {
	if len(dateStr) >= 7 {
		return dateStr[:7]
	}
	return dateStr
}

func roundFigures(f ReportFigures) ReportFigures {
	f.Protein = round1(f.Protein)
	f.Carbs = round1(f.Carbs)
	f.Fat = round1(f.Fat)
	f.CaloriesBurned = round1(f.CaloriesBurned)
	f.ExerciseDuration = round1(f.ExerciseDuration)
	f.WaterIntake = round1(f.WaterIntake)
	return f
}

func averageFigures(totals ReportFigures, days float64) ReportFigures {
	return ReportFigures{
		Calories:         round1(totals.Calories / days),
		Protein:          round1(totals.Protein / days),
		Carbs:            round1(totals.Carbs / days),
		Fat:              round1(totals.Fat / days),
		CaloriesBurned:   round1(totals.CaloriesBurned / days),
		ExerciseDuration: round1(totals.ExerciseDuration / days),
		WaterIntake:      round1(totals.WaterIntake / days),
	}
}
