package services

import (
	"testing"
	"time"

	"github.com/YDahdah/NutriLens/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestBuildWeeklyReport_FillsMissingDays(t *testing.T) {
	start := day(t, "2026-08-17")
	end := day(t, "2026-08-23")
	meals := []models.DailyMeals{
		{Date: "2026-08-18", Meals: []models.Meal{
			{TotalCalories: 500, TotalProtein: 30, TotalCarbs: 50, TotalFat: 20},
			{TotalCalories: 700, TotalProtein: 40, TotalCarbs: 60, TotalFat: 25},
		}},
	}
	activity := []models.DailyActivity{
		{Date: "2026-08-19", Activity: models.Activity{
			Exercises:   []models.Exercise{{Name: "Running", Duration: 30, CaloriesBurned: 350}},
			WaterIntake: 1500,
		}},
	}

	report := buildWeeklyReport(start, end, meals, activity)

	if len(report.DailyData) != 7 {
		t.Fatalf("dailyData length = %d, want 7", len(report.DailyData))
	}
	if report.DailyData[0].Day != "Mon" {
		t.Errorf("first day = %q, want Mon", report.DailyData[0].Day)
	}
	if report.DailyData[0].Calories != 0 || report.DailyData[0].MealsCount != 0 {
		t.Errorf("missing day not zeroed: %+v", report.DailyData[0])
	}

	tue := report.DailyData[1]
	if tue.Calories != 1200 || tue.MealsCount != 2 {
		t.Errorf("meal day = %+v, want 1200 kcal over 2 meals", tue)
	}
	wed := report.DailyData[2]
	if wed.ExercisesCount != 1 || wed.CaloriesBurned != 350 || wed.WaterIntake != 1500 {
		t.Errorf("activity day = %+v", wed)
	}

	if report.DaysTracked != 1 {
		t.Errorf("daysTracked = %d, want 1", report.DaysTracked)
	}
	if report.Totals.Calories != 1200 {
		t.Errorf("totals.calories = %v, want 1200", report.Totals.Calories)
	}
	// Averages divide by 7 regardless of tracked days.
	if got, want := report.Averages.Calories, round1(1200.0/7); got != want {
		t.Errorf("averages.calories = %v, want %v", got, want)
	}
	if got, want := report.Averages.WaterIntake, round1(1500.0/7); got != want {
		t.Errorf("averages.waterIntake = %v, want %v", got, want)
	}
}

func TestBuildWeeklyReport_EmptyWeekHasZeroAverages(t *testing.T) {
	start := day(t, "2026-08-17")
	end := day(t, "2026-08-23")

	report := buildWeeklyReport(start, end, nil, nil)

	if report.Averages != (ReportFigures{}) {
		t.Errorf("averages = %+v, want all zero", report.Averages)
	}
	if report.DaysTracked != 0 {
		t.Errorf("daysTracked = %d, want 0", report.DaysTracked)
	}
	if len(report.DailyData) != 7 {
		t.Fatalf("dailyData length = %d, want 7", len(report.DailyData))
	}
}

func TestBuildMonthlyReport_WeekBuckets(t *testing.T) {
	start := day(t, "2026-08-01")
	end := day(t, "2026-08-30")
	meals := []models.DailyMeals{
		{Date: "2026-08-03", Meals: []models.Meal{{TotalCalories: 600, TotalProtein: 30}}},
		{Date: "2026-08-10", Meals: []models.Meal{{TotalCalories: 800, TotalProtein: 40}}},
		{Date: "2026-08-12", Meals: []models.Meal{{TotalCalories: 400, TotalProtein: 10}}},
	}
	activity := []models.DailyActivity{
		{Date: "2026-08-25", Activity: models.Activity{
			Exercises: []models.Exercise{{Name: "Cycling", Duration: 45, CaloriesBurned: 420}},
		}},
	}

	report := buildMonthlyReport(start, end, meals, activity)

	if len(report.WeeklyData) != 4 {
		t.Fatalf("weeklyData length = %d, want 4", len(report.WeeklyData))
	}
	w1 := report.WeeklyData[0]
	if w1.Label != "Week 1" || w1.StartDate != "2026-08-01" || w1.EndDate != "2026-08-07" {
		t.Errorf("week 1 bounds = %+v", w1)
	}
	if w1.Calories != 600 || w1.DaysTracked != 1 {
		t.Errorf("week 1 totals = %+v", w1)
	}
	w2 := report.WeeklyData[1]
	if w2.Calories != 1200 || w2.MealsCount != 2 || w2.DaysTracked != 2 {
		t.Errorf("week 2 totals = %+v", w2)
	}
	w4 := report.WeeklyData[3]
	if w4.CaloriesBurned != 420 || w4.ExerciseDuration != 45 {
		t.Errorf("week 4 activity = %+v", w4)
	}

	if report.DaysTracked != 3 {
		t.Errorf("daysTracked = %d, want 3", report.DaysTracked)
	}
	if got, want := report.Averages.Calories, round1(1800.0/30); got != want {
		t.Errorf("averages.calories = %v, want %v", got, want)
	}
}

func TestBuildMonthlyReport_LastWeekClampedToEnd(t *testing.T) {
	start := day(t, "2026-08-01")
	end := day(t, "2026-08-30")

	report := buildMonthlyReport(start, end, nil, nil)

	w4 := report.WeeklyData[3]
	if w4.StartDate != "2026-08-22" || w4.EndDate != "2026-08-28" {
		t.Errorf("week 4 bounds = %s..%s", w4.StartDate, w4.EndDate)
	}
}

func TestBuildYearlyReport_MonthBuckets(t *testing.T) {
	start := day(t, "2025-08-30")
	end := day(t, "2026-08-29")
	meals := []models.DailyMeals{
		{Date: "2025-09-15", Meals: []models.Meal{{TotalCalories: 2000, TotalFat: 70}}},
		{Date: "2026-08-01", Meals: []models.Meal{{TotalCalories: 1500, TotalFat: 55}}},
		{Date: "2026-08-02", Meals: []models.Meal{{TotalCalories: 1700, TotalFat: 60}}},
	}
	activity := []models.DailyActivity{
		{Date: "2026-08-01", Activity: models.Activity{WaterIntake: 2000}},
	}

	report := buildYearlyReport(start, end, meals, activity)

	if len(report.MonthlyData) != 12 {
		t.Fatalf("monthlyData length = %d, want 12", len(report.MonthlyData))
	}
	first := report.MonthlyData[0]
	if first.Month != "2025-09" || first.Label != "Sep 2025" {
		t.Errorf("first month = %q %q", first.Month, first.Label)
	}
	if first.Calories != 2000 || first.DaysTracked != 1 {
		t.Errorf("first month totals = %+v", first)
	}
	last := report.MonthlyData[11]
	if last.Month != "2026-08" {
		t.Errorf("last month = %q, want 2026-08", last.Month)
	}
	if last.Calories != 3200 || last.MealsCount != 2 || last.DaysTracked != 2 {
		t.Errorf("last month totals = %+v", last)
	}
	if last.WaterIntake != 2000 {
		t.Errorf("last month waterIntake = %v, want 2000", last.WaterIntake)
	}

	if report.DaysTracked != 3 {
		t.Errorf("daysTracked = %d, want 3", report.DaysTracked)
	}
	if got, want := report.Averages.Calories, round1(5200.0/365); got != want {
		t.Errorf("averages.calories = %v, want %v", got, want)
	}
}

func TestExerciseSuggestions(t *testing.T) {
	if got := ExerciseSuggestions("r"); len(got) != 0 {
		t.Errorf("single-char query returned %v", got)
	}
	got := ExerciseSuggestions("row")
	want := map[string]bool{"Rowing": true, "Rowing Machine": true}
	if len(got) != len(want) {
		t.Fatalf("suggestions for row = %v", got)
	}
	for _, name := range got {
		if !want[name] {
			t.Errorf("unexpected suggestion %q", name)
		}
	}
	if got := ExerciseSuggestions("a"); len(got) != 0 {
		t.Errorf("short query returned %v", got)
	}
	if got := ExerciseSuggestions("ing"); len(got) > 10 {
		t.Errorf("suggestions not capped: %d", len(got))
	}
}
