package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeDailyTotals(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	food := []FoodEntry{
		{ID: 1, Name: "Oatmeal", Calories: 300, MealType: "breakfast", CreatedAt: now},
		{ID: 2, Name: "Salad", Calories: 450, MealType: "lunch", CreatedAt: now},
		{ID: 3, Name: "Pizza", Calories: 900, MealType: "dinner", CreatedAt: yesterday},
	}
	activities := []ActivityEntry{
		{ID: 1, Name: "Run", Duration: 30, Calories: 200, CreatedAt: now},
		{ID: 2, Name: "Swim", Duration: 60, Calories: 400, CreatedAt: yesterday},
	}

	s := Summarize(food, activities, 2200, now)

	assert.Equal(t, 750, s.Consumed)
	assert.Equal(t, 200, s.Burned)
	assert.Equal(t, 30, s.ActiveMinutes)
	assert.Equal(t, 1, s.Workouts)
	assert.Equal(t, 2200-750, s.Remaining)
}

func TestSummarizeDefaultLimit(t *testing.T) {
	now := time.Now()
	s := Summarize([]FoodEntry{{Calories: 500, CreatedAt: now}}, nil, 0, now)
	assert.Equal(t, DefaultDailyCalorieLimit, s.Limit)
	assert.Equal(t, DefaultDailyCalorieLimit-500, s.Remaining)
}

func TestSummarizeMissingActivityCaloriesCountZero(t *testing.T) {
	now := time.Now()
	activities := []ActivityEntry{{Duration: 45, CreatedAt: now}}
	s := Summarize(nil, activities, 2000, now)
	assert.Equal(t, 0, s.Burned)
	assert.Equal(t, 45, s.ActiveMinutes)
}

func TestMealTypeForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{9, "breakfast"},
		{11, "breakfast"},
		{12, "lunch"},
		{13, "lunch"},
		{15, "lunch"},
		{16, "snack"},
		{17, "snack"},
		{18, "dinner"},
		{20, "dinner"},
		{23, "dinner"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MealTypeForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestWeeklyCalories(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	food := []FoodEntry{
		{Calories: 400, CreatedAt: now},
		{Calories: 350, CreatedAt: now},
		{Calories: 600, CreatedAt: now.AddDate(0, 0, -2)},
		{Calories: 100, CreatedAt: now.AddDate(0, 0, -8)}, // outside the window
	}

	week := WeeklyCalories(food, now)

	assert.Equal(t, 750, week[6])
	assert.Equal(t, 600, week[4])
	assert.Equal(t, 0, week[0])
}

func TestGroupByMealType(t *testing.T) {
	entries := []FoodEntry{
		{ID: 1, MealType: "breakfast"},
		{ID: 2, MealType: "lunch"},
		{ID: 3, MealType: "breakfast"},
	}

	grouped := GroupByMealType(entries)

	assert.Len(t, grouped["breakfast"], 2)
	assert.Equal(t, uint(1), grouped["breakfast"][0].ID)
	assert.Equal(t, uint(3), grouped["breakfast"][1].ID)
	assert.Len(t, grouped["lunch"], 1)
}

func TestPickMotivationBands(t *testing.T) {
	zero := PickMotivation(DefaultMotivation, 0, 0, 2000)
	over := PickMotivation(DefaultMotivation, 2500, 0, 2000)
	active := PickMotivation(DefaultMotivation, 800, 45, 2000)
	onTrack := PickMotivation(DefaultMotivation, 800, 10, 2000)

	assert.NotEmpty(t, zero.Text)
	assert.NotEqual(t, zero, over)
	assert.NotEqual(t, over, active)
	assert.NotEqual(t, active, onTrack)
	assert.NotEmpty(t, onTrack.Emoji)
}
