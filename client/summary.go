package client

import "time"

// DefaultDailyCalorieLimit applies when the profile has no personal target.
const DefaultDailyCalorieLimit = 2000

type DailySummary struct {
	Consumed      int
	Burned        int
	ActiveMinutes int
	Workouts      int
	Limit         int
	Remaining     int
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Summarize computes today's totals from a cache snapshot. Activity
// entries lacking a calorie figure contribute 0 burned.
func Summarize(food []FoodEntry, activities []ActivityEntry, limit int, now time.Time) DailySummary {
	if limit <= 0 {
		limit = DefaultDailyCalorieLimit
	}

	s := DailySummary{Limit: limit}
	for _, f := range food {
		if sameDay(f.CreatedAt, now) {
			s.Consumed += f.Calories
		}
	}
	for _, a := range activities {
		if sameDay(a.CreatedAt, now) {
			s.Burned += a.Calories
			s.ActiveMinutes += a.Duration
			s.Workouts++
		}
	}
	s.Remaining = limit - s.Consumed
	return s
}

// TodaySummary runs Summarize over the client's cache using the session
// user's calorie target when one is set.
func (c *Client) TodaySummary(now time.Time) DailySummary {
	limit := 0
	if c.User != nil {
		limit = c.User.DailyCalorieIntake
	}
	return Summarize(c.FoodEntries, c.ActivityEntries, limit, now)
}

// WeeklyCalories returns consumed calories for the last seven calendar
// days, oldest first, today last.
func WeeklyCalories(food []FoodEntry, now time.Time) [7]int {
	var week [7]int
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i-6)
		for _, f := range food {
			if sameDay(f.CreatedAt, day) {
				week[i] += f.Calories
			}
		}
	}
	return week
}

// GroupByMealType buckets entries by meal type, preserving order within
// each bucket.
func GroupByMealType(entries []FoodEntry) map[string][]FoodEntry {
	grouped := map[string][]FoodEntry{}
	for _, e := range entries {
		grouped[e.MealType] = append(grouped[e.MealType], e)
	}
	return grouped
}

// MealTypeForHour derives a meal type from the hour of day. Fixed
// heuristic, not configurable.
func MealTypeForHour(hour int) string {
	switch {
	case hour < 12:
		return "breakfast"
	case hour < 16:
		return "lunch"
	case hour < 18:
		return "snack"
	default:
		return "dinner"
	}
}
