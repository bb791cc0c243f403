package client

// Motivation is a (message, icon) pair picked from a threshold table.
type Motivation struct {
	Text  string
	Emoji string
}

// MotivationRule binds a predicate over (consumed, active minutes, limit)
// to its message. Rules are evaluated in order; the first match wins.
type MotivationRule struct {
	Applies func(consumed, activeMinutes, limit int) bool
	Message Motivation
}

// DefaultMotivation is the product-configured message table. Callers can
// pass their own table to PickMotivation.
var DefaultMotivation = []MotivationRule{
	{
		Applies: func(consumed, activeMinutes, _ int) bool {
			return consumed == 0 && activeMinutes == 0
		},
		Message: Motivation{"Log your first meal to get started!", "🍽️"},
	},
	{
		Applies: func(consumed, _, limit int) bool { return consumed > limit },
		Message: Motivation{"Over your calorie limit — a short walk could balance the day.", "🚶"},
	},
	{
		Applies: func(_, activeMinutes, _ int) bool { return activeMinutes >= 30 },
		Message: Motivation{"Great work staying active today!", "🔥"},
	},
	{
		Applies: func(consumed, _, limit int) bool { return consumed*4 >= limit*3 },
		Message: Motivation{"Getting close to your limit — choose lighter options tonight.", "🥗"},
	},
	{
		Applies: func(_, _, _ int) bool { return true },
		Message: Motivation{"You're on track. Keep it up!", "💪"},
	},
}

// PickMotivation selects the first matching message from the table.
func PickMotivation(rules []MotivationRule, consumed, activeMinutes, limit int) Motivation {
	if limit <= 0 {
		limit = DefaultDailyCalorieLimit
	}
	for _, rule := range rules {
		if rule.Applies(consumed, activeMinutes, limit) {
			return rule.Message
		}
	}
	return Motivation{}
}
