package achievement

// Rule is one static unlock threshold. A zero threshold means the field is
// not a criterion for that rule.
type Rule struct {
	Title                 string
	Description           string
	Type                  string
	TotalSessionsRequired int
	TotalWorkTimeRequired int // minutes
}

// rules is the fixed table evaluated on every check. It is not
// user-configurable.
var rules = []Rule{
	{
		Title:                 "Beginner Pomodoro",
		Description:           "Complete 5 Pomodoro sessions",
		Type:                  "productivity",
		TotalSessionsRequired: 5,
	},
	{
		Title:                 "Productivity in Progress",
		Description:           "Complete 25 Pomodoro sessions",
		Type:                  "productivity",
		TotalSessionsRequired: 25,
	},
	{
		Title:                 "Productivity Master",
		Description:           "Complete 100 Pomodoro sessions",
		Type:                  "productivity",
		TotalSessionsRequired: 100,
	},
	{
		Title:                 "Focus Time",
		Description:           "Accumulate 500 minutes of work",
		Type:                  "focus",
		TotalWorkTimeRequired: 500,
	},
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
