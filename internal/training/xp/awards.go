package xp

// DefaultAward is given for any category without an explicit award.
const DefaultAward = 6

var categoryAwards = map[string]int{
	"compound":   12,
	"unilateral": 10,
	"isolation":  8,
	"core":       10,
	"erectors":   10,
	"balance":    8,
	"grip":       8,
	"core/grip":  10,
}

// AwardFor returns the xp for completing one unit of work in the category.
func AwardFor(category string) int {
	if award, ok := categoryAwards[category]; ok {
		return award
	}
	return DefaultAward
}
