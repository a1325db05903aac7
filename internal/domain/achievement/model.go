package achievement

// Badge is a recognition earned by crossing a points threshold.
type Badge struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Threshold   int    `json:"threshold"`
}

// Ladder is the fixed badge ladder, ordered by ascending threshold.
// Evaluation is pure over total points, so replays and recounts always
// converge on the same set.
var Ladder = []Badge{
	{Key: "first-steps", Name: "First Steps", Description: "Log your first impact", Threshold: 1},
	{Key: "contributor", Name: "Contributor", Description: "Reach 100 points", Threshold: 100},
	{Key: "champion", Name: "Champion", Description: "Reach 500 points", Threshold: 500},
	{Key: "hero", Name: "Hero", Description: "Reach 1000 points", Threshold: 1000},
	{Key: "legend", Name: "Legend", Description: "Reach 5000 points", Threshold: 5000},
}

// levelStep is the points per level; level 1 starts at zero.
const levelStep = 250

// Evaluate returns every badge whose threshold the given total has
// crossed, in ladder order.
func Evaluate(totalPoints int) []Badge {
	earned := make([]Badge, 0, len(Ladder))
	for _, b := range Ladder {
		if totalPoints >= b.Threshold {
			earned = append(earned, b)
		}
	}
	return earned
}

// NewlyEarned returns the badges crossed by moving from the previous
// total to the new one.
func NewlyEarned(previousPoints, newPoints int) []Badge {
	var crossed []Badge
	for _, b := range Ladder {
		if previousPoints < b.Threshold && newPoints >= b.Threshold {
			crossed = append(crossed, b)
		}
	}
	return crossed
}

// LevelForPoints maps a points total to a level, floor 1.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/levelStep + 1
}
