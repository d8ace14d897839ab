// Package points implements the scoring model: points per check-in, level
// derivation and streak milestones. All functions are pure.
package points

const (
	basePoints     = 10
	streakBonusCap = 50
	pointsPerLevel = 500
)

// Milestone is a streak length that grants a one-time bonus the day it is
// reached.
type Milestone struct {
	Days   int `json:"days"`
	Reward int `json:"reward"`
}

var milestones = []Milestone{
	{Days: 7, Reward: 50},
	{Days: 30, Reward: 200},
	{Days: 100, Reward: 1000},
	{Days: 365, Reward: 5000},
}

// CheckInPoints returns points earned by a verified check-in given the streak
// length after the check-in was counted: base 10, plus 5 per streak day capped
// at 50, plus the milestone bonus if the streak landed exactly on a milestone.
func CheckInPoints(currentStreak int) int {
	pts := basePoints
	bonus := currentStreak * 5
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	return pts + bonus + MilestoneBonus(currentStreak)
}

// MilestoneBonus returns the one-time bonus for reaching exactly streakLength,
// or 0 if streakLength is not a milestone.
func MilestoneBonus(streakLength int) int {
	for _, m := range milestones {
		if m.Days == streakLength {
			return m.Reward
		}
	}
	return 0
}

// IsMilestone reports whether streakLength is exactly one of the milestone
// lengths.
func IsMilestone(streakLength int) bool {
	return MilestoneBonus(streakLength) != 0
}

// Level derives the user level from accumulated points.
func Level(totalPoints int) int {
	return totalPoints/pointsPerLevel + 1
}

// LevelProgress returns the rounded percentage (0-100) of progress within the
// current 500-point level band.
func LevelProgress(totalPoints int) int {
	within := totalPoints % pointsPerLevel
	return (within*100 + pointsPerLevel/2) / pointsPerLevel
}

// NextMilestone returns the first milestone strictly greater than
// currentStreak together with the days remaining to reach it. Past the last
// fixed milestone it continues at every multiple of 365 with the year reward.
func NextMilestone(currentStreak int) (Milestone, int) {
	for _, m := range milestones {
		if currentStreak < m.Days {
			return m, m.Days - currentStreak
		}
	}
	next := (currentStreak/365 + 1) * 365
	return Milestone{Days: next, Reward: 5000}, next - currentStreak
}
