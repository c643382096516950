package xp

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyLevelTable   = errors.New("level table is empty")
	ErrInvalidLevelTable = errors.New("invalid level table")
)

type Threshold struct {
	Level int
	XP    int
}

// LevelTable is ordered by level with strictly increasing thresholds,
// starting with level 0 at 0 xp.
type LevelTable struct {
	thresholds []Threshold
}

func DefaultLevelTable() *LevelTable {
	return &LevelTable{
		thresholds: []Threshold{
			{Level: 0, XP: 0},
			{Level: 1, XP: 150},
			{Level: 2, XP: 350},
			{Level: 3, XP: 650},
			{Level: 4, XP: 1050},
			{Level: 5, XP: 1600},
		},
	}
}

func NewLevelTable(thresholds []Threshold) (*LevelTable, error) {
	if len(thresholds) == 0 {
		return nil, ErrEmptyLevelTable
	}
	if thresholds[0].Level != 0 || thresholds[0].XP != 0 {
		return nil, fmt.Errorf("%w: level 0 must start at 0 xp", ErrInvalidLevelTable)
	}
	for i := 1; i < len(thresholds); i++ {
		prev, cur := thresholds[i-1], thresholds[i]
		if cur.Level != prev.Level+1 {
			return nil, fmt.Errorf("%w: level %d follows level %d", ErrInvalidLevelTable, cur.Level, prev.Level)
		}
		if cur.XP <= prev.XP {
			return nil, fmt.Errorf("%w: level %d threshold %d not above %d", ErrInvalidLevelTable, cur.Level, cur.XP, prev.XP)
		}
	}

	t := make([]Threshold, len(thresholds))
	copy(t, thresholds)
	return &LevelTable{thresholds: t}, nil
}

type Progress struct {
	Level            int `json:"level"`
	TotalXP          int `json:"totalXp"`
	Percent          int `json:"percent"`
	CurrentThreshold int `json:"currentThreshold"`
	NextThreshold    int `json:"nextThreshold"`
}

// LevelAndProgress finds the highest level reached by totalXP and how far
// (in whole percent) it is towards the next one. At the max level the
// percent is 0.
func (t *LevelTable) LevelAndProgress(totalXP int) Progress {
	current := t.thresholds[0]
	for _, th := range t.thresholds {
		if totalXP >= th.XP {
			current = th
		}
	}

	next := current
	for _, th := range t.thresholds {
		if th.Level == current.Level+1 {
			next = th
			break
		}
	}

	percent := 0
	if next.XP != current.XP {
		ratio := float64(totalXP-current.XP) / float64(next.XP-current.XP)
		percent = int(math.Floor(ratio * 100))
		if percent < 0 {
			percent = 0
		}
	}

	return Progress{
		Level:            current.Level,
		TotalXP:          totalXP,
		Percent:          percent,
		CurrentThreshold: current.XP,
		NextThreshold:    next.XP,
	}
}

func (t *LevelTable) MaxLevel() int {
	return t.thresholds[len(t.thresholds)-1].Level
}

type Avatar struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

var avatars = map[int]Avatar{
	0: {Key: "rookie", Title: "Rookie"},
	1: {Key: "cadet", Title: "Cadet"},
	2: {Key: "contender", Title: "Contender"},
	3: {Key: "warrior", Title: "Warrior"},
	4: {Key: "champion", Title: "Champion"},
	5: {Key: "legend", Title: "Legend"},
}

// AvatarFor returns the avatar unlocked at level, rookie for unknown levels.
func AvatarFor(level int) Avatar {
	if a, ok := avatars[level]; ok {
		return a
	}
	return avatars[0]
}
