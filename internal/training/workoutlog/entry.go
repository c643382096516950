package workoutlog

import (
	"errors"
)

var (
	ErrLogEmpty       = errors.New("log is empty")
	ErrInvalidRequest = errors.New("invalid request")
)

const (
	MinSetsPerSave = 1
	MaxSetsPerSave = 10

	// limits of a single set, as the log form allows them
	MaxReps   = 100
	MaxWeight = 2000
	MaxRIR    = 10
)

// Entry is one logged set. Entries are never changed after they are saved;
// only the most recent one can be removed.
type Entry struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Week      int     `json:"week"`
	DayName   string  `json:"dayName"`
	Exercise  string  `json:"exercise"`
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	RIR       float64 `json:"rir"`
	Tempo     string  `json:"tempo"`
	Notes     string  `json:"notes"`
	Est1RM    float64 `json:"est1rm"`
	Volume    float64 `json:"volume"`
	XP        int     `json:"xp"`
}

// Columns of the log table, in file order.
var Columns = []string{
	"date", "week", "day_name", "exercise", "set_number", "reps",
	"weight", "rir", "tempo", "notes", "est_1rm", "volume", "xp",
}
