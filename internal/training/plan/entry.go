package plan

import (
	"errors"
	"fmt"

	"github.com/2beens/trainingadventure/internal/training/xp"
)

var (
	ErrDayNotFound      = errors.New("plan day not found")
	ErrExerciseNotFound = errors.New("exercise not found in plan day")
	ErrInvalidEntry     = errors.New("invalid plan entry")
)

type Category string

const (
	CategoryCompound   Category = "compound"
	CategoryUnilateral Category = "unilateral"
	CategoryIsolation  Category = "isolation"
	CategoryCore       Category = "core"
	CategoryErectors   Category = "erectors"
	CategoryBalance    Category = "balance"
	CategoryGrip       Category = "grip"
	CategoryCoreGrip   Category = "core/grip"
	CategoryForearms   Category = "forearms"
)

var categories = []Category{
	CategoryCompound,
	CategoryUnilateral,
	CategoryIsolation,
	CategoryCore,
	CategoryErectors,
	CategoryBalance,
	CategoryGrip,
	CategoryCoreGrip,
	CategoryForearms,
}

func Categories() []Category {
	c := make([]Category, len(categories))
	copy(c, categories)
	return c
}

func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// XPAward is the xp granted per completed set (or check-off) in this category.
func (c Category) XPAward() int {
	return xp.AwardFor(string(c))
}

type RepRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Entry is one prescribed exercise of a plan day. Exactly one of Reps and
// Duration is set.
type Entry struct {
	Exercise string    `json:"exercise"`
	Sets     int       `json:"sets"`
	Reps     *RepRange `json:"reps,omitempty"`
	Duration int       `json:"duration,omitempty"`
	Category Category  `json:"category"`
	Icon     string    `json:"icon"`
	Tip      string    `json:"tip"`
}

func (e Entry) Validate() error {
	if e.Exercise == "" {
		return fmt.Errorf("%w: empty exercise name", ErrInvalidEntry)
	}
	if e.Sets <= 0 {
		return fmt.Errorf("%w: %s: sets must be positive", ErrInvalidEntry, e.Exercise)
	}
	if !e.Category.Valid() {
		return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidEntry, e.Exercise, e.Category)
	}
	hasReps := e.Reps != nil
	hasDuration := e.Duration > 0
	if hasReps == hasDuration {
		return fmt.Errorf("%w: %s: exactly one of reps and duration must be set", ErrInvalidEntry, e.Exercise)
	}
	if hasReps && (e.Reps.Min <= 0 || e.Reps.Max < e.Reps.Min) {
		return fmt.Errorf("%w: %s: bad rep range %d-%d", ErrInvalidEntry, e.Exercise, e.Reps.Min, e.Reps.Max)
	}
	return nil
}

// IsTimed reports whether the entry is prescribed as a duration (seconds or steps).
func (e Entry) IsTimed() bool {
	return e.Reps == nil
}

// Target renders the prescription, e.g. "6–8 reps" or "40 sec/steps".
func (e Entry) Target() string {
	if e.Reps != nil {
		return fmt.Sprintf("%d–%d reps", e.Reps.Min, e.Reps.Max)
	}
	return fmt.Sprintf("%d sec/steps", e.Duration)
}

// TargetHint is the guidance shown next to the set logging form.
func (e Entry) TargetHint() string {
	if e.Reps != nil {
		return fmt.Sprintf("Target: %d–%d reps (double progression)", e.Reps.Min, e.Reps.Max)
	}
	return "Time/steps based: log duration in notes."
}
