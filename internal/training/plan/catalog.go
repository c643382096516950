package plan

import (
	"fmt"
)

type Day struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Catalog is the fixed, ordered training split.
type Catalog struct {
	name  string
	days  []Day
	index map[string]int
}

func NewCatalog(name string, days []Day) (*Catalog, error) {
	c := &Catalog{
		name:  name,
		days:  make([]Day, 0, len(days)),
		index: make(map[string]int, len(days)),
	}

	for _, d := range days {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: day without name", ErrInvalidEntry)
		}
		if _, ok := c.index[d.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate day %q", ErrInvalidEntry, d.Name)
		}
		for _, e := range d.Entries {
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("day %q: %w", d.Name, err)
			}
		}

		entries := make([]Entry, len(d.Entries))
		copy(entries, d.Entries)
		c.index[d.Name] = len(c.days)
		c.days = append(c.days, Day{Name: d.Name, Entries: entries})
	}

	return c, nil
}

func (c *Catalog) Name() string {
	return c.name
}

// Days returns the day names in plan order.
func (c *Catalog) Days() []string {
	names := make([]string, 0, len(c.days))
	for _, d := range c.days {
		names = append(names, d.Name)
	}
	return names
}

// Entries returns the prescribed exercises of a day, in plan order.
func (c *Catalog) Entries(day string) ([]Entry, error) {
	i, ok := c.index[day]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, day)
	}
	entries := make([]Entry, len(c.days[i].Entries))
	copy(entries, c.days[i].Entries)
	return entries, nil
}

func (c *Catalog) Lookup(day, exercise string) (Entry, error) {
	entries, err := c.Entries(day)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.Exercise == exercise {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s / %s", ErrExerciseNotFound, day, exercise)
}

// CategoryOf resolves the category of an exercise on a day. Anything not in
// the plan is treated as compound.
func (c *Catalog) CategoryOf(day, exercise string) Category {
	e, err := c.Lookup(day, exercise)
	if err != nil {
		return CategoryCompound
	}
	return e.Category
}
