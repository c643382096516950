package plan

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/trainingadventure/internal/tabular"
)

const (
	TemplateFileName = "split_template.csv"
	// TimedReps marks a duration based entry in the template reps column.
	TimedReps = "time"
)

var TemplateColumns = []string{"day", "exercise", "sets", "reps", "category"}

// TemplateRow is one line of the exported weekly template.
type TemplateRow struct {
	Day      string   `json:"day"`
	Exercise string   `json:"exercise"`
	Sets     int      `json:"sets"`
	Reps     string   `json:"reps"`
	Category Category `json:"category"`
}

func (e Entry) templateReps() string {
	if e.Reps == nil {
		return TimedReps
	}
	return fmt.Sprintf("%d-%d", e.Reps.Min, e.Reps.Max)
}

// TemplateRows flattens the catalog in plan order.
func (c *Catalog) TemplateRows() []TemplateRow {
	rows := make([]TemplateRow, 0)
	for _, d := range c.days {
		for _, e := range d.Entries {
			rows = append(rows, TemplateRow{
				Day:      d.Name,
				Exercise: e.Exercise,
				Sets:     e.Sets,
				Reps:     e.templateReps(),
				Category: e.Category,
			})
		}
	}
	return rows
}

// WriteTemplate renders the catalog as CSV: day,exercise,sets,reps,category.
func (c *Catalog) WriteTemplate(w io.Writer) error {
	templateRows := c.TemplateRows()
	rows := make([]tabular.Row, 0, len(templateRows))
	for _, tr := range templateRows {
		rows = append(rows, tabular.Row{
			"day":      tr.Day,
			"exercise": tr.Exercise,
			"sets":     strconv.Itoa(tr.Sets),
			"reps":     tr.Reps,
			"category": string(tr.Category),
		})
	}
	return tabular.WriteRows(w, TemplateColumns, rows)
}

// ReadTemplate parses a template written by WriteTemplate.
func ReadTemplate(r io.Reader) ([]TemplateRow, error) {
	rows, err := tabular.ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	templateRows := make([]TemplateRow, 0, len(rows))
	for i, row := range rows {
		sets, err := strconv.Atoi(strings.TrimSpace(row["sets"]))
		if err != nil {
			return nil, fmt.Errorf("template line %d: bad sets %q: %w", i+2, row["sets"], err)
		}
		templateRows = append(templateRows, TemplateRow{
			Day:      row["day"],
			Exercise: row["exercise"],
			Sets:     sets,
			Reps:     row["reps"],
			Category: Category(row["category"]),
		})
	}

	return templateRows, nil
}

// ParseTemplateReps turns a reps cell back into a range; "time" yields nil.
func ParseTemplateReps(s string) (*RepRange, error) {
	s = strings.TrimSpace(s)
	if s == TimedReps {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return nil, fmt.Errorf("bad reps %q", s)
	}
	minReps, err := strconv.Atoi(lo)
	if err != nil {
		return nil, fmt.Errorf("bad reps %q: %w", s, err)
	}
	maxReps, err := strconv.Atoi(hi)
	if err != nil {
		return nil, fmt.Errorf("bad reps %q: %w", s, err)
	}
	return &RepRange{Min: minReps, Max: maxReps}, nil
}
