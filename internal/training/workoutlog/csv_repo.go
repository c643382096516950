package workoutlog

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/tabular"
	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/lift"
)

const CSVFileName = "workout_log.csv"

// CSVRepo keeps the log in a local CSV file. Entry IDs are row positions.
type CSVRepo struct {
	store *tabular.Store
}

func NewCSVRepo(dataDir string) *CSVRepo {
	return &CSVRepo{
		store: tabular.NewStore(filepath.Join(dataDir, CSVFileName), Columns),
	}
}

func (r *CSVRepo) Append(ctx context.Context, entries []Entry) (_ []Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.csv.workoutlog.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	if len(entries) == 0 {
		return []Entry{}, nil
	}

	rows := make([]tabular.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryToRow(e))
	}
	count, err := r.store.Append(rows)
	if err != nil {
		return nil, fmt.Errorf("append log rows: %w", err)
	}

	firstID := int64(count - len(entries) + 1)
	saved := make([]Entry, len(entries))
	copy(saved, entries)
	for i := range saved {
		saved[i].ID = firstID + int64(i)
	}

	return saved, nil
}

func (r *CSVRepo) All(ctx context.Context) (_ []Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.csv.workoutlog.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read log rows: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		e := rowToEntry(row)
		e.ID = int64(i + 1)
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *CSVRepo) DeleteLast(ctx context.Context) (_ *Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.csv.workoutlog.deletelast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row, pos, err := r.store.DeleteLast()
	if err != nil {
		return nil, fmt.Errorf("delete last log row: %w", err)
	}
	if pos == 0 {
		return nil, ErrLogEmpty
	}

	e := rowToEntry(row)
	e.ID = int64(pos)
	span.SetAttributes(attribute.Int64("deleted.id", e.ID))

	return &e, nil
}

func entryToRow(e Entry) tabular.Row {
	return tabular.Row{
		"date":       e.Date,
		"week":       strconv.Itoa(e.Week),
		"day_name":   e.DayName,
		"exercise":   e.Exercise,
		"set_number": strconv.Itoa(e.SetNumber),
		"reps":       strconv.Itoa(e.Reps),
		"weight":     formatFloat(e.Weight),
		"rir":        formatFloat(e.RIR),
		"tempo":      e.Tempo,
		"notes":      e.Notes,
		"est_1rm":    formatFloat(e.Est1RM),
		"volume":     formatFloat(e.Volume),
		"xp":         strconv.Itoa(e.XP),
	}
}

// rowToEntry reads numeric cells leniently, unparsable cells become 0.
func rowToEntry(row tabular.Row) Entry {
	return Entry{
		Date:      row["date"],
		Week:      int(lift.ParseNumber(row["week"])),
		DayName:   row["day_name"],
		Exercise:  row["exercise"],
		SetNumber: int(lift.ParseNumber(row["set_number"])),
		Reps:      int(lift.ParseNumber(row["reps"])),
		Weight:    lift.ParseNumber(row["weight"]),
		RIR:       lift.ParseNumber(row["rir"]),
		Tempo:     row["tempo"],
		Notes:     row["notes"],
		Est1RM:    lift.ParseNumber(row["est_1rm"]),
		Volume:    lift.ParseNumber(row["volume"]),
		XP:        int(lift.ParseNumber(row["xp"])),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCSV renders entries with the log columns.
func WriteCSV(w io.Writer, entries []Entry) error {
	rows := make([]tabular.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryToRow(e))
	}
	return tabular.WriteRows(w, Columns, rows)
}
