package xp

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/2beens/trainingadventure/internal/tabular"
	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/lift"
)

const CSVFileName = "xp_log.csv"

var Columns = []string{"date", "task", "xp"}

// CSVRepo keeps the ledger in a local CSV file. Entry IDs are row positions.
type CSVRepo struct {
	store *tabular.Store
}

func NewCSVRepo(dataDir string) *CSVRepo {
	return &CSVRepo{
		store: tabular.NewStore(filepath.Join(dataDir, CSVFileName), Columns),
	}
}

func (r *CSVRepo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.csv.xp.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	count, err := r.store.Append([]tabular.Row{{
		"date": entry.Date,
		"task": entry.Task,
		"xp":   strconv.Itoa(entry.XP),
	}})
	if err != nil {
		return nil, fmt.Errorf("append xp row: %w", err)
	}
	entry.ID = int64(count)

	return &entry, nil
}

func (r *CSVRepo) List(ctx context.Context) (_ []Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.csv.xp.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read xp rows: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, Entry{
			ID:   int64(i + 1),
			Date: row["date"],
			Task: row["task"],
			XP:   int(lift.ParseNumber(row["xp"])),
		})
	}

	return entries, nil
}

func (r *CSVRepo) Sum(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.csv.xp.sum")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, e := range entries {
		total += e.XP
	}

	return total, nil
}
