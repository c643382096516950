package workoutlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
)

const entryColumnsSQL = `id, date, week, day_name, exercise, set_number, reps, weight, rir, tempo, notes, est_1rm, volume, xp`

type PsqlRepo struct {
	db *pgxpool.Pool
}

func NewPsqlRepo(db *pgxpool.Pool) *PsqlRepo {
	return &PsqlRepo{
		db: db,
	}
}

// Append inserts the batch in one transaction, in the given order.
func (r *PsqlRepo) Append(ctx context.Context, entries []Entry) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.psql.workoutlog.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	if len(entries) == 0 {
		return []Entry{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	saved := make([]Entry, 0, len(entries))
	for _, e := range entries {
		err = tx.QueryRow(ctx, `
			INSERT INTO workout_log
				(date, week, day_name, exercise, set_number, reps, weight, rir, tempo, notes, est_1rm, volume, xp)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`,
			e.Date, e.Week, e.DayName, e.Exercise, e.SetNumber, e.Reps,
			e.Weight, e.RIR, e.Tempo, e.Notes, e.Est1RM, e.Volume, e.XP,
		).Scan(&e.ID)
		if err != nil {
			return nil, fmt.Errorf("insert set %d: %w", e.SetNumber, err)
		}
		saved = append(saved, e)
	}

	return saved, nil
}

func (r *PsqlRepo) All(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.psql.workoutlog.all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+entryColumnsSQL+` FROM workout_log ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := scanEntry(rows, &e); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))

	return entries, nil
}

func (r *PsqlRepo) DeleteLast(ctx context.Context) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.psql.workoutlog.deletelast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Entry
	err = scanEntry(r.db.QueryRow(ctx, `
		DELETE FROM workout_log
		WHERE id = (SELECT MAX(id) FROM workout_log)
		RETURNING `+entryColumnsSQL+`;`,
	), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLogEmpty
	}
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("deleted.id", e.ID))

	return &e, nil
}

func scanEntry(row pgx.Row, e *Entry) error {
	return row.Scan(
		&e.ID, &e.Date, &e.Week, &e.DayName, &e.Exercise, &e.SetNumber, &e.Reps,
		&e.Weight, &e.RIR, &e.Tempo, &e.Notes, &e.Est1RM, &e.Volume, &e.XP,
	)
}
