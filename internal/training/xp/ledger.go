package xp

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training"
)

//go:generate mockgen -source=$GOFILE -destination=ledger_mocks_test.go -package=xp_test

// Entry is a single append-only xp award.
type Entry struct {
	ID   int64  `json:"id,omitempty"`
	Date string `json:"date"`
	Task string `json:"task"`
	XP   int    `json:"xp"`
}

type Repo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	Sum(ctx context.Context) (int, error)
}

// Ledger awards xp and reports the running total.
type Ledger struct {
	repo Repo
	now  func() time.Time
}

func NewLedger(repo Repo) *Ledger {
	return &Ledger{
		repo: repo,
		now:  time.Now,
	}
}

// NewLedgerWithClock is NewLedger with an injectable "today".
func NewLedgerWithClock(repo Repo, now func() time.Time) *Ledger {
	return &Ledger{
		repo: repo,
		now:  now,
	}
}

// Award appends one entry dated today. The amount is not validated.
func (l *Ledger) Award(ctx context.Context, task string, amount int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.xp.award")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("task", task))
	span.SetAttributes(attribute.Int("xp", amount))

	entry, err := l.repo.Add(ctx, Entry{
		Date: training.FormatDate(l.now()),
		Task: task,
		XP:   amount,
	})
	if err != nil {
		return nil, fmt.Errorf("award xp: %w", err)
	}

	return entry, nil
}

// Total is the sum of all awards, 0 for an empty ledger.
func (l *Ledger) Total(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.xp.total")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	total, err := l.repo.Sum(ctx)
	if err != nil {
		return 0, fmt.Errorf("xp total: %w", err)
	}

	return total, nil
}

// Entries lists the ledger, oldest first.
func (l *Ledger) Entries(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ledger.xp.entries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := l.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("xp entries: %w", err)
	}

	return entries, nil
}
