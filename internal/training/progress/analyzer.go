package progress

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/workoutlog"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=progress_test

type logReader interface {
	All(ctx context.Context) ([]workoutlog.Entry, error)
}

// Analyzer reads a fresh log snapshot for every query.
type Analyzer struct {
	log logReader
	now func() time.Time
}

func NewAnalyzer(log logReader) *Analyzer {
	return NewAnalyzerWithClock(log, time.Now)
}

func NewAnalyzerWithClock(log logReader, now func() time.Time) *Analyzer {
	return &Analyzer{
		log: log,
		now: now,
	}
}

func (a *Analyzer) Exercises(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := a.log.All(ctx)
	if err != nil {
		return nil, err
	}

	return Exercises(entries), nil
}

func (a *Analyzer) Series(ctx context.Context, exercise string, metric Metric) (_ []Point, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))
	span.SetAttributes(attribute.String("metric", string(metric)))

	if _, err := ParseMetric(string(metric)); err != nil {
		return nil, err
	}

	entries, err := a.log.All(ctx)
	if err != nil {
		return nil, err
	}

	return TimeSeries(entries, exercise, metric)
}

func (a *Analyzer) BestSets(ctx context.Context, exercise string, withinDays int) (_ []workoutlog.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.progress.bestsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))
	span.SetAttributes(attribute.Int("within-days", withinDays))

	entries, err := a.log.All(ctx)
	if err != nil {
		return nil, err
	}

	return BestSets(entries, exercise, withinDays, a.now()), nil
}
