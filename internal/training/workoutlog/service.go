package workoutlog

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training"
	"github.com/2beens/trainingadventure/internal/training/lift"
	"github.com/2beens/trainingadventure/internal/training/plan"
	"github.com/2beens/trainingadventure/internal/training/xp"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workoutlog_test

const DefaultRecentCount = 20

type Repo interface {
	Append(ctx context.Context, entries []Entry) ([]Entry, error)
	All(ctx context.Context) ([]Entry, error)
	DeleteLast(ctx context.Context) (*Entry, error)
}

type xpAwarder interface {
	Award(ctx context.Context, task string, amount int) (*xp.Entry, error)
}

// SetInput is one set as typed in by the user. Numbers are coerced leniently.
type SetInput struct {
	Reps   lift.Number `json:"reps"`
	Weight lift.Number `json:"weight"`
	RIR    lift.Number `json:"rir"`
	Tempo  string      `json:"tempo"`
	Notes  string      `json:"notes"`
}

type SaveRequest struct {
	// Date defaults to today, Week to the ISO week of Date.
	Date     string     `json:"date"`
	Week     int        `json:"week"`
	Day      string     `json:"day"`
	Exercise string     `json:"exercise"`
	Sets     []SetInput `json:"sets"`
}

type SaveResult struct {
	Entries []Entry   `json:"entries"`
	Awarded int       `json:"awarded"`
	XPEntry *xp.Entry `json:"xpEntry,omitempty"`
	// Notice is set when the sets were saved but the xp award failed.
	Notice string `json:"notice,omitempty"`
}

type SetPreview struct {
	Est1RM     float64       `json:"est1rm"`
	Volume     float64       `json:"volume"`
	XPOnSave   int           `json:"xpOnSave"`
	Category   plan.Category `json:"category"`
	TargetHint string        `json:"targetHint,omitempty"`
}

type Service struct {
	repo    Repo
	ledger  xpAwarder
	catalog *plan.Catalog
	now     func() time.Time
}

func NewService(repo Repo, ledger xpAwarder, catalog *plan.Catalog) *Service {
	return NewServiceWithClock(repo, ledger, catalog, time.Now)
}

func NewServiceWithClock(repo Repo, ledger xpAwarder, catalog *plan.Catalog, now func() time.Time) *Service {
	return &Service{
		repo:    repo,
		ledger:  ledger,
		catalog: catalog,
		now:     now,
	}
}

// BuildEntries turns a save request into log entries without storing them.
func (s *Service) BuildEntries(req SaveRequest) ([]Entry, error) {
	exercise := strings.TrimSpace(req.Exercise)
	if exercise == "" {
		return nil, fmt.Errorf("%w: exercise is empty", ErrInvalidRequest)
	}
	if len(req.Sets) < MinSetsPerSave || len(req.Sets) > MaxSetsPerSave {
		return nil, fmt.Errorf("%w: sets count %d not in [%d, %d]", ErrInvalidRequest, len(req.Sets), MinSetsPerSave, MaxSetsPerSave)
	}

	date := training.Day(s.now())
	if req.Date != "" {
		parsed, err := training.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalidRequest, req.Date)
		}
		date = parsed
	}

	week := req.Week
	if week <= 0 {
		week = training.ISOWeek(date)
	}

	category := s.catalog.CategoryOf(req.Day, exercise)
	setXP := category.XPAward()

	entries := make([]Entry, 0, len(req.Sets))
	for i, set := range req.Sets {
		if err := set.validate(); err != nil {
			return nil, fmt.Errorf("%w: set %d: %s", ErrInvalidRequest, i+1, err)
		}
		reps := set.Reps.Int()
		weight := set.Weight.Float64()
		entries = append(entries, Entry{
			Date:      training.FormatDate(date),
			Week:      week,
			DayName:   req.Day,
			Exercise:  exercise,
			SetNumber: i + 1,
			Reps:      reps,
			Weight:    weight,
			RIR:       set.RIR.Float64(),
			Tempo:     set.Tempo,
			Notes:     set.Notes,
			Est1RM:    lift.Round2(lift.EstimatedOneRepMax(float64(reps), weight)),
			Volume:    lift.Volume(float64(reps), weight),
			XP:        setXP,
		})
	}

	return entries, nil
}

// SaveSets appends the sets and awards their summed xp as one ledger entry.
// A failed append awards nothing. A failed award after a successful append
// keeps the sets and reports it through SaveResult.Notice.
func (s *Service) SaveSets(ctx context.Context, req SaveRequest) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.savesets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", req.Exercise))
	span.SetAttributes(attribute.Int("sets", len(req.Sets)))

	entries, err := s.BuildEntries(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Append(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("append sets: %w", err)
	}

	totalAward := 0
	for _, e := range saved {
		totalAward += e.XP
	}

	result := &SaveResult{
		Entries: saved,
		Awarded: totalAward,
	}

	xpEntry, err := s.ledger.Award(ctx, entries[0].Exercise+" sets", totalAward)
	if err != nil {
		log.Errorf("sets saved, but xp award of %d failed: %s", totalAward, err)
		result.Awarded = 0
		result.Notice = "sets saved, but the xp award could not be recorded"
		return result, nil
	}
	result.XPEntry = xpEntry

	return result, nil
}

// UndoLast removes the most recent log entry. Its xp is not taken back.
func (s *Service) UndoLast(ctx context.Context) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.undolast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteLast(ctx)
}

// Recent returns the last n entries, oldest first.
func (s *Service) Recent(ctx context.Context, n int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if n <= 0 {
		n = DefaultRecentCount
	}
	span.SetAttributes(attribute.Int("n", n))

	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	return entries, nil
}

func (set SetInput) validate() error {
	if reps := set.Reps.Float64(); reps < 0 || reps > MaxReps {
		return fmt.Errorf("reps %v not in [0, %d]", reps, MaxReps)
	}
	if weight := set.Weight.Float64(); weight < 0 || weight > MaxWeight {
		return fmt.Errorf("weight %v not in [0, %d]", weight, MaxWeight)
	}
	if rir := set.RIR.Float64(); rir < 0 || rir > MaxRIR {
		return fmt.Errorf("rir %v not in [0, %d]", rir, MaxRIR)
	}
	return nil
}

func clamp(v, hi float64) float64 {
	return math.Min(math.Max(v, 0), hi)
}

// Preview computes the live metrics of a single set as the log form shows them.
// Out of range numbers are clamped to the form limits.
func (s *Service) Preview(day, exercise string, set SetInput) SetPreview {
	reps := math.Round(clamp(set.Reps.Float64(), MaxReps))
	weight := clamp(set.Weight.Float64(), MaxWeight)
	category := s.catalog.CategoryOf(day, exercise)

	preview := SetPreview{
		Est1RM:   lift.Round2(lift.EstimatedOneRepMax(reps, weight)),
		Volume:   lift.Volume(reps, weight),
		XPOnSave: category.XPAward(),
		Category: category,
	}
	if entry, err := s.catalog.Lookup(day, exercise); err == nil {
		preview.TargetHint = entry.TargetHint()
	}

	return preview
}

func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.exportcsv")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entries, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	return WriteCSV(w, entries)
}

// All returns a full snapshot of the log.
func (s *Service) All(ctx context.Context) ([]Entry, error) {
	return s.repo.All(ctx)
}
