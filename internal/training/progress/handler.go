package progress

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/workoutlog"
	"github.com/2beens/trainingadventure/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

const noDataMessage = "no data yet, log a session first"

type analyzer interface {
	Exercises(ctx context.Context) ([]string, error)
	Series(ctx context.Context, exercise string, metric Metric) ([]Point, error)
	BestSets(ctx context.Context, exercise string, withinDays int) ([]workoutlog.Entry, error)
}

type ExercisesResponse struct {
	Exercises []string `json:"exercises"`
	Message   string   `json:"message,omitempty"`
}

type SeriesResponse struct {
	Exercise string  `json:"exercise"`
	Metric   Metric  `json:"metric"`
	Points   []Point `json:"points"`
	Message  string  `json:"message,omitempty"`
}

type BestSetsResponse struct {
	Exercise   string             `json:"exercise"`
	WithinDays int                `json:"withinDays"`
	Sets       []workoutlog.Entry `json:"sets"`
	Message    string             `json:"message,omitempty"`
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.exercises")
	defer span.End()

	exercises, err := h.analyzer.Exercises(ctx)
	if err != nil {
		log.Errorf("list logged exercises: %s", err)
		pkg.WriteNotice(w, "workout log unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := ExercisesResponse{Exercises: exercises}
	if len(exercises) == 0 {
		resp.Message = noDataMessage
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.series")
	defer span.End()

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "exercise not set", http.StatusBadRequest)
		return
	}
	metric := Metric(r.URL.Query().Get("metric"))
	if metric == "" {
		metric = MetricWeight
	}

	points, err := h.analyzer.Series(ctx, exercise, metric)
	if errors.Is(err, ErrUnknownMetric) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("progress series [%s/%s]: %s", exercise, metric, err)
		pkg.WriteNotice(w, "workout log unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := SeriesResponse{
		Exercise: exercise,
		Metric:   metric,
		Points:   points,
	}
	if len(points) == 0 {
		resp.Message = noDataMessage
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleBestSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.bestsets")
	defer span.End()

	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		http.Error(w, "exercise not set", http.StatusBadRequest)
		return
	}

	days := DefaultBestSetsWindowDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		parsed, err := strconv.Atoi(daysParam)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	sets, err := h.analyzer.BestSets(ctx, exercise, days)
	if err != nil {
		log.Errorf("best sets [%s]: %s", exercise, err)
		pkg.WriteNotice(w, "workout log unavailable", http.StatusServiceUnavailable)
		return
	}

	resp := BestSetsResponse{
		Exercise:   exercise,
		WithinDays: days,
		Sets:       sets,
	}
	if len(sets) == 0 {
		resp.Message = noDataMessage
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}
