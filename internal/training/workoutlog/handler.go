package workoutlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/metrics"
	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workoutlog_test

const (
	ExportFileName   = "workout_log_export.csv"
	undoNotice       = "XP not auto-removed"
	storeUnavailable = "workout log unavailable, please retry"
)

type logService interface {
	SaveSets(ctx context.Context, req SaveRequest) (*SaveResult, error)
	UndoLast(ctx context.Context) (*Entry, error)
	Recent(ctx context.Context, n int) ([]Entry, error)
	Preview(day, exercise string, set SetInput) SetPreview
	ExportCSV(ctx context.Context, w io.Writer) error
}

type PreviewRequest struct {
	Day      string   `json:"day"`
	Exercise string   `json:"exercise"`
	Set      SetInput `json:"set"`
}

type UndoResponse struct {
	Removed *Entry `json:"removed"`
	Notice  string `json:"notice"`
}

type RecentResponse struct {
	Entries []Entry `json:"entries"`
}

type Handler struct {
	service        logService
	metricsManager *metrics.Manager
}

func NewHandler(service logService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleSaveSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.savesets")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("save sets, unmarshal json params: %s", err)
		http.Error(w, "save sets failed", http.StatusBadRequest)
		return
	}

	result, err := h.service.SaveSets(ctx, req)
	if errors.Is(err, ErrInvalidRequest) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("save sets for [%s]: %s", req.Exercise, err)
		h.storeFailure("workout_log", "append")
		pkg.WriteNotice(w, storeUnavailable, http.StatusServiceUnavailable)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterSetsLogged.Add(float64(len(result.Entries)))
		h.metricsManager.CounterXPAwarded.Add(float64(result.Awarded))
	}
	if result.Notice != "" {
		h.storeFailure("xp_log", "award")
	}
	span.SetAttributes(attribute.Int("awarded", result.Awarded))

	pkg.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.preview")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("preview set, unmarshal json params: %s", err)
		http.Error(w, "preview failed", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, h.service.Preview(req.Day, req.Exercise, req.Set), http.StatusOK)
}

func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.recent")
	defer span.End()

	n := DefaultRecentCount
	if nParam := r.URL.Query().Get("n"); nParam != "" {
		parsed, err := strconv.Atoi(nParam)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	entries, err := h.service.Recent(ctx, n)
	if err != nil {
		log.Errorf("get recent log entries: %s", err)
		h.storeFailure("workout_log", "read")
		pkg.WriteNotice(w, storeUnavailable, http.StatusServiceUnavailable)
		return
	}

	pkg.WriteJSON(w, RecentResponse{Entries: entries}, http.StatusOK)
}

func (h *Handler) HandleUndoLast(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.undolast")
	defer span.End()

	removed, err := h.service.UndoLast(ctx)
	if errors.Is(err, ErrLogEmpty) {
		pkg.WriteMessageOK(w, ErrLogEmpty.Error())
		return
	}
	if err != nil {
		log.Errorf("undo last log entry: %s", err)
		h.storeFailure("workout_log", "delete")
		pkg.WriteNotice(w, storeUnavailable, http.StatusServiceUnavailable)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterUndos.Inc()
	}
	log.Debugf("removed log entry [%d] %s set %d", removed.ID, removed.Exercise, removed.SetNumber)

	pkg.WriteJSON(w, UndoResponse{
		Removed: removed,
		Notice:  undoNotice,
	}, http.StatusOK)
}

func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.exportcsv")
	defer span.End()

	var buf bytes.Buffer
	if err := h.service.ExportCSV(ctx, &buf); err != nil {
		log.Errorf("export log csv: %s", err)
		h.storeFailure("workout_log", "read")
		pkg.WriteNotice(w, storeUnavailable, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, buf.Bytes(), http.StatusOK)
}

func (h *Handler) storeFailure(store, op string) {
	if h.metricsManager == nil {
		return
	}
	h.metricsManager.CounterStoreFailures.WithLabelValues(store, op).Inc()
}
