package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainingadventure/internal/telemetry/metrics"
	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/internal/training/xp"
	"github.com/2beens/trainingadventure/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

const (
	templateCacheKey = "plan::template.csv"
	// the plan never changes while the process runs
	templateCacheExpire = 0
)

type xpAwarder interface {
	Award(ctx context.Context, task string, amount int) (*xp.Entry, error)
}

type EntryView struct {
	Entry
	Target     string `json:"target"`
	TargetHint string `json:"targetHint"`
	XPAward    int    `json:"xpAward"`
}

type DayResponse struct {
	Name    string      `json:"name"`
	Entries []EntryView `json:"entries"`
}

type DaysResponse struct {
	Split string   `json:"split"`
	Days  []string `json:"days"`
}

type CheckOffRequest struct {
	Day      string `json:"day"`
	Exercise string `json:"exercise"`
}

type CheckOffResponse struct {
	Exercise string `json:"exercise"`
	Gained   int    `json:"gained"`
}

type Handler struct {
	catalog        *Catalog
	ledger         xpAwarder
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(catalog *Catalog, ledger xpAwarder, metricsManager *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		catalog: catalog,
		ledger:  ledger,
		// freecache caps a single entry at 1/1024 of the cache size
		cache:          freecache.NewCache(10 * megabyte),
		metricsManager: metricsManager,
	}
}

func NewEntryView(e Entry) EntryView {
	return EntryView{
		Entry:      e,
		Target:     e.Target(),
		TargetHint: e.TargetHint(),
		XPAward:    e.Category.XPAward(),
	}
}

func (h *Handler) HandleDays(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.days")
	defer span.End()

	pkg.WriteJSON(w, DaysResponse{
		Split: h.catalog.Name(),
		Days:  h.catalog.Days(),
	}, http.StatusOK)
}

func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.day")
	defer span.End()

	day := mux.Vars(r)["day"]
	span.SetAttributes(attribute.String("day", day))

	entries, err := h.catalog.Entries(day)
	if errors.Is(err, ErrDayNotFound) {
		http.Error(w, "plan day not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get plan day [%s]: %s", day, err)
		http.Error(w, "get plan day failed", http.StatusInternalServerError)
		return
	}

	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, NewEntryView(e))
	}

	pkg.WriteJSON(w, DayResponse{
		Name:    day,
		Entries: views,
	}, http.StatusOK)
}

func (h *Handler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.template")
	defer span.End()

	if templateBytes, err := h.cache.Get([]byte(templateCacheKey)); err == nil {
		log.Tracef("plan template found in cache")
		span.SetAttributes(attribute.Bool("cache.hit", true))
		h.writeTemplate(w, templateBytes)
		return
	}

	var buf bytes.Buffer
	if err := h.catalog.WriteTemplate(&buf); err != nil {
		log.Errorf("render plan template: %s", err)
		http.Error(w, "render plan template failed", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set([]byte(templateCacheKey), buf.Bytes(), templateCacheExpire); err != nil {
		log.Errorf("failed to cache plan template: %s", err)
	}

	h.writeTemplate(w, buf.Bytes())
}

func (h *Handler) writeTemplate(w http.ResponseWriter, templateBytes []byte) {
	w.Header().Set("Content-Disposition", `attachment; filename="`+TemplateFileName+`"`)
	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, templateBytes, http.StatusOK)
}

// HandleCheckOff awards the category xp for a completed plan exercise.
func (h *Handler) HandleCheckOff(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.checkoff")
	defer span.End()

	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CheckOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("check off, unmarshal json params: %s", err)
		http.Error(w, "check off failed", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("day", req.Day))
	span.SetAttributes(attribute.String("exercise", req.Exercise))

	entry, err := h.catalog.Lookup(req.Day, req.Exercise)
	if err != nil {
		log.Tracef("check off: %s", err)
		http.Error(w, "unknown plan day or exercise", http.StatusBadRequest)
		return
	}

	gained := entry.Category.XPAward()
	if _, err := h.ledger.Award(ctx, entry.Exercise, gained); err != nil {
		log.Errorf("check off [%s]: %s", entry.Exercise, err)
		if h.metricsManager != nil {
			h.metricsManager.CounterStoreFailures.WithLabelValues("xp_log", "award").Inc()
		}
		pkg.WriteNotice(w, "xp ledger unavailable, check-off not recorded", http.StatusServiceUnavailable)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterCheckOffs.Inc()
		h.metricsManager.CounterXPAwarded.Add(float64(gained))
	}

	pkg.WriteJSON(w, CheckOffResponse{
		Exercise: entry.Exercise,
		Gained:   gained,
	}, http.StatusCreated)
}
