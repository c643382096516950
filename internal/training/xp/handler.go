package xp

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainingadventure/internal/telemetry/tracing"
	"github.com/2beens/trainingadventure/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=xp_test

type ledgerReader interface {
	Total(ctx context.Context) (int, error)
	Entries(ctx context.Context) ([]Entry, error)
}

type LevelResponse struct {
	Progress
	Avatar   Avatar `json:"avatar"`
	MaxLevel int    `json:"maxLevel"`
}

type EntriesResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

type Handler struct {
	ledger ledgerReader
	levels *LevelTable
}

func NewHandler(ledger ledgerReader, levels *LevelTable) *Handler {
	if levels == nil {
		levels = DefaultLevelTable()
	}
	return &Handler{
		ledger: ledger,
		levels: levels,
	}
}

func (h *Handler) HandleLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.xp.level")
	defer span.End()

	total, err := h.ledger.Total(ctx)
	if err != nil {
		log.Errorf("get xp level: %s", err)
		pkg.WriteNotice(w, "xp ledger unavailable", http.StatusServiceUnavailable)
		return
	}

	progress := h.levels.LevelAndProgress(total)
	pkg.WriteJSON(w, LevelResponse{
		Progress: progress,
		Avatar:   AvatarFor(progress.Level),
		MaxLevel: h.levels.MaxLevel(),
	}, http.StatusOK)
}

func (h *Handler) HandleEntries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.xp.entries")
	defer span.End()

	entries, err := h.ledger.Entries(ctx)
	if err != nil {
		log.Errorf("list xp entries: %s", err)
		pkg.WriteNotice(w, "xp ledger unavailable", http.StatusServiceUnavailable)
		return
	}

	total := 0
	for _, e := range entries {
		total += e.XP
	}

	pkg.WriteJSON(w, EntriesResponse{
		Entries: entries,
		Total:   total,
	}, http.StatusOK)
}
