package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/arnavshah/office-dashboard/pkg/metrics"
	"github.com/arnavshah/office-dashboard/pkg/models"
	"github.com/arnavshah/office-dashboard/pkg/seating"
	"github.com/arnavshah/office-dashboard/pkg/seed"
	"github.com/arnavshah/office-dashboard/pkg/shuffle"
	"github.com/gin-gonic/gin"
)

// GetSeed returns the authoritative seating seed
func (h *Handler) GetSeed(c *gin.Context) {
	current, source, err := h.Seeds.Current(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to read seating seed")
		return
	}
	ok(c, http.StatusOK, models.SeedResponse{Seed: current, Source: string(source)})
}

// UpdateSeed stores an explicit seed when the shuffle password matches
func (h *Handler) UpdateSeed(c *gin.Context) {
	var input models.SeedUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	stored, err := h.Seeds.Update(c.Request.Context(), *input.Seed, input.Password)
	switch {
	case errors.Is(err, seed.ErrUnauthorized):
		fail(c, http.StatusForbidden, "Invalid shuffle password")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to save seating seed")
		return
	}

	h.reload(c.Request.Context(), stored)
	ok(c, http.StatusOK, models.SeedResponse{Seed: stored, Source: string(seed.SourcePersisted)})
}

// GetArrangement computes the seat assignment for ?seed=N, or for the
// authoritative seed when none is given.
func (h *Handler) GetArrangement(c *gin.Context) {
	ctx := c.Request.Context()

	var current int64
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "seed must be an integer")
			return
		}
		current = v
	} else {
		v, _, err := h.Seeds.Current(ctx)
		if err != nil {
			fail(c, http.StatusInternalServerError, "Failed to read seating seed")
			return
		}
		current = v
	}

	roster, err := LoadRoster(ctx, h.Team, h.Roles)
	if err != nil {
		h.Logger.Error("load roster failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to load team members")
		return
	}
	ok(c, http.StatusOK, seating.Assign(roster, current, h.Layout).View())
}

// GetBoard returns the live board including per-seat animation state. A
// settled board is re-seated first when the authoritative seed moved since
// the last load, e.g. when the date seed rolled over to a new day.
func (h *Handler) GetBoard(c *gin.Context) {
	h.sync(c.Request.Context())
	ok(c, http.StatusOK, h.Seating.Board().View())
}

func (h *Handler) sync(ctx context.Context) {
	if h.Seating.Phase() != seating.PhaseSettled {
		return
	}
	current, _, err := h.Seeds.Current(ctx)
	if err != nil {
		return
	}
	if loaded, seen := h.Seating.Loaded(); seen && loaded == current {
		return
	}
	h.reload(ctx, current)
}

// Shuffle starts the exit and landing animation towards a new arrangement.
// The animation runs in the background; clients follow it through the
// returned timeline or by polling the board.
func (h *Handler) Shuffle(c *gin.Context) {
	var input models.ShuffleInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	next := shuffle.RandomSeed()
	if input.Seed != nil {
		next = *input.Seed
	}

	roster, err := LoadRoster(c.Request.Context(), h.Team, h.Roles)
	if err != nil {
		h.Logger.Error("load roster failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to load team members")
		return
	}

	tl, accepted := h.Seating.Begin(roster, next)
	metrics.RecordShuffle(accepted)
	if !accepted {
		ok(c, http.StatusAccepted, models.ShuffleResponse{Accepted: false})
		return
	}

	h.Logger.Info("shuffle started", "seed", next, "members", len(roster), "duration", tl.Duration())
	go h.Seating.Play(h.lifetime(), tl, nil)
	ok(c, http.StatusAccepted, models.ShuffleResponse{
		Accepted: true,
		Seed:     next,
		Timeline: tl.View(),
	})
}

// reload re-seats the live board after the seed changed. A board that is
// mid-shuffle keeps playing.
func (h *Handler) reload(ctx context.Context, current int64) {
	if h.Stateless {
		return
	}
	roster, err := LoadRoster(ctx, h.Team, h.Roles)
	if err != nil {
		h.Logger.Warn("reload roster failed", "err", err)
		return
	}
	if !h.Seating.Load(roster, current) {
		h.Logger.Info("board not reloaded", "seed", current, "members", len(roster))
	}
}
