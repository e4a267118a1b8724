package handlers

import (
	"context"
	"net/http"

	"github.com/arnavshah/office-dashboard/pkg/models"
	"github.com/arnavshah/office-dashboard/pkg/seating"
	"github.com/gin-gonic/gin"
)

// GetTeamInfo returns the team name, member count and members
func (h *Handler) GetTeamInfo(c *gin.Context) {
	members, err := h.Team.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("list team failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to load team members")
		return
	}
	ok(c, http.StatusOK, models.TeamInfo{
		TeamName:    h.TeamName,
		MemberCount: len(members),
		Members:     members,
	})
}

// GetTeamMembers returns only the members array
func (h *Handler) GetTeamMembers(c *gin.Context) {
	members, err := h.Team.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("list team failed", "err", err)
		fail(c, http.StatusInternalServerError, "Failed to load team members")
		return
	}
	ok(c, http.StatusOK, members)
}

// LoadRoster reads the active team and keeps the members that get a desk.
func LoadRoster(ctx context.Context, src RosterSource, roles []string) ([]seating.Member, error) {
	team, err := src.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]seating.Member, 0, len(team))
	for _, m := range team {
		members = append(members, seating.NewMember(m.ID, m.Name, m.Nickname, m.Avatar, m.Role))
	}
	return seating.FilterRoles(members, roles), nil
}
