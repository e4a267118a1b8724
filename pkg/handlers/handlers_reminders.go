package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CurrentReminder returns the notice on screen, without data when none is.
func (h *Handler) CurrentReminder(c *gin.Context) {
	n, showing := h.Inbox.Current()
	if !showing {
		ok(c, http.StatusOK, nil)
		return
	}
	ok(c, http.StatusOK, n.View())
}

// DismissReminder closes the notice with the given id
func (h *Handler) DismissReminder(c *gin.Context) {
	id := c.Param("id")
	if !h.Inbox.Dismiss(id) {
		fail(c, http.StatusNotFound, "Reminder not found")
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

// ListReminderRules returns the reminder schedule
func (h *Handler) ListReminderRules(c *gin.Context) {
	ok(c, http.StatusOK, h.Rules.Schedule())
}
