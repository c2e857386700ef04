package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/auth"
)

func (h *Handler) progressPage(c *gin.Context) {
	c.HTML(http.StatusOK, "update_progress.tmpl", gin.H{
		"Title": "Update Progress",
		"User":  auth.CurrentUser(c),
		"Skill": "",
		"Notes": "",
		"Flash": takeFlash(c),
	})
}

func (h *Handler) updateProgress(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form progressForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "update_progress.tmpl", gin.H{
			"Title":  "Update Progress",
			"User":   user,
			"Errors": fieldErrors(err),
			"Skill":  form.Skill,
			"Notes":  form.Notes,
		})
		return
	}

	if _, err := h.store.UpsertProgress(user.ID, form.Skill, form.Level, form.Notes); err != nil {
		h.log.Error().Err(err).Msg("upsert progress")
		c.String(http.StatusInternalServerError, "Failed to update progress")
		return
	}

	setFlash(c, "Your progress has been updated!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
