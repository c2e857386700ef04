package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/models"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

func (h *Handler) dashboard(c *gin.Context) {
	user := auth.CurrentUser(c)

	tasks, err := h.store.TasksByOwner(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list tasks")
	}
	progress, err := h.store.ProgressByOwner(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list progress")
	}

	var roadmap *models.Roadmap
	rm, err := h.store.RoadmapByOwner(user.ID)
	if err == nil {
		roadmap = rm
	} else if !errors.Is(err, storage.ErrNotFound) {
		h.log.Error().Err(err).Msg("load roadmap")
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Title":    "Dashboard",
		"User":     user,
		"Tasks":    tasks,
		"Progress": progress,
		"Roadmap":  roadmap,
		"Flash":    takeFlash(c),
	})
}
