package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/models"
)

func (h *Handler) addTaskPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task.tmpl", gin.H{
		"Title":       "Add Task",
		"User":        auth.CurrentUser(c),
		"TaskTitle":   "",
		"Description": "",
		"Flash":       takeFlash(c),
	})
}

func (h *Handler) addTask(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form taskForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "add_task.tmpl", gin.H{
			"Title":       "Add Task",
			"User":        user,
			"Errors":      fieldErrors(err),
			"TaskTitle":   form.Title,
			"Description": form.Description,
		})
		return
	}

	task := models.Task{
		Title:       form.Title,
		Description: form.Description,
		UserID:      user.ID,
	}
	if !form.DueDate.IsZero() {
		due := form.DueDate
		task.DueDate = &due
	}

	if err := h.store.CreateTask(&task); err != nil {
		h.log.Error().Err(err).Msg("create task")
		c.String(http.StatusInternalServerError, "Failed to add task")
		return
	}

	setFlash(c, "Task added successfully!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// completeTask flips completed for one of the requester's own tasks. The
// flag never goes back to false.
func (h *Handler) completeTask(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	task, err := h.store.TaskByID(uint(id))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if task.UserID != user.ID {
		setFlash(c, "You can only complete your own tasks.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	if err := h.store.CompleteTask(task.ID); err != nil {
		h.log.Error().Err(err).Msg("complete task")
		c.String(http.StatusInternalServerError, "Failed to complete task")
		return
	}

	setFlash(c, "Task marked as completed!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
