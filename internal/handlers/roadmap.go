package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/ai"
	"github.com/shazzad098/career-ai-os/internal/auth"
)

func (h *Handler) careerGoalPage(c *gin.Context) {
	user := auth.CurrentUser(c)
	c.HTML(http.StatusOK, "career_goal.tmpl", gin.H{
		"Title":   "Set Career Goal",
		"User":    user,
		"Choices": careerGoalChoices,
		"Flash":   takeFlash(c),
	})
}

// setCareerGoal persists the goal, asks the generation service for a
// learning plan, and upserts the user's single roadmap row. A generation
// failure is recorded as a failed roadmap state, never as content.
func (h *Handler) setCareerGoal(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form careerGoalForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "career_goal.tmpl", gin.H{
			"Title":   "Set Career Goal",
			"User":    user,
			"Choices": careerGoalChoices,
			"Errors":  fieldErrors(err),
		})
		return
	}

	user.CareerGoal = form.CareerGoal
	if err := h.store.UpdateUser(user); err != nil {
		h.log.Error().Err(err).Msg("save career goal")
		c.String(http.StatusInternalServerError, "Failed to save career goal")
		return
	}

	title := fmt.Sprintf("%s Roadmap", form.CareerGoal)
	content, err := h.gen.Generate(c.Request.Context(), ai.RoadmapPrompt(form.CareerGoal))
	if err != nil {
		h.log.Warn().Err(err).Uint("user_id", user.ID).Msg("roadmap generation failed")
		roadmap, storeErr := h.store.MarkRoadmapFailed(user.ID, title, err.Error())
		if storeErr != nil {
			h.log.Error().Err(storeErr).Msg("record failed generation")
			c.String(http.StatusInternalServerError, "Failed to save roadmap")
			return
		}
		setFlash(c, "Roadmap generation failed. Please try again.")
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/roadmap/%d", roadmap.ID))
		return
	}

	roadmap, err := h.store.UpsertRoadmap(user.ID, title, content)
	if err != nil {
		h.log.Error().Err(err).Msg("save roadmap")
		c.String(http.StatusInternalServerError, "Failed to save roadmap")
		return
	}

	setFlash(c, "Your career roadmap has been generated!")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/roadmap/%d", roadmap.ID))
}

func (h *Handler) roadmapView(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	roadmap, err := h.store.RoadmapByID(uint(id))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	if roadmap.UserID != user.ID {
		setFlash(c, "You can only view your own roadmaps.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "roadmap.tmpl", gin.H{
		"Title":   "Career Roadmap",
		"User":    user,
		"Roadmap": roadmap,
		"Flash":   takeFlash(c),
	})
}
