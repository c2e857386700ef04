package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/ai"
	"github.com/shazzad098/career-ai-os/internal/auth"
)

func (h *Handler) mentorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "ai_mentor.tmpl", gin.H{
		"Title": "AI Mentor",
		"User":  auth.CurrentUser(c),
		"Flash": takeFlash(c),
	})
}

// mentorAsk is a stateless single-turn exchange: no history is kept between
// calls. An empty message short-circuits without touching the adapter.
func (h *Handler) mentorAsk(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form mentorForm
	_ = c.ShouldBind(&form)
	if form.Message == "" {
		c.JSON(http.StatusOK, gin.H{"response": "Please ask a question."})
		return
	}

	answer, err := h.gen.Generate(c.Request.Context(), ai.MentorPrompt(user.CareerGoal, form.Message))
	if err != nil {
		h.log.Warn().Err(err).Uint("user_id", user.ID).Msg("mentor generation failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
