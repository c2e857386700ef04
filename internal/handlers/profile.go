package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

func (h *Handler) profile(c *gin.Context) {
	user := auth.CurrentUser(c)

	tasks, err := h.store.TasksByOwner(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list tasks")
	}
	progress, err := h.store.ProgressByOwner(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list progress")
	}
	roadmaps, err := h.store.RoadmapsByOwner(user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("list roadmaps")
	}

	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Title":    "Profile",
		"User":     user,
		"Tasks":    tasks,
		"Progress": progress,
		"Roadmaps": roadmaps,
		"Flash":    takeFlash(c),
	})
}

func (h *Handler) editProfilePage(c *gin.Context) {
	user := auth.CurrentUser(c)

	goal := user.CareerGoal
	if goal == "" {
		goal = "Full Stack Developer"
	}

	c.HTML(http.StatusOK, "edit_profile.tmpl", gin.H{
		"Title":      "Edit Profile",
		"User":       user,
		"Username":   user.Username,
		"Email":      user.Email,
		"CareerGoal": goal,
		"AboutMe":    user.AboutMe,
		"Choices":    careerGoalChoices,
		"Flash":      takeFlash(c),
	})
}

func (h *Handler) editProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	var form profileForm
	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}

	// Uniqueness only matters when the identity actually changed.
	if form.Username != "" && form.Username != user.Username {
		if _, err := h.store.UserByUsername(form.Username); err == nil {
			errs["username"] = "Please use a different username."
		}
	}
	if form.Email != "" && form.Email != user.Email {
		if _, err := h.store.UserByEmail(form.Email); err == nil {
			errs["email"] = "Please use a different email address."
		}
	}

	if len(errs) > 0 {
		c.HTML(http.StatusOK, "edit_profile.tmpl", gin.H{
			"Title":      "Edit Profile",
			"User":       user,
			"Errors":     errs,
			"Username":   form.Username,
			"Email":      form.Email,
			"CareerGoal": form.CareerGoal,
			"AboutMe":    form.AboutMe,
			"Choices":    careerGoalChoices,
		})
		return
	}

	user.Username = form.Username
	user.Email = form.Email
	user.CareerGoal = form.CareerGoal
	user.AboutMe = form.AboutMe

	if err := h.store.UpdateUser(user); err != nil {
		var dup *storage.DuplicateIdentityError
		if errors.As(err, &dup) {
			c.HTML(http.StatusOK, "edit_profile.tmpl", gin.H{
				"Title":      "Edit Profile",
				"User":       user,
				"Errors":     map[string]string{dup.Field: "Please use a different " + dup.Field + "."},
				"Username":   form.Username,
				"Email":      form.Email,
				"CareerGoal": form.CareerGoal,
				"AboutMe":    form.AboutMe,
				"Choices":    careerGoalChoices,
			})
			return
		}
		h.log.Error().Err(err).Msg("update profile")
		c.String(http.StatusInternalServerError, "Failed to save changes")
		return
	}

	setFlash(c, "Your changes have been saved.")
	c.Redirect(http.StatusSeeOther, "/profile")
}
