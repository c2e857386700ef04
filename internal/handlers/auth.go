package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/models"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

func (h *Handler) loginPage(c *gin.Context) {
	if auth.Authenticated(c, h.cfg.SessionSecret) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Title":    "Sign In",
		"Username": "",
		"Flash":    takeFlash(c),
	})
}

func (h *Handler) login(c *gin.Context) {
	if auth.Authenticated(c, h.cfg.SessionSecret) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Title":    "Sign In",
			"Errors":   fieldErrors(err),
			"Username": form.Username,
		})
		return
	}

	user, err := h.store.UserByUsername(form.Username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, form.Password) {
		setFlash(c, "Invalid username or password")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, err := auth.IssueSession(h.cfg.SessionSecret, user, form.RememberMe)
	if err != nil {
		h.log.Error().Err(err).Msg("sign session token")
		c.String(http.StatusInternalServerError, "Failed to establish session")
		return
	}
	auth.SetCookie(c, token, form.RememberMe)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) registerPage(c *gin.Context) {
	if auth.Authenticated(c, h.cfg.SessionSecret) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "register.tmpl", gin.H{
		"Title":    "Register",
		"Username": "",
		"Email":    "",
		"Flash":    takeFlash(c),
	})
}

func (h *Handler) register(c *gin.Context) {
	if auth.Authenticated(c, h.cfg.SessionSecret) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form registerForm
	errs := map[string]string{}
	if err := c.ShouldBind(&form); err != nil {
		errs = fieldErrors(err)
	}

	// Uniqueness is checked against live data at validation time. The race
	// with a concurrent insert is closed by the unique constraint below.
	if form.Username != "" {
		if _, err := h.store.UserByUsername(form.Username); err == nil {
			errs["username"] = "Please use a different username."
		}
	}
	if form.Email != "" {
		if _, err := h.store.UserByEmail(form.Email); err == nil {
			errs["email"] = "Please use a different email address."
		}
	}

	if len(errs) > 0 {
		c.HTML(http.StatusOK, "register.tmpl", gin.H{
			"Title":    "Register",
			"Errors":   errs,
			"Username": form.Username,
			"Email":    form.Email,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		c.String(http.StatusInternalServerError, "Failed to process password")
		return
	}

	user := models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: hash,
	}
	if err := h.store.CreateUser(&user); err != nil {
		var dup *storage.DuplicateIdentityError
		if errors.As(err, &dup) {
			c.HTML(http.StatusOK, "register.tmpl", gin.H{
				"Title":    "Register",
				"Errors":   map[string]string{dup.Field: "Please use a different " + dup.Field + "."},
				"Username": form.Username,
				"Email":    form.Email,
			})
			return
		}
		h.log.Error().Err(err).Msg("create user")
		c.String(http.StatusInternalServerError, "Failed to create account")
		return
	}

	setFlash(c, "Congratulations, you are now a registered user!")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) logout(c *gin.Context) {
	auth.ClearCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}
