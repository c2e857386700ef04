// Package handlers holds one handler per user-facing action. Every handler
// validates its form, touches the store, and redirects or renders; the
// authenticated principal arrives through auth.CurrentUser.
package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/shazzad098/career-ai-os/internal/ai"
	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/config"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

type Handler struct {
	cfg   *config.Config
	store *storage.Store
	gen   ai.Generator
	log   zerolog.Logger
}

func New(cfg *config.Config, store *storage.Store, gen ai.Generator, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, store: store, gen: gen, log: log}
}

// Router assembles the engine: middleware, templates, public routes, and the
// session-gated group.
func (h *Handler) Router(templatesGlob string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(h.log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{h.cfg.CorsAllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob(templatesGlob)

	r.GET("/", h.loginPage)
	r.POST("/", h.login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.GET("/logout", h.logout)

	protected := r.Group("/")
	protected.Use(auth.Middleware(h.cfg.SessionSecret, h.store))
	{
		protected.GET("/dashboard", h.dashboard)
		protected.GET("/career_goal", h.careerGoalPage)
		protected.POST("/career_goal", h.setCareerGoal)
		protected.GET("/roadmap/:id", h.roadmapView)
		protected.GET("/add_task", h.addTaskPage)
		protected.POST("/add_task", h.addTask)
		protected.GET("/complete_task/:id", h.completeTask)
		protected.GET("/ai_mentor", h.mentorPage)
		protected.POST("/ai_mentor", h.mentorAsk)
		protected.GET("/update_progress", h.progressPage)
		protected.POST("/update_progress", h.updateProgress)
		protected.GET("/profile", h.profile)
		protected.GET("/edit_profile", h.editProfilePage)
		protected.POST("/edit_profile", h.editProfile)
	}

	return r
}

// careerGoalChoices is the fixed goal list offered by the goal and profile
// forms.
var careerGoalChoices = []string{
	"Full Stack Developer",
	"Data Scientist",
	"Mobile App Developer",
	"DevOps Engineer",
	"UI/UX Designer",
	"Machine Learning Engineer",
	"Cybersecurity Specialist",
	"Cloud Architect",
	"Blockchain Developer",
	"Other",
}
