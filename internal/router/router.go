package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/handlers"
	"github.com/pollbooth-dev/pollbooth/internal/middleware"
	"github.com/pollbooth-dev/pollbooth/internal/store"
)

// NewRouter wires the route table. Paths are fixed; the frontend links
// against them directly. Allowed origins come from configuration.
func NewRouter(st *store.Store, sessions *auth.Sessions, origins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(st, auth.NewService(st), sessions)

	r.Use(middleware.CurrentUser(st, sessions))

	r.GET("/healthz", h.HealthCheck)

	r.GET("/", h.Index)

	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", middleware.RequireLogin(), h.Logout)

	r.GET("/create", middleware.RequireLogin(), h.ShowCreatePoll)
	r.POST("/create", middleware.RequireLogin(), h.CreatePoll)

	r.GET("/poll/:poll_id", h.ShowPoll)
	r.POST("/poll/:poll_id", h.Vote)
	r.GET("/results/:poll_id", h.Results)

	return r
}
