package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"octofit.backend/internal/config"
	"octofit.backend/internal/interfaces/http/handlers"
	"octofit.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	rootHandler        *handlers.RootHandler
	userHandler        *handlers.UserHandler
	teamHandler        *handlers.TeamHandler
	activityHandler    *handlers.ActivityHandler
	leaderboardHandler *handlers.LeaderboardHandler
	workoutHandler     *handlers.WorkoutHandler
}

// crudRoutes are the handlers of one resource collection.
type crudRoutes struct {
	list, create, get, update, delete gin.HandlerFunc
}

func newRouter(cfg *config.Config, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CORSAllowedOrigins))

	registerHealthRoute(r, d.rootHandler)
	registerAPIRoutes(r, d)
	return r
}

func registerHealthRoute(r *gin.Engine, h *handlers.RootHandler) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/", d.rootHandler.APIIndex)

	api := r.Group("/api")
	{
		api.GET("/", d.rootHandler.APIIndex)

		registerResource(api, "/users", crudRoutes{
			list:   d.userHandler.ListUsers,
			create: d.userHandler.CreateUser,
			get:    d.userHandler.GetUser,
			update: d.userHandler.UpdateUser,
			delete: d.userHandler.DeleteUser,
		})
		registerResource(api, "/teams", crudRoutes{
			list:   d.teamHandler.ListTeams,
			create: d.teamHandler.CreateTeam,
			get:    d.teamHandler.GetTeam,
			update: d.teamHandler.UpdateTeam,
			delete: d.teamHandler.DeleteTeam,
		})
		registerResource(api, "/activities", crudRoutes{
			list:   d.activityHandler.ListActivities,
			create: d.activityHandler.CreateActivity,
			get:    d.activityHandler.GetActivity,
			update: d.activityHandler.UpdateActivity,
			delete: d.activityHandler.DeleteActivity,
		})
		registerResource(api, "/leaderboard", crudRoutes{
			list:   d.leaderboardHandler.ListLeaderboard,
			create: d.leaderboardHandler.CreateEntry,
			get:    d.leaderboardHandler.GetEntry,
			update: d.leaderboardHandler.UpdateEntry,
			delete: d.leaderboardHandler.DeleteEntry,
		})
		registerResource(api, "/workouts", crudRoutes{
			list:   d.workoutHandler.ListWorkouts,
			create: d.workoutHandler.CreateWorkout,
			get:    d.workoutHandler.GetWorkout,
			update: d.workoutHandler.UpdateWorkout,
			delete: d.workoutHandler.DeleteWorkout,
		})
	}
}

func registerResource(api *gin.RouterGroup, path string, h crudRoutes) {
	g := api.Group(path)
	{
		g.GET("/", h.list)
		g.POST("/", middleware.IdempotencyMiddleware(), h.create)
		g.GET("/:id/", h.get)
		g.PUT("/:id/", h.update)
		g.PATCH("/:id/", h.update)
		g.DELETE("/:id/", h.delete)
	}
}
