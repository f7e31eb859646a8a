package routes // Router setup layer.

import (
	"CommentCase/core"
	"CommentCase/handlers"
	"CommentCase/middlewares"
	"CommentCase/services"
	"CommentCase/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router needs; main.go builds them.
type Deps struct {
	Comments  services.CommentService
	Converter *core.Converter
	Logs      *redislog.Logger // may be nil
	JWTSecret string           // empty disables auth on write endpoints
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, d Deps) {
	r.Use(middlewares.RequestLogger(d.Logs), middlewares.Recovery(d.Logs))

	dh := handlers.NewDiagnosticsHandler(d.Logs)
	r.GET("/healthz", dh.Health)

	api := r.Group("/api")
	auth := middlewares.Auth(d.JWTSecret)

	ch := handlers.NewCommentHandler(d.Comments)
	api.GET("/comments", ch.ListComments)
	api.POST("/comments", auth, ch.CreateComment)
	api.DELETE("/comments/:id", auth, ch.DeleteComment)

	kh := handlers.NewCaseHandler(d.Converter)
	api.GET("/case/styles", kh.Styles)
	api.POST("/case/:style", kh.Convert)

	api.GET("/logs", auth, dh.RecentLogs)
}
