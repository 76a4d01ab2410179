package outing

import (
	"go-outpass/internal/middleware"
	"go-outpass/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Manager) {
	outings := r.Group("/outing")
	{
		outings.GET("/reasons", handler.Reasons)

		authed := outings.Group("")
		authed.Use(middleware.AuthMiddleware(sessions))
		{
			authed.POST("/register", handler.Register)
			authed.GET("/list", handler.List)
			authed.POST("/return", handler.Return)
		}
	}
}
