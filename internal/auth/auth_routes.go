package auth

import (
	"go-outpass/internal/middleware"
	"go-outpass/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Manager) {
	r.GET("/student/name/:phone", handler.LookupName)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/logout", middleware.AuthMiddleware(sessions), handler.Logout)
	}
}
