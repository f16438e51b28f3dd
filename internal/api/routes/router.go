package routes

import (
	"github.com/devpals/devpals-go/internal/api/handlers"
	"github.com/devpals/devpals-go/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint. Reads that serve the public board
// stay open; everything that writes or exposes personal data sits behind
// the JWT group.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	api := r.Group("/api/v1")

	api.POST("/auth/signup", h.User.Signup)
	api.POST("/auth/login", h.User.Login)
	api.GET("/auth/check-nickname", h.User.CheckNickname)
	api.GET("/auth/check-email", h.User.CheckEmail)

	api.GET("/tags/skills", h.Tag.ListSkillTags)
	api.GET("/tags/positions", h.Tag.ListPositionTags)
	api.GET("/tags/methods", h.Tag.ListMethods)

	api.GET("/projects", h.Project.ListProjects)
	api.GET("/projects/counts", h.Project.GetCounts)
	api.GET("/projects/:id", h.Project.GetProject)
	api.PATCH("/projects/:id/views", h.Project.IncrementViews)

	api.GET("/ws/chat", h.Chat.Serve)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/projects", h.Project.CreateProject)
		auth.PATCH("/projects/:id", h.Project.ModifyProject)
		auth.PATCH("/projects/:id/close", h.Project.CloseProject)

		auth.POST("/projects/:id/applicants", h.Applicant.Apply)
		auth.GET("/projects/:id/applicants", h.Applicant.ListByProject)
		auth.GET("/projects/:id/applicants/status", h.Applicant.ByStatus)
		auth.GET("/projects/:id/applicants/:userId", h.Applicant.GetApplicant)
		auth.PATCH("/projects/:id/applicants/status", h.Applicant.SetStatus)

		auth.GET("/users/me", h.User.MyInfo)
		auth.PATCH("/users/me", h.User.UpdateProfile)
		auth.POST("/users/me/profile-image", h.User.UploadProfileImage)
		auth.GET("/users/me/applications", h.User.MyApplications)
	}
}
