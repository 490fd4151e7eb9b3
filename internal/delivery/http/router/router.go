// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"learnhub/internal/delivery/http/middleware"
	"learnhub/internal/delivery/http/router/handler"
	"learnhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContentHandler *handler.ContentHandler
	PageHandler    *handler.PageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contentHandler *handler.ContentHandler
	pageHandler    *handler.PageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contentHandler: params.ContentHandler,
		pageHandler:    params.PageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the page and API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Pages. The route guard decides who may see which page.
	pages := e.Group("", r.authMiddleware.RouteGuard)
	{
		pages.GET("/", r.pageHandler.Home)
		pages.GET("/login", r.pageHandler.Login)
		pages.GET("/register", r.pageHandler.Register)
		pages.GET("/documents", r.pageHandler.Documents)
		pages.GET("/documents/uploader", r.pageHandler.DocumentUploader)
		pages.GET("/videos", r.pageHandler.Videos)
		pages.GET("/videos/watch", r.pageHandler.Watch)
		pages.GET("/admin", r.pageHandler.Admin)
	}

	api := e.Group("/api/v1")

	// Identity routes are open by nature.
	api.POST("/register", r.authHandler.Register)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	// Content reads require a session.
	snatchGroup := api.Group("/snatch")
	snatchGroup.Use(r.authMiddleware.Authenticate)
	{
		snatchGroup.GET("/getDoc", r.contentHandler.ListDocuments)
		snatchGroup.GET("/getVideo", r.contentHandler.ListVideos)
		snatchGroup.POST("/getByUrl", r.contentHandler.GetVideoByURL)
		snatchGroup.GET("/qr", r.contentHandler.ShareQR)
	}

	// Uploads require a session; the guard runs before any bytes are stored.
	uploadGroup := api.Group("/upload")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("/document", r.contentHandler.UploadDocument)
		uploadGroup.POST("/video", r.contentHandler.UploadVideo)
	}

	// Admin API surface, role-gated on the session claim.
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/ping", handler.HealthCheck)
	}
}
