// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notes/internal/delivery/api/middleware"
	"notes/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	NoteHandler    *handler.NoteHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	noteHandler    *handler.NoteHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		noteHandler:    params.NoteHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public credential routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.accountHandler.GetProfile)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	notesGroup := apiV1.Group("/notes")
	{
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.GET("/search", r.noteHandler.SearchNotes)
		notesGroup.GET("/:id", r.noteHandler.GetNote)
		notesGroup.PUT("/:id", r.noteHandler.UpdateNote)
		notesGroup.PATCH("/:id/pin", r.noteHandler.PinNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)
	}
}
