// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kidsactivity/internal/delivery/http/middleware"
	"kidsactivity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ActivityHandler *handler.ActivityHandler
	CatalogHandler  *handler.CatalogHandler
	ChildHandler    *handler.ChildHandler
	FavoriteHandler *handler.FavoriteHandler
	SharingHandler  *handler.SharingHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	activityHandler *handler.ActivityHandler
	catalogHandler  *handler.CatalogHandler
	childHandler    *handler.ChildHandler
	favoriteHandler *handler.FavoriteHandler
	sharingHandler  *handler.SharingHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		activityHandler: params.ActivityHandler,
		catalogHandler:  params.CatalogHandler,
		childHandler:    params.ChildHandler,
		favoriteHandler: params.FavoriteHandler,
		sharingHandler:  params.SharingHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	// Auth routes
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public catalog and search routes; the mobile app browses without an account
	{
		v1.GET("/activities", r.activityHandler.SearchActivities)
		v1.GET("/activities/:id", r.activityHandler.GetActivity)
		v1.GET("/categories", r.catalogHandler.ListCategories)
		v1.GET("/categories/:id", r.catalogHandler.GetCategory)
		v1.GET("/activity-types", r.catalogHandler.ListActivityTypes)
		v1.GET("/activity-types/:code", r.catalogHandler.GetActivityType)
		v1.GET("/cities", r.catalogHandler.ListCities)
		v1.GET("/locations", r.catalogHandler.ListLocations)
		v1.GET("/locations/:id", r.catalogHandler.GetLocation)
		v1.GET("/providers", r.catalogHandler.ListProviders)
		v1.GET("/providers/:id", r.catalogHandler.GetProvider)
	}

	// Routes that require authentication
	authed := v1.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/profile", r.userHandler.GetProfile)
		authed.PATCH("/profile", r.userHandler.UpdateProfile)

		authed.POST("/children", r.childHandler.CreateChild)
		authed.GET("/children", r.childHandler.ListChildren)
		authed.GET("/children/:id", r.childHandler.GetChild)
		authed.PATCH("/children/:id", r.childHandler.UpdateChild)
		authed.DELETE("/children/:id", r.childHandler.DeleteChild)
		authed.POST("/children/:id/activities", r.childHandler.TrackActivity)
		authed.GET("/children/:id/activities", r.childHandler.ListChildActivities)
		authed.PATCH("/children/:id/activities/:linkID", r.childHandler.UpdateActivityStatus)

		authed.POST("/favorites/:activityID", r.favoriteHandler.AddFavorite)
		authed.DELETE("/favorites/:activityID", r.favoriteHandler.RemoveFavorite)
		authed.GET("/favorites", r.favoriteHandler.ListFavorites)

		authed.POST("/invitations", r.sharingHandler.CreateInvitation)
		authed.GET("/invitations", r.sharingHandler.ListInvitations)
		authed.POST("/invitations/accept", r.sharingHandler.AcceptInvitation)
		authed.POST("/invitations/:id/decline", r.sharingHandler.DeclineInvitation)
		authed.DELETE("/invitations/:id", r.sharingHandler.RevokeInvitation)
		authed.GET("/invitations/:id/qr", r.sharingHandler.InvitationQR)

		authed.GET("/shared/children", r.sharingHandler.ListSharedChildren)
	}
}
