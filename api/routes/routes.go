package routes

import (
	"legalconnect/api/handler"
	"legalconnect/api/middleware"
	"legalconnect/internal/entity"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Users          *handler.UserHandler
	AuthMiddleware middleware.AuthMiddleware
}

func NewRouter(e *echo.Echo, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, authMiddleware middleware.AuthMiddleware) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Users:          userHandler,
		AuthMiddleware: authMiddleware,
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/register", r.Auth.Register)
	e.POST("/auth/login", r.Auth.Login)
	e.GET("/auth/google", r.Auth.GoogleStart)
	e.GET("/auth/google/callback", r.Auth.GoogleCallback)

	e.GET("/users/profile", r.Users.Profile, r.AuthMiddleware.RequireAuth)
	e.GET("/users/lawyer/:id", r.Users.PublicLawyer)
	e.PUT("/users/lawyer/:id/verify", r.Users.VerifyLawyer, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
	e.GET("/users/type/user", r.Users.ListUsers, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
	e.GET("/users/type/lawyer", r.Users.ListLawyers, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
}
