package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Adedara-samuel/epilux-sub000/controllers"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
)

// RegisterAuthRoutes sets up signup, login and logout
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client) {
	authController := controllers.NewAuthController(db)

	auth := e.Group("/api/auth")
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout, middleware.JWTMiddleware())
}
