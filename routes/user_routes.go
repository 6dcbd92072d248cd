package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Adedara-samuel/epilux-sub000/controllers"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/websocket"
)

// RegisterUserRoutes sets up profile, notification and WebSocket endpoints
func RegisterUserRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	userController := controllers.NewUserController(db)

	users := e.Group("/api/users", middleware.JWTMiddleware(), middleware.ActivityTracker(db))
	users.GET("/profile", userController.GetProfile)
	users.PUT("/fcm-token", userController.UpdateFCMToken)
	users.GET("/notifications", userController.GetNotifications)
	users.PUT("/notifications/:id/read", userController.MarkNotificationRead)

	e.GET("/api/ws", func(c echo.Context) error {
		claims := middleware.GetUserFromToken(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Please provide valid credentials",
			})
		}
		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid user ID",
			})
		}
		return websocket.HandleWebSocket(c, hub, userID, claims.UserType)
	}, middleware.JWTMiddleware())
}
