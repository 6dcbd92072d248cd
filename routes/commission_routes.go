package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/controllers"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
)

// RegisterCommissionRoutes sets up the commission rate registry and
// commission record endpoints
func RegisterCommissionRoutes(e *echo.Echo, db *mongo.Client) {
	rateController := controllers.NewCommissionRateController(db.Database(config.DatabaseName()))
	commissionController := controllers.NewCommissionController(db)

	adminRates := e.Group("/api/admin/commission-rates",
		middleware.JWTMiddleware(),
		middleware.RequireUserType(models.UserTypeAdmin))
	adminRates.POST("", rateController.CreateCommissionRate)
	adminRates.GET("", rateController.GetCommissionRates)
	adminRates.GET("/:id", rateController.GetCommissionRate)
	adminRates.PUT("/:id", rateController.UpdateCommissionRate)
	adminRates.PATCH("/:id/toggle-status", rateController.ToggleCommissionRateStatus)
	adminRates.DELETE("/:id", rateController.DeleteCommissionRate)

	// Any authenticated user can read the active rates
	e.GET("/api/commission-rates/active", rateController.GetActiveCommissionRates,
		middleware.JWTMiddleware())

	adminCommissions := e.Group("/api/admin/commissions",
		middleware.JWTMiddleware(),
		middleware.RequireUserType(models.UserTypeAdmin))
	adminCommissions.GET("", commissionController.GetCommissions)
	adminCommissions.PUT("/:id/status", commissionController.UpdateCommissionStatus)
}
