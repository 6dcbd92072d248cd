package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Adedara-samuel/epilux-sub000/controllers"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/utils"
	"github.com/Adedara-samuel/epilux-sub000/websocket"
)

// RegisterWalletRoutes sets up affiliate wallet endpoints and the admin
// withdrawal workflow
func RegisterWalletRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub, lock *utils.WithdrawLock) {
	walletController := controllers.NewWalletController(db, hub, lock)

	wallet := e.Group("/api/wallet", middleware.JWTMiddleware(), middleware.ActivityTracker(db))
	wallet.GET("/balance", walletController.GetWalletBalance)
	wallet.GET("/transactions", walletController.GetTransactions)
	wallet.GET("/withdrawals", walletController.GetWithdrawalHistory)
	wallet.POST("/withdraw", walletController.RequestWithdrawal)

	admin := e.Group("/api/admin/wallet",
		middleware.JWTMiddleware(),
		middleware.RequireUserType(models.UserTypeAdmin))
	admin.GET("/withdrawals/pending", walletController.GetPendingWithdrawals)
	admin.POST("/withdrawals/:id/process", walletController.ProcessWithdrawal)
	admin.POST("/withdrawals/:id/mark-processed", walletController.MarkWithdrawalProcessed)
}
