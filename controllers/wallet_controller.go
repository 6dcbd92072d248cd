package controllers

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/utils"
	"github.com/Adedara-samuel/epilux-sub000/websocket"
)

type WalletController struct {
	db   *mongo.Client
	hub  *websocket.Hub
	lock *utils.WithdrawLock
}

func NewWalletController(db *mongo.Client, hub *websocket.Hub, lock *utils.WithdrawLock) *WalletController {
	return &WalletController{db: db, hub: hub, lock: lock}
}

type walletBalance struct {
	AvailableBalance float64 `json:"availableBalance"`
	TotalEarned      float64 `json:"totalEarned"`
	TotalWithdrawn   float64 `json:"totalWithdrawn"`
	TotalPending     float64 `json:"totalPending"`
}

// sumAggregate runs a $match + $sum pipeline and returns the total, zero
// when no documents match.
func (wc *WalletController) sumAggregate(ctx context.Context, collection string, match bson.M, field string) (float64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": field}}},
	}

	cursor, err := config.GetCollection(wc.db, collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	total := 0.0
	if cursor.Next(ctx) {
		var result struct {
			Total float64 `bson:"total"`
		}
		if err := cursor.Decode(&result); err == nil {
			total = result.Total
		}
	}
	return total, nil
}

// computeBalance aggregates the commission ledger and withdrawal history for
// a user. Aggregation over no rows yields zeros, so unknown ids simply come
// back empty.
func (wc *WalletController) computeBalance(ctx context.Context, userID primitive.ObjectID) (walletBalance, error) {
	totalEarned, err := wc.sumAggregate(ctx, "transactions", bson.M{
		"userId": userID,
		"type":   models.TransactionTypeCredit,
	}, "$amount")
	if err != nil {
		return walletBalance{}, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	totalWithdrawn, err := wc.sumAggregate(ctx, "withdrawals", bson.M{
		"affiliateId": userID,
		"status":      bson.M{"$in": []string{models.WithdrawalStatusApproved, models.WithdrawalStatusProcessed}},
	}, "$amount")
	if err != nil {
		return walletBalance{}, fmt.Errorf("failed to aggregate withdrawals: %w", err)
	}

	totalPending, err := wc.sumAggregate(ctx, "withdrawals", bson.M{
		"affiliateId": userID,
		"status":      models.WithdrawalStatusPending,
	}, "$amount")
	if err != nil {
		return walletBalance{}, fmt.Errorf("failed to aggregate pending withdrawals: %w", err)
	}

	return walletBalance{
		AvailableBalance: utils.AvailableBalance(totalEarned, totalWithdrawn),
		TotalEarned:      totalEarned,
		TotalWithdrawn:   totalWithdrawn,
		TotalPending:     totalPending,
	}, nil
}

// GetWalletBalance returns the authenticated user's wallet balance
func (wc *WalletController) GetWalletBalance(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	balance, err := wc.computeBalance(ctx, userID)
	if err != nil {
		log.Printf("Failed to compute balance for user %s: %v", claims.UserID, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to compute wallet balance",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Wallet balance retrieved successfully",
		Data:    balance,
	})
}

// GetTransactions returns the authenticated user's commission ledger with pagination
func (wc *WalletController) GetTransactions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	page, limit, skip := paginationParams(c)

	collection := config.GetCollection(wc.db, "transactions")
	filter := bson.M{"userId": userID}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch transactions",
		})
	}
	defer cursor.Close(ctx)

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode transactions",
		})
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count transactions",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Transactions retrieved successfully",
		Data: map[string]interface{}{
			"transactions": transactions,
			"pagination":   paginationMeta(totalCount, page, limit),
		},
	})
}

// GetWithdrawalHistory returns the authenticated affiliate's withdrawal requests
func (wc *WalletController) GetWithdrawalHistory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	page, limit, skip := paginationParams(c)

	collection := config.GetCollection(wc.db, "withdrawals")
	filter := bson.M{"affiliateId": userID}

	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "requestedAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch withdrawals",
		})
	}
	defer cursor.Close(ctx)

	var withdrawals []models.Withdrawal
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode withdrawals",
		})
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count withdrawals",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Withdrawals retrieved successfully",
		Data: map[string]interface{}{
			"withdrawals": withdrawals,
			"pagination":  paginationMeta(totalCount, page, limit),
		},
	})
}

// RequestWithdrawal validates a withdrawal request against the computed
// available balance and records it with status "pending". The
// balance-check-then-insert section runs under a per-affiliate lock so two
// concurrent requests cannot both pass the gate.
func (wc *WalletController) RequestWithdrawal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	var req struct {
		Amount        float64 `json:"amount"`
		BankName      string  `json:"bankName"`
		AccountNumber string  `json:"accountNumber"`
		AccountName   string  `json:"accountName"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	// Precondition order: fields, amount, role, balance. First failure wins.
	if req.BankName == "" || req.AccountNumber == "" || req.AccountName == "" || req.Amount == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All fields are required: amount, bankName, accountNumber, accountName",
		})
	}

	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Withdrawal amount must be positive",
		})
	}

	if claims.UserType != models.UserTypeAffiliate {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only affiliates can request withdrawals",
		})
	}

	release, err := wc.lock.Lock(ctx, claims.UserID)
	if err != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Another withdrawal request is being processed, please try again",
		})
	}
	defer release()

	balance, err := wc.computeBalance(ctx, userID)
	if err != nil {
		log.Printf("Failed to compute balance for user %s: %v", claims.UserID, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to compute wallet balance",
		})
	}

	// Pending requests reserve their amount until an admin decides
	available := balance.AvailableBalance - balance.TotalPending
	if req.Amount > available {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Withdrawal amount %.2f exceeds available balance %.2f", req.Amount, available),
		})
	}

	withdrawal := models.Withdrawal{
		ID:            primitive.NewObjectID(),
		AffiliateID:   userID,
		Amount:        utils.RoundToCents(req.Amount),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Status:        models.WithdrawalStatusPending,
		RequestedAt:   time.Now(),
	}

	if _, err := config.GetCollection(wc.db, "withdrawals").InsertOne(ctx, withdrawal); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create withdrawal request",
		})
	}

	// Best-effort notifications; failures are logged and never roll back
	// the withdrawal
	var affiliate models.User
	if err := config.GetCollection(wc.db, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&affiliate); err == nil {
		go func() {
			if err := utils.NotifyAdminOfWithdrawalRequest(withdrawal, affiliate); err != nil {
				log.Printf("Failed to send admin notification email for withdrawal %s: %v", withdrawal.ID.Hex(), err)
			}
		}()
	}

	wc.hub.BroadcastToAdmins(websocket.Event{
		Type:    websocket.EventTypeWithdrawalRequested,
		Message: "New withdrawal request",
		Data:    withdrawal,
	})

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Withdrawal request submitted successfully and sent to admin for approval",
		Data: map[string]interface{}{
			"withdrawal":       withdrawal,
			"availableBalance": available - withdrawal.Amount,
		},
	})
}

// GetPendingWithdrawals returns all pending withdrawal requests with
// affiliate identity denormalized (admin only)
func (wc *WalletController) GetPendingWithdrawals(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	if claims.UserType != models.UserTypeAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only admins can access this endpoint",
		})
	}

	collection := config.GetCollection(wc.db, "withdrawals")
	opts := options.Find().SetSort(bson.D{{Key: "requestedAt", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"status": models.WithdrawalStatusPending}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve withdrawal requests",
		})
	}
	defer cursor.Close(ctx)

	var withdrawals []models.Withdrawal
	if err = cursor.All(ctx, &withdrawals); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode withdrawal requests",
		})
	}

	usersCollection := config.GetCollection(wc.db, "users")
	enrichedWithdrawals := make([]map[string]interface{}, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		var affiliateDetails map[string]interface{}

		var affiliate models.User
		if err := usersCollection.FindOne(ctx, bson.M{"_id": withdrawal.AffiliateID}).Decode(&affiliate); err == nil {
			affiliateDetails = map[string]interface{}{
				"id":       affiliate.ID,
				"fullName": affiliate.FullName,
				"email":    affiliate.Email,
				"phone":    affiliate.Phone,
			}
		}

		enrichedWithdrawals = append(enrichedWithdrawals, map[string]interface{}{
			"withdrawal": withdrawal,
			"affiliate":  affiliateDetails,
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Pending withdrawal requests retrieved successfully",
		Data:    enrichedWithdrawals,
	})
}

// ProcessWithdrawal approves or rejects a pending withdrawal request (admin
// only). The status check and update run as a single conditional UpdateOne,
// so processing the same request twice fails the second time.
func (wc *WalletController) ProcessWithdrawal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	if claims.UserType != models.UserTypeAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only admins can access this endpoint",
		})
	}

	withdrawalObjectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid withdrawal ID format",
		})
	}

	var req struct {
		Action    string `json:"action"`
		AdminNote string `json:"adminNote,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Action != models.WithdrawalActionApprove && req.Action != models.WithdrawalActionReject {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Action must be 'approve' or 'reject'",
		})
	}

	if req.Action == models.WithdrawalActionReject && req.AdminNote == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Admin note is required for rejection",
		})
	}

	withdrawalsCollection := config.GetCollection(wc.db, "withdrawals")
	var withdrawal models.Withdrawal
	err = withdrawalsCollection.FindOne(ctx, bson.M{"_id": withdrawalObjectID}).Decode(&withdrawal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Withdrawal request not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find withdrawal request",
		})
	}

	newStatus, ok := models.NextWithdrawalStatus(withdrawal.Status, req.Action)
	if !ok {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Withdrawal request is already processed",
		})
	}

	adminObjectID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid admin ID",
		})
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"status":      newStatus,
			"adminId":     adminObjectID,
			"adminNote":   req.AdminNote,
			"processedAt": now,
		},
	}

	// Conditional update on the expected status closes the race with a
	// concurrent process call for the same request
	result, err := withdrawalsCollection.UpdateOne(ctx, bson.M{
		"_id":    withdrawalObjectID,
		"status": models.WithdrawalStatusPending,
	}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update withdrawal request",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Withdrawal request is already processed",
		})
	}

	withdrawal.Status = newStatus
	withdrawal.AdminID = &adminObjectID
	withdrawal.AdminNote = req.AdminNote
	withdrawal.ProcessedAt = &now

	wc.notifyWithdrawalDecision(withdrawal)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: fmt.Sprintf("Withdrawal request %s successfully", newStatus),
		Data:    withdrawal,
	})
}

// MarkWithdrawalProcessed records the payout of an approved withdrawal
// (admin only). This is the only transition into "processed".
func (wc *WalletController) MarkWithdrawalProcessed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	if claims.UserType != models.UserTypeAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only admins can access this endpoint",
		})
	}

	withdrawalObjectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid withdrawal ID format",
		})
	}

	var req struct {
		TransactionReference string `json:"transactionReference,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.TransactionReference == "" {
		req.TransactionReference = uuid.NewString()
	}

	withdrawalsCollection := config.GetCollection(wc.db, "withdrawals")
	var withdrawal models.Withdrawal
	err = withdrawalsCollection.FindOne(ctx, bson.M{"_id": withdrawalObjectID}).Decode(&withdrawal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Withdrawal request not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to find withdrawal request",
		})
	}

	newStatus, ok := models.NextWithdrawalStatus(withdrawal.Status, models.WithdrawalActionMarkProcessed)
	if !ok {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Only approved withdrawals can be marked as processed",
		})
	}

	now := time.Now()
	result, err := withdrawalsCollection.UpdateOne(ctx, bson.M{
		"_id":    withdrawalObjectID,
		"status": models.WithdrawalStatusApproved,
	}, bson.M{
		"$set": bson.M{
			"status":               newStatus,
			"transactionReference": req.TransactionReference,
			"processedAt":          now,
		},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update withdrawal request",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Only approved withdrawals can be marked as processed",
		})
	}

	withdrawal.Status = newStatus
	withdrawal.TransactionReference = req.TransactionReference
	withdrawal.ProcessedAt = &now

	wc.notifyWithdrawalDecision(withdrawal)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Withdrawal marked as processed",
		Data:    withdrawal,
	})
}

// notifyWithdrawalDecision fans out best-effort notifications after a
// withdrawal changes status: email, FCM push, in-app notification, and a
// WebSocket event. All failures are logged and swallowed.
func (wc *WalletController) notifyWithdrawalDecision(withdrawal models.Withdrawal) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var affiliate models.User
		err := config.GetCollection(wc.db, "users").FindOne(ctx, bson.M{"_id": withdrawal.AffiliateID}).Decode(&affiliate)
		if err != nil {
			log.Printf("Failed to load affiliate %s for notification: %v", withdrawal.AffiliateID.Hex(), err)
			return
		}

		if err := utils.NotifyAffiliateOfWithdrawalDecision(affiliate, withdrawal); err != nil {
			log.Printf("Failed to send withdrawal decision email: %v", err)
		}

		title := "Withdrawal " + withdrawal.Status
		message := fmt.Sprintf("Your withdrawal request of %.2f is now %s", withdrawal.Amount, withdrawal.Status)

		if err := utils.SaveNotification(wc.db, withdrawal.AffiliateID, title, message, "withdrawal_"+withdrawal.Status, map[string]interface{}{
			"withdrawalId": withdrawal.ID.Hex(),
			"amount":       withdrawal.Amount,
		}); err != nil {
			log.Printf("Failed to save withdrawal notification: %v", err)
		}

		if err := utils.SendFCMNotificationToUser(wc.db, withdrawal.AffiliateID, title, message, map[string]string{
			"type":         "withdrawal_update",
			"withdrawalId": withdrawal.ID.Hex(),
			"status":       withdrawal.Status,
		}); err != nil {
			log.Printf("Failed to send FCM notification: %v", err)
		}

		event := websocket.Event{
			Type:    websocket.EventTypeWithdrawalProcessed,
			Message: message,
			Data:    withdrawal,
		}
		// SendToUser fails when the affiliate is not connected; that is fine
		_ = wc.hub.SendToUser(withdrawal.AffiliateID, event)
		wc.hub.BroadcastToAdmins(event)
	}()
}

// paginationParams reads page/limit query parameters with defaults
func paginationParams(c echo.Context) (page, limit, skip int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20 // default limit
	}
	skip = (page - 1) * limit
	return page, limit, skip
}

// paginationMeta builds the pagination block returned with list responses
func paginationMeta(totalCount int64, page, limit int) map[string]interface{} {
	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))
	return map[string]interface{}{
		"totalCount": totalCount,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages,
	}
}
