package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/utils"
)

type CommissionController struct {
	db *mongo.Client
}

func NewCommissionController(db *mongo.Client) *CommissionController {
	return &CommissionController{db: db}
}

// GetCommissions lists commission records, optionally filtered by userId and
// status (admin only)
func (cc *CommissionController) GetCommissions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if userIDParam := c.QueryParam("userId"); userIDParam != "" {
		userID, err := primitive.ObjectIDFromHex(userIDParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Invalid user ID format",
			})
		}
		filter["userId"] = userID
	}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	page, limit, skip := paginationParams(c)

	collection := config.GetCollection(cc.db, "commissions")
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commissions",
		})
	}
	defer cursor.Close(ctx)

	var commissions []models.Commission
	if err := cursor.All(ctx, &commissions); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode commissions",
		})
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count commissions",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commissions retrieved successfully",
		Data: map[string]interface{}{
			"commissions": commissions,
			"pagination":  paginationMeta(totalCount, page, limit),
		},
	})
}

// UpdateCommissionStatus moves a commission record through its lifecycle
// (admin only). When a pending commission becomes available, a matching
// credit is written to the transactions ledger so the wallet balance picks
// it up.
func (cc *CommissionController) UpdateCommissionStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	commissionID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid commission ID format",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Status is required",
		})
	}

	collection := config.GetCollection(cc.db, "commissions")

	var commission models.Commission
	err = collection.FindOne(ctx, bson.M{"_id": commissionID}).Decode(&commission)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Commission not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission",
		})
	}

	if !models.CanChangeCommissionStatus(commission.Status, req.Status) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Cannot change commission status from %s to %s", commission.Status, req.Status),
		})
	}

	// Conditional on the current status so concurrent updates cannot both win
	result, err := collection.UpdateOne(ctx, bson.M{
		"_id":    commissionID,
		"status": commission.Status,
	}, bson.M{
		"$set": bson.M{"status": req.Status},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update commission",
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Commission was modified by another request, please retry",
		})
	}

	// A commission becoming available must land in the ledger, otherwise the
	// wallet balance never sees it. If the credit insert fails, roll the
	// status back and surface the error instead of leaving the two out of
	// sync.
	if commission.Status == models.CommissionStatusPending && req.Status == models.CommissionStatusAvailable {
		transaction := models.Transaction{
			ID:          primitive.NewObjectID(),
			UserID:      commission.UserID,
			Amount:      utils.RoundToCents(commission.Amount),
			Type:        models.TransactionTypeCredit,
			Description: "Commission earned",
			Reference:   commission.ID.Hex(),
			CreatedAt:   time.Now(),
		}
		if _, err := config.GetCollection(cc.db, "transactions").InsertOne(ctx, transaction); err != nil {
			log.Printf("Failed to record ledger credit for commission %s: %v", commission.ID.Hex(), err)
			if _, revertErr := collection.UpdateOne(ctx, bson.M{
				"_id":    commissionID,
				"status": req.Status,
			}, bson.M{
				"$set": bson.M{"status": commission.Status},
			}); revertErr != nil {
				log.Printf("Failed to revert commission %s to %s: %v", commission.ID.Hex(), commission.Status, revertErr)
			}
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to record commission credit",
			})
		}
	}

	commission.Status = req.Status
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission status updated successfully",
		Data:    commission,
	})
}
