package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/utils"
)

type CommissionRateController struct {
	db *mongo.Database
}

func NewCommissionRateController(db *mongo.Database) *CommissionRateController {
	return &CommissionRateController{db: db}
}

type commissionRateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rate        *float64 `json:"rate"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

// CreateCommissionRate creates a new commission rate definition (admin only)
func (crc *CommissionRateController) CreateCommissionRate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	claims := middleware.GetUserFromToken(c)
	adminID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid admin ID",
		})
	}

	var req commissionRateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	req.Name = utils.SanitizeInput(req.Name)
	if req.Name == "" || req.Rate == nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Name and rate are required",
		})
	}

	// Omitted type and category fall back to defaults
	if req.Type == "" {
		req.Type = models.RateTypePercentage
	}
	if req.Category == "" {
		req.Category = models.RateCategoryGeneral
	}

	if err := models.ValidateRateBounds(*req.Rate, req.Type, models.FixedRateCeiling()); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	if !models.ValidRateCategory(req.Category) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Category must be one of: product, service, referral, general",
		})
	}

	collection := crc.db.Collection("commission_rates")

	count, err := collection.CountDocuments(ctx, bson.M{"name": req.Name})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing rates",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "A commission rate with this name already exists",
		})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	rate := models.CommissionRate{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: utils.SanitizeInput(req.Description),
		Rate:        *req.Rate,
		Type:        req.Type,
		Category:    req.Category,
		IsActive:    isActive,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := collection.InsertOne(ctx, rate); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create commission rate",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Commission rate created successfully",
		Data:    rate,
	})
}

// GetCommissionRates lists commission rates with optional category/isActive
// filters (admin only)
func (crc *CommissionRateController) GetCommissionRates(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}
	switch c.QueryParam("isActive") {
	case "true":
		filter["isActive"] = true
	case "false":
		filter["isActive"] = false
	}

	page, limit, skip := paginationParams(c)

	collection := crc.db.Collection("commission_rates")
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission rates",
		})
	}
	defer cursor.Close(ctx)

	var rates []models.CommissionRate
	if err := cursor.All(ctx, &rates); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode commission rates",
		})
	}

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to count commission rates",
		})
	}

	// Denormalize the creating admin's name into each row for the admin panel
	usersCollection := crc.db.Collection("users")
	enriched := make([]map[string]interface{}, 0, len(rates))
	for _, rate := range rates {
		createdByName := ""
		var admin models.User
		if err := usersCollection.FindOne(ctx, bson.M{"_id": rate.CreatedBy}).Decode(&admin); err == nil {
			createdByName = admin.FullName
		}
		enriched = append(enriched, map[string]interface{}{
			"rate":          rate,
			"createdByName": createdByName,
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission rates retrieved successfully",
		Data: map[string]interface{}{
			"rates":      enriched,
			"pagination": paginationMeta(totalCount, page, limit),
		},
	})
}

// GetCommissionRate returns a single commission rate by ID (admin only)
func (crc *CommissionRateController) GetCommissionRate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid commission rate ID format",
		})
	}

	var rate models.CommissionRate
	err = crc.db.Collection("commission_rates").FindOne(ctx, bson.M{"_id": rateID}).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Commission rate not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission rate",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission rate retrieved successfully",
		Data:    rate,
	})
}

// UpdateCommissionRate partially updates a commission rate (admin only).
// Rate and type are validated together: a new rate is checked against the
// stored type unless the type changes in the same request.
func (crc *CommissionRateController) UpdateCommissionRate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid commission rate ID format",
		})
	}

	var req commissionRateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	collection := crc.db.Collection("commission_rates")

	var existing models.CommissionRate
	err = collection.FindOne(ctx, bson.M{"_id": rateID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Commission rate not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission rate",
		})
	}

	update := bson.M{"updatedAt": time.Now()}

	effectiveType := existing.Type
	if req.Type != "" {
		effectiveType = req.Type
		update["type"] = req.Type
	}
	effectiveRate := existing.Rate
	if req.Rate != nil {
		effectiveRate = *req.Rate
		update["rate"] = *req.Rate
	}
	if req.Rate != nil || req.Type != "" {
		if err := models.ValidateRateBounds(effectiveRate, effectiveType, models.FixedRateCeiling()); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
	}

	if req.Category != "" {
		if !models.ValidRateCategory(req.Category) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Category must be one of: product, service, referral, general",
			})
		}
		update["category"] = req.Category
	}

	if req.Name != "" {
		name := utils.SanitizeInput(req.Name)
		count, err := collection.CountDocuments(ctx, bson.M{
			"name": name,
			"_id":  bson.M{"$ne": rateID},
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to check existing rates",
			})
		}
		if count > 0 {
			return c.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: "A commission rate with this name already exists",
			})
		}
		update["name"] = name
	}

	if req.Description != "" {
		update["description"] = utils.SanitizeInput(req.Description)
	}
	if req.IsActive != nil {
		update["isActive"] = *req.IsActive
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": rateID}, bson.M{"$set": update}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update commission rate",
		})
	}

	var updated models.CommissionRate
	if err := collection.FindOne(ctx, bson.M{"_id": rateID}).Decode(&updated); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch updated commission rate",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission rate updated successfully",
		Data:    updated,
	})
}

// ToggleCommissionRateStatus flips the isActive flag of a rate (admin only)
func (crc *CommissionRateController) ToggleCommissionRateStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid commission rate ID format",
		})
	}

	collection := crc.db.Collection("commission_rates")

	var rate models.CommissionRate
	err = collection.FindOne(ctx, bson.M{"_id": rateID}).Decode(&rate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Commission rate not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission rate",
		})
	}

	newStatus := !rate.IsActive
	_, err = collection.UpdateOne(ctx, bson.M{"_id": rateID}, bson.M{
		"$set": bson.M{"isActive": newStatus, "updatedAt": time.Now()},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update commission rate",
		})
	}

	rate.IsActive = newStatus
	message := "Commission rate deactivated"
	if newStatus {
		message = "Commission rate activated"
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: message,
		Data:    rate,
	})
}

// DeleteCommissionRate removes a commission rate definition (admin only)
func (crc *CommissionRateController) DeleteCommissionRate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid commission rate ID format",
		})
	}

	result, err := crc.db.Collection("commission_rates").DeleteOne(ctx, bson.M{"_id": rateID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete commission rate",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Commission rate not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission rate deleted successfully",
	})
}

// GetActiveCommissionRates returns all active rates, optionally filtered by
// category. Available to any authenticated user.
func (crc *CommissionRateController) GetActiveCommissionRates(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isActive": true}
	if category := c.QueryParam("category"); category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := crc.db.Collection("commission_rates").Find(ctx, filter, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch commission rates",
		})
	}
	defer cursor.Close(ctx)

	var rates []models.CommissionRate
	if err := cursor.All(ctx, &rates); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode commission rates",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Active commission rates retrieved successfully",
		Data:    rates,
	})
}
