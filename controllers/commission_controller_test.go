package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/models"
)

func commissionDoc(id primitive.ObjectID, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "userId", Value: primitive.NewObjectID()},
		{Key: "amount", Value: 200.0},
		{Key: "status", Value: status},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

func commissionsNamespace() string {
	return fmt.Sprintf("%s.commissions", config.DatabaseName())
}

func TestUpdateCommissionStatusInvalidTransition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("withdrawn is terminal", func(mt *mtest.T) {
		commissionID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, commissionsNamespace(), mtest.FirstBatch, commissionDoc(commissionID, models.CommissionStatusWithdrawn)),
		)

		cc := NewCommissionController(mt.Client)
		c, rec := newAdminContext(http.MethodPut, `{"status":"available"}`, commissionID.Hex())

		assert.NoError(t, cc.UpdateCommissionStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateCommissionStatusLosesUpdateRaceConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("conditional update matches nothing", func(mt *mtest.T) {
		commissionID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, commissionsNamespace(), mtest.FirstBatch, commissionDoc(commissionID, models.CommissionStatusPending)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		cc := NewCommissionController(mt.Client)
		c, rec := newAdminContext(http.MethodPut, `{"status":"available"}`, commissionID.Hex())

		assert.NoError(t, cc.UpdateCommissionStatus(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateCommissionStatusWritesLedgerCredit(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pending to available inserts a credit", func(mt *mtest.T) {
		commissionID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, commissionsNamespace(), mtest.FirstBatch, commissionDoc(commissionID, models.CommissionStatusPending)),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(),
		)

		cc := NewCommissionController(mt.Client)
		c, rec := newAdminContext(http.MethodPut, `{"status":"available"}`, commissionID.Hex())

		assert.NoError(t, cc.UpdateCommissionStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUpdateCommissionStatusLedgerInsertFailureRevertsStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("failed credit insert rolls the status back", func(mt *mtest.T) {
		commissionID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, commissionsNamespace(), mtest.FirstBatch, commissionDoc(commissionID, models.CommissionStatusPending)),
			// Status flip succeeds
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			// Ledger insert fails
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "insert failed"}),
			// Revert back to pending succeeds
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		cc := NewCommissionController(mt.Client)
		c, rec := newAdminContext(http.MethodPut, `{"status":"available"}`, commissionID.Hex())

		assert.NoError(t, cc.UpdateCommissionStatus(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
