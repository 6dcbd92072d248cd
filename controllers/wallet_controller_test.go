package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/middleware"
	"github.com/Adedara-samuel/epilux-sub000/models"
	"github.com/Adedara-samuel/epilux-sub000/utils"
	"github.com/Adedara-samuel/epilux-sub000/websocket"
)

// newAdminContext builds an echo context carrying admin claims, the way the
// JWT middleware leaves them for handlers.
func newAdminContext(method, body, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.JwtCustomClaims{
		UserID:   primitive.NewObjectID().Hex(),
		Email:    "admin@example.com",
		UserType: models.UserTypeAdmin,
	}))
	return c, rec
}

func withdrawalDoc(id primitive.ObjectID, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "affiliateId", Value: primitive.NewObjectID()},
		{Key: "amount", Value: 150.0},
		{Key: "bankName", Value: "First Bank"},
		{Key: "accountNumber", Value: "0123456789"},
		{Key: "accountName", Value: "Test Affiliate"},
		{Key: "status", Value: status},
		{Key: "requestedAt", Value: primitive.NewDateTimeFromTime(time.Now())},
	}
}

func TestProcessWithdrawalInvalidAction(t *testing.T) {
	wc := NewWalletController(nil, websocket.NewHub(), utils.NewWithdrawLock(nil))

	c, rec := newAdminContext(http.MethodPost, `{"action":"cancel"}`, primitive.NewObjectID().Hex())
	assert.NoError(t, wc.ProcessWithdrawal(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessWithdrawalRejectRequiresNote(t *testing.T) {
	wc := NewWalletController(nil, websocket.NewHub(), utils.NewWithdrawLock(nil))

	c, rec := newAdminContext(http.MethodPost, `{"action":"reject"}`, primitive.NewObjectID().Hex())
	assert.NoError(t, wc.ProcessWithdrawal(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessWithdrawalAlreadyDecidedConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("approve an approved withdrawal", func(mt *mtest.T) {
		withdrawalID := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.withdrawals", config.DatabaseName())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, withdrawalDoc(withdrawalID, models.WithdrawalStatusApproved)),
		)

		wc := NewWalletController(mt.Client, websocket.NewHub(), utils.NewWithdrawLock(nil))
		c, rec := newAdminContext(http.MethodPost, `{"action":"approve"}`, withdrawalID.Hex())

		assert.NoError(t, wc.ProcessWithdrawal(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestProcessWithdrawalLosesUpdateRaceConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("conditional update matches nothing", func(mt *mtest.T) {
		withdrawalID := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.withdrawals", config.DatabaseName())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, withdrawalDoc(withdrawalID, models.WithdrawalStatusPending)),
			// Another admin decided the request between the read and the
			// conditional update
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
		)

		wc := NewWalletController(mt.Client, websocket.NewHub(), utils.NewWithdrawLock(nil))
		c, rec := newAdminContext(http.MethodPost, `{"action":"approve"}`, withdrawalID.Hex())

		assert.NoError(t, wc.ProcessWithdrawal(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMarkWithdrawalProcessedRequiresApprovedConflict(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pending withdrawal cannot be marked processed", func(mt *mtest.T) {
		withdrawalID := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.withdrawals", config.DatabaseName())
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, withdrawalDoc(withdrawalID, models.WithdrawalStatusPending)),
		)

		wc := NewWalletController(mt.Client, websocket.NewHub(), utils.NewWithdrawLock(nil))
		c, rec := newAdminContext(http.MethodPost, `{}`, withdrawalID.Hex())

		assert.NoError(t, wc.MarkWithdrawalProcessed(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
