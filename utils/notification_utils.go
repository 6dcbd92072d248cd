package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"

	"github.com/Adedara-samuel/epilux-sub000/config"
	"github.com/Adedara-samuel/epilux-sub000/models"
)

// SaveNotification saves an in-app notification to the database
func SaveNotification(db *mongo.Client, userID primitive.ObjectID, title, message, notifType string, data interface{}) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Data:      data,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), notification)
	return err
}

// SendNotificationEmail sends a plain-text notification email over SMTP
func SendNotificationEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	fromEmail := os.Getenv("FROM_EMAIL")

	senderEmail := fromEmail
	if senderEmail == "" {
		senderEmail = smtpUser
	}

	if smtpHost == "" || smtpUser == "" || smtpPass == "" || senderEmail == "" {
		log.Println("SMTP configuration is incomplete for notifications")
		return fmt.Errorf("SMTP configuration is incomplete: check SMTP_HOST, SMTP_USER, SMTP_PASS, and FROM_EMAIL")
	}

	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpPort := 2525 // Default port
	if smtpPortStr != "" {
		if portNum, err := strconv.Atoi(smtpPortStr); err == nil && portNum > 0 {
			smtpPort = portNum
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}

// NotifyAdminOfWithdrawalRequest emails the administrative contact about a
// new withdrawal request. Failures are the caller's to log; the withdrawal
// itself is never rolled back over a notification.
func NotifyAdminOfWithdrawalRequest(withdrawal models.Withdrawal, affiliate models.User) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is not configured")
	}

	subject := "New Withdrawal Request"
	body := fmt.Sprintf("A new withdrawal request has been submitted.\n\nAffiliate: %s (%s)\nAmount: %.2f\nBank: %s\nAccount: %s (%s)\nRequested At: %s\n\nPlease review and approve or reject this request.",
		affiliate.FullName,
		affiliate.Email,
		withdrawal.Amount,
		withdrawal.BankName,
		withdrawal.AccountNumber,
		withdrawal.AccountName,
		withdrawal.RequestedAt.Format("2006-01-02 15:04:05"),
	)

	return SendNotificationEmail(adminEmail, subject, body)
}

// NotifyAffiliateOfWithdrawalDecision emails the affiliate after an admin
// approves or rejects their withdrawal request.
func NotifyAffiliateOfWithdrawalDecision(affiliate models.User, withdrawal models.Withdrawal) error {
	var subject, body string

	switch withdrawal.Status {
	case models.WithdrawalStatusApproved:
		subject = "Withdrawal Request Approved"
		body = fmt.Sprintf("Dear %s,\n\nYour withdrawal request has been approved.\n\nAmount: %.2f\nBank: %s\nRequested At: %s\n\nYour payout will be processed shortly.",
			affiliate.FullName,
			withdrawal.Amount,
			withdrawal.BankName,
			withdrawal.RequestedAt.Format("2006-01-02 15:04:05"),
		)
	case models.WithdrawalStatusRejected:
		subject = "Withdrawal Request Update"
		body = fmt.Sprintf("Dear %s,\n\nYour withdrawal request has been reviewed and rejected.\n\nAmount: %.2f\nRequested At: %s\nReason: %s\n\nIf you have any questions, please contact our support team.",
			affiliate.FullName,
			withdrawal.Amount,
			withdrawal.RequestedAt.Format("2006-01-02 15:04:05"),
			withdrawal.AdminNote,
		)
	case models.WithdrawalStatusProcessed:
		subject = "Withdrawal Paid Out"
		body = fmt.Sprintf("Dear %s,\n\nYour withdrawal of %.2f has been paid out to %s.\n\nTransaction reference: %s",
			affiliate.FullName,
			withdrawal.Amount,
			withdrawal.BankName,
			withdrawal.TransactionReference,
		)
	default:
		return fmt.Errorf("no notification for withdrawal status %q", withdrawal.Status)
	}

	return SendNotificationEmail(affiliate.Email, subject, body)
}

// SendFCMNotificationToUser sends a Firebase Cloud Messaging push to a user
func SendFCMNotificationToUser(db *mongo.Client, userID primitive.ObjectID, title, message string, data map[string]string) error {
	var user models.User
	err := config.GetCollection(db, "users").FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.FCMToken == "" {
		return fmt.Errorf("user %s has no FCM token", userID.Hex())
	}

	if config.FirebaseApp == nil {
		return fmt.Errorf("firebase app not initialized")
	}

	ctx := context.Background()
	client, err := config.FirebaseApp.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	notificationData := map[string]string{
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for key, value := range data {
		notificationData[key] = value
	}

	fcmMessage := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: notificationData,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "epilux_fcm_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  message,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := client.Send(ctx, fcmMessage); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}

	return nil
}
