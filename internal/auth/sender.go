package auth

import (
	"context"
	"log"

	"job-marketplace-api/internal/models"
)

// LogSender delivers verification codes to the application log. Used until an SMS or email provider is wired in.
type LogSender struct{}

func (LogSender) SendVerificationCode(ctx context.Context, user *models.User, code string) error {
	log.Printf("Verification code for user %s (%s): %s", user.ID, user.Identifier(), code)
	return nil
}
