// internal/notify/email.go
package notify

import (
	"context"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"
	"club-portal/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const emailSubject = "Club portal notification"

// SESService is the subset of the SES client used, defined for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailSender mirrors the Telegram message to the club inbox via SES. It is an
// optional secondary channel with the same best-effort semantics.
type EmailSender struct {
	enabled   bool
	fromEmail string
	toEmail   string
	sesClient SESService
	logger    logger.Logger
}

func NewEmailSender(enabled bool, region, fromEmail, toEmail string, log logger.Logger) (*EmailSender, error) {
	s := &EmailSender{
		enabled:   enabled,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		logger:    log.WithFields(map[string]interface{}{"channel": "email"}),
	}
	if !enabled {
		return s, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	s.sesClient = ses.NewFromConfig(awsCfg)
	return s, nil
}

func (e *EmailSender) Name() string { return "email" }

func (e *EmailSender) Send(ctx context.Context, message string) error {
	if !e.enabled || e.sesClient == nil {
		e.logger.Warn("email channel not configured, skipping notification", nil)
		return nil
	}

	_, err := e.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{e.toEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(emailSubject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(message)},
			},
		},
		Source: aws.String(e.fromEmail),
	})
	if err != nil {
		metrics.NotificationsFailed.WithLabelValues("email").Inc()
		return errors.NewNotificationSendFailedError("email", err)
	}

	return nil
}
