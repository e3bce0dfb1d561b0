package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/International-Combat-Archery-Alliance/email"
	"github.com/International-Combat-Archery-Alliance/email/awsses"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/divine-encounter/event-registration/api"
)

var _ email.Sender = &logSender{}

// logSender stands in for SES locally: confirmation emails land in the log.
type logSender struct {
	logger *slog.Logger
}

func (ls *logSender) SendEmail(ctx context.Context, e email.Email) error {
	ls.logger.InfoContext(ctx, "Not sending email outside PROD",
		slog.String("from", e.FromAddress),
		slog.String("to", strings.Join(e.ToAddresses, ", ")),
		slog.String("subject", e.Subject),
		slog.String("body", e.TextBody),
	)
	return nil
}

func createEmailSender(awsCfg aws.Config, logger *slog.Logger, env api.Environment) email.Sender {
	if env != api.PROD {
		return &logSender{logger: logger}
	}
	return awsses.NewAWSSESSender(sesv2.NewFromConfig(awsCfg))
}
