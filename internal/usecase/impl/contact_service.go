// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bizconnect/internal/delivery/context"
	"bizconnect/internal/domain/service"
	"bizconnect/internal/usecase"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	mailer service.Mailer
	logger *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(mailer service.Mailer, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		mailer: mailer,
		logger: logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact forwards the submission to the admin inbox and acknowledges
// the sender. Both sends are best effort: a mail failure is logged and the
// submission still succeeds, matching the form's always-friendly behavior.
func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.ContactInput) error {
	srv.log(ctx).Info("Contact form submitted", slog.String("email", input.Email), slog.String("subject", input.Subject))

	if !srv.mailer.Enabled() {
		srv.log(ctx).Debug("Mail transport disabled, contact message logged only")

		return nil
	}

	msg := &service.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.mailer.SendContactNotification(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to send contact notification", slog.Any("error", err))
	}
	if err := srv.mailer.SendContactConfirmation(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to send contact confirmation", slog.Any("error", err))
	}

	return nil
}
