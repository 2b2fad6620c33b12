package impl

import (
	"context"
	"testing"

	mockSvc "bizconnect/internal/mocks/service"
	"bizconnect/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_SubmitContact_SendsBothMails(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	srv := NewContactService(mailer, newDiscardLogger())
	ctx := context.Background()

	mailer.On("Enabled").Return(true)
	mailer.On("SendContactNotification", ctx, mock.AnythingOfType("*service.ContactMessage")).Return(nil)
	mailer.On("SendContactConfirmation", ctx, mock.AnythingOfType("*service.ContactMessage")).Return(nil)

	err := srv.SubmitContact(ctx, &usecase.ContactInput{
		Name:    "Sari",
		Email:   "sari@kampus.ac.id",
		Subject: "Kerja sama",
		Message: "Halo",
	})
	require.NoError(t, err)
}

func TestContactService_SubmitContact_MailFailureIsNotFatal(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	srv := NewContactService(mailer, newDiscardLogger())
	ctx := context.Background()

	mailer.On("Enabled").Return(true)
	mailer.On("SendContactNotification", ctx, mock.Anything).Return(errors.New("smtp timeout"))
	mailer.On("SendContactConfirmation", ctx, mock.Anything).Return(errors.New("smtp timeout"))

	require.NoError(t, srv.SubmitContact(ctx, &usecase.ContactInput{Name: "Sari", Email: "sari@kampus.ac.id"}))
}

func TestContactService_SubmitContact_DisabledTransport(t *testing.T) {
	mailer := mockSvc.NewMockMailer(t)
	srv := NewContactService(mailer, newDiscardLogger())

	mailer.On("Enabled").Return(false)

	require.NoError(t, srv.SubmitContact(context.Background(), &usecase.ContactInput{Name: "Sari"}))
	mailer.AssertNotCalled(t, "SendContactNotification", mock.Anything, mock.Anything)
}
