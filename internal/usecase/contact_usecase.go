// Package usecase contains the application-specific business rules.
package usecase

import "context"

// ContactInput defines the data of a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase defines the interface for the contact flow. Mail delivery is
// best effort: a failed send is logged, never surfaced to the caller.
type ContactUsecase interface {
	SubmitContact(ctx context.Context, input *ContactInput) error
}
