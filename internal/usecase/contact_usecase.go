package usecase

import (
	"context"
	"fmt"
	"log"

	"portfolio-site/internal/domain/contact"
	"portfolio-site/internal/domain/profile"

	"github.com/go-playground/validator/v10"
)

// Handoff passes a finished URI to whatever can resolve it: a browser
// redirect, a terminal, a test recorder.
type Handoff interface {
	Open(ctx context.Context, uri string) error
}

type ContactUsecase interface {
	URI(cmd contact.Command) (string, error)
	Dispatch(ctx context.Context, cmd contact.Command, h Handoff) (string, error)
}

type Contact struct {
	endpoints profile.ContactEndpoints
	validate  *validator.Validate
	logger    *log.Logger
}

func NewContactUsecase(store *profile.Store, logger *log.Logger) *Contact {
	if logger == nil {
		logger = log.Default()
	}
	return &Contact{endpoints: store.Contact(), validate: validator.New(), logger: logger}
}

func (u *Contact) URI(cmd contact.Command) (string, error) {
	if cmd.Kind == contact.MethodEmail && cmd.Payload != nil {
		if err := u.validate.Struct(cmd.Payload); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
	}
	return contact.BuildURI(u.endpoints, cmd)
}

// Dispatch builds the URI for cmd and hands it off. Delivery is not observed;
// a nil error only means the handoff accepted the URI.
func (u *Contact) Dispatch(ctx context.Context, cmd contact.Command, h Handoff) (string, error) {
	uri, err := u.URI(cmd)
	if err != nil {
		return "", err
	}
	if h == nil {
		return uri, nil
	}
	if err := h.Open(ctx, uri); err != nil {
		u.logger.Printf("[Contact] handoff failed | method=%s err=%v", cmd.Kind, err)
		return "", err
	}
	return uri, nil
}
