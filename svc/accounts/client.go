package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/qauto/garage/svc/registration"
)

// LocalClient serves registration.AccountRegistryClient from an in-process
// Service.
type LocalClient struct {
	svc *Service
}

var _ registration.AccountRegistryClient = (*LocalClient)(nil)

func NewLocalClient(svc *Service) *LocalClient {
	return &LocalClient{svc: svc}
}

func (c *LocalClient) Register(ctx context.Context, in registration.RegisterInput) (*registration.AccountCreated, error) {
	acc, sess, err := c.svc.Register(ctx, in)
	if err != nil {
		return nil, RegistryError(err)
	}
	return &registration.AccountCreated{
		UserID:  acc.ID.String(),
		Email:   acc.Email,
		Session: SessionView(acc, sess),
	}, nil
}

func (c *LocalClient) Login(ctx context.Context, email, password string) (*registration.Session, error) {
	acc, sess, err := c.svc.Login(ctx, email, password, false)
	if err != nil {
		return nil, RegistryError(err)
	}
	return SessionView(acc, sess), nil
}

// RegistryError maps service errors onto the registration sentinels.
func RegistryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", registration.ErrDuplicateEmail, err)
	case errors.Is(err, ErrInvalidCredentials):
		return fmt.Errorf("%w: %w", registration.ErrInvalidCredentials, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", registration.ErrTransport, err)
	default:
		return fmt.Errorf("%w: %w", registration.ErrUnknown, err)
	}
}

// SessionView is the client-facing form of a session.
func SessionView(acc *Account, sess *Session) *registration.Session {
	return &registration.Session{
		Token:     sess.Token,
		UserID:    acc.ID.String(),
		Name:      acc.Name,
		LastName:  acc.LastName,
		Email:     acc.Email,
		ExpiresAt: sess.ExpiresAt,
	}
}
