package registration_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qauto/garage/svc/registration"
)

type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Register(ctx context.Context, in registration.RegisterInput) (*registration.AccountCreated, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.AccountCreated), args.Error(1)
}

func (m *MockRegistry) Login(ctx context.Context, email, password string) (*registration.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Session), args.Error(1)
}
