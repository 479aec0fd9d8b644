package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/pkg/sanitizer"
	"github.com/qauto/garage/pkg/validator"
	"github.com/qauto/garage/svc/registration"
)

// Service is the account registry.
type Service struct {
	storage  Storage
	sessions SessionStore
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time

	bcryptCost  int
	sessionTTL  time.Duration
	rememberTTL time.Duration
	hookTimeout time.Duration

	afterRegister func(ctx context.Context, acc *Account) error
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithConfig applies the non-zero values of cfg.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		if cfg.BcryptCost > 0 {
			s.bcryptCost = cfg.BcryptCost
		}
		if cfg.SessionTTL > 0 {
			s.sessionTTL = cfg.SessionTTL
		}
		if cfg.RememberTTL > 0 {
			s.rememberTTL = cfg.RememberTTL
		}
		if cfg.HookTimeout > 0 {
			s.hookTimeout = cfg.HookTimeout
		}
	}
}

func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithAfterRegister runs fn asynchronously after each successful
// registration. Errors and panics are logged.
func WithAfterRegister(fn func(context.Context, *Account) error) Option {
	return func(s *Service) { s.afterRegister = fn }
}

func NewService(storage Storage, sessions SessionStore, opts ...Option) *Service {
	s := &Service{
		storage:     storage,
		sessions:    sessions,
		logger:      logger.Discard(),
		now:         time.Now,
		bcryptCost:  bcrypt.DefaultCost,
		sessionTTL:  24 * time.Hour,
		rememberTTL: 30 * 24 * time.Hour,
		hookTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("accounts"))
	return s
}

// Register validates and stores a new account and opens a session for it.
// Invalid input returns validator.ValidationErrors; a taken email returns
// ErrEmailAlreadyExists.
func (s *Service) Register(ctx context.Context, in registration.RegisterInput) (*Account, *Session, error) {
	start := time.Now()

	in.Name = sanitizer.Trim(in.Name)
	in.LastName = sanitizer.Trim(in.LastName)
	in.Email = sanitizer.NormalizeEmail(in.Email)

	if err := registration.Validate(map[registration.FieldName]string{
		registration.Name:           in.Name,
		registration.LastName:       in.LastName,
		registration.Email:          in.Email,
		registration.Password:       in.Password,
		registration.RepeatPassword: in.Password,
	}); err != nil {
		s.metrics.ObserveRegistration(OutcomeInvalid, start)
		return nil, nil, err
	}

	_, err := s.storage.GetAccountByEmail(ctx, in.Email)
	if err == nil {
		s.metrics.ObserveRegistration(OutcomeDuplicate, start)
		return nil, nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrAccountNotFound) {
		s.metrics.ObserveRegistration(OutcomeError, start)
		return nil, nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		s.metrics.ObserveRegistration(OutcomeError, start)
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acc := &Account{
		ID:           uuid.New(),
		Name:         in.Name,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.storage.CreateAccount(ctx, acc); err != nil {
		// A concurrent registration can win between the lookup and the insert.
		if errors.Is(err, ErrEmailAlreadyExists) {
			s.metrics.ObserveRegistration(OutcomeDuplicate, start)
			return nil, nil, ErrEmailAlreadyExists
		}
		s.metrics.ObserveRegistration(OutcomeError, start)
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	sess, err := s.openSession(ctx, acc.ID, false)
	if err != nil {
		s.metrics.ObserveRegistration(OutcomeError, start)
		return nil, nil, err
	}

	s.metrics.ObserveRegistration(OutcomeCreated, start)
	s.logger.InfoContext(ctx, "account registered", logger.UserID(acc.ID), logger.Email(acc.Email))
	s.runAfterRegister(acc)

	return acc, sess, nil
}

// Login checks credentials and opens a session. Every mismatch returns
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, email, password string, remember bool) (*Account, *Session, error) {
	email = sanitizer.NormalizeEmail(email)

	acc, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrAccountNotFound) {
			s.metrics.ObserveLogin(OutcomeError)
			return nil, nil, fmt.Errorf("failed to load account: %w", err)
		}
		s.metrics.ObserveLogin(OutcomeInvalidCredentials)
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		s.metrics.ObserveLogin(OutcomeInvalidCredentials)
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.openSession(ctx, acc.ID, remember)
	if err != nil {
		s.metrics.ObserveLogin(OutcomeError)
		return nil, nil, err
	}

	s.metrics.ObserveLogin(OutcomeSuccess)
	s.logger.InfoContext(ctx, "account logged in", logger.UserID(acc.ID))
	return acc, sess, nil
}

// Logout deletes the session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Get(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	s.metrics.SessionClosed()
	return nil
}

// Current resolves a session token to its account.
func (s *Service) Current(ctx context.Context, token string) (*Account, *Session, error) {
	if token == "" {
		return nil, nil, ErrSessionNotFound
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if sess.ExpiredAt(s.now()) {
		return nil, nil, ErrSessionNotFound
	}
	acc, err := s.storage.GetAccountByID(ctx, sess.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return acc, sess, nil
}

func (s *Service) openSession(ctx context.Context, accountID uuid.UUID, remember bool) (*Session, error) {
	ttl := s.sessionTTL
	if remember {
		ttl = s.rememberTTL
	}
	now := s.now().UTC()
	sess := &Session{
		Token:     uuid.NewString(),
		AccountID: accountID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	s.metrics.SessionOpened()
	return sess, nil
}

func (s *Service) runAfterRegister(acc *Account) {
	if s.afterRegister == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("afterRegister hook panicked", logger.UserID(acc.ID), slog.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.hookTimeout)
		defer cancel()

		if err := s.afterRegister(ctx, acc); err != nil {
			s.logger.Error("afterRegister hook failed", logger.UserID(acc.ID), logger.Error(err))
		}
	}()
}

// FirstValidationMessage returns the first failing rule message in err, or
// "" if err carries no validation errors.
func FirstValidationMessage(err error) string {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		return ""
	}
	return errs[0].Message
}
