package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qauto/garage/handler"
	"github.com/qauto/garage/pkg/binder"
	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/pkg/validator"
	"github.com/qauto/garage/svc/accounts"
	"github.com/qauto/garage/svc/registration"
)

// MsgPasswordsMismatch is returned when repeatPassword differs from password.
const MsgPasswordsMismatch = "Passwords do not match"

// Service is the subset of accounts.Service the API needs.
type Service interface {
	Register(ctx context.Context, in registration.RegisterInput) (*accounts.Account, *accounts.Session, error)
	Login(ctx context.Context, email, password string, remember bool) (*accounts.Account, *accounts.Session, error)
	Logout(ctx context.Context, token string) error
	Current(ctx context.Context, token string) (*accounts.Account, *accounts.Session, error)
}

var tokenKey = handler.NewContextKey("session_token")

// API serves the account registry endpoints.
type API struct {
	svc          Service
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewAPI creates the account API. A nil log falls back to slog.Default.
func NewAPI(svc Service, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("account_api"))
	return &API{
		svc:          svc,
		log:          log,
		errorHandler: handler.NewErrorHandler(log),
	}
}

func (a *API) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/signup", handler.Wrap(a.signup,
		handler.WithBinder[handler.Context, SignupRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, SignupRequest](a.errorHandler),
	))
	r.Post("/auth/signin", handler.Wrap(a.signin,
		handler.WithBinder[handler.Context, SigninRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, SigninRequest](a.errorHandler),
	))
	r.Get("/auth/logout", handler.Wrap(a.logout,
		handler.WithDecorators[handler.Context, noBody](requireToken),
		handler.WithErrorHandler[handler.Context, noBody](a.errorHandler),
	))
	r.Get("/users/current", handler.Wrap(a.current,
		handler.WithDecorators[handler.Context, noBody](requireToken),
		handler.WithErrorHandler[handler.Context, noBody](a.errorHandler),
	))

	return r
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name           string `json:"name"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

// SigninRequest is the body of POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type noBody struct{}

func (a *API) signup(ctx handler.Context, req SignupRequest) handler.Response {
	if req.Password != req.RepeatPassword {
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, MsgPasswordsMismatch))
	}

	acc, sess, err := a.svc.Register(ctx, registration.RegisterInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return a.fail(ctx, "signup", err)
	}

	view := accounts.SessionView(acc, sess)
	return handler.JSON(registration.AccountCreated{
		UserID:  view.UserID,
		Email:   view.Email,
		Session: view,
	}, handler.WithJSONStatus(http.StatusCreated))
}

func (a *API) signin(ctx handler.Context, req SigninRequest) handler.Response {
	if req.Email == "" || req.Password == "" {
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, registration.MsgLoginFieldsRequired))
	}

	acc, sess, err := a.svc.Login(ctx, req.Email, req.Password, req.Remember)
	if err != nil {
		return a.fail(ctx, "signin", err)
	}
	return handler.JSON(accounts.SessionView(acc, sess))
}

func (a *API) logout(ctx handler.Context, _ noBody) handler.Response {
	if err := a.svc.Logout(ctx, handler.ContextValue[string](ctx, tokenKey)); err != nil {
		return a.fail(ctx, "logout", err)
	}
	return handler.JSON(nil)
}

func (a *API) current(ctx handler.Context, _ noBody) handler.Response {
	acc, sess, err := a.svc.Current(ctx, handler.ContextValue[string](ctx, tokenKey))
	if err != nil {
		return a.fail(ctx, "current_user", err)
	}
	return handler.JSON(accounts.SessionView(acc, sess))
}

// fail maps service errors onto client-facing responses.
func (a *API) fail(ctx handler.Context, op string, err error) handler.Response {
	switch {
	case errors.Is(err, accounts.ErrEmailAlreadyExists):
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, registration.MsgUserAlreadyExists))
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return handler.JSONError(handler.NewHTTPError(http.StatusBadRequest, registration.MsgInvalidCredentials))
	case errors.Is(err, accounts.ErrSessionNotFound),
		errors.Is(err, accounts.ErrSessionExpired),
		errors.Is(err, accounts.ErrAccountNotFound):
		return handler.JSONError(handler.ErrUnauthorized)
	}

	resp := handler.JSONError(err)
	if !validator.IsValidationError(err) {
		a.log.ErrorContext(ctx, "account request failed", logger.Event(op), logger.Error(err))
	}
	return resp
}

// requireToken rejects requests without a bearer token and stores the token
// in the request context for the wrapped handler.
func requireToken(next handler.HandlerFunc[handler.Context, noBody]) handler.HandlerFunc[handler.Context, noBody] {
	return func(ctx handler.Context, req noBody) handler.Response {
		token, err := binder.BearerToken(ctx.Request())
		if err != nil {
			return handler.JSONError(handler.ErrUnauthorized)
		}
		r := ctx.Request().WithContext(context.WithValue(ctx.Request().Context(), tokenKey, token))
		return next(handler.NewContext(ctx.ResponseWriter(), r), req)
	}
}
