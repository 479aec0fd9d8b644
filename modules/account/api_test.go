package account_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/qauto/garage/handler"
	"github.com/qauto/garage/modules/account"
	"github.com/qauto/garage/pkg/httpserver"
	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/svc/accounts"
	"github.com/qauto/garage/svc/registration"
)

const signupBody = `{"name":"Li","lastName":"Wu","email":"li.wu@mail.com","password":"ValidPassword12","repeatPassword":"ValidPassword12"}`

type envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	reg := prometheus.NewRegistry()
	svc := accounts.NewService(
		accounts.NewMemoryStorage(),
		accounts.NewMemorySessionStore(),
		accounts.WithBcryptCost(bcrypt.MinCost),
		accounts.WithMetrics(accounts.NewMetrics(reg)),
	)

	return account.Router(account.RouterOptions{
		API:     account.NewAPI(svc, logger.Discard()),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Health:  httpserver.HealthCheckHandler(logger.Discard()),
	})
}

func do(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func signup(t *testing.T, h http.Handler) registration.AccountCreated {
	t.Helper()

	w, env := do(t, h, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, handler.StatusOK, env.Status)

	var created registration.AccountCreated
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("creates account and session", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t)

		created := signup(t, h)
		assert.NotEmpty(t, created.UserID)
		assert.Equal(t, "li.wu@mail.com", created.Email)
		require.NotNil(t, created.Session)
		assert.NotEmpty(t, created.Session.Token)
		assert.Equal(t, "Li Wu", created.Session.DisplayName())
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t)
		signup(t, h)

		w, env := do(t, h, http.MethodPost, "/api/auth/signup", signupBody, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, handler.StatusError, env.Status)
		assert.Equal(t, registration.MsgUserAlreadyExists, env.Message)
	})

	t.Run("passwords do not match", func(t *testing.T) {
		t.Parallel()
		body := strings.Replace(signupBody, `"repeatPassword":"ValidPassword12"`, `"repeatPassword":"ValidPassword13"`, 1)

		w, env := do(t, newRouter(t), http.MethodPost, "/api/auth/signup", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, account.MsgPasswordsMismatch, env.Message)
	})

	t.Run("invalid fields", func(t *testing.T) {
		t.Parallel()
		body := `{"name":"L1","lastName":"Wu","email":"rina","password":"short","repeatPassword":"short"}`

		w, env := do(t, newRouter(t), http.MethodPost, "/api/auth/signup", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name is invalid", env.Message)
		assert.Equal(t, []string{"Email is incorrect"}, env.Errors["email"])
		assert.Contains(t, env.Errors, "password")
		assert.NotContains(t, env.Errors, "lastName")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		w, env := do(t, newRouter(t), http.MethodPost, "/api/auth/signup", `{"name":`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", env.Message)
	})
}

func TestSignin(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	signup(t, h)

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		w, env := do(t, h, http.MethodPost, "/api/auth/signin",
			`{"email":"li.wu@mail.com","password":"ValidPassword12","remember":true}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		var sess registration.Session
		require.NoError(t, json.Unmarshal(env.Data, &sess))
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, "li.wu@mail.com", sess.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		w, env := do(t, h, http.MethodPost, "/api/auth/signin",
			`{"email":"li.wu@mail.com","password":"WrongPassword1"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, registration.MsgInvalidCredentials, env.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		w, env := do(t, h, http.MethodPost, "/api/auth/signin",
			`{"email":"nobody@mail.com","password":"ValidPassword12"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, registration.MsgInvalidCredentials, env.Message)
	})

	t.Run("empty fields", func(t *testing.T) {
		t.Parallel()

		w, env := do(t, h, http.MethodPost, "/api/auth/signin", `{"email":"","password":""}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, registration.MsgLoginFieldsRequired, env.Message)
	})
}

func TestCurrentAndLogout(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	created := signup(t, h)
	token := created.Session.Token

	w, env := do(t, h, http.MethodGet, "/api/users/current", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var sess registration.Session
	require.NoError(t, json.Unmarshal(env.Data, &sess))
	assert.Equal(t, created.UserID, sess.UserID)

	w, _ = do(t, h, http.MethodGet, "/api/users/current", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = do(t, h, http.MethodGet, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, handler.StatusOK, env.Status)

	w, env = do(t, h, http.MethodGet, "/api/users/current", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", env.Message)

	// Logging out twice is harmless.
	w, _ = do(t, h, http.MethodGet, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsAndHealth(t *testing.T) {
	t.Parallel()

	h := newRouter(t)
	signup(t, h)

	w, _ := do(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `garage_accounts_registrations_total{outcome="created"} 1`)

	w, _ = do(t, h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ALIVE", strings.TrimSpace(w.Body.String()))
}

type failingService struct {
	account.Service
	err error
}

func (f failingService) Register(context.Context, registration.RegisterInput) (*accounts.Account, *accounts.Session, error) {
	return nil, nil, f.err
}

func TestSignup_InternalErrorIsHidden(t *testing.T) {
	t.Parallel()

	api := account.NewAPI(failingService{err: errors.New("connection reset by peer")}, logger.Discard())
	h := account.Router(account.RouterOptions{API: api})

	w, env := do(t, h, http.MethodPost, "/api/auth/signup", signupBody, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
