package registration

import (
	"context"
	"log/slog"
	"sync"

	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/pkg/sanitizer"
)

// Orchestrator is the explicit app context around the form: at most one open
// Form and the authenticated Session, if any.
type Orchestrator struct {
	client AccountRegistryClient
	log    *slog.Logger

	mu      sync.Mutex
	form    *Form
	session *Session
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// NewOrchestrator panics on a nil client.
func NewOrchestrator(client AccountRegistryClient, opts ...Option) *Orchestrator {
	if client == nil {
		panic("registration: nil AccountRegistryClient")
	}
	o := &Orchestrator{client: client, log: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With(logger.Component("registration"))
	return o
}

// Open discards any open form and returns a fresh, empty one.
func (o *Orchestrator) Open() *Form {
	o.mu.Lock()
	prev := o.form
	o.form = newForm(o.log)
	form := o.form
	o.mu.Unlock()

	if prev != nil {
		prev.close(context.Background())
	}
	return form
}

// Close discards the open form. An in-flight submission's result is dropped.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	form := o.form
	o.form = nil
	o.mu.Unlock()

	if form != nil {
		form.close(context.Background())
	}
}

// Form returns the open form or nil.
func (o *Orchestrator) Form() *Form {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// Submit submits the open form. On success the form is discarded and the
// returned session becomes the current one. Registry failures come back as
// *SubmissionError with the form left open and populated.
func (o *Orchestrator) Submit(ctx context.Context) (*AccountCreated, error) {
	form := o.Form()
	if form == nil {
		return nil, ErrNoOpenForm
	}

	created, err := form.submit(ctx, o.client)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.form == form {
		o.form = nil
	}
	if created.Session != nil {
		o.session = created.Session
	}
	o.mu.Unlock()

	return created, nil
}

// Login authenticates against the registry and stores the session.
func (o *Orchestrator) Login(ctx context.Context, email, password string) (*Session, error) {
	email = sanitizer.Trim(email)
	if email == "" || password == "" {
		return nil, &SubmissionError{Kind: KindInvalidCredentials, Message: MsgLoginFieldsRequired, Err: ErrInvalidCredentials}
	}

	session, err := o.client.Login(ctx, email, password)
	if err == nil && session == nil {
		err = ErrUnknown
	}
	if err != nil {
		subErr := newSubmissionError(err)
		// A duplicate has no meaning for login.
		if subErr.Kind == KindDuplicateEmail {
			subErr = &SubmissionError{Kind: KindUnknown, Message: MsgUnknownFailure, Err: err}
		}
		o.log.WarnContext(ctx, "login failed",
			slog.String("kind", string(subErr.Kind)),
			logger.Email(email),
			logger.Error(err),
		)
		return nil, subErr
	}

	o.mu.Lock()
	o.session = session
	o.mu.Unlock()

	o.log.InfoContext(ctx, "logged in", logger.UserID(session.UserID))
	return session, nil
}

// Logout forgets the current session.
func (o *Orchestrator) Logout() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.session = nil
}

// Session returns the current session or nil when logged out.
func (o *Orchestrator) Session() *Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session
}

// Authenticated reports whether a session is held.
func (o *Orchestrator) Authenticated() bool {
	return o.Session() != nil
}
