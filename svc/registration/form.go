package registration

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/pkg/statemachine"
)

type phase string

const (
	phaseEditing    phase = "editing"
	phaseSubmitting phase = "submitting"
	phaseCompleted  phase = "completed"
	phaseClosed     phase = "closed"
)

type event string

const (
	eventSubmit  event = "submit"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
	eventClose   event = "close"
)

// Form is one open instance of the registration form. All methods are safe
// for concurrent use; fields stay editable while a submission is in flight
// and edits apply to the next attempt.
type Form struct {
	id  uuid.UUID
	log *slog.Logger

	mu          sync.Mutex
	fields      *FormValidator
	lifecycle   *statemachine.Machine[phase, event]
	serverError string
}

func newForm(log *slog.Logger) *Form {
	f := &Form{
		id:     uuid.New(),
		fields: NewFormValidator(),
	}
	f.log = log.With(logger.FormID(f.id))

	// Guards and actions run under f.mu, held by the caller of Fire.
	submittable := func(context.Context, phase, event, any) bool {
		return f.fields.IsSubmittable()
	}
	trace := func(ctx context.Context, from, to phase, ev event, _ any) error {
		f.log.DebugContext(ctx, "form transition",
			slog.String("from", string(from)),
			logger.Phase(string(to)),
			logger.Event(string(ev)),
		)
		return nil
	}

	f.lifecycle = statemachine.MustNew[phase, event](phaseEditing,
		statemachine.WithTransition(phaseEditing, phaseSubmitting, eventSubmit,
			statemachine.WithGuards[phase, event](submittable),
			statemachine.WithActions[phase, event](trace),
		),
		statemachine.WithTransition(phaseSubmitting, phaseEditing, eventFail,
			statemachine.WithActions[phase, event](trace),
		),
		statemachine.WithTransition(phaseSubmitting, phaseCompleted, eventSucceed,
			statemachine.WithActions[phase, event](trace),
		),
		statemachine.WithTransitionFromAny([]phase{phaseEditing, phaseSubmitting, phaseCompleted}, phaseClosed, eventClose,
			statemachine.WithActions[phase, event](trace),
		),
	)
	return f
}

// ID identifies the form instance in logs.
func (f *Form) ID() uuid.UUID { return f.id }

func (f *Form) SetValue(name FieldName, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.editableLocked() {
		return ErrFormClosed
	}
	return f.fields.SetValue(name, raw)
}

func (f *Form) Blur(name FieldName) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.editableLocked() {
		return ErrFormClosed
	}
	return f.fields.Blur(name)
}

func (f *Form) TouchAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.TouchAll()
}

// IsSubmittable is the Register button state.
func (f *Form) IsSubmittable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lifecycle.Is(phaseEditing) && f.fields.IsSubmittable()
}

func (f *Form) VisibleErrors() map[FieldName][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.VisibleErrors()
}

func (f *Form) Values() map[FieldName]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.Values()
}

func (f *Form) ServerError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.serverError
}

func (f *Form) Submitting() bool {
	return f.lifecycle.Is(phaseSubmitting)
}

// Closed reports whether the form was closed or completed a submission.
func (f *Form) Closed() bool {
	return f.lifecycle.Is(phaseClosed, phaseCompleted)
}

// State returns a render-ready snapshot.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.fields.State()
	state.ServerError = f.serverError
	state.Submitting = f.lifecycle.Is(phaseSubmitting)
	state.Submittable = state.Submittable && f.lifecycle.Is(phaseEditing)
	return state
}

// close discards the form. Closing twice is a no-op.
func (f *Form) close(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lifecycle.Is(phaseClosed) {
		return
	}
	_ = f.lifecycle.Fire(ctx, eventClose, nil)
	f.fields.Reset()
	f.serverError = ""
}

func (f *Form) editableLocked() bool {
	return f.lifecycle.Is(phaseEditing, phaseSubmitting)
}

// submit runs one submission round trip. The lock is released while the
// registry call is in flight.
func (f *Form) submit(ctx context.Context, client AccountRegistryClient) (*AccountCreated, error) {
	f.mu.Lock()
	switch {
	case f.lifecycle.Is(phaseClosed, phaseCompleted):
		f.mu.Unlock()
		return nil, ErrFormClosed
	case f.lifecycle.Is(phaseSubmitting):
		f.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}

	if err := f.lifecycle.Fire(ctx, eventSubmit, nil); err != nil {
		f.fields.TouchAll()
		f.mu.Unlock()
		f.log.DebugContext(ctx, "submit rejected, form invalid", logger.Error(err))
		return nil, ErrFormInvalid
	}

	values := f.fields.Values()
	f.serverError = ""
	f.mu.Unlock()

	in := RegisterInput{
		Name:     values[Name],
		LastName: values[LastName],
		Email:    values[Email],
		Password: values[Password],
	}
	created, err := client.Register(ctx, in)
	if err == nil && created == nil {
		err = ErrUnknown
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lifecycle.Is(phaseClosed) {
		f.log.InfoContext(ctx, "dropping registry response for closed form", logger.Error(err))
		return nil, ErrFormClosed
	}

	if err != nil {
		subErr := newSubmissionError(err)
		f.serverError = subErr.Message
		_ = f.lifecycle.Fire(ctx, eventFail, nil)
		f.log.WarnContext(ctx, "registration rejected",
			slog.String("kind", string(subErr.Kind)),
			logger.Email(in.Email),
			logger.Error(err),
		)
		return nil, subErr
	}

	_ = f.lifecycle.Fire(ctx, eventSucceed, nil)
	f.fields.Reset()
	f.log.InfoContext(ctx, "account created", logger.UserID(created.UserID), logger.Email(in.Email))
	return created, nil
}
