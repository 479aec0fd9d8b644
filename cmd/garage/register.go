package main

import (
	"context"
	"errors"
	"io"

	"github.com/qauto/garage/svc/registration"
)

// registerFlow fills the registration form from flags and prompts, then
// submits it. Without a prompt driver it never asks and reports invalid
// fields instead.
type registerFlow struct {
	orch   *registration.Orchestrator
	prompt PromptDriver
	out    io.Writer
}

func (r *registerFlow) run(ctx context.Context, prefill map[registration.FieldName]string) (*registration.AccountCreated, error) {
	form := r.orch.Open()
	defer r.orch.Close()

	for _, name := range registration.Fields() {
		if v := prefill[name]; v != "" {
			if err := form.SetValue(name, v); err != nil {
				return nil, err
			}
			if err := form.Blur(name); err != nil {
				return nil, err
			}
		}
	}

	for {
		if r.prompt != nil {
			for _, name := range registration.Fields() {
				if form.Values()[name] != "" && len(form.VisibleErrors()[name]) == 0 {
					continue
				}
				if err := r.ask(ctx, form, name); err != nil {
					return nil, err
				}
			}
		}

		if !form.IsSubmittable() {
			form.TouchAll()
			printFieldErrors(r.out, form.VisibleErrors())
			return nil, registration.ErrFormInvalid
		}

		created, err := r.orch.Submit(ctx)
		if err == nil {
			printSuccess(r.out, "Signed up")
			printSession(r.out, created.Session)
			return created, nil
		}

		subErr, ok := registration.IsSubmissionError(err)
		if !ok {
			return nil, err
		}
		printError(r.out, "%s", subErr.Message)

		if r.prompt == nil {
			return nil, err
		}
		switch subErr.Kind {
		case registration.KindDuplicateEmail:
			printHint(r.out, "Use another email or try 'garage login'")
			if err := r.ask(ctx, form, registration.Email); err != nil {
				return nil, err
			}
		case registration.KindTransport:
			retry, perr := r.prompt.Confirm(ctx, "Try again?", true)
			if perr != nil {
				return nil, perr
			}
			if !retry {
				return nil, err
			}
		default:
			return nil, err
		}
	}
}

// ask prompts for one field until the form accepts the answer.
func (r *registerFlow) ask(ctx context.Context, form *registration.Form, name registration.FieldName) error {
	cfg := InputConfig{
		Message: name.Label() + ":",
		Validator: func(answer string) error {
			if err := form.SetValue(name, answer); err != nil {
				return err
			}
			if err := form.Blur(name); err != nil {
				return err
			}
			if msgs := form.VisibleErrors()[name]; len(msgs) > 0 {
				return errors.New(msgs[0])
			}
			return nil
		},
	}

	var err error
	switch name {
	case registration.Password, registration.RepeatPassword:
		_, err = r.prompt.Password(ctx, cfg)
	default:
		cfg.Default = form.Values()[name]
		_, err = r.prompt.Input(ctx, cfg)
	}
	return err
}
