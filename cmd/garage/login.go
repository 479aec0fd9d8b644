package main

import (
	"context"
	"io"

	"github.com/qauto/garage/pkg/sanitizer"
	"github.com/qauto/garage/svc/registration"
)

// currentUser resolves a session token to its owner.
type currentUser interface {
	Current(ctx context.Context, token string) (*registration.Session, error)
}

type loginFlow struct {
	orch    *registration.Orchestrator
	current currentUser
	prompt  PromptDriver
	out     io.Writer
}

func (l *loginFlow) run(ctx context.Context, email, password string) (*registration.Session, error) {
	var err error
	if l.prompt != nil {
		if sanitizer.Trim(email) == "" {
			if email, err = l.prompt.Input(ctx, InputConfig{Message: "Email:"}); err != nil {
				return nil, err
			}
		}
		if password == "" {
			if password, err = l.prompt.Password(ctx, InputConfig{Message: "Password:"}); err != nil {
				return nil, err
			}
		}
	}

	sess, err := l.orch.Login(ctx, email, password)
	if err != nil {
		if subErr, ok := registration.IsSubmissionError(err); ok {
			printError(l.out, "%s", subErr.Message)
		}
		return nil, err
	}

	if l.current != nil {
		if who, err := l.current.Current(ctx, sess.Token); err == nil {
			sess = who
		}
	}

	printSuccess(l.out, "Signed in")
	printSession(l.out, sess)
	return sess, nil
}
