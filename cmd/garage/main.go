// Command garage registers and signs in accounts against a garage-api server.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/urfave/cli/v2"

	"github.com/qauto/garage/pkg/accountclient"
	"github.com/qauto/garage/pkg/config"
	"github.com/qauto/garage/pkg/logger"
	"github.com/qauto/garage/svc/registration"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	if err := newApp(newSurveyDriver(stdio), os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		if !errors.Is(err, registration.ErrFormInvalid) && !isSubmissionError(err) {
			printError(os.Stderr, "%v", err)
		}
		os.Exit(1)
	}
}

func isSubmissionError(err error) bool {
	_, ok := registration.IsSubmissionError(err)
	return ok
}

// newApp builds the command tree. prompt is used unless --no-input is set.
func newApp(prompt PromptDriver, stdout, stderr io.Writer) *cli.App {
	var clientCfg accountclient.Config
	if err := config.Load(&clientCfg); err != nil {
		clientCfg = accountclient.Config{BaseURL: "http://localhost:8080"}
	}

	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "api",
			Usage:   "Account registry base URL",
			Value:   clientCfg.BaseURL,
			EnvVars: []string{"GARAGE_API_URL"},
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout",
			Value: clientCfg.Timeout,
		},
		&cli.BoolFlag{
			Name:  "no-input",
			Usage: "Never prompt; fail on missing or invalid values",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "Log registry traffic to stderr",
			Aliases: []string{"v"},
		},
	}

	setup := func(c *cli.Context) (*accountclient.Client, *registration.Orchestrator, PromptDriver) {
		lvl := slog.LevelError
		if c.Bool("verbose") {
			lvl = slog.LevelDebug
		}
		log := logger.New(
			logger.WithLevel(lvl),
			logger.WithFormat(logger.FormatText),
			logger.WithOutput(stderr),
		)

		client := accountclient.NewFromConfig(accountclient.Config{
			BaseURL:    c.String("api"),
			Timeout:    c.Duration("timeout"),
			RetryCount: clientCfg.RetryCount,
		}, accountclient.WithLogger(log))

		var p PromptDriver
		if !c.Bool("no-input") {
			p = prompt
		}
		return client, registration.NewOrchestrator(client, registration.WithLogger(log)), p
	}

	return &cli.App{
		Name:      "garage",
		Usage:     "Create and sign in to garage accounts",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags,
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Sign up for a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "First name"},
					&cli.StringFlag{Name: "last-name", Usage: "Last name"},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Email address"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "8 to 15 characters with a digit, a capital and a small letter"},
				},
				Action: func(c *cli.Context) error {
					_, orch, p := setup(c)
					flow := &registerFlow{orch: orch, prompt: p, out: stdout}
					_, err := flow.run(c.Context, map[registration.FieldName]string{
						registration.Name:           c.String("name"),
						registration.LastName:       c.String("last-name"),
						registration.Email:          c.String("email"),
						registration.Password:       c.String("password"),
						registration.RepeatPassword: c.String("password"),
					})
					return err
				},
			},
			{
				Name:  "login",
				Usage: "Sign in to an existing account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Email address"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Password"},
				},
				Action: func(c *cli.Context) error {
					client, orch, p := setup(c)
					flow := &loginFlow{orch: orch, current: client, prompt: p, out: stdout}
					_, err := flow.run(c.Context, c.String("email"), c.String("password"))
					return err
				},
			},
		},
	}
}
