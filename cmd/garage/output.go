package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/qauto/garage/svc/registration"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	faintColor   = color.New(color.Faint)
)

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(w, format+"\n", args...)
}

func printError(w io.Writer, format string, args ...any) {
	_, _ = errorColor.Fprintf(w, format+"\n", args...)
}

func printHint(w io.Writer, format string, args ...any) {
	_, _ = faintColor.Fprintf(w, format+"\n", args...)
}

// printFieldErrors lists visible field errors in form order.
func printFieldErrors(w io.Writer, errs map[registration.FieldName][]string) {
	order := make(map[registration.FieldName]int)
	for i, name := range registration.Fields() {
		order[name] = i
	}
	names := make([]registration.FieldName, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return order[names[i]] < order[names[j]] })

	for _, name := range names {
		for _, msg := range errs[name] {
			printError(w, "%s: %s", name.Label(), msg)
		}
	}
}

func printSession(w io.Writer, sess *registration.Session) {
	if sess == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "  user:    %s <%s>\n", sess.DisplayName(), sess.Email)
	_, _ = fmt.Fprintf(w, "  expires: %s\n", sess.ExpiresAt.Local().Format("2006-01-02 15:04"))
}
