// Package registration implements the sign-up form engine: per-field rule
// evaluation, touched-state tracking, input normalization, the submit gate
// and the submission round trip to an account registry.
//
// The engine holds no UI. A caller opens a Form through an Orchestrator,
// feeds it value changes and blur events, renders Form.State and calls
// Orchestrator.Submit when the user clicks Register:
//
//	orch := registration.NewOrchestrator(client)
//	form := orch.Open()
//	_ = form.SetValue(registration.Name, "  Kate ")
//	_ = form.Blur(registration.Name) // displayed value becomes "Kate"
//	...
//	created, err := orch.Submit(ctx)
//
// Field errors are shown only after a field has been touched (blurred, or
// touched by a submit attempt), while the submit gate always evaluates every
// rule silently. Rule failures are ordered by the rule's Order, and a field
// can report several messages at once.
//
// Registry failures never clear the form. They surface as a form-level
// ServerError and as a *SubmissionError returned from Submit. A registry
// response that arrives after its form was closed is dropped.
package registration
