// Package statemachine provides a small, type-safe finite state machine.
//
// A Machine is parameterised by its state and event types, which can be any
// comparable type (typically string-based enums). Transitions are declared
// up front with optional Guards, which may veto a transition, and Actions,
// which run after the guards pass and before the state changes. An action
// returning an error aborts the transition.
//
//	type phase string
//	type event string
//
//	m := statemachine.MustNew[phase, event]("draft",
//	    statemachine.WithTransition[phase, event]("draft", "review", "submit"),
//	)
//	_ = m.Fire(ctx, "submit", nil)
//
// Fire returns an *ErrNoTransitionAvailable when the current state has no
// transition for the event and an *ErrTransitionRejected when every
// candidate transition was vetoed by a guard; IsNoTransitionAvailableError
// and IsTransitionRejectedError classify them.
//
// All methods are safe for concurrent use. Guards and actions run while the
// machine's lock is held and must not call back into the same machine.
package statemachine
